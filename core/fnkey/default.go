package fnkey

import (
	"github.com/jmigpin/xst/util/uiutil/event"
)

func DefaultTable() *Table {
	return NewTable(defaultKeys)
}

const (
	anyMod = event.ModAny
	none   = event.ModNone
	shift  = event.ModShift
	ctrl   = event.ModCtrl
	alt    = event.ModAlt
)

var defaultKeys = []Key{
	// keysym, mods, string, appkey, appcursor
	{event.KSymKeypadHome, shift, "\x1b[2J", 0, -1},
	{event.KSymKeypadHome, shift, "\x1b[1;2H", 0, 1},
	{event.KSymKeypadHome, anyMod, "\x1b[H", 0, -1},
	{event.KSymKeypadHome, anyMod, "\x1b[1~", 0, 1},
	{event.KSymKeypadUp, anyMod, "\x1bOx", 1, 0},
	{event.KSymKeypadUp, anyMod, "\x1b[A", 0, -1},
	{event.KSymKeypadUp, anyMod, "\x1bOA", 0, 1},
	{event.KSymKeypadDown, anyMod, "\x1bOr", 1, 0},
	{event.KSymKeypadDown, anyMod, "\x1b[B", 0, -1},
	{event.KSymKeypadDown, anyMod, "\x1bOB", 0, 1},
	{event.KSymKeypadLeft, anyMod, "\x1bOt", 1, 0},
	{event.KSymKeypadLeft, anyMod, "\x1b[D", 0, -1},
	{event.KSymKeypadLeft, anyMod, "\x1bOD", 0, 1},
	{event.KSymKeypadRight, anyMod, "\x1bOv", 1, 0},
	{event.KSymKeypadRight, anyMod, "\x1b[C", 0, -1},
	{event.KSymKeypadRight, anyMod, "\x1bOC", 0, 1},
	{event.KSymKeypadPageUp, shift, "\x1b[5;2~", 0, 0},
	{event.KSymKeypadPageUp, anyMod, "\x1b[5~", 0, 0},
	{event.KSymKeypadBegin, anyMod, "\x1b[E", 0, 0},
	{event.KSymKeypadEnd, ctrl, "\x1b[J", -1, 0},
	{event.KSymKeypadEnd, ctrl, "\x1b[1;5F", 1, 0},
	{event.KSymKeypadEnd, shift, "\x1b[K", -1, 0},
	{event.KSymKeypadEnd, shift, "\x1b[1;2F", 1, 0},
	{event.KSymKeypadEnd, anyMod, "\x1b[4~", 0, 0},
	{event.KSymKeypadPageDown, shift, "\x1b[6;2~", 0, 0},
	{event.KSymKeypadPageDown, anyMod, "\x1b[6~", 0, 0},
	{event.KSymKeypadInsert, shift, "\x1b[2;2~", 1, 0},
	{event.KSymKeypadInsert, shift, "\x1b[4l", -1, 0},
	{event.KSymKeypadInsert, ctrl, "\x1b[L", -1, 0},
	{event.KSymKeypadInsert, ctrl, "\x1b[2;5~", 1, 0},
	{event.KSymKeypadInsert, anyMod, "\x1b[4h", -1, 0},
	{event.KSymKeypadInsert, anyMod, "\x1b[2~", 1, 0},
	{event.KSymKeypadDelete, ctrl, "\x1b[M", -1, 0},
	{event.KSymKeypadDelete, ctrl, "\x1b[3;5~", 1, 0},
	{event.KSymKeypadDelete, shift, "\x1b[2K", -1, 0},
	{event.KSymKeypadDelete, shift, "\x1b[3;2~", 1, 0},
	{event.KSymKeypadDelete, anyMod, "\x1b[P", -1, 0},
	{event.KSymKeypadDelete, anyMod, "\x1b[3~", 1, 0},
	{event.KSymKeypadMultiply, anyMod, "\x1bOj", 2, 0},
	{event.KSymKeypadAdd, anyMod, "\x1bOk", 2, 0},
	{event.KSymKeypadEnter, anyMod, "\x1bOM", 2, 0},
	{event.KSymKeypadEnter, anyMod, "\r", -1, 0},
	{event.KSymKeypadSubtract, anyMod, "\x1bOm", 2, 0},
	{event.KSymKeypadDecimal, anyMod, "\x1bOn", 2, 0},
	{event.KSymKeypadDivide, anyMod, "\x1bOo", 2, 0},
	{event.KSymKeypad0 + 0, anyMod, "\x1bOp", 2, 0},
	{event.KSymKeypad0 + 1, anyMod, "\x1bOq", 2, 0},
	{event.KSymKeypad0 + 2, anyMod, "\x1bOr", 2, 0},
	{event.KSymKeypad0 + 3, anyMod, "\x1bOs", 2, 0},
	{event.KSymKeypad0 + 4, anyMod, "\x1bOt", 2, 0},
	{event.KSymKeypad0 + 5, anyMod, "\x1bOu", 2, 0},
	{event.KSymKeypad0 + 6, anyMod, "\x1bOv", 2, 0},
	{event.KSymKeypad0 + 7, anyMod, "\x1bOw", 2, 0},
	{event.KSymKeypad0 + 8, anyMod, "\x1bOx", 2, 0},
	{event.KSymKeypad0 + 9, anyMod, "\x1bOy", 2, 0},

	{event.KSymUp, shift, "\x1b[1;2A", 0, 0},
	{event.KSymUp, alt, "\x1b[1;3A", 0, 0},
	{event.KSymUp, shift | alt, "\x1b[1;4A", 0, 0},
	{event.KSymUp, ctrl, "\x1b[1;5A", 0, 0},
	{event.KSymUp, shift | ctrl, "\x1b[1;6A", 0, 0},
	{event.KSymUp, ctrl | alt, "\x1b[1;7A", 0, 0},
	{event.KSymUp, shift | ctrl | alt, "\x1b[1;8A", 0, 0},
	{event.KSymUp, anyMod, "\x1b[A", 0, -1},
	{event.KSymUp, anyMod, "\x1bOA", 0, 1},
	{event.KSymDown, shift, "\x1b[1;2B", 0, 0},
	{event.KSymDown, alt, "\x1b[1;3B", 0, 0},
	{event.KSymDown, shift | alt, "\x1b[1;4B", 0, 0},
	{event.KSymDown, ctrl, "\x1b[1;5B", 0, 0},
	{event.KSymDown, shift | ctrl, "\x1b[1;6B", 0, 0},
	{event.KSymDown, ctrl | alt, "\x1b[1;7B", 0, 0},
	{event.KSymDown, shift | ctrl | alt, "\x1b[1;8B", 0, 0},
	{event.KSymDown, anyMod, "\x1b[B", 0, -1},
	{event.KSymDown, anyMod, "\x1bOB", 0, 1},
	{event.KSymLeft, shift, "\x1b[1;2D", 0, 0},
	{event.KSymLeft, alt, "\x1b[1;3D", 0, 0},
	{event.KSymLeft, shift | alt, "\x1b[1;4D", 0, 0},
	{event.KSymLeft, ctrl, "\x1b[1;5D", 0, 0},
	{event.KSymLeft, shift | ctrl, "\x1b[1;6D", 0, 0},
	{event.KSymLeft, ctrl | alt, "\x1b[1;7D", 0, 0},
	{event.KSymLeft, shift | ctrl | alt, "\x1b[1;8D", 0, 0},
	{event.KSymLeft, anyMod, "\x1b[D", 0, -1},
	{event.KSymLeft, anyMod, "\x1bOD", 0, 1},
	{event.KSymRight, shift, "\x1b[1;2C", 0, 0},
	{event.KSymRight, alt, "\x1b[1;3C", 0, 0},
	{event.KSymRight, shift | alt, "\x1b[1;4C", 0, 0},
	{event.KSymRight, ctrl, "\x1b[1;5C", 0, 0},
	{event.KSymRight, shift | ctrl, "\x1b[1;6C", 0, 0},
	{event.KSymRight, ctrl | alt, "\x1b[1;7C", 0, 0},
	{event.KSymRight, shift | ctrl | alt, "\x1b[1;8C", 0, 0},
	{event.KSymRight, anyMod, "\x1b[C", 0, -1},
	{event.KSymRight, anyMod, "\x1bOC", 0, 1},

	{event.KSymISOLeftTab, shift, "\x1b[Z", 0, 0},
	{event.KSymReturn, alt, "\x1b\r", 0, 0},
	{event.KSymReturn, anyMod, "\r", 0, 0},
	{event.KSymInsert, shift, "\x1b[4l", -1, 0},
	{event.KSymInsert, shift, "\x1b[2;2~", 1, 0},
	{event.KSymInsert, ctrl, "\x1b[L", -1, 0},
	{event.KSymInsert, ctrl, "\x1b[2;5~", 1, 0},
	{event.KSymInsert, anyMod, "\x1b[4h", -1, 0},
	{event.KSymInsert, anyMod, "\x1b[2~", 1, 0},
	{event.KSymDelete, ctrl, "\x1b[M", -1, 0},
	{event.KSymDelete, ctrl, "\x1b[3;5~", 1, 0},
	{event.KSymDelete, shift, "\x1b[2K", -1, 0},
	{event.KSymDelete, shift, "\x1b[3;2~", 1, 0},
	{event.KSymDelete, anyMod, "\x1b[P", -1, 0},
	{event.KSymDelete, anyMod, "\x1b[3~", 1, 0},
	{event.KSymBackspace, none, "\x7f", 0, 0},
	{event.KSymBackspace, alt, "\x1b\x7f", 0, 0},
	{event.KSymHome, shift, "\x1b[2J", 0, -1},
	{event.KSymHome, shift, "\x1b[1;2H", 0, 1},
	{event.KSymHome, anyMod, "\x1b[H", 0, -1},
	{event.KSymHome, anyMod, "\x1b[1~", 0, 1},
	{event.KSymEnd, ctrl, "\x1b[J", -1, 0},
	{event.KSymEnd, ctrl, "\x1b[1;5F", 1, 0},
	{event.KSymEnd, shift, "\x1b[K", -1, 0},
	{event.KSymEnd, shift, "\x1b[1;2F", 1, 0},
	{event.KSymEnd, anyMod, "\x1b[4~", 0, 0},
	{event.KSymPageUp, ctrl, "\x1b[5;5~", 0, 0},
	{event.KSymPageUp, shift, "\x1b[5;2~", 0, 0},
	{event.KSymPageUp, anyMod, "\x1b[5~", 0, 0},
	{event.KSymPageDown, ctrl, "\x1b[6;5~", 0, 0},
	{event.KSymPageDown, shift, "\x1b[6;2~", 0, 0},
	{event.KSymPageDown, anyMod, "\x1b[6~", 0, 0},

	{event.KSymF1, none, "\x1bOP", 0, 0},
	{event.KSymF1, shift, "\x1b[1;2P", 0, 0},
	{event.KSymF1, ctrl, "\x1b[1;5P", 0, 0},
	{event.KSymF2, none, "\x1bOQ", 0, 0},
	{event.KSymF2, shift, "\x1b[1;2Q", 0, 0},
	{event.KSymF2, ctrl, "\x1b[1;5Q", 0, 0},
	{event.KSymF3, none, "\x1bOR", 0, 0},
	{event.KSymF3, shift, "\x1b[1;2R", 0, 0},
	{event.KSymF3, ctrl, "\x1b[1;5R", 0, 0},
	{event.KSymF4, none, "\x1bOS", 0, 0},
	{event.KSymF4, shift, "\x1b[1;2S", 0, 0},
	{event.KSymF4, ctrl, "\x1b[1;5S", 0, 0},
	{event.KSymF5, none, "\x1b[15~", 0, 0},
	{event.KSymF5, shift, "\x1b[15;2~", 0, 0},
	{event.KSymF5, ctrl, "\x1b[15;5~", 0, 0},
	{event.KSymF6, none, "\x1b[17~", 0, 0},
	{event.KSymF6, shift, "\x1b[17;2~", 0, 0},
	{event.KSymF6, ctrl, "\x1b[17;5~", 0, 0},
	{event.KSymF7, none, "\x1b[18~", 0, 0},
	{event.KSymF7, shift, "\x1b[18;2~", 0, 0},
	{event.KSymF7, ctrl, "\x1b[18;5~", 0, 0},
	{event.KSymF8, none, "\x1b[19~", 0, 0},
	{event.KSymF8, shift, "\x1b[19;2~", 0, 0},
	{event.KSymF8, ctrl, "\x1b[19;5~", 0, 0},
	{event.KSymF9, none, "\x1b[20~", 0, 0},
	{event.KSymF9, shift, "\x1b[20;2~", 0, 0},
	{event.KSymF9, ctrl, "\x1b[20;5~", 0, 0},
	{event.KSymF10, none, "\x1b[21~", 0, 0},
	{event.KSymF10, shift, "\x1b[21;2~", 0, 0},
	{event.KSymF10, ctrl, "\x1b[21;5~", 0, 0},
	{event.KSymF11, none, "\x1b[23~", 0, 0},
	{event.KSymF11, shift, "\x1b[23;2~", 0, 0},
	{event.KSymF11, ctrl, "\x1b[23;5~", 0, 0},
	{event.KSymF12, none, "\x1b[24~", 0, 0},
	{event.KSymF12, shift, "\x1b[24;2~", 0, 0},
	{event.KSymF12, ctrl, "\x1b[24;5~", 0, 0},
}
