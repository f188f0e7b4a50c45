package event

import "fmt"

// Keysym codes as defined in /usr/include/X11/keysymdef.h. Latin-1 keysyms keep their
// character value.
type KeySym uint32

const (
	KSymNone KeySym = 0

	KSymSpace KeySym = 0x20

	KSymBackspace  KeySym = 0xff08
	KSymTab        KeySym = 0xff09
	KSymLinefeed   KeySym = 0xff0a
	KSymClear      KeySym = 0xff0b
	KSymReturn     KeySym = 0xff0d
	KSymPause      KeySym = 0xff13
	KSymScrollLock KeySym = 0xff14
	KSymSysReq     KeySym = 0xff15
	KSymEscape     KeySym = 0xff1b
	KSymMultiKey   KeySym = 0xff20

	KSymHome     KeySym = 0xff50
	KSymLeft     KeySym = 0xff51
	KSymUp       KeySym = 0xff52
	KSymRight    KeySym = 0xff53
	KSymDown     KeySym = 0xff54
	KSymPageUp   KeySym = 0xff55 // Prior
	KSymPageDown KeySym = 0xff56 // Next
	KSymEnd      KeySym = 0xff57
	KSymBegin    KeySym = 0xff58

	KSymSelect     KeySym = 0xff60
	KSymPrint      KeySym = 0xff61
	KSymInsert     KeySym = 0xff63
	KSymMenu       KeySym = 0xff67
	KSymBreak      KeySym = 0xff6b
	KSymModeSwitch KeySym = 0xff7e
	KSymNumLock    KeySym = 0xff7f

	KSymKeypadSpace     KeySym = 0xff80
	KSymKeypadTab       KeySym = 0xff89
	KSymKeypadEnter     KeySym = 0xff8d
	KSymKeypadF1        KeySym = 0xff91
	KSymKeypadF2        KeySym = 0xff92
	KSymKeypadF3        KeySym = 0xff93
	KSymKeypadF4        KeySym = 0xff94
	KSymKeypadHome      KeySym = 0xff95
	KSymKeypadLeft      KeySym = 0xff96
	KSymKeypadUp        KeySym = 0xff97
	KSymKeypadRight     KeySym = 0xff98
	KSymKeypadDown      KeySym = 0xff99
	KSymKeypadPageUp    KeySym = 0xff9a
	KSymKeypadPageDown  KeySym = 0xff9b
	KSymKeypadEnd       KeySym = 0xff9c
	KSymKeypadBegin     KeySym = 0xff9d
	KSymKeypadInsert    KeySym = 0xff9e
	KSymKeypadDelete    KeySym = 0xff9f
	KSymKeypadMultiply  KeySym = 0xffaa
	KSymKeypadAdd       KeySym = 0xffab
	KSymKeypadSeparator KeySym = 0xffac
	KSymKeypadSubtract  KeySym = 0xffad
	KSymKeypadDecimal   KeySym = 0xffae
	KSymKeypadDivide    KeySym = 0xffaf
	KSymKeypad0         KeySym = 0xffb0
	KSymKeypad9         KeySym = 0xffb9
	KSymKeypadEqual     KeySym = 0xffbd

	KSymF1  KeySym = 0xffbe
	KSymF2  KeySym = 0xffbf
	KSymF3  KeySym = 0xffc0
	KSymF4  KeySym = 0xffc1
	KSymF5  KeySym = 0xffc2
	KSymF6  KeySym = 0xffc3
	KSymF7  KeySym = 0xffc4
	KSymF8  KeySym = 0xffc5
	KSymF9  KeySym = 0xffc6
	KSymF10 KeySym = 0xffc7
	KSymF11 KeySym = 0xffc8
	KSymF12 KeySym = 0xffc9
	KSymF35 KeySym = 0xffe0

	KSymShiftL    KeySym = 0xffe1
	KSymShiftR    KeySym = 0xffe2
	KSymControlL  KeySym = 0xffe3
	KSymControlR  KeySym = 0xffe4
	KSymCapsLock  KeySym = 0xffe5
	KSymShiftLock KeySym = 0xffe6
	KSymMetaL     KeySym = 0xffe7
	KSymMetaR     KeySym = 0xffe8
	KSymAltL      KeySym = 0xffe9
	KSymAltR      KeySym = 0xffea
	KSymSuperL    KeySym = 0xffeb
	KSymSuperR    KeySym = 0xffec
	KSymHyperL    KeySym = 0xffed
	KSymHyperR    KeySym = 0xffee

	KSymDelete KeySym = 0xffff

	KSymISOLevel3Shift KeySym = 0xfe03
	KSymISOLevel5Shift KeySym = 0xfe11
	KSymISOLeftTab     KeySym = 0xfe20

	// dead keys
	KSymDeadGrave       KeySym = 0xfe50
	KSymDeadAcute       KeySym = 0xfe51
	KSymDeadCircumflex  KeySym = 0xfe52
	KSymDeadTilde       KeySym = 0xfe53
	KSymDeadMacron      KeySym = 0xfe54
	KSymDeadBreve       KeySym = 0xfe55
	KSymDeadAboveDot    KeySym = 0xfe56
	KSymDeadDiaeresis   KeySym = 0xfe57
	KSymDeadAboveRing   KeySym = 0xfe58
	KSymDeadDoubleAcute KeySym = 0xfe59
	KSymDeadCaron       KeySym = 0xfe5a
	KSymDeadCedilla     KeySym = 0xfe5b
	KSymDeadOgonek      KeySym = 0xfe5c

	// unicode keysyms are 0x01000000 + codepoint
	kSymUnicodeBase KeySym = 0x01000000
)

//----------

func KeySymFromRune(ru rune) KeySym {
	if (ru >= 0x20 && ru <= 0x7e) || (ru >= 0xa0 && ru <= 0xff) {
		return KeySym(ru)
	}
	return kSymUnicodeBase + KeySym(ru)
}

// Character produced by the keysym, or 0 if the keysym has none.
func (ks KeySym) Rune() rune {
	// latin-1
	if (ks >= 0x20 && ks <= 0x7e) || (ks >= 0xa0 && ks <= 0xff) {
		return rune(ks)
	}
	// legacy 8-bit sets
	if ks >= 0x100 && ks <= 0x20ff {
		return legacyRune(ks)
	}
	// unicode
	if ks >= kSymUnicodeBase+0x100 && ks <= kSymUnicodeBase+0x10ffff {
		return rune(ks - kSymUnicodeBase)
	}
	// function keys that xlib maps to an ascii control/keypad char
	if ks>>8 == 0xff {
		switch {
		case ks >= KSymBackspace && ks <= KSymClear,
			ks == KSymReturn,
			ks == KSymEscape,
			ks == KSymKeypadSpace,
			ks == KSymKeypadTab,
			ks == KSymKeypadEnter,
			ks >= KSymKeypadMultiply && ks <= KSymKeypad9,
			ks == KSymKeypadEqual,
			ks == KSymDelete:
			return rune(ks & 0x7f)
		}
	}
	return 0
}

func (ks KeySym) IsKeypad() bool {
	return (0xff80 <= ks && ks <= 0xffbd) ||
		(0x11000000 <= ks && ks <= 0x1100ffff)
}

func (ks KeySym) IsModifier() bool {
	return (ks >= KSymShiftL && ks <= KSymHyperR) ||
		(ks >= KSymISOLevel3Shift && ks <= 0xfe13) ||
		ks == KSymModeSwitch || ks == KSymNumLock
}

func (ks KeySym) IsDead() bool {
	return ks >= KSymDeadGrave && ks <= 0xfe8f
}

func (ks KeySym) String() string {
	if name, ok := kSymNames[ks]; ok {
		return name
	}
	if ru := ks.Rune(); ru > 0x20 && ks < 0x100 {
		return string(ru)
	}
	if ks >= kSymUnicodeBase {
		return fmt.Sprintf("U%04X", uint32(ks-kSymUnicodeBase))
	}
	return fmt.Sprintf("0x%x", uint32(ks))
}

var kSymNames = map[KeySym]string{
	KSymNone:            "NoSymbol",
	KSymSpace:           "space",
	KSymBackspace:       "BackSpace",
	KSymTab:             "Tab",
	KSymReturn:          "Return",
	KSymPause:           "Pause",
	KSymEscape:          "Escape",
	KSymHome:            "Home",
	KSymLeft:            "Left",
	KSymUp:              "Up",
	KSymRight:           "Right",
	KSymDown:            "Down",
	KSymPageUp:          "Prior",
	KSymPageDown:        "Next",
	KSymEnd:             "End",
	KSymPrint:           "Print",
	KSymInsert:          "Insert",
	KSymMenu:            "Menu",
	KSymBreak:           "Break",
	KSymNumLock:         "Num_Lock",
	KSymKeypadEnter:     "KP_Enter",
	KSymKeypadHome:      "KP_Home",
	KSymKeypadLeft:      "KP_Left",
	KSymKeypadUp:        "KP_Up",
	KSymKeypadRight:     "KP_Right",
	KSymKeypadDown:      "KP_Down",
	KSymKeypadPageUp:    "KP_Prior",
	KSymKeypadPageDown:  "KP_Next",
	KSymKeypadEnd:       "KP_End",
	KSymKeypadBegin:     "KP_Begin",
	KSymKeypadInsert:    "KP_Insert",
	KSymKeypadDelete:    "KP_Delete",
	KSymKeypadMultiply:  "KP_Multiply",
	KSymKeypadAdd:       "KP_Add",
	KSymKeypadSubtract:  "KP_Subtract",
	KSymKeypadDecimal:   "KP_Decimal",
	KSymKeypadDivide:    "KP_Divide",
	KSymF1:              "F1",
	KSymF2:              "F2",
	KSymF3:              "F3",
	KSymF4:              "F4",
	KSymF5:              "F5",
	KSymF6:              "F6",
	KSymF7:              "F7",
	KSymF8:              "F8",
	KSymF9:              "F9",
	KSymF10:             "F10",
	KSymF11:             "F11",
	KSymF12:             "F12",
	KSymShiftL:          "Shift_L",
	KSymShiftR:          "Shift_R",
	KSymControlL:        "Control_L",
	KSymControlR:        "Control_R",
	KSymCapsLock:        "Caps_Lock",
	KSymAltL:            "Alt_L",
	KSymAltR:            "Alt_R",
	KSymSuperL:          "Super_L",
	KSymSuperR:          "Super_R",
	KSymDelete:          "Delete",
	KSymISOLeftTab:      "ISO_Left_Tab",
	KSymISOLevel3Shift:  "ISO_Level3_Shift",
	KSymDeadGrave:       "dead_grave",
	KSymDeadAcute:       "dead_acute",
	KSymDeadCircumflex:  "dead_circumflex",
	KSymDeadTilde:       "dead_tilde",
	KSymDeadDiaeresis:   "dead_diaeresis",
	KSymDeadCedilla:     "dead_cedilla",
	KSymDeadCaron:       "dead_caron",
	KSymDeadAboveRing:   "dead_abovering",
	KSymDeadDoubleAcute: "dead_doubleacute",
}
