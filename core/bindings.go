package core

import (
	"github.com/jmigpin/xst/core/shortcut"
	"github.com/jmigpin/xst/core/termmode"
	"github.com/jmigpin/xst/util/uiutil/event"
)

const termMod = event.ModCtrl | event.ModShift

func (s *Session) defaultShortcuts() *shortcut.Table {
	return shortcut.NewTable(
		&shortcut.Shortcut{Mods: event.ModAny, KeySym: event.KSymBreak, Name: "sendbreak", Func: s.sendBreak},
		&shortcut.Shortcut{Mods: termMod, KeySym: event.KSymNumLock, Name: "numlock", Func: s.toggleMode, Arg: shortcut.UIntArg(uint32(termmode.NumLock))},
		&shortcut.Shortcut{Mods: termMod, KeySym: 'E', Name: "eightbit", Func: s.toggleMode, Arg: shortcut.UIntArg(uint32(termmode.EightBit))},
		&shortcut.Shortcut{Mods: termMod, KeySym: 'Y', Name: "paste", Func: s.pasteText},
		&shortcut.Shortcut{Mods: event.ModShift, KeySym: event.KSymInsert, Name: "paste", Func: s.pasteText},
	)
}

//----------
// shortcut functions: run while translating, state changes are deferred

func (s *Session) toggleMode(a shortcut.Arg) {
	m := termmode.Mode(a.UInt())
	s.later(func() {
		s.modes = s.modes.Toggle(m)
		s.log.Debug().Stringer("modes", s.modes).Msg("toggle mode")
	})
}

func (s *Session) sendBreak(shortcut.Arg) {
	s.later(func() {
		if s.tty == nil {
			return
		}
		if err := s.tty.SendBreak(); err != nil {
			s.log.Warn().Err(err).Msg("send break")
		}
	})
}

func (s *Session) sendString(a shortcut.Arg) {
	str := a.Str()
	s.later(func() {
		s.write([]byte(str))
	})
}

func (s *Session) pasteText(shortcut.Arg) {
	s.later(func() {
		if s.paste == "" {
			return
		}
		str := s.paste
		if s.modes.Has(termmode.BrcktPaste) {
			str = "\x1b[200~" + str + "\x1b[201~"
		}
		s.write([]byte(str))
	})
}

//----------

// Adds a shortcut that sends str to the tty. Added shortcuts have lower priority than
// the defaults.
func (s *Session) AddSendString(mods event.KeyModifiers, ks event.KeySym, str string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tr.Shortcuts.Add(&shortcut.Shortcut{
		Mods: mods, KeySym: ks, Name: "sendstring", Func: s.sendString, Arg: shortcut.StrArg(str),
	})
}
