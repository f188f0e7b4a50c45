package compose

import (
	"unicode/utf8"

	"github.com/jmigpin/xst/util/uiutil/event"
	"golang.org/x/text/unicode/norm"
)

// Input context that composes dead keys with the following key, and hands out text
// committed by an external input method.
type DeadKeyContext struct {
	km      KeyMapper
	latch   event.KeySym
	commits []string
}

func NewDeadKeyContext(km KeyMapper) *DeadKeyContext {
	return &DeadKeyContext{km: km}
}

// Queues text to be returned by the next lookup.
func (dc *DeadKeyContext) Commit(s string) {
	dc.commits = append(dc.commits, s)
}

func (dc *DeadKeyContext) Pending() bool {
	return dc.latch != event.KSymNone
}

// Drops a latched dead key. Pending commits are kept.
func (dc *DeadKeyContext) Reset() {
	dc.latch = event.KSymNone
}

//----------

func (dc *DeadKeyContext) LookupString(ev *event.KeyPress, b []byte) (int, event.KeySym, Status) {
	if len(dc.commits) > 0 {
		s := dc.commits[0]
		dc.commits = dc.commits[1:]
		return dc.write(s, event.KSymNone, b)
	}

	ks := dc.km.KeySym(ev.Keycode, ev.Mods)

	// modifiers don't interrupt a latched dead key
	if ks.IsModifier() {
		return 0, ks, StatusKeySym
	}

	if d, ok := deadKeys[ks]; ok {
		if dc.latch == ks {
			// same dead key twice: the diacritic itself
			dc.latch = event.KSymNone
			return dc.write(string(d.spacing), ks, b)
		}
		dc.latch = ks
		return 0, ks, StatusKeySym
	}

	if dc.latch != event.KSymNone && !ev.Mods.HasAny(event.ModCtrl) {
		d := deadKeys[dc.latch]
		dc.latch = event.KSymNone

		// allow space to use the diacritic rune
		if ks == event.KSymSpace {
			return dc.write(string(d.spacing), ks, b)
		}
		if ru := ks.Rune(); ru >= ' ' && ru != 0o177 {
			s := norm.NFC.String(string([]rune{ru, d.mark}))
			if utf8.RuneCountInString(s) != 1 {
				// no precomposed form, keep the base rune
				s = string(ru)
			}
			return dc.write(s, ks, b)
		}
	}
	dc.latch = event.KSymNone

	var tmp [utf8.UTFMax]byte
	n := keySymText(ks, ev.Mods, tmp[:])
	return dc.write(string(tmp[:n]), ks, b)
}

func (dc *DeadKeyContext) write(s string, ks event.KeySym, b []byte) (int, event.KeySym, Status) {
	if len(s) > len(b) {
		return len(s), event.KSymNone, StatusBufferOverflow
	}
	n := copy(b, s)
	switch {
	case n > 0 && ks != event.KSymNone:
		return n, ks, StatusBoth
	case n > 0:
		return n, ks, StatusChars
	case ks != event.KSymNone:
		return 0, ks, StatusKeySym
	}
	return 0, ks, StatusNothing
}

//----------

type deadKey struct {
	mark    rune // combining
	spacing rune
}

var deadKeys = map[event.KeySym]deadKey{
	event.KSymDeadGrave:       {'\u0300', '`'},
	event.KSymDeadAcute:       {'\u0301', '´'},
	event.KSymDeadCircumflex:  {'\u0302', '^'},
	event.KSymDeadTilde:       {'\u0303', '~'},
	event.KSymDeadMacron:      {'\u0304', '¯'},
	event.KSymDeadBreve:       {'\u0306', '˘'},
	event.KSymDeadAboveDot:    {'\u0307', '˙'},
	event.KSymDeadDiaeresis:   {'\u0308', '¨'},
	event.KSymDeadAboveRing:   {'\u030a', '˚'},
	event.KSymDeadDoubleAcute: {'\u030b', '˝'},
	event.KSymDeadCaron:       {'\u030c', 'ˇ'},
	event.KSymDeadCedilla:     {'\u0327', '¸'},
	event.KSymDeadOgonek:      {'\u0328', '˛'},
}
