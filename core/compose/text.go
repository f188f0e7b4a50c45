package compose

import (
	"unicode/utf8"

	"github.com/jmigpin/xst/util/uiutil/event"
)

// Text produced by a keysym, following the xlib XLookupString rules, encoded as utf8.
// Returns the number of bytes written to b.
func keySymText(ks event.KeySym, mods event.KeyModifiers, b []byte) int {
	ru := ks.Rune()
	if ru == 0 {
		return 0
	}
	if mods.HasAny(event.ModCtrl) && ru < utf8.RuneSelf {
		ru = controlRune(ru)
	}
	if len(b) < utf8.RuneLen(ru) {
		return 0
	}
	return utf8.EncodeRune(b, ru)
}

func controlRune(c rune) rune {
	switch {
	case (c >= '@' && c < 0o177) || c == ' ':
		return c & 0x1f
	case c == '2':
		return 0
	case c >= '3' && c <= '7':
		return c - ('3' - 0x1b)
	case c == '8':
		return 0o177
	case c == '/':
		return '_' & 0x1f
	}
	return c
}
