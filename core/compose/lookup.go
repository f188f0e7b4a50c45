// Turns key presses into keysyms and composed text.
package compose

import (
	"github.com/jmigpin/xst/util/uiutil/event"
)

// Keycode to keysym resolution (the keyboard mapping).
type KeyMapper interface {
	KeySym(keycode uint8, mods event.KeyModifiers) event.KeySym
}

type Lookup interface {
	// Resolves the keysym without composing (no input context state changes).
	KeySym(ev *event.KeyPress) event.KeySym
	// Writes the composed text into buf. Zero bytes is a valid result.
	Compose(ev *event.KeyPress, buf *Buffer) (event.KeySym, error)
}

// Uses the input context if there is one, otherwise plain symbol lookup.
func New(ic InputContext, km KeyMapper) Lookup {
	if ic != nil {
		return &ContextLookup{IC: ic, KM: km}
	}
	return &SymbolLookup{KM: km}
}

//----------

type Status int

const (
	StatusNothing Status = iota
	StatusChars
	StatusKeySym
	StatusBoth
	StatusBufferOverflow
)

func (st Status) String() string {
	switch st {
	case StatusNothing:
		return "nothing"
	case StatusChars:
		return "chars"
	case StatusKeySym:
		return "keysym"
	case StatusBoth:
		return "both"
	case StatusBufferOverflow:
		return "overflow"
	}
	return "?"
}

// Locale aware composition context (input method).
type InputContext interface {
	// Composes ev into b. Returns the number of bytes the text needs, which exceeds len(b)
	// on overflow.
	LookupString(ev *event.KeyPress, b []byte) (int, event.KeySym, Status)
}

//----------

type ContextLookup struct {
	IC InputContext
	KM KeyMapper
}

func (cl *ContextLookup) KeySym(ev *event.KeyPress) event.KeySym {
	return cl.KM.KeySym(ev.Keycode, ev.Mods)
}

func (cl *ContextLookup) Compose(ev *event.KeyPress, buf *Buffer) (event.KeySym, error) {
	buf.Reset()
	n, ks, st := cl.IC.LookupString(ev, buf.space())
	if st == StatusBufferOverflow || n >= buf.Cap() {
		return event.KSymNone, ErrOverflow
	}
	switch st {
	case StatusNothing:
		return event.KSymNone, nil
	case StatusChars:
		ks = event.KSymNone
	case StatusKeySym:
		n = 0
	}
	if n < 0 {
		n = 0
	}
	buf.setLen(n)
	return ks, nil
}

//----------

type SymbolLookup struct {
	KM KeyMapper
}

func (sl *SymbolLookup) KeySym(ev *event.KeyPress) event.KeySym {
	return sl.KM.KeySym(ev.Keycode, ev.Mods)
}

func (sl *SymbolLookup) Compose(ev *event.KeyPress, buf *Buffer) (event.KeySym, error) {
	buf.Reset()
	ks := sl.KeySym(ev)
	n := keySymText(ks, ev.Mods, buf.space())
	buf.setLen(n)
	return ks, nil
}
