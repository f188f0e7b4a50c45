// Escape strings for function, cursor and keypad keys.
package fnkey

import (
	"github.com/jmigpin/xst/core/termmode"
	"github.com/jmigpin/xst/util/uiutil/event"
)

// AppKey: 0 any; >0 only in application keypad mode; <0 only outside of it; 2 also requires
// numlock to be off. AppCursor: 0 any; >0 only in application cursor mode; <0 only
// outside of it.
type Key struct {
	KeySym    event.KeySym
	Mods      event.KeyModifiers
	Str       string
	AppKey    int8
	AppCursor int8
}

func (k *Key) matches(ks event.KeySym, mods event.KeyModifiers, m termmode.Mode) bool {
	if k.KeySym != ks || !mods.Matches(k.Mods) {
		return false
	}
	if m.Has(termmode.AppKeypad) {
		if k.AppKey < 0 {
			return false
		}
	} else if k.AppKey > 0 {
		return false
	}
	if m.Has(termmode.NumLock) && k.AppKey == 2 {
		return false
	}
	if m.Has(termmode.AppCursor) {
		if k.AppCursor < 0 {
			return false
		}
	} else if k.AppCursor > 0 {
		return false
	}
	return true
}

//----------

type Table struct {
	keys []Key
	// keysyms below 0xfd00 that are also looked up
	mapped map[event.KeySym]bool
}

func NewTable(keys []Key, mapped ...event.KeySym) *Table {
	t := &Table{keys: keys, mapped: map[event.KeySym]bool{}}
	for _, ks := range mapped {
		t.mapped[ks] = true
	}
	return t
}

// First key that matches, in table order.
func (t *Table) Lookup(ks event.KeySym, mods event.KeyModifiers, m termmode.Mode) (string, bool) {
	if t == nil {
		return "", false
	}
	if ks&0xffff < 0xfd00 && !t.mapped[ks] {
		return "", false
	}
	for i := range t.keys {
		k := &t.keys[i]
		if k.matches(ks, mods, m) {
			return k.Str, true
		}
	}
	return "", false
}

func (t *Table) Keys() []Key {
	if t == nil {
		return nil
	}
	return append([]Key(nil), t.keys...)
}
