// Keyboard shortcuts: modifier set + keysym bound to a function.
package shortcut

import (
	"github.com/jmigpin/xst/util/uiutil/event"
)

type Func func(Arg)

type Shortcut struct {
	Mods   event.KeyModifiers // modifiers held to run the shortcut
	KeySym event.KeySym       // key pressed to run the shortcut
	Name   string
	Func   Func
	Arg    Arg
}

func (sc *Shortcut) Matches(mods event.KeyModifiers, ks event.KeySym) bool {
	return sc.KeySym == ks && mods.Matches(sc.Mods)
}

func (sc *Shortcut) Run() {
	if sc.Func != nil {
		sc.Func(sc.Arg)
	}
}

//----------

// Ordered shortcuts. Table order is priority order.
type Table struct {
	entries []*Shortcut
}

func NewTable(scs ...*Shortcut) *Table {
	t := &Table{}
	for _, sc := range scs {
		t.Add(sc)
	}
	return t
}

func (t *Table) Add(sc *Shortcut) {
	t.entries = append(t.entries, sc)
}

// First entry that matches, or nil.
func (t *Table) Match(mods event.KeyModifiers, ks event.KeySym) *Shortcut {
	if t == nil {
		return nil
	}
	for _, sc := range t.entries {
		if sc.Matches(mods, ks) {
			return sc
		}
	}
	return nil
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

func (t *Table) Entries() []*Shortcut {
	if t == nil {
		return nil
	}
	return append([]*Shortcut(nil), t.entries...)
}
