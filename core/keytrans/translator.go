// Translates key presses into the bytes sent to the terminal.
package keytrans

import (
	"io"

	"github.com/jmigpin/xst/core/compose"
	"github.com/jmigpin/xst/core/fnkey"
	"github.com/jmigpin/xst/core/shortcut"
	"github.com/jmigpin/xst/core/termmode"
	"github.com/jmigpin/xst/util/uiutil/event"
	"github.com/pkg/errors"
)

// Receives the translated bytes (the terminal input stream).
type Writer = io.Writer

type Outcome int

const (
	Discarded  Outcome = iota // keyboard locked
	Dispatched                // shortcut ran
	Emitted                   // bytes produced (possibly none)
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Discarded:
		return "discarded"
	case Dispatched:
		return "dispatched"
	case Emitted:
		return "emitted"
	case Failed:
		return "failed"
	}
	return "?"
}

type Result struct {
	Outcome  Outcome
	KeySym   event.KeySym
	Bytes    []byte
	Shortcut *shortcut.Shortcut
}

//----------

type Translator struct {
	Lookup    compose.Lookup
	Shortcuts *shortcut.Table
	FnKeys    *fnkey.Table // optional
	Meta      *MetaEncoder
	W         Writer
}

func NewTranslator(l compose.Lookup, scs *shortcut.Table, fks *fnkey.Table, me *MetaEncoder, w Writer) *Translator {
	return &Translator{Lookup: l, Shortcuts: scs, FnKeys: fks, Meta: me, W: w}
}

// Translates and writes the result. Shortcuts run synchronously.
func (tr *Translator) KeyPress(ev *event.KeyPress, modes termmode.Mode) (*Result, error) {
	res, err := tr.Translate(ev, modes)
	if err != nil {
		return res, err
	}
	if res.Outcome != Emitted || len(res.Bytes) == 0 || tr.W == nil {
		return res, nil
	}
	if _, err := tr.W.Write(res.Bytes); err != nil {
		return res, errors.Wrap(err, "tty write")
	}
	return res, nil
}

func (tr *Translator) Translate(ev *event.KeyPress, modes termmode.Mode) (*Result, error) {
	if ev == nil {
		panic("keytrans: nil key event")
	}

	if modes.IsLocked() {
		return &Result{Outcome: Discarded}, nil
	}

	ks := tr.Lookup.KeySym(ev)

	if sc := tr.Shortcuts.Match(ev.Mods, ks); sc != nil {
		sc.Run()
		return &Result{Outcome: Dispatched, KeySym: ks, Shortcut: sc}, nil
	}

	if s, ok := tr.FnKeys.Lookup(ks, ev.Mods, modes); ok {
		return &Result{Outcome: Emitted, KeySym: ks, Bytes: []byte(s)}, nil
	}

	var buf compose.Buffer
	ks2, err := tr.Lookup.Compose(ev, &buf)
	if err != nil {
		return &Result{Outcome: Failed, KeySym: ks}, err
	}
	if ks2 != event.KSymNone {
		ks = ks2
	}

	meta := tr.Meta
	if meta == nil {
		meta = &MetaEncoder{}
	}
	if err := meta.Encode(&buf, ev.AltHeld(), modes.EightBit()); err != nil {
		return &Result{Outcome: Failed, KeySym: ks}, err
	}

	b := append([]byte{}, buf.Bytes()...)
	return &Result{Outcome: Emitted, KeySym: ks, Bytes: b}, nil
}
