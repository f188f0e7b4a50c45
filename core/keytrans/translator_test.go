package keytrans

import (
	"bytes"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/xst/core/compose"
	"github.com/jmigpin/xst/core/fnkey"
	"github.com/jmigpin/xst/core/shortcut"
	"github.com/jmigpin/xst/core/termmode"
	"github.com/jmigpin/xst/util/uiutil/event"
	"github.com/pkg/errors"
)

func TestTranslateLocked(t *testing.T) {
	ran := 0
	scs := shortcut.NewTable(&shortcut.Shortcut{
		Mods: event.ModAny, KeySym: 'a', Func: func(shortcut.Arg) { ran++ },
	})
	km := &countMapper{}
	w := &bytes.Buffer{}
	tr := NewTranslator(compose.New(nil, km), scs, fnkey.DefaultTable(), nil, w)

	mods := []event.KeyModifiers{0, event.ModShift, event.ModCtrl, event.ModAlt}
	for _, kc := range []uint8{kcA, kcB, kcLeft, kcShiftL, kcUnmapped} {
		for _, m := range mods {
			res, err := tr.KeyPress(&event.KeyPress{Keycode: kc, Mods: m}, termmode.Default|termmode.KbdLock)
			if err != nil {
				t.Fatal(err)
			}
			if res.Outcome != Discarded || len(res.Bytes) != 0 {
				t.Fatal(spew.Sdump(res))
			}
		}
	}
	if ran != 0 || km.n != 0 || w.Len() != 0 {
		t.Fatalf("ran=%v lookups=%v written=%q", ran, km.n, w.Bytes())
	}
}

func TestTranslateShortcutFirstMatch(t *testing.T) {
	ran := []int32{}
	fn := func(a shortcut.Arg) { ran = append(ran, a.Int()) }
	scs := shortcut.NewTable(
		&shortcut.Shortcut{Mods: event.ModCtrl, KeySym: 'b', Func: fn, Arg: shortcut.IntArg(0)},
		&shortcut.Shortcut{Mods: event.ModCtrl, KeySym: 'a', Func: fn, Arg: shortcut.IntArg(1)},
		&shortcut.Shortcut{Mods: event.ModCtrl, KeySym: 'a', Func: fn, Arg: shortcut.IntArg(2)},
		&shortcut.Shortcut{Mods: event.ModAny, KeySym: 'a', Func: fn, Arg: shortcut.IntArg(3)},
	)
	w := &bytes.Buffer{}
	tr := NewTranslator(compose.New(nil, testMapper), scs, nil, nil, w)

	res, err := tr.KeyPress(&event.KeyPress{Keycode: kcA, Mods: event.ModCtrl}, termmode.Default)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != Dispatched || res.Shortcut.Arg.Int() != 1 || len(res.Bytes) != 0 {
		t.Fatal(spew.Sdump(res))
	}
	if len(ran) != 1 || ran[0] != 1 || w.Len() != 0 {
		t.Fatal(ran, w.Bytes())
	}
}

func TestTranslateShortcutBeforeContext(t *testing.T) {
	ic := &fakeContext{n: 3, st: compose.StatusChars}
	scs := shortcut.NewTable(&shortcut.Shortcut{Mods: event.ModNone, KeySym: 'a'})
	tr := NewTranslator(compose.New(ic, testMapper), scs, nil, nil, nil)
	res, err := tr.Translate(&event.KeyPress{Keycode: kcA}, termmode.Default)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != Dispatched || ic.calls != 0 {
		t.Fatal(res.Outcome, ic.calls)
	}
}

func TestTranslateMeta(t *testing.T) {
	type pair struct {
		kc       uint8
		mods     event.KeyModifiers
		eightBit bool
		fold     FoldMode
		out      []byte
	}
	alt := event.ModAlt
	altShift := event.ModAlt | event.ModShift
	pairs := []pair{
		{kcA, altShift, true, FoldByte, []byte{0xc1}},
		{kcA, altShift, false, FoldByte, []byte{0x1b, 0x41}},
		{kcA, event.ModShift, true, FoldByte, []byte{0x41}},
		{kcA, event.ModShift, false, FoldByte, []byte{0x41}},
		{kcA, altShift, true, FoldUTF8, []byte{0xc3, 0x81}},
		{kcA, event.ModMeta | event.ModShift, false, FoldByte, []byte{0x1b, 0x41}},
		// ctrl+alt+a
		{kcA, alt | event.ModCtrl, false, FoldByte, []byte{0x1b, 0x01}},
		{kcA, alt | event.ModCtrl, true, FoldByte, []byte{0x81}},
		// multibyte compositions pass unchanged
		{kcEAcute, alt, true, FoldByte, []byte("é")},
		{kcEAcute, alt, false, FoldByte, []byte("é")},
		// del is not below 0o177
		{kcDelete, alt, true, FoldByte, []byte{0x7f}},
		{kcDelete, alt, false, FoldByte, []byte{0x1b, 0x7f}},
		// nothing to encode
		{kcShiftL, alt, false, FoldByte, []byte{}},
	}
	for i, p := range pairs {
		modes := termmode.Default.SetTo(termmode.EightBit, p.eightBit)
		me := &MetaEncoder{Fold: p.fold}
		w := &bytes.Buffer{}
		tr := NewTranslator(compose.New(nil, testMapper), nil, nil, me, w)
		res, err := tr.KeyPress(&event.KeyPress{Keycode: p.kc, Mods: p.mods}, modes)
		if err != nil {
			t.Fatalf("entry %v: %v", i, err)
		}
		if res.Outcome != Emitted || !bytes.Equal(res.Bytes, p.out) || !bytes.Equal(w.Bytes(), p.out) {
			t.Fatalf("entry %v: got %q (written %q), expected %q", i, res.Bytes, w.Bytes(), p.out)
		}
	}
}

func TestTranslateInvalidEncoding(t *testing.T) {
	me, err := NewMetaEncoder(FoldByte, "ISO-8859-7")
	if err != nil {
		t.Fatal(err)
	}
	w := &bytes.Buffer{}
	tr := NewTranslator(compose.New(nil, testMapper), nil, nil, me, w)
	modes := termmode.Default | termmode.EightBit

	// 'R'|0x80 = 0xd2, unassigned in iso-8859-7
	res, err := tr.KeyPress(&event.KeyPress{Keycode: kcR, Mods: event.ModAlt | event.ModShift}, modes)
	if errors.Cause(err) != ErrInvalidEncoding {
		t.Fatal(err)
	}
	if res.Outcome != Failed || len(res.Bytes) != 0 || w.Len() != 0 {
		t.Fatal(spew.Sdump(res), w.Bytes())
	}

	// next event is not affected
	res, err = tr.KeyPress(&event.KeyPress{Keycode: kcA, Mods: event.ModAlt}, modes)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(res.Bytes, []byte{0xe1}) {
		t.Fatalf("%q", res.Bytes)
	}
}

func TestTranslateOverflow(t *testing.T) {
	ic := &fakeContext{n: compose.BufferCap * 2, st: compose.StatusBufferOverflow}
	w := &bytes.Buffer{}
	tr := NewTranslator(compose.New(ic, testMapper), nil, nil, nil, w)
	res, err := tr.KeyPress(&event.KeyPress{Keycode: kcA, Mods: event.ModAlt}, termmode.Default)
	if errors.Cause(err) != compose.ErrOverflow {
		t.Fatal(err)
	}
	if res.Outcome != Failed || len(res.Bytes) != 0 || w.Len() != 0 {
		t.Fatal(spew.Sdump(res), w.Bytes())
	}

	// recoverable: next event goes through
	ic.n, ic.st = 1, compose.StatusChars
	res, err = tr.KeyPress(&event.KeyPress{Keycode: kcA}, termmode.Default)
	if err != nil || w.String() != "z" {
		t.Fatal(err, w.String())
	}
}

func TestTranslateEmpty(t *testing.T) {
	w := &errWriter{}
	tr := NewTranslator(compose.New(nil, testMapper), nil, nil, nil, w)
	for _, kc := range []uint8{kcShiftL, kcUnmapped, kcLeft} {
		res, err := tr.KeyPress(&event.KeyPress{Keycode: kc}, termmode.Default)
		if err != nil {
			t.Fatal(err)
		}
		if res.Outcome != Emitted || len(res.Bytes) != 0 {
			t.Fatal(spew.Sdump(res))
		}
	}
	if w.calls != 0 {
		t.Fatal("empty output should not be written")
	}
}

func TestTranslateFnKeys(t *testing.T) {
	w := &bytes.Buffer{}
	tr := NewTranslator(compose.New(nil, testMapper), nil, fnkey.DefaultTable(), nil, w)
	if _, err := tr.KeyPress(&event.KeyPress{Keycode: kcLeft}, termmode.Default); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.KeyPress(&event.KeyPress{Keycode: kcLeft}, termmode.Default|termmode.AppCursor); err != nil {
		t.Fatal(err)
	}
	// not in the table: composed normally
	if _, err := tr.KeyPress(&event.KeyPress{Keycode: kcA, Mods: event.ModAlt}, termmode.Default); err != nil {
		t.Fatal(err)
	}
	if s := w.String(); s != "\x1b[D\x1bOD\x1ba" {
		t.Fatalf("%q", s)
	}
}

func TestTranslateIdempotent(t *testing.T) {
	scs := shortcut.NewTable(&shortcut.Shortcut{Mods: event.ModCtrl, KeySym: 'b'})
	tr := NewTranslator(compose.New(nil, testMapper), scs, fnkey.DefaultTable(), nil, nil)
	evs := []*event.KeyPress{
		{Keycode: kcA, Mods: event.ModAlt},
		{Keycode: kcB, Mods: event.ModCtrl},
		{Keycode: kcEAcute},
		{Keycode: kcUp, Mods: event.ModShift},
		{Keycode: kcShiftL},
	}
	for _, modes := range []termmode.Mode{termmode.Default, termmode.Default | termmode.EightBit} {
		for i, ev := range evs {
			r1, err1 := tr.Translate(ev, modes)
			r2, err2 := tr.Translate(ev, modes)
			if err1 != err2 || r1.Outcome != r2.Outcome || r1.KeySym != r2.KeySym ||
				!bytes.Equal(r1.Bytes, r2.Bytes) || r1.Shortcut != r2.Shortcut {
				t.Fatalf("entry %v:\n%v\n%v", i, spew.Sdump(r1), spew.Sdump(r2))
			}
		}
	}
}

func TestTranslateNilEvent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	tr := NewTranslator(compose.New(nil, testMapper), nil, nil, nil, nil)
	_, _ = tr.Translate(nil, termmode.Default)
}

func TestTranslateWriteError(t *testing.T) {
	w := &errWriter{err: errors.New("closed")}
	tr := NewTranslator(compose.New(nil, testMapper), nil, nil, nil, w)
	_, err := tr.KeyPress(&event.KeyPress{Keycode: kcA}, termmode.Default)
	if err == nil || !strings.Contains(err.Error(), "tty write") || errors.Cause(err) != w.err {
		t.Fatal(err)
	}
}

//----------

const (
	kcUnmapped = 1 + iota
	kcA
	kcB
	kcR
	kcEAcute
	kcDelete
	kcShiftL
	kcLeft
	kcUp
)

type fakeMapper map[uint8][2]event.KeySym

func (fm fakeMapper) KeySym(kc uint8, mods event.KeyModifiers) event.KeySym {
	kss, ok := fm[kc]
	if !ok {
		return event.KSymNone
	}
	if mods.HasAny(event.ModShift) {
		return kss[1]
	}
	return kss[0]
}

var testMapper = fakeMapper{
	kcA:      {'a', 'A'},
	kcB:      {'b', 'B'},
	kcR:      {'r', 'R'},
	kcEAcute: {0xe9, 0xc9},
	kcDelete: {event.KSymDelete, event.KSymDelete},
	kcShiftL: {event.KSymShiftL, event.KSymShiftL},
	kcLeft:   {event.KSymLeft, event.KSymLeft},
	kcUp:     {event.KSymUp, event.KSymUp},
}

type countMapper struct{ n int }

func (cm *countMapper) KeySym(kc uint8, mods event.KeyModifiers) event.KeySym {
	cm.n++
	return testMapper.KeySym(kc, mods)
}

type fakeContext struct {
	n     int
	st    compose.Status
	calls int
}

func (fc *fakeContext) LookupString(ev *event.KeyPress, b []byte) (int, event.KeySym, compose.Status) {
	fc.calls++
	for i := 0; i < fc.n && i < len(b); i++ {
		b[i] = 'z'
	}
	return fc.n, event.KSymNone, fc.st
}

type errWriter struct {
	err   error
	calls int
}

func (w *errWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.err != nil {
		return 0, w.err
	}
	return len(p), nil
}
