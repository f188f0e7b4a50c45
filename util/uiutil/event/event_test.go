package event

import "testing"

func TestKeyModifiersMatches(t *testing.T) {
	type pair struct {
		mods, mask KeyModifiers
		ok         bool
	}
	pairs := []pair{
		{0, ModNone, true},
		{ModCapsLock, ModNone, true},
		{ModNumLock | ModCapsLock, ModNone, true},
		{ModShift, ModNone, false},
		{ModShift | ModNumLock, ModShift, true},
		{ModShift | ModCtrl, ModShift, false},
		{ModShift | ModCtrl, ModCtrl | ModShift, true},
		{ModShift | ModCtrl | ModAlt, ModAny, true},
		{0, ModAny, true},
		{ModCtrl, ModCtrl | ModNumLock, true},
		{ModCtrl | ModShift | ModGroup2, ModCtrl | ModShift, true},
	}
	for i, p := range pairs {
		if p.mods.Matches(p.mask) != p.ok {
			t.Fatalf("entry %v: %v matches %v != %v", i, p.mods, p.mask, p.ok)
		}
	}
}

func TestKeyModifiersString(t *testing.T) {
	type pair struct {
		m KeyModifiers
		s string
	}
	pairs := []pair{
		{ModNone, "None"},
		{ModAny, "Any"},
		{ModShift | ModCtrl, "Shift+Ctrl"},
		{ModAlt | ModMeta | ModCapsLock, "Lock+Alt+Meta"},
	}
	for _, p := range pairs {
		if s := p.m.String(); s != p.s {
			t.Fatalf("%q != %q", s, p.s)
		}
	}
}

func TestKeyPressAltHeld(t *testing.T) {
	for _, m := range []KeyModifiers{ModAlt, ModMeta, ModAlt | ModShift} {
		if !(&KeyPress{Mods: m}).AltHeld() {
			t.Fatal(m)
		}
	}
	if (&KeyPress{Mods: ModCtrl | ModAltGr}).AltHeld() {
		t.Fatal("altgr is not alt")
	}
}

//----------

func TestKeySymRune(t *testing.T) {
	type pair struct {
		ks KeySym
		ru rune
	}
	pairs := []pair{
		{'a', 'a'},
		{KSymSpace, ' '},
		{0xe9, 'é'},
		{0x1f, 0},
		{0x7f, 0},
		{KSymBackspace, '\b'},
		{KSymTab, '\t'},
		{KSymReturn, '\r'},
		{KSymEscape, 0x1b},
		{KSymDelete, 0x7f},
		{KSymKeypadEnter, '\r'},
		{KSymKeypadAdd, '+'},
		{KSymKeypad0, '0'},
		{KSymKeypadEqual, '='},
		{KSymUp, 0},
		{KSymF1, 0},
		{KSymShiftL, 0},
		{KSymDeadAcute, 0},
		{KeySymFromRune('€'), '€'},
		{kSymUnicodeBase + 0x41, 0}, // below 0x100 must use the latin-1 keysym
		// legacy sets
		{0x1a1, 'Ą'},
		{0x1b1, 'ą'},
		{0x2a1, 'Ħ'},
		{0x3a2, 'ĸ'},
		{0x5c7, 'ا'},
		{0x6a3, 'ё'},
		{0x6c0, 'ю'},
		{0x6d3, 'с'},
		{0x6f3, 'С'},
		{0x7a1, 'Ά'},
		{0x7d2, 'Σ'},
		{0x7e1, 'α'},
		{0x7f2, 'σ'},
		{0x7f3, 'ς'},
		{0xce0, 'א'},
		{0xda1, 'ก'},
		{0x13bd, 'œ'},
		{0x20ac, '€'},
		{0x6c0 - 0x40, 0}, // unassigned
	}
	for i, p := range pairs {
		if ru := p.ks.Rune(); ru != p.ru {
			t.Fatalf("entry %v: %v: %q != %q", i, p.ks, ru, p.ru)
		}
	}
}

func TestKeySymFromRune(t *testing.T) {
	type pair struct {
		ru rune
		ks KeySym
	}
	pairs := []pair{
		{'A', 0x41},
		{'é', 0xe9},
		{'€', 0x010020ac},
		{'ω', 0x010003c9},
	}
	for _, p := range pairs {
		if ks := KeySymFromRune(p.ru); ks != p.ks {
			t.Fatalf("%q: 0x%x != 0x%x", p.ru, uint32(ks), uint32(p.ks))
		}
	}
}

func TestKeySymClass(t *testing.T) {
	if !KSymKeypadDecimal.IsKeypad() || KSymDelete.IsKeypad() {
		t.Fatal("keypad")
	}
	if !KSymAltL.IsModifier() || !KSymISOLevel3Shift.IsModifier() || !KSymNumLock.IsModifier() || KSymSpace.IsModifier() {
		t.Fatal("modifier")
	}
	if !KSymDeadOgonek.IsDead() || KSymDelete.IsDead() {
		t.Fatal("dead")
	}
}

func TestKeySymString(t *testing.T) {
	type pair struct {
		ks KeySym
		s  string
	}
	pairs := []pair{
		{KSymNone, "NoSymbol"},
		{'a', "a"},
		{KSymSpace, "space"},
		{KSymNumLock, "Num_Lock"},
		{KeySymFromRune('€'), "U20AC"},
		{0xfe0a, "0xfe0a"},
	}
	for _, p := range pairs {
		if s := p.ks.String(); s != p.s {
			t.Fatalf("%q != %q", s, p.s)
		}
	}
}
