package termmode

import "testing"

func TestMode1(t *testing.T) {
	m := Default
	if m.IsLocked() || m.EightBit() {
		t.Fatal(m)
	}
	m2 := m.Set(KbdLock | EightBit)
	if !m2.IsLocked() || !m2.EightBit() {
		t.Fatal(m2)
	}
	// value semantics
	if m.IsLocked() {
		t.Fatal(m)
	}
	// unrelated modes preserved
	if !m2.Has(Visible | NumLock) {
		t.Fatal(m2)
	}
	m3 := m2.Clear(KbdLock)
	if m3.IsLocked() || !m3.EightBit() || !m3.Has(Visible) {
		t.Fatal(m3)
	}
}

func TestModeToggle(t *testing.T) {
	m := Focused
	m = m.Toggle(NumLock)
	if !m.Has(NumLock | Focused) {
		t.Fatal(m)
	}
	m = m.Toggle(NumLock)
	if m.Has(NumLock) || !m.Has(Focused) {
		t.Fatal(m)
	}
	m = m.SetTo(Reverse, true).SetTo(Focused, false)
	if m != Reverse {
		t.Fatal(m)
	}
}

func TestModeString(t *testing.T) {
	s := (Focused | KbdLock | NumLock).String()
	if s != "focused|kbdlock|numlock" {
		t.Fatal(s)
	}
	if s := Mode(0).String(); s != "none" {
		t.Fatal(s)
	}
}
