package event

//----------

type WindowClose struct{}
type WindowFocus struct{ Focused bool }
type WindowMappingChanged struct{}

//----------

// Key press as seen by the keyboard input path. Built at the platform boundary, read-only
// afterwards.
type KeyPress struct {
	Keycode uint8
	Mods    KeyModifiers
	Time    uint32
}

func (kp *KeyPress) AltHeld() bool {
	return kp.Mods.HasAny(ModAlt | ModMeta)
}

//----------

type KeyModifiers uint32

func (km KeyModifiers) HasAny(m KeyModifiers) bool {
	return km&m > 0
}
func (km KeyModifiers) Is(m KeyModifiers) bool {
	return km == m
}
func (km KeyModifiers) ClearLocks() KeyModifiers {
	w := []KeyModifiers{ModCapsLock, ModNumLock, ModGroup2}
	u := km
	for _, m := range w {
		u &^= m
	}
	return u
}

// Reports whether a binding mask accepts the modifiers in km. Lock modifiers are ignored.
func (km KeyModifiers) Matches(mask KeyModifiers) bool {
	if mask == ModAny {
		return true
	}
	return mask.ClearLocks() == km.ClearLocks()
}

func (km KeyModifiers) String() string {
	if km == ModAny {
		return "Any"
	}
	if km == ModNone {
		return "None"
	}
	s := ""
	for _, p := range modNames {
		if km.HasAny(p.m) {
			if s != "" {
				s += "+"
			}
			s += p.name
		}
	}
	return s
}

const (
	ModNone  KeyModifiers = 0
	ModShift KeyModifiers = 1 << (iota - 1)
	ModCapsLock
	ModCtrl
	ModAlt
	ModNumLock
	ModAltGr
	ModSuper
	ModMeta
	ModGroup2 // second keysym group (Mode_switch or layout group state)

	// binding tables only
	ModAny KeyModifiers = ^KeyModifiers(0)
)

var modNames = []struct {
	m    KeyModifiers
	name string
}{
	{ModShift, "Shift"},
	{ModCapsLock, "Lock"},
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModNumLock, "NumLock"},
	{ModAltGr, "AltGr"},
	{ModSuper, "Super"},
	{ModMeta, "Meta"},
	{ModGroup2, "Group2"},
}
