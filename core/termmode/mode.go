// Terminal window modes consulted by the keyboard input path.
package termmode

import "strings"

// Set of window modes. Values are snapshots: setters return a new value.
type Mode uint32

const (
	Visible Mode = 1 << iota
	Focused
	AppKeypad
	MouseBtn
	MouseMotion
	Reverse
	KbdLock
	Hide
	AppCursor
	MouseSgr
	EightBit
	Blink
	FBlink
	Focus
	MouseX10
	MouseMany
	BrcktPaste
	NumLock
)

// Modes of a freshly created window.
const Default = Visible | NumLock

func (m Mode) IsLocked() bool {
	return m.Has(KbdLock)
}
func (m Mode) EightBit() bool {
	return m.Has(EightBit)
}

// Reports whether all modes in m2 are set.
func (m Mode) Has(m2 Mode) bool {
	return m&m2 == m2
}

func (m Mode) Set(m2 Mode) Mode {
	return m | m2
}
func (m Mode) Clear(m2 Mode) Mode {
	return m &^ m2
}
func (m Mode) Toggle(m2 Mode) Mode {
	return m ^ m2
}
func (m Mode) SetTo(m2 Mode, v bool) Mode {
	if v {
		return m.Set(m2)
	}
	return m.Clear(m2)
}

//----------

func (m Mode) String() string {
	u := []string{}
	for i, name := range names {
		if m&(1<<uint(i)) != 0 {
			u = append(u, name)
		}
	}
	if len(u) == 0 {
		return "none"
	}
	return strings.Join(u, "|")
}

var names = []string{
	"visible",
	"focused",
	"appkeypad",
	"mousebtn",
	"mousemotion",
	"reverse",
	"kbdlock",
	"hide",
	"appcursor",
	"mousesgr",
	"eightbit",
	"blink",
	"fblink",
	"focus",
	"mousex10",
	"mousemany",
	"brcktpaste",
	"numlock",
}
