package shortcut

import "fmt"

type ArgKind int

const (
	ArgNone ArgKind = iota
	ArgInt
	ArgUInt
	ArgFloat
	ArgPtr
	ArgStr
)

// Argument passed through unchanged to a shortcut function.
type Arg struct {
	kind ArgKind
	i    int32
	u    uint32
	f    float32
	p    interface{}
	s    string
}

func IntArg(v int32) Arg        { return Arg{kind: ArgInt, i: v} }
func UIntArg(v uint32) Arg      { return Arg{kind: ArgUInt, u: v} }
func FloatArg(v float32) Arg    { return Arg{kind: ArgFloat, f: v} }
func PtrArg(v interface{}) Arg  { return Arg{kind: ArgPtr, p: v} }
func StrArg(v string) Arg       { return Arg{kind: ArgStr, s: v} }
func (a Arg) Kind() ArgKind     { return a.kind }
func (a Arg) Int() int32        { return a.i }
func (a Arg) UInt() uint32      { return a.u }
func (a Arg) Float() float32    { return a.f }
func (a Arg) Ptr() interface{}  { return a.p }
func (a Arg) Str() string       { return a.s }
func (a Arg) Is(k ArgKind) bool { return a.kind == k }

func (a Arg) String() string {
	switch a.kind {
	case ArgInt:
		return fmt.Sprintf("%d", a.i)
	case ArgUInt:
		return fmt.Sprintf("%du", a.u)
	case ArgFloat:
		return fmt.Sprintf("%g", a.f)
	case ArgPtr:
		return fmt.Sprintf("%T", a.p)
	case ArgStr:
		return fmt.Sprintf("%q", a.s)
	}
	return "-"
}
