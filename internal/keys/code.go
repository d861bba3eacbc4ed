package keys

import "fmt"

// Code identifies a key by its Windows virtual-key code. Only codes that fit
// in a single byte are representable, which is what the macro payload stores.
type Code uint8

// None marks an unresolved key. It never appears in a compiled macro.
const None Code = 0

// Anchors for the contiguous letter and digit ranges.
const (
	D0 Code = 0x30
	D9 Code = 0x39
	A  Code = 0x41
	Z  Code = 0x5a
)

// Frequently referenced keys.
const (
	Back        Code = 0x08
	Tab         Code = 0x09
	Enter       Code = 0x0d
	ShiftKey    Code = 0x10
	ControlKey  Code = 0x11
	Menu        Code = 0x12
	Escape      Code = 0x1b
	Space       Code = 0x20
	PageUp      Code = 0x21
	PageDown    Code = 0x22
	End         Code = 0x23
	Home        Code = 0x24
	Left        Code = 0x25
	Up          Code = 0x26
	Right       Code = 0x27
	Down        Code = 0x28
	Insert      Code = 0x2d
	Delete      Code = 0x2e
	LShiftKey   Code = 0xa0
	RShiftKey   Code = 0xa1
	LControlKey Code = 0xa2
	RControlKey Code = 0xa3
	LMenu       Code = 0xa4
	RMenu       Code = 0xa5
	Oemcomma    Code = 0xbc
	OemPeriod   Code = 0xbe
	Oemtilde    Code = 0xc0
)

// String returns the enumeration name of the key, or its numeric form when
// the code has no name.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint8(c))
}

// IsLetter reports whether c is one of A..Z.
func (c Code) IsLetter() bool {
	return c >= A && c <= Z
}

// IsDigit reports whether c is one of the top-row digits D0..D9.
func (c Code) IsDigit() bool {
	return c >= D0 && c <= D9
}
