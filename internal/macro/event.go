// Package macro holds the compiled form of a keyboard macro and its
// fixed-layout hexadecimal payload encoding.
//
// A payload is a run of 3-byte opcodes written as lowercase hex:
//
//	ff xxxx   delay of xxxx milliseconds
//	kk 0001   key kk pressed
//	kk 0000   key kk released
//
// followed by 000000 filler up to MaxChars.
package macro

import (
	"fmt"

	"github.com/v0xg/k90macro/internal/keys"
)

// Event is one macro instruction. The set of implementations is closed:
// Delay, KeyDown, KeyUp and KeyTap.
type Event interface {
	// AppendHex appends the event's opcodes to dst.
	AppendHex(dst []byte) []byte
	String() string
	isEvent()
}

// Delay pauses playback.
type Delay struct {
	Milliseconds uint16
}

// KeyDown starts a key press.
type KeyDown struct {
	Key keys.Code
}

// KeyUp ends a key press.
type KeyUp struct {
	Key keys.Code
}

// KeyTap presses Key, holds it for HoldMilliseconds and releases it.
type KeyTap struct {
	Key              keys.Code
	HoldMilliseconds uint16
}

const (
	delayOpcode = 0xff
	keyPressed  = 0x0001
	keyReleased = 0x0000
)

const hexDigits = "0123456789abcdef"

func appendByte(dst []byte, b uint8) []byte {
	return append(dst, hexDigits[b>>4], hexDigits[b&0x0f])
}

func appendWord(dst []byte, w uint16) []byte {
	dst = appendByte(dst, uint8(w>>8))
	return appendByte(dst, uint8(w))
}

func (e Delay) AppendHex(dst []byte) []byte {
	dst = appendByte(dst, delayOpcode)
	return appendWord(dst, e.Milliseconds)
}

func (e KeyDown) AppendHex(dst []byte) []byte {
	dst = appendByte(dst, uint8(e.Key))
	return appendWord(dst, keyPressed)
}

func (e KeyUp) AppendHex(dst []byte) []byte {
	dst = appendByte(dst, uint8(e.Key))
	return appendWord(dst, keyReleased)
}

func (e KeyTap) AppendHex(dst []byte) []byte {
	dst = KeyDown{Key: e.Key}.AppendHex(dst)
	dst = Delay{Milliseconds: e.HoldMilliseconds}.AppendHex(dst)
	return KeyUp{Key: e.Key}.AppendHex(dst)
}

// String forms are valid script lines.
func (e Delay) String() string   { return fmt.Sprintf("delay %d", e.Milliseconds) }
func (e KeyDown) String() string { return "down " + keyName(e.Key) }
func (e KeyUp) String() string   { return "up " + keyName(e.Key) }
func (e KeyTap) String() string  { return fmt.Sprintf("press %s %d", keyName(e.Key), e.HoldMilliseconds) }

// keyName falls back to the decimal code for keys without an enumeration
// name. Codes are at least two digits wide so they never read as a digit key.
func keyName(k keys.Code) string {
	name := k.String()
	if _, ok := keys.Lookup(name); ok {
		return name
	}
	return fmt.Sprintf("%02d", uint8(k))
}

func (Delay) isEvent()   {}
func (KeyDown) isEvent() {}
func (KeyUp) isEvent()   {}
func (KeyTap) isEvent()  {}

// Hex returns the opcodes of a single event.
func Hex(e Event) string {
	return string(e.AppendHex(nil))
}
