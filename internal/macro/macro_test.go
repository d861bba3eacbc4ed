package macro

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/v0xg/k90macro/internal/diag"
	"github.com/v0xg/k90macro/internal/keys"
)

func TestEventHex(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Delay{Milliseconds: 15}, "ff000f"},
		{Delay{Milliseconds: 65535}, "ffffff"},
		{Delay{Milliseconds: 0}, "ff0000"},
		{KeyDown{Key: 0x41}, "410001"},
		{KeyUp{Key: 0x41}, "410000"},
		{KeyDown{Key: keys.Back}, "080001"},
		{KeyTap{Key: 0x41, HoldMilliseconds: 15}, "410001ff000f410000"},
		{KeyTap{Key: keys.Enter, HoldMilliseconds: 500}, "0d0001ff01f40d0000"},
	}

	for _, tt := range tests {
		if got := Hex(tt.event); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	got := Encode(nil, diag.Discard())
	if len(got) != MaxChars {
		t.Fatalf("len(Encode(nil)) = %d, want %d", len(got), MaxChars)
	}
	if got != strings.Repeat(Filler, MaxChars/len(Filler)) {
		t.Error("Encode(nil) is not pure filler")
	}
}

func TestEncodeKeyTap(t *testing.T) {
	got := Encode([]Event{KeyTap{Key: 65, HoldMilliseconds: 15}}, diag.Discard())
	if !strings.HasPrefix(got, "410001ff000f410000") {
		t.Errorf("Encode prefix = %q", got[:18])
	}
	if strings.Trim(got[18:], "0") != "" {
		t.Error("Encode padding contains non-zero digits")
	}
	if len(got) != MaxChars {
		t.Errorf("len = %d, want %d", len(got), MaxChars)
	}
}

func TestEncodeFull(t *testing.T) {
	events := make([]Event, MaxOpcodes)
	for i := range events {
		events[i] = Delay{Milliseconds: 1}
	}

	var buf bytes.Buffer
	got := Encode(events, diag.New(&buf))
	if len(got) != MaxChars {
		t.Errorf("len = %d, want %d", len(got), MaxChars)
	}
	if buf.Len() != 0 {
		t.Errorf("exactly full payload warned: %q", buf.String())
	}
}

func TestEncodeOverflow(t *testing.T) {
	events := make([]Event, MaxOpcodes/3+1)
	for i := range events {
		events[i] = KeyTap{Key: keys.A, HoldMilliseconds: 10}
	}

	var buf bytes.Buffer
	sink := diag.New(&buf)
	got := Encode(events, sink)

	if want := len(events) * 18; len(got) != want {
		t.Errorf("len = %d, want untruncated %d", len(got), want)
	}
	if buf.String() != "warning: macro maximum size exceeded\n" {
		t.Errorf("diagnostic = %q", buf.String())
	}
}

func TestEncodeIdempotent(t *testing.T) {
	m := &Macro{
		Name:         "twice",
		DefaultDelay: 20,
		Events: []Event{
			KeyDown{Key: keys.ShiftKey},
			Delay{Milliseconds: 20},
			KeyTap{Key: keys.A, HoldMilliseconds: 20},
			Delay{Milliseconds: 20},
			KeyUp{Key: keys.ShiftKey},
		},
	}

	first := m.Payload(diag.Discard())
	second := m.Payload(diag.Discard())
	if first != second {
		t.Error("encoding the same macro twice produced different payloads")
	}
}

func TestMacroMetrics(t *testing.T) {
	m := New()
	if m.Name != DefaultName || m.DefaultDelay != DefaultDelay {
		t.Errorf("New() = %+v", m)
	}

	m.Events = []Event{
		KeyTap{Key: keys.A, HoldMilliseconds: 15},
		Delay{Milliseconds: 100},
		KeyDown{Key: keys.A + 1},
		KeyUp{Key: keys.A + 1},
	}
	if got := m.Duration(); got != 115 {
		t.Errorf("Duration() = %d, want 115", got)
	}
	if got := m.Size(); got != 18 {
		t.Errorf("Size() = %d, want 18", got)
	}
}

func TestDecode(t *testing.T) {
	events := []Event{
		KeyTap{Key: keys.A, HoldMilliseconds: 15},
		Delay{Milliseconds: 300},
		KeyDown{Key: keys.LShiftKey},
		KeyUp{Key: keys.LShiftKey},
	}
	payload := Encode(events, diag.Discard())

	got, err := Decode(payload)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []Event{
		KeyDown{Key: keys.A},
		Delay{Milliseconds: 15},
		KeyUp{Key: keys.A},
		Delay{Milliseconds: 300},
		KeyDown{Key: keys.LShiftKey},
		KeyUp{Key: keys.LShiftKey},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode() = %v, want %v", got, want)
	}

	if folded := Fold(got); !reflect.DeepEqual(folded, events) {
		t.Errorf("Fold() = %v, want %v", folded, events)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		payload string
		wantErr error
	}{
		{"41000", nil},
		{"4100", ErrTruncated},
		{"410002", ErrUnknownOpcode},
		{"000001", ErrUnknownOpcode},
		{"zz0001", nil},
	}

	for _, tt := range tests {
		_, err := Decode(tt.payload)
		if err == nil {
			t.Errorf("Decode(%q) succeeded, want error", tt.payload)
			continue
		}
		if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
			t.Errorf("Decode(%q) error = %v, want %v", tt.payload, err, tt.wantErr)
		}
	}
}

func TestFoldKeepsMismatchedRuns(t *testing.T) {
	events := []Event{
		KeyDown{Key: keys.A},
		Delay{Milliseconds: 15},
		KeyUp{Key: keys.A + 1},
		KeyUp{Key: keys.A},
	}
	if got := Fold(events); !reflect.DeepEqual(got, events) {
		t.Errorf("Fold() = %v, want unchanged", got)
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Delay{Milliseconds: 40}, "delay 40"},
		{KeyDown{Key: keys.LControlKey}, "down LControlKey"},
		{KeyUp{Key: keys.A}, "up A"},
		{KeyTap{Key: keys.Enter, HoldMilliseconds: 15}, "press Enter 15"},
		{KeyTap{Key: 0x07, HoldMilliseconds: 15}, "press 07 15"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
