package civiltime

import (
	"fmt"
	"testing"
)

func TestNewOffset(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want string
	}{
		{`Z`, `Z`},
		{`+05:30`, `+05:30`},
		{`-0700`, `-07:00`},
		{5, `+05:00`},
		{-3, `-03:00`},
		{Offset{Sign: 1, Hour: 2, Minute: 15}, `+02:15`},
	} {
		off, err := NewOffset(tc.in)
		if err != nil {
			t.Fatalf("%s failed [%v]: %v", t.Name(), tc.in, err)
		}
		if got := off.String(); got != tc.want {
			t.Fatalf("%s failed [%v]: want %s, got %s", t.Name(), tc.in, tc.want, got)
		}
	}
}

func TestNewOffset_invalid(t *testing.T) {
	for _, in := range []any{
		`+24:00`,
		`+05:60`,
		`05:30`,
		`+5:30`,
		`*0500`,
		3.5,
		Offset{Sign: 0, Hour: 1},
	} {
		if _, err := NewOffset(in); err == nil {
			t.Fatalf("%s failed [%v]: invalid input produced no error", t.Name(), in)
		}
	}
}

func TestOffset_designators(t *testing.T) {
	off, _ := NewOffset(`+05:30`)

	if got := off.designator(false); got != `+0530` {
		t.Fatalf("%s failed [basic]: got %s", t.Name(), got)
	}
	if got := off.designator(true); got != `+05:30` {
		t.Fatalf("%s failed [extended]: got %s", t.Name(), got)
	}
	if got := UTC.designator(false); got != `Z` {
		t.Fatalf("%s failed [utc]: got %s", t.Name(), got)
	}
}

func TestOffset_equality(t *testing.T) {
	zero := Offset{Sign: 1}
	negZero := Offset{Sign: -1}

	// every rendition of zero offset is UTC
	if !zero.Equal(UTC) || !negZero.Equal(UTC) {
		t.Fatalf("%s failed [zero offsets]", t.Name())
	}

	a, _ := NewOffset(`+02:00`)
	b, _ := NewOffset(`-02:00`)
	if a.Equal(b) {
		t.Fatalf("%s failed [sign ignored]", t.Name())
	}
}

func TestFixedZone(t *testing.T) {
	off, _ := NewOffset(`-07:00`)
	var rz OffsetResolver = FixedZone{Off: off}

	if got := rz.OffsetAt(2024, 6, 1, 12, 0); !got.Equal(off) {
		t.Fatalf("%s failed: got %s", t.Name(), got.String())
	}
}

func ExampleNewOffset() {
	off, _ := NewOffset(`-0700`)
	fmt.Println(off.String())
	// Output: -07:00
}
