package civiltime

import (
	"fmt"
	"testing"
)

func TestEncodeHash_roundTrip64(t *testing.T) {
	for _, f := range []HashFields{
		{Year: 2024, Month: 8, Day: 30, Hour: 14, Minute: 45, Second: 9, Milli: 123, Micro: 456},
		{Year: 1972, Month: 6, Day: 30, Hour: 23, Minute: 59, Second: 60, Milli: 999, Micro: 999},
		{Year: 1900, Month: 1, Day: 1},
	} {
		h := EncodeHash[uint64](Gregorian, f)
		if got := DecodeHash(Gregorian, h); got != f {
			t.Fatalf("%s failed [64-bit round trip]:\n\twant: %+v\n\tgot:  %+v",
				t.Name(), f, got)
		}
	}
}

func TestEncodeHash_roundTrip32(t *testing.T) {
	cal := NewCalendar(Gregorian)
	in := HashFields{Year: 2024, Month: 12, Day: 31, Hour: 23, Minute: 59,
		Second: 45, Milli: 500, Micro: 250}

	h := EncodeHash[uint32](Gregorian, in)
	got := DecodeHash(Gregorian, h)

	// year..minute survive; second and finer read as calendar minima
	want := in
	want.Second = cal.MinSecond
	want.Milli, want.Micro = cal.MinSub, cal.MinSub
	if got != want {
		t.Fatalf("%s failed [32-bit round trip]:\n\twant: %+v\n\tgot:  %+v",
			t.Name(), want, got)
	}
}

func TestEncodeHash_roundTrip16(t *testing.T) {
	cal := NewCalendar(Gregorian)
	in := HashFields{Year: 2024, Month: 3, Day: 17, Hour: 22, Minute: 45}

	h := EncodeHash[uint16](Gregorian, in)
	got := DecodeHash(Gregorian, h)

	want := HashFields{Year: cal.MinYear, Month: cal.MinMonth,
		Day: 17, Hour: 22, Minute: 45}
	if got != want {
		t.Fatalf("%s failed [16-bit round trip]:\n\twant: %+v\n\tgot:  %+v",
			t.Name(), want, got)
	}
}

func TestEncodeHash_roundTrip8(t *testing.T) {
	cal := NewCalendar(Gregorian)
	in := HashFields{Day: 17, Hour: 5}

	h := EncodeHash[uint8](Gregorian, in)
	if h != 17<<3|5 {
		t.Fatalf("%s failed [8-bit packing]: want %d, got %d", t.Name(), 17<<3|5, h)
	}

	got := DecodeHash(Gregorian, h)
	want := HashFields{Year: cal.MinYear, Month: cal.MinMonth, Day: 17, Hour: 5}
	if got != want {
		t.Fatalf("%s failed [8-bit round trip]:\n\twant: %+v\n\tgot:  %+v",
			t.Name(), want, got)
	}
}

func TestEncodeHash_narrowTruncation(t *testing.T) {
	// the 8-bit hour slot is three bits wide; hour 23 truncates to 7
	h := EncodeHash[uint8](Gregorian, HashFields{Day: 1, Hour: 23})
	if got := DecodeHash(Gregorian, h).Hour; got != 23&7 {
		t.Fatalf("%s failed [lossy hour]: want %d, got %d", t.Name(), 23&7, got)
	}
}

func TestEncodeHash_chronologicalOrder(t *testing.T) {
	older := EncodeHash[uint32](Gregorian, HashFields{Year: 2023, Month: 12, Day: 31, Hour: 23, Minute: 59})
	newer := EncodeHash[uint32](Gregorian, HashFields{Year: 2024, Month: 1, Day: 1})

	if older >= newer {
		t.Fatalf("%s failed [ordering]: %d is not below %d", t.Name(), older, newer)
	}
}

func TestReplaceHashField(t *testing.T) {
	h := EncodeHash[uint32](Gregorian, HashFields{Year: 2024, Month: 6, Day: 10, Hour: 8, Minute: 30})

	h2 := ReplaceHashField(Gregorian, h, FieldMinute, 45)
	got := DecodeHash(Gregorian, h2)
	if got.Minute != 45 {
		t.Fatalf("%s failed [replace]: want 45, got %d", t.Name(), got.Minute)
	}
	if got.Year != 2024 || got.Month != 6 || got.Day != 10 || got.Hour != 8 {
		t.Fatalf("%s failed [replace bleed]: %+v", t.Name(), got)
	}

	// fields absent from a width leave the hash untouched
	h8 := EncodeHash[uint8](Gregorian, HashFields{Day: 10, Hour: 4})
	if got := ReplaceHashField(Gregorian, h8, FieldYear, 2024); got != h8 {
		t.Fatalf("%s failed [absent field]: want %d, got %d", t.Name(), h8, got)
	}
}

func ExampleEncodeHash() {
	h := EncodeHash[uint8](Gregorian, HashFields{Day: 17, Hour: 5})
	f := DecodeHash(Gregorian, h)
	fmt.Printf("0x%02X day=%d hour=%d\n", h, f.Day, f.Hour)
	// Output: 0x8D day=17 hour=5
}
