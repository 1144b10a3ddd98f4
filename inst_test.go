package civiltime

import (
	"fmt"
	"testing"
)

func TestInstant32_staleHashAfterAdd(t *testing.T) {
	i := NewInstant32(Gregorian, 2024, 6, 1, 10, 0)
	j := i.Add(Span{Hours: 1})

	// the offset counter observed the addition ...
	if want := i.Ticks() + 60; j.Ticks() != want {
		t.Fatalf("%s failed [offset]: want %d, got %d", t.Name(), want, j.Ticks())
	}
	if !i.Less(j) || i.Equal(j) {
		t.Fatalf("%s failed [comparison]: %d vs %d", t.Name(), i.Ticks(), j.Ticks())
	}

	// ... while the hash-derived getters did not
	if got := j.Fields().Hour; got != 10 {
		t.Fatalf("%s failed [stale getter]: want 10, got %d", t.Name(), got)
	}
	if j.Hash() != i.Hash() {
		t.Fatalf("%s failed [hash moved]: %d vs %d", t.Name(), i.Hash(), j.Hash())
	}
}

func TestInstant32_replaceDivergesOppositeWay(t *testing.T) {
	i := NewInstant32(Gregorian, 2024, 6, 1, 10, 0)
	k := i.Replace(FieldHour, 12)

	if got := k.Fields().Hour; got != 12 {
		t.Fatalf("%s failed [hash]: want 12, got %d", t.Name(), got)
	}
	if k.Ticks() != i.Ticks() {
		t.Fatalf("%s failed [offset moved]: %d vs %d", t.Name(), i.Ticks(), k.Ticks())
	}
	if !k.Equal(i) {
		t.Fatalf("%s failed [offset equality]: replace must not affect comparison", t.Name())
	}
}

func TestInstant32_fromHashResync(t *testing.T) {
	i := NewInstant32(Gregorian, 2024, 6, 1, 10, 0)
	j := i.Add(Span{Days: 3})

	// reconstruction from the (stale) hash lands back on the
	// construction-time instant
	m := Instant32FromHash(Gregorian, j.Hash())
	if m.Ticks() != i.Ticks() {
		t.Fatalf("%s failed [resync]: want %d, got %d", t.Name(), i.Ticks(), m.Ticks())
	}
	if m.Fields() != i.Fields() {
		t.Fatalf("%s failed [fields]:\n\twant: %+v\n\tgot:  %+v",
			t.Name(), i.Fields(), m.Fields())
	}
}

func TestInstant32_isoReflectsHashNotOffset(t *testing.T) {
	i := NewInstant32(Gregorian, 2024, 6, 1, 10, 0)
	j := i.Add(Span{Hours: 5})

	if got := j.ToISO(IsoDateTimeExtended); got != `2024-06-01T10:00:00` {
		t.Fatalf("%s failed [stale ISO]: got %s", t.Name(), got)
	}
}

func TestInstant32_isoRoundTrip(t *testing.T) {
	res := Instant32FromISO(IsoDateTimeExtended, `2024-06-01T10:30:45`, Gregorian)
	i, ok := res.Value()
	if !ok {
		t.Fatalf("%s failed: absent result", t.Name())
	}

	// seconds are below minute resolution and drop on construction
	if got := i.ToISO(IsoDateTimeExtended); got != `2024-06-01T10:30:00` {
		t.Fatalf("%s failed [round trip]: got %s", t.Name(), got)
	}

	if bogus := Instant32FromISO(IsoDateTimeExtended, `2024-06-01X10:30:45`, Gregorian); bogus.Present() {
		t.Fatalf("%s failed: malformed input yielded a present result", t.Name())
	}
}

func TestInstant8_packing(t *testing.T) {
	i := NewInstant8(Gregorian, 5, 4)

	if i.Hash() != 5<<3|4 {
		t.Fatalf("%s failed [hash]: want %d, got %d", t.Name(), 5<<3|4, i.Hash())
	}
	if i.Ticks() != 100 { // four epoch days and four hours
		t.Fatalf("%s failed [offset]: want 100, got %d", t.Name(), i.Ticks())
	}
}

func TestInstant16_minuteTruncation(t *testing.T) {
	i := NewInstant16(Gregorian, 5, 4, 30)

	// hour-resolution offset truncates the half hour
	if i.Ticks() != 100 {
		t.Fatalf("%s failed [offset]: want 100, got %d", t.Name(), i.Ticks())
	}
	if got := i.Fields().Minute; got != 30 {
		t.Fatalf("%s failed [hash minute]: want 30, got %d", t.Name(), got)
	}
}

func TestInstant64_millisecondResolution(t *testing.T) {
	i := NewInstant64(UTCFast, 1970, 1, 1, 0, 0, 1, 250)
	if i.Ticks() != 1250 {
		t.Fatalf("%s failed [offset]: want 1250, got %d", t.Name(), i.Ticks())
	}

	j := i.Add(Span{Seconds: 2})
	if j.Ticks() != 3250 {
		t.Fatalf("%s failed [add]: want 3250, got %d", t.Name(), j.Ticks())
	}
	if got := j.Fields().Second; got != 1 {
		t.Fatalf("%s failed [stale second]: want 1, got %d", t.Name(), got)
	}

	if !j.Sub(Span{Seconds: 2}).Equal(i) {
		t.Fatalf("%s failed [sub inverse]", t.Name())
	}
}

func TestInstant64_spanMultipliers(t *testing.T) {
	i := NewInstant64(UTCFast, 1970, 1, 1, 0, 0, 0, 0)

	// fixed multipliers: a year is 365 days flat at this layer
	j := i.Add(Span{Years: 1})
	if want := uint64(365 * 86400 * 1000); j.Ticks() != want {
		t.Fatalf("%s failed [365-day year]: want %d, got %d", t.Name(), want, j.Ticks())
	}
}

func ExampleInstant32_Add_staleHash() {
	i := NewInstant32(Gregorian, 2024, 6, 1, 10, 0)
	j := i.Add(Span{Hours: 1})

	// arithmetic moves the offset counter only; the rendition below
	// still reflects the construction-time hash snapshot
	fmt.Println(j.ToISO(IsoDateTimeExtended), j.Ticks()-i.Ticks())
	// Output: 2024-06-01T10:00:00 60
}
