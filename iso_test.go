package civiltime

import (
	"fmt"
	"testing"
)

func isoFixture(t *testing.T) CivilDateTime {
	t.Helper()
	off, _ := NewOffset(`+02:00`)
	return mustCivil(t, Gregorian, 2024, 8, 30, 14, 45, 9).WithZone(off)
}

func TestIsoFormat_Format(t *testing.T) {
	dt := isoFixture(t)

	for _, tc := range []struct {
		f    IsoFormat
		want string
	}{
		{IsoDateBasic, `20240830`},
		{IsoDateExtended, `2024-08-30`},
		{IsoTimeBasic, `144509`},
		{IsoTimeExtended, `14:45:09`},
		{IsoDateTimeBasic, `20240830T144509`},
		{IsoDateTimeExtended, `2024-08-30T14:45:09`},
		{IsoDateTimeBasicTZD, `20240830T144509+0200`},
		{IsoDateTimeExtendedTZD, `2024-08-30T14:45:09+02:00`},
	} {
		if got := tc.f.Format(dt); got != tc.want {
			t.Fatalf("%s failed [%s]: want %s, got %s", t.Name(), tc.f, tc.want, got)
		}
	}
}

func TestIsoFormat_roundTrip(t *testing.T) {
	dt := isoFixture(t)

	for _, f := range []IsoFormat{
		IsoDateBasic, IsoDateExtended,
		IsoTimeBasic, IsoTimeExtended,
		IsoDateTimeBasic, IsoDateTimeExtended,
		IsoDateTimeBasicTZD, IsoDateTimeExtendedTZD,
	} {
		res := f.Parse(f.Format(dt), Gregorian)
		got, ok := res.Value()
		if !ok {
			t.Fatalf("%s failed [%s]: absent result", t.Name(), f)
		}

		// fields the format carries survive verbatim
		if f.hasDate() {
			if got.Year != dt.Year || got.Month != dt.Month || got.Day != dt.Day {
				t.Fatalf("%s failed [%s date]: got %s", t.Name(), f, got.String())
			}
		}
		if f.hasTime() {
			if got.Hour != dt.Hour || got.Minute != dt.Minute || got.Second != dt.Second {
				t.Fatalf("%s failed [%s time]: got %s", t.Name(), f, got.String())
			}
		}
		if f.hasTZD() && !got.Zone.Equal(dt.Zone) {
			t.Fatalf("%s failed [%s zone]: got %s", t.Name(), f, got.Zone.String())
		}
	}
}

func TestIsoFormat_defaultSubstitution(t *testing.T) {
	// a time-only format substitutes the calendar's date minima
	res := IsoTimeExtended.Parse(`14:45:09`, Gregorian)
	dt, ok := res.Value()
	if !ok {
		t.Fatalf("%s failed: absent result", t.Name())
	}
	if dt.Year != 1900 || dt.Month != 1 || dt.Day != 1 {
		t.Fatalf("%s failed [date minima]: got %s", t.Name(), dt.String())
	}

	res = IsoTimeExtended.Parse(`14:45:09`, UTCFast)
	if dt, _ = res.Value(); dt.Year != 1970 {
		t.Fatalf("%s failed [variant minima]: got %s", t.Name(), dt.String())
	}

	// a date-only format substitutes the clock minima
	res = IsoDateBasic.Parse(`20240830`, Gregorian)
	if dt, _ = res.Value(); dt.Hour != 0 || dt.Minute != 0 || dt.Second != 0 {
		t.Fatalf("%s failed [clock minima]: got %s", t.Name(), dt.String())
	}
}

func TestIsoFormat_parseFailure(t *testing.T) {
	for _, tc := range []struct {
		f  IsoFormat
		in string
	}{
		{IsoDateExtended, `2024/08/30`},
		{IsoDateExtended, `2024-08-3X`},
		{IsoDateExtended, `2024-08-30T`},
		{IsoDateBasic, `2024083`},
		{IsoTimeExtended, `14.45.09`},
		{IsoDateTimeBasic, `20240830 144509`},
		{IsoDateTimeBasicTZD, `20240830T144509`},
		{IsoDateTimeBasicTZD, `20240830T144509*0200`},
		{IsoDateTimeExtendedTZD, `2024-08-30T14:45:09+2:00`},
	} {
		if res := tc.f.Parse(tc.in, Gregorian); res.Present() {
			t.Fatalf("%s failed [%s %q]: malformed input yielded a present result",
				t.Name(), tc.f, tc.in)
		}
	}
}

func TestIsoFormat_tzdDelimiterVariants(t *testing.T) {
	// either designator flavor parses, one at a time
	for _, in := range []string{
		`20240830T144509+02:00`,
		`20240830T144509+0200`,
		`20240830T144509Z`,
	} {
		if res := IsoDateTimeBasicTZD.Parse(in, Gregorian); !res.Present() {
			t.Fatalf("%s failed [%s]: absent result", t.Name(), in)
		}
	}
}

func TestParseResult(t *testing.T) {
	present := somePR(42)
	absent := absentPR[int]()

	if v, ok := present.Value(); !ok || v != 42 {
		t.Fatalf("%s failed [present]", t.Name())
	}
	if absent.Present() {
		t.Fatalf("%s failed [absent]", t.Name())
	}
	if absent.Or(7) != 7 || present.Or(7) != 42 {
		t.Fatalf("%s failed [or]", t.Name())
	}
}

func ExampleIsoFormat_Parse() {
	res := IsoDateTimeExtendedTZD.Parse(`2024-08-30T14:45:09+02:00`, Gregorian)
	if dt, ok := res.Value(); ok {
		fmt.Println(dt.ToUTC().String())
	}
	// Output: 2024-08-30T12:45:09Z
}

func ExampleIsoFormat_Parse_failure() {
	res := IsoDateExtended.Parse(`30/08/2024`, Gregorian)
	fmt.Println(res.Present())
	// Output: false
}
