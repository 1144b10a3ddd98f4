package civiltime

/*
leap.go contains the leap second table collaborator: a read-only,
process-wide, sorted slice of 32-bit calendar hashes naming the UTC
dates whose final minute hosted a leap second insertion.
*/

import (
	"io"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

/*
leapDates enumerates the historical insertion dates published by the
IERS through Bulletin C 52, most recent last. Each triple is
(year, month, day).
*/
var leapDates = [][3]uint16{
	{1972, 6, 30}, {1972, 12, 31},
	{1973, 12, 31}, {1974, 12, 31}, {1975, 12, 31},
	{1976, 12, 31}, {1977, 12, 31}, {1978, 12, 31},
	{1979, 12, 31}, {1981, 6, 30}, {1982, 6, 30},
	{1983, 6, 30}, {1985, 6, 30}, {1987, 12, 31},
	{1989, 12, 31}, {1990, 12, 31}, {1992, 6, 30},
	{1993, 6, 30}, {1994, 6, 30}, {1995, 12, 31},
	{1997, 6, 30}, {1998, 12, 31}, {2005, 12, 31},
	{2008, 12, 31}, {2012, 6, 30}, {2015, 6, 30},
	{2016, 12, 31},
}

var (
	leapKeys      []uint32
	leapConsulted atomic.Bool
)

func init() {
	leapKeys = make([]uint32, len(leapDates))
	for i, d := range leapDates {
		leapKeys[i] = leapKey(d[0], uint8(d[1]), uint8(d[2]))
	}
}

/*
leapKey packs a date into its sorted-comparable 32-bit hash form.
Numeric key order tracks chronological order under the BigEndian
field layout.
*/
func leapKey(year uint16, month, day uint8) uint32 {
	return EncodeHash[uint32](Gregorian, HashFields{
		Year:  year,
		Month: month,
		Day:   day,
	})
}

/*
leapTable returns the active table and marks it consulted; once
consulted, the table may no longer be replaced.
*/
func leapTable() []uint32 {
	leapConsulted.Store(true)
	return leapKeys
}

/*
LeapTable returns the active leap second table as a defensive copy of
its 32-bit calendar hash entries.
*/
func LeapTable() []uint32 {
	ents := make([]uint32, len(leapKeys))
	copy(ents, leapKeys)
	return ents
}

/*
leapBulletin mirrors the IERS-style YAML bulletin layout ingested by
[LoadLeapTable]:

	leapseconds:
	  - date: "1972-06-30"
	  - date: "1972-12-31"
*/
type leapBulletin struct {
	LeapSeconds []struct {
		Date string `yaml:"date"`
	} `yaml:"leapseconds"`
}

/*
LoadLeapTable replaces the process-wide leap second table with the
contents of an IERS-style YAML bulletin read from r. Replacement is
only permitted before the first lookup; the table is read-only for
the remainder of the process lifetime.
*/
func LoadLeapTable(r io.Reader) (err error) {
	if leapConsulted.Load() {
		return errorBulletinLoaded
	}

	keys, err := parseLeapBulletin(r)
	if err == nil {
		leapKeys = keys
	}
	return
}

func parseLeapBulletin(r io.Reader) ([]uint32, error) {
	debugParse(`leap second bulletin`)
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, parseErrorf("leap second bulletin: ", err)
	}

	var bull leapBulletin
	if err = yaml.Unmarshal(raw, &bull); err != nil {
		return nil, parseErrorf("leap second bulletin: ", err)
	}
	if len(bull.LeapSeconds) == 0 {
		return nil, errorEmptyBulletin
	}

	keys := make([]uint32, 0, len(bull.LeapSeconds))
	for _, ent := range bull.LeapSeconds {
		res := IsoDateExtended.Parse(ent.Date, Gregorian)
		dt, ok := res.Value()
		if !ok {
			return nil, parseErrorf("leap second bulletin: malformed date ", ent.Date)
		}
		keys = append(keys, leapKey(dt.Year, dt.Month, dt.Day))
	}

	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			return nil, errorBulletinOrder
		}
	}

	return keys, nil
}
