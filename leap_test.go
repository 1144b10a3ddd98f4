package civiltime

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseLeapBulletin(t *testing.T) {
	bulletin := `leapseconds:
  - date: "1972-06-30"
  - date: "1972-12-31"
  - date: "2016-12-31"
`

	keys, err := parseLeapBulletin(strings.NewReader(bulletin))
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if len(keys) != 3 {
		t.Fatalf("%s failed: want 3 entries, got %d", t.Name(), len(keys))
	}
	if keys[0] != leapKey(1972, 6, 30) || keys[2] != leapKey(2016, 12, 31) {
		t.Fatalf("%s failed: key mismatch", t.Name())
	}
}

func TestParseLeapBulletin_empty(t *testing.T) {
	if _, err := parseLeapBulletin(strings.NewReader(`leapseconds: []`)); !errors.Is(err, errorEmptyBulletin) {
		t.Fatalf("%s failed: want %v, got %v", t.Name(), errorEmptyBulletin, err)
	}
}

func TestParseLeapBulletin_unsorted(t *testing.T) {
	bulletin := `leapseconds:
  - date: "1973-12-31"
  - date: "1972-06-30"
`

	if _, err := parseLeapBulletin(strings.NewReader(bulletin)); !errors.Is(err, errorBulletinOrder) {
		t.Fatalf("%s failed: want %v, got %v", t.Name(), errorBulletinOrder, err)
	}
}

func TestParseLeapBulletin_malformed(t *testing.T) {
	for _, bulletin := range []string{
		`{{not yaml`,
		"leapseconds:\n  - date: \"30/06/1972\"\n",
		"leapseconds:\n  - date: \"1972-6-30\"\n",
	} {
		if _, err := parseLeapBulletin(strings.NewReader(bulletin)); err == nil {
			t.Fatalf("%s failed [%q]: no error on malformed bulletin", t.Name(), bulletin)
		}
	}
}

func TestLeapTable_defensiveCopy(t *testing.T) {
	ents := LeapTable()
	if len(ents) != len(leapKeys) {
		t.Fatalf("%s failed: want %d entries, got %d", t.Name(), len(leapKeys), len(ents))
	}

	ents[0] = 0
	if leapKeys[0] == 0 {
		t.Fatalf("%s failed: caller mutation reached the live table", t.Name())
	}
}

func TestLoadLeapTable_afterConsult(t *testing.T) {
	// any lookup freezes the table for the remainder of the process
	NewCalendar(Gregorian).LeapSecsSinceEpoch(2020, 1, 1)

	bulletin := strings.NewReader("leapseconds:\n  - date: \"1972-06-30\"\n")
	if err := LoadLeapTable(bulletin); !errors.Is(err, errorBulletinLoaded) {
		t.Fatalf("%s failed: want %v, got %v", t.Name(), errorBulletinLoaded, err)
	}
}

func ExampleLeapTable() {
	ents := LeapTable()
	fmt.Println(len(ents))
	// Output: 27
}
