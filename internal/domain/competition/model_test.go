package competition

import "testing"

func TestMapping_CompetitionID(t *testing.T) {
	t.Parallel()

	m := DefaultMapping()

	tests := []struct {
		code   string
		wantID int64
		wantOK bool
	}{
		{"WC", 43, true},
		{"pl", 2, true},
		{" sa ", 12, true},
		{"DED", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		id, ok := m.CompetitionID(tc.code)
		if id != tc.wantID || ok != tc.wantOK {
			t.Fatalf("CompetitionID(%q) = (%d, %v), want (%d, %v)", tc.code, id, ok, tc.wantID, tc.wantOK)
		}
	}
}

func TestMapping_Country(t *testing.T) {
	t.Parallel()

	m := DefaultMapping()
	if got := m.Country(2); got != "England" {
		t.Fatalf("Country(2) = %q, want England", got)
	}
	if got := m.Country(9999); got != "Unknown" {
		t.Fatalf("Country(9999) = %q, want Unknown", got)
	}
}

func TestDefaultTables_Agree(t *testing.T) {
	t.Parallel()

	codes := DefaultCodeToID()
	countries := DefaultCountryByID()
	if len(codes) != len(countries) {
		t.Fatalf("default tables disagree: %d codes vs %d countries", len(codes), len(countries))
	}
	for code, id := range codes {
		if _, ok := countries[id]; !ok {
			t.Fatalf("code %s maps to id %d with no country entry", code, id)
		}
	}
	if got := countries[35]; got != "Europe" {
		t.Fatalf("country for id 35 = %q, want Europe", got)
	}
}

func TestNewMapping_DropsInvalidEntries(t *testing.T) {
	t.Parallel()

	m := NewMapping(map[string]int64{"xx": 5, "": 7, "bad": 0}, nil)
	if _, ok := m.CompetitionID("XX"); !ok {
		t.Fatal("expected lowercased code to resolve")
	}
	if _, ok := m.CompetitionID("bad"); ok {
		t.Fatal("expected zero-ID entry to be dropped")
	}
	if len(m.CompetitionIDs()) != 1 {
		t.Fatalf("expected one mapped id, got %v", m.CompetitionIDs())
	}
}
