package competition

import "strings"

// Competition is one StatsBomb competition/season row.
type Competition struct {
	ID             int64
	SeasonID       int64
	Name           string
	SeasonName     string
	CountryName    string
	Gender         string
	MatchUpdated   string
	MatchAvailable string
}

// Mapping resolves short competition codes (the football-data style codes the
// public API accepts) to StatsBomb competition IDs, and competition IDs to a
// display country. Built once at startup and passed by value; never mutated.
type Mapping struct {
	idByCode    map[string]int64
	countryByID map[int64]string
}

func NewMapping(idByCode map[string]int64, countryByID map[int64]string) Mapping {
	codes := make(map[string]int64, len(idByCode))
	for code, id := range idByCode {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" || id <= 0 {
			continue
		}
		codes[code] = id
	}
	countries := make(map[int64]string, len(countryByID))
	for id, country := range countryByID {
		countries[id] = country
	}
	return Mapping{idByCode: codes, countryByID: countries}
}

// DefaultCodeToID covers the competitions available in StatsBomb open data.
// DED, BSA and PPL have no open-data coverage and are deliberately absent.
// Returns a fresh copy on every call so callers may layer overrides on top.
func DefaultCodeToID() map[string]int64 {
	return map[string]int64{
		"WC":  43, // FIFA World Cup
		"CL":  16, // UEFA Champions League
		"BL1": 9,  // Bundesliga
		"PD":  11, // La Liga
		"FL1": 7,  // Ligue 1
		"PL":  2,  // Premier League
		"SA":  12, // Serie A
		"EC":  68, // European Championship
		"ELC": 35, // UEFA Europa League
	}
}

// DefaultCountryByID is the display country for every ID in DefaultCodeToID.
// Returns a fresh copy on every call.
func DefaultCountryByID() map[int64]string {
	return map[int64]string{
		43: "International",
		16: "Europe",
		9:  "Germany",
		11: "Spain",
		7:  "France",
		2:  "England",
		12: "Italy",
		68: "Europe",
		35: "Europe",
	}
}

// DefaultMapping is NewMapping over the default tables.
func DefaultMapping() Mapping {
	return NewMapping(DefaultCodeToID(), DefaultCountryByID())
}

// CompetitionID resolves a code case-insensitively.
func (m Mapping) CompetitionID(code string) (int64, bool) {
	id, ok := m.idByCode[strings.ToUpper(strings.TrimSpace(code))]
	return id, ok
}

// Country returns the display country for a competition ID, or "Unknown".
func (m Mapping) Country(competitionID int64) string {
	if country, ok := m.countryByID[competitionID]; ok {
		return country
	}
	return "Unknown"
}

// CompetitionIDs lists the mapped StatsBomb IDs in unspecified order.
func (m Mapping) CompetitionIDs() []int64 {
	out := make([]int64, 0, len(m.idByCode))
	for _, id := range m.idByCode {
		out = append(out, id)
	}
	return out
}
