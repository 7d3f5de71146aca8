package match

import "time"

// Match is one fixture row as exposed by the StatsBomb matches feed.
type Match struct {
	ID            int64
	CompetitionID int64
	SeasonID      int64
	Matchday      int
	Date          time.Time
	HomeTeam      string
	AwayTeam      string
	HomeTeamID    int64
	AwayTeamID    int64
	HomeScore     *int
	AwayScore     *int
	Status        string
}

// Team is a participating side, enriched with the competition country.
type Team struct {
	ID      int64
	Name    string
	Country string
}

// Player is one squad member as listed in a match lineup.
type Player struct {
	ID     int64
	Name   string
	TeamID int64
}

// Lineup is the named squad one team fields for a match.
type Lineup struct {
	TeamID   int64
	TeamName string
	Players  []Player
}
