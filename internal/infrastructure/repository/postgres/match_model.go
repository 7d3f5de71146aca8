package postgres

import "time"

type matchInsertModel struct {
	ID            int64     `db:"id"`
	CompetitionID int64     `db:"competition_id"`
	SeasonID      int64     `db:"season_id"`
	Matchday      int       `db:"matchday"`
	Date          time.Time `db:"date"`
	HomeTeamID    int64     `db:"home_team_id"`
	AwayTeamID    int64     `db:"away_team_id"`
	HomeScore     *int      `db:"home_score"`
	AwayScore     *int      `db:"away_score"`
	Status        string    `db:"status"`
}

type teamInsertModel struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Country string `db:"country"`
}

type playerInsertModel struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	TeamID int64  `db:"team_id"`
}
