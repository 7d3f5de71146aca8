package postgres

import "github.com/openpitch/statsbomb-api/internal/domain/stats"

type playerStatsRow struct {
	MatchID         int64   `db:"match_id"`
	PlayerName      string  `db:"player_name"`
	TeamName        string  `db:"team_name"`
	Goals           int     `db:"goals"`
	Assists         int     `db:"assists"`
	Shots           int     `db:"shots"`
	ShotsOnTarget   int     `db:"shots_on_target"`
	PassesCompleted int     `db:"passes_completed"`
	PassesAttempted int     `db:"passes_attempted"`
	Tackles         int     `db:"tackles"`
	Interceptions   int     `db:"interceptions"`
	DuelsWon        int     `db:"duels_won"`
	DuelsLost       int     `db:"duels_lost"`
	YellowCards     int     `db:"yellow_cards"`
	RedCards        int     `db:"red_cards"`
	XG              float64 `db:"xg"`
	XA              float64 `db:"xa"`
}

func (r playerStatsRow) toDomain() stats.PlayerAggregate {
	return stats.PlayerAggregate{
		Name:            r.PlayerName,
		Team:            r.TeamName,
		Goals:           r.Goals,
		Assists:         r.Assists,
		Shots:           r.Shots,
		ShotsOnTarget:   r.ShotsOnTarget,
		PassesCompleted: r.PassesCompleted,
		PassesAttempted: r.PassesAttempted,
		Tackles:         r.Tackles,
		Interceptions:   r.Interceptions,
		DuelsWon:        r.DuelsWon,
		DuelsLost:       r.DuelsLost,
		YellowCards:     r.YellowCards,
		RedCards:        r.RedCards,
		XG:              r.XG,
		XA:              r.XA,
	}
}

type cardTotalsRow struct {
	PlayerName  string `db:"player_name"`
	TeamName    string `db:"team_name"`
	Goals       int    `db:"goals"`
	YellowCards int    `db:"yellow_cards"`
	RedCards    int    `db:"red_cards"`
}

type teamStatsRow struct {
	MatchID         int64   `db:"match_id"`
	TeamName        string  `db:"team_name"`
	Goals           int     `db:"goals"`
	Shots           int     `db:"shots"`
	ShotsOnTarget   int     `db:"shots_on_target"`
	PassesCompleted int     `db:"passes_completed"`
	PassesAttempted int     `db:"passes_attempted"`
	Tackles         int     `db:"tackles"`
	Interceptions   int     `db:"interceptions"`
	DuelsWon        int     `db:"duels_won"`
	DuelsLost       int     `db:"duels_lost"`
	Corners         int     `db:"corners"`
	Fouls           int     `db:"fouls"`
	YellowCards     int     `db:"yellow_cards"`
	RedCards        int     `db:"red_cards"`
	XG              float64 `db:"xg"`
}

func (r teamStatsRow) toDomain() stats.TeamAggregate {
	return stats.TeamAggregate{
		Team:            r.TeamName,
		Goals:           r.Goals,
		Shots:           r.Shots,
		ShotsOnTarget:   r.ShotsOnTarget,
		PassesCompleted: r.PassesCompleted,
		PassesAttempted: r.PassesAttempted,
		Tackles:         r.Tackles,
		Interceptions:   r.Interceptions,
		DuelsWon:        r.DuelsWon,
		DuelsLost:       r.DuelsLost,
		Corners:         r.Corners,
		Fouls:           r.Fouls,
		YellowCards:     r.YellowCards,
		RedCards:        r.RedCards,
		XG:              r.XG,
	}
}
