package statsbomb

import (
	"strings"
	"time"

	"github.com/openpitch/statsbomb-api/internal/domain/event"
	"github.com/openpitch/statsbomb-api/internal/domain/match"
	"github.com/openpitch/statsbomb-api/internal/usecase"
)

// Raw payload shapes for the open-data JSON files. Nested mappings follow the
// provider's {id, name} convention; most sub-records are optional.

type namedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (r *namedRef) name() string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.Name)
}

type rawCompetition struct {
	CompetitionID     int64  `json:"competition_id"`
	SeasonID          int64  `json:"season_id"`
	CountryName       string `json:"country_name"`
	CompetitionName   string `json:"competition_name"`
	CompetitionGender string `json:"competition_gender"`
	SeasonName        string `json:"season_name"`
	MatchUpdated      string `json:"match_updated"`
	MatchAvailable    string `json:"match_available"`
}

func mapCompetition(raw rawCompetition) usecase.ProviderCompetition {
	return usecase.ProviderCompetition{
		CompetitionID:   raw.CompetitionID,
		SeasonID:        raw.SeasonID,
		CompetitionName: strings.TrimSpace(raw.CompetitionName),
		SeasonName:      strings.TrimSpace(raw.SeasonName),
		CountryName:     strings.TrimSpace(raw.CountryName),
		Gender:          strings.TrimSpace(raw.CompetitionGender),
		MatchUpdated:    strings.TrimSpace(raw.MatchUpdated),
		MatchAvailable:  strings.TrimSpace(raw.MatchAvailable),
	}
}

type rawMatch struct {
	MatchID     int64  `json:"match_id"`
	MatchDate   string `json:"match_date"`
	KickOff     string `json:"kick_off"`
	Competition struct {
		CompetitionID int64 `json:"competition_id"`
	} `json:"competition"`
	Season struct {
		SeasonID int64 `json:"season_id"`
	} `json:"season"`
	HomeTeam struct {
		ID   int64  `json:"home_team_id"`
		Name string `json:"home_team_name"`
	} `json:"home_team"`
	AwayTeam struct {
		ID   int64  `json:"away_team_id"`
		Name string `json:"away_team_name"`
	} `json:"away_team"`
	HomeScore   *int   `json:"home_score"`
	AwayScore   *int   `json:"away_score"`
	MatchWeek   int    `json:"match_week"`
	MatchStatus string `json:"match_status"`
}

func mapMatch(raw rawMatch) match.Match {
	date, _ := time.Parse("2006-01-02", raw.MatchDate)
	return match.Match{
		ID:            raw.MatchID,
		CompetitionID: raw.Competition.CompetitionID,
		SeasonID:      raw.Season.SeasonID,
		Matchday:      raw.MatchWeek,
		Date:          date,
		HomeTeam:      strings.TrimSpace(raw.HomeTeam.Name),
		AwayTeam:      strings.TrimSpace(raw.AwayTeam.Name),
		HomeTeamID:    raw.HomeTeam.ID,
		AwayTeamID:    raw.AwayTeam.ID,
		HomeScore:     raw.HomeScore,
		AwayScore:     raw.AwayScore,
		Status:        strings.TrimSpace(raw.MatchStatus),
	}
}

type rawLineup struct {
	TeamID   int64  `json:"team_id"`
	TeamName string `json:"team_name"`
	Lineup   []struct {
		PlayerID   int64  `json:"player_id"`
		PlayerName string `json:"player_name"`
	} `json:"lineup"`
}

func mapLineup(raw rawLineup) match.Lineup {
	players := make([]match.Player, 0, len(raw.Lineup))
	for _, item := range raw.Lineup {
		if item.PlayerID <= 0 {
			continue
		}
		players = append(players, match.Player{
			ID:     item.PlayerID,
			Name:   strings.TrimSpace(item.PlayerName),
			TeamID: raw.TeamID,
		})
	}
	return match.Lineup{
		TeamID:   raw.TeamID,
		TeamName: strings.TrimSpace(raw.TeamName),
		Players:  players,
	}
}

type rawEvent struct {
	ID       string    `json:"id"`
	Type     *namedRef `json:"type"`
	Team     *namedRef `json:"team"`
	Player   *namedRef `json:"player"`
	Minute   int       `json:"minute"`
	Second   int       `json:"second"`
	Location []float64 `json:"location"`

	Shot          *rawShot    `json:"shot"`
	Pass          *rawPass    `json:"pass"`
	Carry         *rawCarry   `json:"carry"`
	Duel          *rawDuel    `json:"duel"`
	Tactics       *rawTactics `json:"tactics"`
	Goalkeeper    *rawKeeper  `json:"goalkeeper"`
	FoulCommitted *rawFoul    `json:"foul_committed"`
	FoulWon       *rawFoulWon `json:"foul_won"`
	BallReceipt   *rawOutcome `json:"ball_receipt"`
	BallRecovery  *rawBallRec `json:"ball_recovery"`
	Interception  *rawOutcome `json:"interception"`
	Clearance     *rawBody    `json:"clearance"`
	Dribble       *rawDribble `json:"dribble"`
	Block         *rawBlock   `json:"block"`
	Miscontrol    *rawMiscontrol `json:"miscontrol"`
	Dispossessed  *struct{}   `json:"dispossessed"`
}

type rawShot struct {
	Outcome     *namedRef `json:"outcome"`
	StatsbombXG *float64  `json:"statsbomb_xg"`
	BodyPart    *namedRef `json:"body_part"`
	Technique   *namedRef `json:"technique"`
}

type rawPass struct {
	Outcome     *namedRef `json:"outcome"`
	GoalAssist  *bool     `json:"goal_assist"`
	StatsbombXG *float64  `json:"statsbomb_xg"`
	Recipient   *namedRef `json:"recipient"`
	Length      *float64  `json:"length"`
	Height      *namedRef `json:"height"`
}

type rawCarry struct {
	EndLocation []float64 `json:"end_location"`
}

type rawDuel struct {
	Outcome *namedRef `json:"outcome"`
	Type    *namedRef `json:"type"`
}

type rawTactics struct {
	Formation int `json:"formation"`
}

type rawKeeper struct {
	Outcome  *namedRef `json:"outcome"`
	Type     *namedRef `json:"type"`
	Position *namedRef `json:"position"`
}

type rawFoul struct {
	Card      *namedRef `json:"card"`
	Advantage *bool     `json:"advantage"`
	Penalty   *bool     `json:"penalty"`
}

type rawFoulWon struct {
	Advantage *bool `json:"advantage"`
	Penalty   *bool `json:"penalty"`
}

type rawOutcome struct {
	Outcome *namedRef `json:"outcome"`
}

type rawBallRec struct {
	Offensive *bool `json:"offensive"`
	Failure   *bool `json:"recovery_failure"`
}

type rawBody struct {
	BodyPart *namedRef `json:"body_part"`
}

type rawDribble struct {
	Outcome *namedRef `json:"outcome"`
	Nutmeg  *bool     `json:"nutmeg"`
}

type rawBlock struct {
	Deflection *bool `json:"deflection"`
	SaveBlock  *bool `json:"save_block"`
}

type rawMiscontrol struct {
	AerialWon *bool `json:"aerial_won"`
}

func mapOutcome(ref *namedRef) *event.Outcome {
	if ref == nil {
		return nil
	}
	return &event.Outcome{Name: ref.name()}
}

func mapCard(ref *namedRef) *event.Card {
	if ref == nil {
		return nil
	}
	return &event.Card{Name: ref.name()}
}

func mapEvent(raw rawEvent) event.Event {
	out := event.Event{
		ID:       raw.ID,
		Type:     raw.Type.name(),
		Team:     raw.Team.name(),
		Player:   raw.Player.name(),
		Minute:   raw.Minute,
		Second:   raw.Second,
		Location: raw.Location,
	}

	if raw.Shot != nil {
		out.Shot = &event.Shot{
			Outcome:     mapOutcome(raw.Shot.Outcome),
			StatsbombXG: raw.Shot.StatsbombXG,
			BodyPart:    raw.Shot.BodyPart.name(),
			Technique:   raw.Shot.Technique.name(),
		}
	}
	if raw.Pass != nil {
		out.Pass = &event.Pass{
			Outcome:     mapOutcome(raw.Pass.Outcome),
			GoalAssist:  raw.Pass.GoalAssist,
			StatsbombXG: raw.Pass.StatsbombXG,
			Recipient:   raw.Pass.Recipient.name(),
			Length:      raw.Pass.Length,
			Height:      raw.Pass.Height.name(),
		}
	}
	if raw.Carry != nil {
		out.Carry = &event.Carry{EndLocation: raw.Carry.EndLocation}
	}
	if raw.Duel != nil {
		out.Duel = &event.Duel{
			Outcome: mapOutcome(raw.Duel.Outcome),
			Kind:    raw.Duel.Type.name(),
		}
	}
	if raw.Tactics != nil {
		out.Tactics = &event.Tactics{Formation: raw.Tactics.Formation}
	}
	if raw.Goalkeeper != nil {
		out.Goalkeeper = &event.Goalkeeper{
			Outcome:  mapOutcome(raw.Goalkeeper.Outcome),
			Kind:     raw.Goalkeeper.Type.name(),
			Position: raw.Goalkeeper.Position.name(),
		}
	}
	if raw.FoulCommitted != nil {
		out.FoulCommitted = &event.FoulCommitted{
			Card:      mapCard(raw.FoulCommitted.Card),
			Advantage: raw.FoulCommitted.Advantage,
			Penalty:   raw.FoulCommitted.Penalty,
		}
	}
	if raw.FoulWon != nil {
		out.FoulWon = &event.FoulWon{
			Advantage: raw.FoulWon.Advantage,
			Penalty:   raw.FoulWon.Penalty,
		}
	}
	if raw.BallReceipt != nil {
		out.BallReceipt = &event.BallReceipt{Outcome: mapOutcome(raw.BallReceipt.Outcome)}
	}
	if raw.BallRecovery != nil {
		out.BallRecovery = &event.BallRecovery{
			Offensive: raw.BallRecovery.Offensive,
			Failure:   raw.BallRecovery.Failure,
		}
	}
	if raw.Interception != nil {
		out.Interception = &event.Interception{Outcome: mapOutcome(raw.Interception.Outcome)}
	}
	if raw.Clearance != nil {
		out.Clearance = &event.Clearance{BodyPart: raw.Clearance.BodyPart.name()}
	}
	if raw.Dribble != nil {
		out.Dribble = &event.Dribble{
			Outcome: mapOutcome(raw.Dribble.Outcome),
			Nutmeg:  raw.Dribble.Nutmeg,
		}
	}
	if raw.Block != nil {
		out.Block = &event.Block{
			Deflection: raw.Block.Deflection,
			SaveBlock:  raw.Block.SaveBlock,
		}
	}
	if raw.Dispossessed != nil {
		out.Dispossessed = &event.Dispossessed{}
	}
	if raw.Miscontrol != nil {
		out.Miscontrol = &event.Miscontrol{AerialWon: raw.Miscontrol.AerialWon}
	}

	return out
}
