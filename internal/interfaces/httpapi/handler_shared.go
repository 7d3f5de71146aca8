package httpapi

import (
	"github.com/openpitch/statsbomb-api/internal/domain/event"
)

// Event DTOs keep the feed's sparse shape: absent sub-records and nested
// mappings marshal as omitted fields, never as zero values.

type eventDTO struct {
	ID       string    `json:"id,omitempty"`
	Type     string    `json:"type"`
	Team     string    `json:"team,omitempty"`
	Player   string    `json:"player,omitempty"`
	Minute   int       `json:"minute"`
	Second   int       `json:"second"`
	Location []float64 `json:"location,omitempty"`

	Shot          *shotDTO          `json:"shot,omitempty"`
	Pass          *passDTO          `json:"pass,omitempty"`
	Carry         *carryDTO         `json:"carry,omitempty"`
	Duel          *duelDTO          `json:"duel,omitempty"`
	Tactics       *tacticsDTO       `json:"tactics,omitempty"`
	Goalkeeper    *goalkeeperDTO    `json:"goalkeeper,omitempty"`
	FoulCommitted *foulCommittedDTO `json:"foulCommitted,omitempty"`
	FoulWon       *foulWonDTO       `json:"foulWon,omitempty"`
	BallReceipt   *outcomeOnlyDTO   `json:"ballReceipt,omitempty"`
	BallRecovery  *ballRecoveryDTO  `json:"ballRecovery,omitempty"`
	Interception  *outcomeOnlyDTO   `json:"interception,omitempty"`
	Clearance     *clearanceDTO     `json:"clearance,omitempty"`
	Dribble       *dribbleDTO       `json:"dribble,omitempty"`
	Block         *blockDTO         `json:"block,omitempty"`
	Miscontrol    *miscontrolDTO    `json:"miscontrol,omitempty"`
	Dispossessed  *struct{}         `json:"dispossessed,omitempty"`
}

type shotDTO struct {
	Outcome     string   `json:"outcome,omitempty"`
	StatsbombXG *float64 `json:"statsbombXg,omitempty"`
	BodyPart    string   `json:"bodyPart,omitempty"`
	Technique   string   `json:"technique,omitempty"`
}

type passDTO struct {
	Outcome     string   `json:"outcome,omitempty"`
	GoalAssist  *bool    `json:"goalAssist,omitempty"`
	StatsbombXG *float64 `json:"statsbombXg,omitempty"`
	Recipient   string   `json:"recipient,omitempty"`
	Length      *float64 `json:"length,omitempty"`
	Height      string   `json:"height,omitempty"`
}

type carryDTO struct {
	EndLocation []float64 `json:"endLocation,omitempty"`
}

type duelDTO struct {
	Outcome string `json:"outcome,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

type tacticsDTO struct {
	Formation int `json:"formation"`
}

type goalkeeperDTO struct {
	Outcome  string `json:"outcome,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Position string `json:"position,omitempty"`
}

type foulCommittedDTO struct {
	Card      string `json:"card,omitempty"`
	Advantage *bool  `json:"advantage,omitempty"`
	Penalty   *bool  `json:"penalty,omitempty"`
}

type foulWonDTO struct {
	Advantage *bool `json:"advantage,omitempty"`
	Penalty   *bool `json:"penalty,omitempty"`
}

type outcomeOnlyDTO struct {
	Outcome string `json:"outcome,omitempty"`
}

type ballRecoveryDTO struct {
	Offensive *bool `json:"offensive,omitempty"`
	Failure   *bool `json:"failure,omitempty"`
}

type clearanceDTO struct {
	BodyPart string `json:"bodyPart,omitempty"`
}

type dribbleDTO struct {
	Outcome string `json:"outcome,omitempty"`
	Nutmeg  *bool  `json:"nutmeg,omitempty"`
}

type blockDTO struct {
	Deflection *bool `json:"deflection,omitempty"`
	SaveBlock  *bool `json:"saveBlock,omitempty"`
}

type miscontrolDTO struct {
	AerialWon *bool `json:"aerialWon,omitempty"`
}

func eventToDTO(ev event.Event) eventDTO {
	out := eventDTO{
		ID:       ev.ID,
		Type:     ev.Type,
		Team:     ev.Team,
		Player:   ev.Player,
		Minute:   ev.Minute,
		Second:   ev.Second,
		Location: ev.Location,
	}

	if ev.Shot != nil {
		out.Shot = &shotDTO{
			Outcome:     ev.Shot.OutcomeName(),
			StatsbombXG: ev.Shot.StatsbombXG,
			BodyPart:    ev.Shot.BodyPart,
			Technique:   ev.Shot.Technique,
		}
	}
	if ev.Pass != nil {
		out.Pass = &passDTO{
			Outcome:     ev.Pass.OutcomeName(),
			GoalAssist:  ev.Pass.GoalAssist,
			StatsbombXG: ev.Pass.StatsbombXG,
			Recipient:   ev.Pass.Recipient,
			Length:      ev.Pass.Length,
			Height:      ev.Pass.Height,
		}
	}
	if ev.Carry != nil {
		out.Carry = &carryDTO{EndLocation: ev.Carry.EndLocation}
	}
	if ev.Duel != nil {
		out.Duel = &duelDTO{
			Outcome: ev.Duel.OutcomeName(),
			Kind:    ev.Duel.Kind,
		}
	}
	if ev.Tactics != nil {
		out.Tactics = &tacticsDTO{Formation: ev.Tactics.Formation}
	}
	if ev.Goalkeeper != nil {
		out.Goalkeeper = &goalkeeperDTO{
			Outcome:  ev.Goalkeeper.Outcome.GetName(),
			Kind:     ev.Goalkeeper.Kind,
			Position: ev.Goalkeeper.Position,
		}
	}
	if ev.FoulCommitted != nil {
		out.FoulCommitted = &foulCommittedDTO{
			Card:      ev.FoulCommitted.CardName(),
			Advantage: ev.FoulCommitted.Advantage,
			Penalty:   ev.FoulCommitted.Penalty,
		}
	}
	if ev.FoulWon != nil {
		out.FoulWon = &foulWonDTO{
			Advantage: ev.FoulWon.Advantage,
			Penalty:   ev.FoulWon.Penalty,
		}
	}
	if ev.BallReceipt != nil {
		out.BallReceipt = &outcomeOnlyDTO{Outcome: ev.BallReceipt.Outcome.GetName()}
	}
	if ev.BallRecovery != nil {
		out.BallRecovery = &ballRecoveryDTO{
			Offensive: ev.BallRecovery.Offensive,
			Failure:   ev.BallRecovery.Failure,
		}
	}
	if ev.Interception != nil {
		out.Interception = &outcomeOnlyDTO{Outcome: ev.Interception.Outcome.GetName()}
	}
	if ev.Clearance != nil {
		out.Clearance = &clearanceDTO{BodyPart: ev.Clearance.BodyPart}
	}
	if ev.Dribble != nil {
		out.Dribble = &dribbleDTO{
			Outcome: ev.Dribble.Outcome.GetName(),
			Nutmeg:  ev.Dribble.Nutmeg,
		}
	}
	if ev.Block != nil {
		out.Block = &blockDTO{
			Deflection: ev.Block.Deflection,
			SaveBlock:  ev.Block.SaveBlock,
		}
	}
	if ev.Miscontrol != nil {
		out.Miscontrol = &miscontrolDTO{AerialWon: ev.Miscontrol.AerialWon}
	}
	if ev.Dispossessed != nil {
		out.Dispossessed = &struct{}{}
	}

	return out
}
