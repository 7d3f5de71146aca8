package stats

import "github.com/openpitch/statsbomb-api/internal/domain/event"

// PlayerAggregate is the per-player running summary for one match. Counters
// only ever increase while the event scan runs; the value is read-only once
// AggregatePlayers returns.
type PlayerAggregate struct {
	Name            string
	Team            string
	Goals           int
	Assists         int
	Shots           int
	ShotsOnTarget   int
	PassesCompleted int
	PassesAttempted int
	Tackles         int
	Interceptions   int
	DuelsWon        int
	DuelsLost       int
	YellowCards     int
	RedCards        int
	XG              float64
	XA              float64
}

// AggregatePlayers folds a match event sequence into one aggregate per
// distinct player name. Events without a player contribute nothing. Malformed
// or sparse events degrade to under-counting, never to an error.
func AggregatePlayers(events []event.Event) map[string]PlayerAggregate {
	return reduce(events, playerKey, newPlayerAggregate, applyPlayerEvent)
}

func playerKey(ev event.Event) string {
	return ev.Player
}

func newPlayerAggregate(ev event.Event) PlayerAggregate {
	return PlayerAggregate{
		Name: ev.Player,
		Team: ev.Team,
	}
}

func applyPlayerEvent(agg *PlayerAggregate, ev event.Event) {
	switch ev.Type {
	case TypeShot:
		agg.Shots++
		if isOnTarget(ev.Shot.OutcomeName()) {
			agg.ShotsOnTarget++
		}
		if xg, ok := ev.Shot.XG(); ok {
			agg.XG += xg
		}
	case TypePass:
		agg.PassesAttempted++
		// Absent outcome means the pass reached its target.
		if ev.Pass.OutcomeName() != passOutcomeIncomplete {
			agg.PassesCompleted++
		}
		if ev.Pass.IsGoalAssist() {
			agg.Assists++
			if xg, ok := ev.Pass.XG(); ok {
				agg.XA += xg
			}
		}
	case TypeGoal:
		agg.Goals++
	case TypeTackle:
		agg.Tackles++
	case TypeInterception:
		agg.Interceptions++
	case TypeDuel:
		if ev.Duel.OutcomeName() == duelOutcomeWon {
			agg.DuelsWon++
		} else {
			agg.DuelsLost++
		}
	case TypeFoulCommitted:
		switch ev.FoulCommitted.CardName() {
		case cardYellow:
			agg.YellowCards++
		case cardRed:
			agg.RedCards++
		}
	}
}
