package stats

import "github.com/openpitch/statsbomb-api/internal/domain/event"

// Event type tags the metric rules dispatch on. Tags not listed here are
// tolerated and simply register the actor key.
const (
	TypeShot          = "Shot"
	TypePass          = "Pass"
	TypeGoal          = "Goal"
	TypeTackle        = "Tackle"
	TypeInterception  = "Interception"
	TypeDuel          = "Duel"
	TypeFoulCommitted = "Foul Committed"
	TypeCorner        = "Corner"
)

const (
	passOutcomeIncomplete = "Incomplete"
	duelOutcomeWon        = "Won"
	cardYellow            = "Yellow Card"
	cardRed               = "Red Card"
)

// A shot counts as on target when it scored, forced a save, or hit the post.
func isOnTarget(outcome string) bool {
	switch outcome {
	case "Goal", "Saved", "Post":
		return true
	default:
		return false
	}
}

// TeamAggregate is the per-team running summary for one match. Structurally
// a PlayerAggregate keyed by team, with corners and fouls in place of
// assists and xa.
type TeamAggregate struct {
	Team            string
	Goals           int
	Shots           int
	ShotsOnTarget   int
	PassesCompleted int
	PassesAttempted int
	Tackles         int
	Interceptions   int
	DuelsWon        int
	DuelsLost       int
	Corners         int
	Fouls           int
	YellowCards     int
	RedCards        int
	XG              float64
}

// AggregateTeams folds a match event sequence into one aggregate per distinct
// team name. It shares scan semantics with AggregatePlayers; only the key
// extractor and the active rule set differ.
func AggregateTeams(events []event.Event) map[string]TeamAggregate {
	return reduce(events, teamKey, newTeamAggregate, applyTeamEvent)
}

func teamKey(ev event.Event) string {
	return ev.Team
}

func newTeamAggregate(ev event.Event) TeamAggregate {
	return TeamAggregate{Team: ev.Team}
}

func applyTeamEvent(agg *TeamAggregate, ev event.Event) {
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
		if ev.Pass.OutcomeName() != passOutcomeIncomplete {
			agg.PassesCompleted++
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
	case TypeCorner:
		agg.Corners++
	case TypeFoulCommitted:
		agg.Fouls++
		switch ev.FoulCommitted.CardName() {
		case cardYellow:
			agg.YellowCards++
		case cardRed:
			agg.RedCards++
		}
	}
}
