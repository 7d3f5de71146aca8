package event

// Event is one recorded action within a match. Only Type is guaranteed;
// every other field may be absent in provider data. At most one of the
// sub-records is populated, matching Type.
type Event struct {
	ID       string
	Type     string
	Team     string
	Player   string
	Minute   int
	Second   int
	Location []float64

	Shot          *Shot
	Pass          *Pass
	Carry         *Carry
	Duel          *Duel
	Tactics       *Tactics
	Goalkeeper    *Goalkeeper
	FoulCommitted *FoulCommitted
	FoulWon       *FoulWon
	BallReceipt   *BallReceipt
	BallRecovery  *BallRecovery
	Interception  *Interception
	Clearance     *Clearance
	Dribble       *Dribble
	Block         *Block
	Miscontrol    *Miscontrol
	Dispossessed  *Dispossessed
}

// Outcome is the nested {name: ...} mapping used across sub-records.
type Outcome struct {
	Name string
}

// Card is the nested card mapping on foul events.
type Card struct {
	Name string
}

type Shot struct {
	Outcome     *Outcome
	StatsbombXG *float64
	BodyPart    string
	Technique   string
}

type Pass struct {
	Outcome     *Outcome
	GoalAssist  *bool
	StatsbombXG *float64
	Recipient   string
	Length      *float64
	Height      string
}

type Carry struct {
	EndLocation []float64
}

type Duel struct {
	Outcome *Outcome
	Kind    string
}

type Tactics struct {
	Formation int
}

type Goalkeeper struct {
	Outcome  *Outcome
	Kind     string
	Position string
}

type FoulCommitted struct {
	Card      *Card
	Advantage *bool
	Penalty   *bool
}

type FoulWon struct {
	Advantage *bool
	Penalty   *bool
}

type BallReceipt struct {
	Outcome *Outcome
}

type BallRecovery struct {
	Offensive *bool
	Failure   *bool
}

type Interception struct {
	Outcome *Outcome
}

type Clearance struct {
	BodyPart string
}

type Dribble struct {
	Outcome *Outcome
	Nutmeg  *bool
}

type Block struct {
	Deflection *bool
	SaveBlock  *bool
}

type Miscontrol struct {
	AerialWon *bool
}

type Dispossessed struct{}

// Accessors below normalize sparse provider data: every lookup through an
// absent sub-record or nested mapping short-circuits to a zero value. All
// receivers tolerate nil so call sites never guard.

func (o *Outcome) GetName() string {
	if o == nil {
		return ""
	}
	return o.Name
}

func (c *Card) GetName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

func (s *Shot) OutcomeName() string {
	if s == nil {
		return ""
	}
	return s.Outcome.GetName()
}

func (s *Shot) XG() (float64, bool) {
	if s == nil || s.StatsbombXG == nil {
		return 0, false
	}
	return *s.StatsbombXG, true
}

func (p *Pass) OutcomeName() string {
	if p == nil {
		return ""
	}
	return p.Outcome.GetName()
}

// IsGoalAssist reports whether goal_assist is present and exactly true.
func (p *Pass) IsGoalAssist() bool {
	return p != nil && p.GoalAssist != nil && *p.GoalAssist
}

func (p *Pass) XG() (float64, bool) {
	if p == nil || p.StatsbombXG == nil {
		return 0, false
	}
	return *p.StatsbombXG, true
}

func (d *Duel) OutcomeName() string {
	if d == nil {
		return ""
	}
	return d.Outcome.GetName()
}

func (f *FoulCommitted) CardName() string {
	if f == nil {
		return ""
	}
	return f.Card.GetName()
}
