package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

type TurnState int

const (
	AwaitingRoll TurnState = iota
	AwaitingChoice
	AwaitingContinueDecision
	TurnEnded
)

func (s TurnState) String() string {
	switch s {
	case AwaitingRoll:
		return "awaiting roll"
	case AwaitingChoice:
		return "awaiting choice"
	case AwaitingContinueDecision:
		return "awaiting continue decision"
	case TurnEnded:
		return "turn ended"
	default:
		return "unknown"
	}
}

// TurnOutcome is what a finished turn hands back to the engine.
type TurnOutcome struct {
	Target Target `json:"target"`
	Scored bool   `json:"scored"`
	Busted bool   `json:"busted"`
	Rolls  int    `json:"rolls"`
}

type EventKind int

const (
	Rolled EventKind = iota
	Scored
	Busted
	Stopped
)

// TurnEvent is published to observers on every visible step of a turn. A Busted event
// carries the target that busted, before it is reverted.
type TurnEvent struct {
	Kind   EventKind
	Player string
	Roll   DiceRoll
	Combos []Combination
	Target Target
}

type TurnOption func(t *Turn)

// WithObserver registers fn to receive turn events. Observers run synchronously.
func WithObserver(fn func(TurnEvent)) TurnOption {
	return func(t *Turn) {
		if fn != nil {
			t.observers = append(t.observers, fn)
		}
	}
}

// Turn is one player's sequence of rolls. It owns a copy of the player's target and only
// hands it back through the outcome.
type Turn struct {
	player    string
	roller    *Roller
	decider   DecisionProvider
	observers []func(TurnEvent)

	state   TurnState
	start   Target
	current Target
	scored  bool
	busted  bool
	rolls   int
	roll    DiceRoll
	combos  []Combination
}

func NewTurn(player string, target Target, roller *Roller, decider DecisionProvider, options ...TurnOption) *Turn {
	t := &Turn{
		player:  player,
		roller:  roller,
		decider: decider,
		state:   AwaitingRoll,
		start:   target,
		current: target,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *Turn) State() TurnState {
	return t.state
}

func (t *Turn) Target() Target {
	return t.current
}

// Play steps the turn until it ends.
func (t *Turn) Play() (TurnOutcome, error) {
	for t.state != TurnEnded {
		if err := t.Step(); err != nil {
			return TurnOutcome{}, err
		}
	}
	return t.Outcome(), nil
}

// Outcome is only meaningful once the turn has ended.
func (t *Turn) Outcome() TurnOutcome {
	return TurnOutcome{
		Target: t.current,
		Scored: t.scored,
		Busted: t.busted,
		Rolls:  t.rolls,
	}
}

// Step performs a single transition of the state machine.
func (t *Turn) Step() error {
	switch t.state {
	case AwaitingRoll:
		t.roll = t.roller.Roll()
		t.combos = Combinations(t.roll)
		t.rolls++
		t.publish(Rolled)
		t.state = AwaitingChoice
		return nil
	case AwaitingChoice:
		return t.choose()
	case AwaitingContinueDecision:
		again, err := t.decider.ContinueRolling(t.decision())
		if err != nil {
			return fmt.Errorf("continue decision for %s: %w", t.player, err)
		}
		if again {
			t.state = AwaitingRoll
			return nil
		}
		t.publish(Stopped)
		t.state = TurnEnded
		return nil
	case TurnEnded:
		return fmt.Errorf("turn for %s has already ended", t.player)
	default:
		panic("unknown turn state")
	}
}

func (t *Turn) choose() error {
	proposed := 0
	if !t.current.Locked() {
		sum, err := t.decider.ChooseSum(t.decision())
		if err != nil {
			return fmt.Errorf("sum choice for %s: %w", t.player, err)
		}
		proposed = sum
	}

	v := Validate(t.current, t.combos, proposed)
	switch v.Verdict {
	case Retry:
		// Stay in AwaitingChoice with the same roll until the pick is on the table.
		log.Warn().Str("player", t.player).Int("proposed", proposed).Ints("valid", ValidSums(t.combos)).Msg("sum not available, asking again")
		return nil
	case Bust:
		t.publish(Busted)
		t.current = t.start
		t.scored = false
		t.busted = true
		t.state = TurnEnded
		return nil
	}

	if t.current.Locked() {
		t.current.Progress++
	} else {
		t.current = Target{Sum: v.Sum, Progress: 1}
	}
	t.scored = true
	t.publish(Scored)
	t.state = AwaitingContinueDecision
	return nil
}

func (t *Turn) decision() Decision {
	return Decision{
		Player:    t.player,
		Roll:      t.roll,
		ValidSums: ValidSums(t.combos),
		Target:    t.current,
		Start:     t.start,
		Rolls:     t.rolls,
	}
}

func (t *Turn) publish(kind EventKind) {
	if len(t.observers) == 0 {
		return
	}
	e := TurnEvent{
		Kind:   kind,
		Player: t.player,
		Roll:   t.roll,
		Combos: t.combos,
		Target: t.current,
	}
	for _, fn := range t.observers {
		fn(e)
	}
}
