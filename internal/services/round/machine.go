package round

import (
	"fmt"

	"github.com/mcoot/susround/internal/content"
	"github.com/mcoot/susround/internal/dependencies/clock"
	"github.com/mcoot/susround/internal/dependencies/ids"
	"github.com/mcoot/susround/internal/dependencies/random"
	"github.com/mcoot/susround/internal/model"
	"github.com/mcoot/susround/internal/services/assignment"
	"github.com/mcoot/susround/internal/services/outcome"
)

// MaxLogEntries caps the mission log; older entries fall off the end
const MaxLogEntries = 18

// Machine is the round state machine. Apply is a reducer over model.Session:
// it never mutates its input, and all randomness, time and ids come from the
// injected sources.
type Machine struct {
	banks    *content.Banks
	assigner *assignment.Engine
	random   random.Random
	clock    clock.Clock
	ids      ids.Generator
}

// NewMachine creates a new round Machine
func NewMachine(
	banks *content.Banks,
	random random.Random,
	clock clock.Clock,
	ids ids.Generator,
) *Machine {
	return &Machine{
		banks:    banks,
		assigner: assignment.New(banks, random),
		random:   random,
		clock:    clock,
		ids:      ids,
	}
}

// Apply reduces an action onto the session and returns the next session.
//
// Validation failures (see model.IsValidationError) return the error along
// with the original session, whose only change is the Error message.
// Phase violations and unknown actions return the error and the input
// unchanged. Any accepted action clears the Error message.
func (m *Machine) Apply(state model.Session, action Action) (model.Session, error) {
	next := state.Clone()

	if err := m.step(&next, action); err != nil {
		if model.IsValidationError(err) {
			rejected := state.Clone()
			rejected.Error = err.Error()
			return rejected, err
		}
		return state, err
	}

	m.settle(&next)
	next.Error = ""
	next.UpdatedAt = m.clock.Now()
	return next, nil
}

func (m *Machine) step(s *model.Session, a Action) error {
	switch a.Type {
	case ActionAddPlayer:
		return m.addPlayer(s, a)
	case ActionRemovePlayer:
		return m.removePlayer(s, a)
	case ActionSetImpostorCount:
		return m.setImpostorCount(s, a)
	case ActionStartRound:
		return m.startRound(s, a)
	case ActionToggleReveal:
		return m.toggleReveal(s, a)
	case ActionAdvanceCard:
		return m.advanceCard(s, a)
	case ActionSkipReveal:
		return m.skipReveal(s, a)
	case ActionToggleTask:
		return m.toggleTask(s, a)
	case ActionToggleStatus:
		return m.toggleStatus(s, a)
	case ActionCallMeeting:
		return m.callMeeting(s, a)
	case ActionSelectSuspect:
		return m.selectSuspect(s, a)
	case ActionConfirmEjection:
		return m.confirmEjection(s, a)
	case ActionSkipVote:
		return m.skipVote(s, a)
	case ActionDrawPrompt:
		return m.drawPrompt(s, a)
	case ActionResetRound:
		return m.resetRound(s, a)
	case ActionResetLobby:
		return m.resetLobby(s, a)
	default:
		return fmt.Errorf("%w: %q", model.ErrUnknownAction, a.Type)
	}
}

// settle re-evaluates the outcome for the stored phase and logs exactly one
// entry when it differs from the cached value
func (m *Machine) settle(s *model.Session) {
	next := outcome.ForPhase(s.Phase, s.Players)
	if next.Equal(s.Outcome) {
		return
	}
	s.Outcome = next
	if next == nil {
		m.record(s, model.LogEntry{Type: model.LogOutcomeCleared})
		return
	}
	m.record(s, model.LogEntry{
		Type:   model.LogOutcomeResolved,
		Detail: fmt.Sprintf("%s win: %s", next.Winner, next.Reason),
	})
}

// record prepends an entry to the mission log, keeping at most MaxLogEntries
func (m *Machine) record(s *model.Session, entry model.LogEntry) {
	entry.At = m.clock.Now()
	log := make([]model.LogEntry, 0, min(len(s.Log)+1, MaxLogEntries))
	log = append(log, entry)
	for _, e := range s.Log {
		if len(log) == MaxLogEntries {
			break
		}
		log = append(log, e)
	}
	s.Log = log
}

func requirePhase(s *model.Session, a Action, phase model.Phase) error {
	if s.Phase != phase {
		return fmt.Errorf("%w: %s during %s", model.ErrActionNotAllowed, a.Type, s.Phase)
	}
	return nil
}

func playerEntry(t model.LogEntryType, p *model.Player) model.LogEntry {
	return model.LogEntry{Type: t, PlayerID: p.ID, PlayerName: p.Name}
}
