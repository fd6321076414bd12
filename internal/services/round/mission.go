package round

import (
	"github.com/mcoot/susround/internal/dependencies/random"
	"github.com/mcoot/susround/internal/model"
)

// Mission and meeting mutations are silently ignored once the round is
// displayed as ended, and for ids that do not resolve.

func (m *Machine) toggleTask(s *model.Session, a Action) error {
	if s.IsEnded() {
		return nil
	}
	if err := requirePhase(s, a, model.PhaseMission); err != nil {
		return err
	}
	p := s.GetPlayer(a.PlayerID)
	if p == nil || !p.IsAlive() {
		return nil
	}
	t := p.GetTask(a.TaskID)
	if t == nil {
		return nil
	}

	t.Completed = !t.Completed
	entry := playerEntry(model.LogTaskCompleted, p)
	if !t.Completed {
		entry.Type = model.LogTaskReopened
	}
	entry.Detail = t.Text
	m.record(s, entry)
	return nil
}

func (m *Machine) toggleStatus(s *model.Session, a Action) error {
	if s.IsEnded() {
		return nil
	}
	if err := requirePhase(s, a, model.PhaseMission); err != nil {
		return err
	}
	p := s.GetPlayer(a.PlayerID)
	if p == nil {
		return nil
	}

	if p.IsAlive() {
		p.Status = model.StatusEliminated
		m.record(s, playerEntry(model.LogPlayerEliminated, p))
	} else {
		p.Status = model.StatusAlive
		m.record(s, playerEntry(model.LogPlayerRevived, p))
	}
	return nil
}

func (m *Machine) callMeeting(s *model.Session, a Action) error {
	if s.IsEnded() {
		return nil
	}
	if err := requirePhase(s, a, model.PhaseMission); err != nil {
		return err
	}
	s.Phase = model.PhaseMeeting
	s.SuspectID = nil
	m.record(s, model.LogEntry{Type: model.LogMeetingCalled})
	return nil
}

func (m *Machine) drawPrompt(s *model.Session, _ Action) error {
	if s.IsEnded() {
		return nil
	}
	prompt, ok := random.Pick(m.random, m.banks.Prompts)
	if !ok {
		return nil
	}
	s.Prompt = prompt
	m.record(s, model.LogEntry{Type: model.LogPromptDrawn, Detail: prompt})
	return nil
}
