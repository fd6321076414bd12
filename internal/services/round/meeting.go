package round

import "github.com/mcoot/susround/internal/model"

// selectSuspect follows a toggle law: selecting the current suspect again
// clears the selection
func (m *Machine) selectSuspect(s *model.Session, a Action) error {
	if s.IsEnded() {
		return nil
	}
	if err := requirePhase(s, a, model.PhaseMeeting); err != nil {
		return err
	}
	if a.PlayerID == "" || (s.SuspectID != nil && *s.SuspectID == a.PlayerID) {
		s.SuspectID = nil
		return nil
	}
	p := s.GetPlayer(a.PlayerID)
	if p == nil || !p.IsAlive() {
		return nil
	}
	id := p.ID
	s.SuspectID = &id
	return nil
}

func (m *Machine) confirmEjection(s *model.Session, a Action) error {
	if s.IsEnded() {
		return nil
	}
	if err := requirePhase(s, a, model.PhaseMeeting); err != nil {
		return err
	}
	if s.SuspectID == nil {
		return model.ErrNoSuspectSelected
	}

	if p := s.GetPlayer(*s.SuspectID); p != nil {
		p.Status = model.StatusEliminated
		m.record(s, playerEntry(model.LogPlayerEjected, p))
	}
	s.SuspectID = nil
	s.Phase = model.PhaseMission
	return nil
}

func (m *Machine) skipVote(s *model.Session, a Action) error {
	if s.IsEnded() {
		return nil
	}
	if err := requirePhase(s, a, model.PhaseMeeting); err != nil {
		return err
	}
	s.SuspectID = nil
	s.Phase = model.PhaseMission
	m.record(s, model.LogEntry{Type: model.LogVoteSkipped})
	return nil
}
