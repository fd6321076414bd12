package round

import "github.com/mcoot/susround/internal/model"

func (m *Machine) toggleReveal(s *model.Session, a Action) error {
	if err := requirePhase(s, a, model.PhaseReveal); err != nil {
		return err
	}
	s.RevealShown = !s.RevealShown
	return nil
}

func (m *Machine) advanceCard(s *model.Session, a Action) error {
	if err := requirePhase(s, a, model.PhaseReveal); err != nil {
		return err
	}
	if p := s.RevealPlayer(); p != nil {
		p.CardSeen = true
	}
	s.RevealShown = false

	if s.RevealIndex >= len(s.Players)-1 {
		m.startMission(s)
		return nil
	}
	s.RevealIndex++
	return nil
}

func (m *Machine) skipReveal(s *model.Session, a Action) error {
	if err := requirePhase(s, a, model.PhaseReveal); err != nil {
		return err
	}
	for i := range s.Players {
		s.Players[i].CardSeen = true
	}
	m.startMission(s)
	return nil
}

func (m *Machine) startMission(s *model.Session) {
	s.Phase = model.PhaseMission
	s.RevealIndex = 0
	s.RevealShown = false
	m.record(s, model.LogEntry{Type: model.LogMissionStarted})
}
