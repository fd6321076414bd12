package round

import (
	"fmt"
	"strings"

	"github.com/mcoot/susround/internal/model"
	"github.com/mcoot/susround/internal/services/assignment"
)

func (m *Machine) addPlayer(s *model.Session, a Action) error {
	if err := requirePhase(s, a, model.PhaseLobby); err != nil {
		return err
	}
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return model.ErrEmptyName
	}
	if s.HasPlayerNamed(name) {
		return fmt.Errorf("%w: %q", model.ErrDuplicateName, name)
	}

	p := model.NewPlayer(model.PlayerID(m.ids.NewID()), name)
	s.Players = append(s.Players, p)
	m.record(s, playerEntry(model.LogPlayerAdded, &p))
	return nil
}

// removePlayer is accepted in every phase. Roles are never re-dealt; the
// outcome is simply re-evaluated against the smaller roster.
func (m *Machine) removePlayer(s *model.Session, a Action) error {
	idx := s.PlayerIndex(a.PlayerID)
	if idx < 0 {
		return nil
	}
	removed := s.Players[idx]
	s.Players = append(s.Players[:idx], s.Players[idx+1:]...)

	if len(s.Players) == 0 {
		clearSession(s)
		return nil
	}

	s.ImpostorCount = assignment.ClampImpostors(s.ImpostorCount, len(s.Players))
	if s.SuspectID != nil && *s.SuspectID == removed.ID {
		s.SuspectID = nil
	}
	m.record(s, playerEntry(model.LogPlayerRemoved, &removed))

	if s.Phase == model.PhaseReveal {
		switch {
		case idx < s.RevealIndex:
			s.RevealIndex--
		case idx == s.RevealIndex:
			s.RevealShown = false
			// Everyone before the cursor has seen their card
			if s.RevealIndex >= len(s.Players) {
				m.startMission(s)
			}
		}
	}
	return nil
}

func (m *Machine) setImpostorCount(s *model.Session, a Action) error {
	s.ImpostorCount = assignment.ClampImpostors(a.Count, len(s.Players))
	return nil
}

func (m *Machine) startRound(s *model.Session, a Action) error {
	if err := requirePhase(s, a, model.PhaseLobby); err != nil {
		return err
	}
	players, err := m.assigner.Assign(s.Players, s.ImpostorCount)
	if err != nil {
		return err
	}

	s.ImpostorCount = assignment.ClampImpostors(s.ImpostorCount, len(players))
	s.Players = players
	s.Phase = model.PhaseReveal
	s.RevealIndex = 0
	s.RevealShown = false
	s.Round++
	s.Outcome = nil
	s.SuspectID = nil
	s.Prompt = ""
	s.Log = []model.LogEntry{}

	m.record(s, model.LogEntry{
		Type:   model.LogRoundArmed,
		Detail: fmt.Sprintf("round %d armed: %d players, %d impostors", s.Round, len(players), s.ImpostorCount),
	})
	return nil
}

func (m *Machine) resetRound(s *model.Session, _ Action) error {
	for i := range s.Players {
		p := &s.Players[i]
		p.Role = model.RoleCrewmate
		p.Tasks = nil
		p.Status = model.StatusAlive
		p.CardSeen = false
	}
	s.Phase = model.PhaseLobby
	s.ImpostorCount = assignment.ClampImpostors(s.ImpostorCount, len(s.Players))
	s.RevealIndex = 0
	s.RevealShown = false
	s.SuspectID = nil
	s.Outcome = nil
	s.Prompt = ""
	s.Log = []model.LogEntry{}
	return nil
}

func (m *Machine) resetLobby(s *model.Session, _ Action) error {
	clearSession(s)
	return nil
}

// clearSession drops the roster and every transient field, keeping only the
// session's identity
func clearSession(s *model.Session) {
	*s = model.NewSession(s.Code, s.CreatedAt)
}
