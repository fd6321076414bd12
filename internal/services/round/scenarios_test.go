package round

import (
	"github.com/mcoot/susround/internal/model"
	"github.com/mcoot/susround/internal/services/outcome"
)

// Full rounds played through the machine. Deals use an identity shuffle, so
// player-1 is always the single impostor.

func (s *MachineSuite) TestScenarioEliminatingImpostorWinsForCrew() {
	s.startMission(4, 1)
	s.Zero(countRole(s.state.Players, model.RoleAnalyst))

	s.apply(ToggleStatus("player-1"))

	s.Require().NotNil(s.state.Outcome)
	s.Equal(model.TeamCrewmates, s.state.Outcome.Winner)
	s.Equal(outcome.ReasonImpostorsNeutralized, s.state.Outcome.Reason)
	s.Equal(model.PhaseEnded, s.state.DisplayPhase())
	s.Equal(model.LogOutcomeResolved, s.state.Log[0].Type)
}

func (s *MachineSuite) TestScenarioParityWinsForImpostors() {
	s.startMission(4, 1)

	s.apply(ToggleStatus("player-2"))
	s.Nil(s.state.Outcome)
	s.apply(ToggleStatus("player-3"))

	s.Require().NotNil(s.state.Outcome)
	s.Equal(model.TeamImpostors, s.state.Outcome.Winner)
	s.Equal(outcome.ReasonParity, s.state.Outcome.Reason)
}

func (s *MachineSuite) TestScenarioAllCrewTasksWin() {
	s.startMission(5, 1)
	crew := []model.PlayerID{"player-2", "player-3", "player-4", "player-5"}
	tasks := []model.TaskID{"t1", "t2", "t3", "t4"}

	for i, pid := range crew {
		for j, tid := range tasks {
			last := i == len(crew)-1 && j == len(tasks)-1
			if last {
				s.Nil(s.state.Outcome, "impostor tasks are not required")
			}
			s.apply(ToggleTask(pid, tid))
		}
	}

	s.False(s.player("player-1").GetTask("t1").Completed)
	s.Require().NotNil(s.state.Outcome)
	s.Equal(model.TeamCrewmates, s.state.Outcome.Winner)
	s.Equal(outcome.ReasonTasksCompleted, s.state.Outcome.Reason)
	s.Equal(1, s.countLog(model.LogOutcomeResolved))
}

func (s *MachineSuite) TestScenarioRevealWalkthrough() {
	s.startRound(5, 1)

	for i := 0; i < 5; i++ {
		s.Equal(model.PhaseReveal, s.state.Phase)
		s.Equal(i, s.state.RevealIndex)
		s.apply(AdvanceCard())
	}

	s.Equal(model.PhaseMission, s.state.Phase)
	for _, p := range s.state.Players {
		s.True(p.CardSeen, "player %s", p.ID)
	}

	// Reveal never has an outcome, even for a roster that would otherwise end
	wiped := s.state.Clone().Players
	for i := range wiped {
		wiped[i].Status = model.StatusEliminated
	}
	s.Nil(outcome.ForPhase(model.PhaseReveal, wiped))
	s.NotNil(outcome.ForPhase(model.PhaseMission, wiped))
}

func (s *MachineSuite) TestScenarioRemovingEveryoneResetsSession() {
	s.startMission(4, 1)
	s.apply(ToggleStatus("player-1"))
	s.Require().NotNil(s.state.Outcome)

	for _, id := range []model.PlayerID{"player-1", "player-2", "player-3", "player-4"} {
		s.apply(RemovePlayer(id))
	}

	s.Equal(model.PhaseLobby, s.state.Phase)
	s.Empty(s.state.Players)
	s.Empty(s.state.Log)
	s.Nil(s.state.Outcome)
	s.Nil(s.state.SuspectID)
	s.Empty(s.state.Prompt)
	s.False(s.state.RevealShown)
	s.Equal(0, s.state.RevealIndex)
	s.Equal(model.DefaultImpostorCount, s.state.ImpostorCount)
}

func (s *MachineSuite) TestScenarioRemovingEveryoneFromMeeting() {
	s.startMission(4, 1)
	s.apply(CallMeeting())
	s.apply(SelectSuspect("player-2"))

	for _, id := range []model.PlayerID{"player-4", "player-3", "player-2", "player-1"} {
		s.apply(RemovePlayer(id))
	}

	s.Equal(model.PhaseLobby, s.state.Phase)
	s.Nil(s.state.SuspectID)
	s.Empty(s.state.Log)
}

func (s *MachineSuite) TestSelectingSameSuspectTwiceClears() {
	s.startMission(5, 1)
	s.apply(CallMeeting())

	s.apply(SelectSuspect("player-2"))
	s.Require().NotNil(s.state.SuspectID)
	s.apply(SelectSuspect("player-2"))

	s.Nil(s.state.SuspectID)
}

func countRole(players []model.Player, role model.Role) int {
	n := 0
	for _, p := range players {
		if p.Role == role {
			n++
		}
	}
	return n
}
