package outcome

import "github.com/mcoot/susround/internal/model"

// Reasons attached to each win condition
const (
	ReasonImpostorsNeutralized = "all impostors neutralized"
	ReasonParity               = "impostors reached parity"
	ReasonTasksCompleted       = "all critical tasks completed"
)

// Evaluate decides whether the roster has reached a terminal state.
// Rules apply in order and the first match wins:
//  1. empty roster: no outcome
//  2. no alive impostors but some alive crew: crewmates win
//  3. no alive crew, or alive impostors >= alive crew: impostors win
//  4. every non-impostor task completed (and there is at least one): crewmates win
//
// A fully eliminated roster fails rule 2 and lands on rule 3, so it counts as
// an impostor win.
func Evaluate(players []model.Player) *model.Outcome {
	if len(players) == 0 {
		return nil
	}

	var aliveCrew, aliveImpostors int
	for _, p := range players {
		if !p.IsAlive() {
			continue
		}
		if p.Role == model.RoleImpostor {
			aliveImpostors++
		} else if p.Role.CrewAligned() {
			aliveCrew++
		}
	}

	if aliveImpostors == 0 && aliveCrew > 0 {
		return &model.Outcome{Winner: model.TeamCrewmates, Reason: ReasonImpostorsNeutralized}
	}
	if aliveCrew == 0 || aliveImpostors >= aliveCrew {
		return &model.Outcome{Winner: model.TeamImpostors, Reason: ReasonParity}
	}

	var total, completed int
	for _, p := range players {
		for _, t := range p.Tasks {
			if t.Kind == model.TaskKindImpostor {
				continue
			}
			total++
			if t.Completed {
				completed++
			}
		}
	}
	if total > 0 && completed == total {
		return &model.Outcome{Winner: model.TeamCrewmates, Reason: ReasonTasksCompleted}
	}

	return nil
}

// ForPhase evaluates the roster only where a round can end; lobby and reveal
// never have an outcome
func ForPhase(phase model.Phase, players []model.Player) *model.Outcome {
	switch phase {
	case model.PhaseMission, model.PhaseMeeting:
		return Evaluate(players)
	default:
		return nil
	}
}
