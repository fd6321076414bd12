package assignment

import (
	"fmt"

	"github.com/mcoot/susround/internal/content"
	"github.com/mcoot/susround/internal/dependencies/random"
	"github.com/mcoot/susround/internal/model"
)

const (
	// MinPlayers is the smallest roster a round can start with
	MinPlayers = 4
	// MaxImpostorCap bounds the impostor count regardless of roster size
	MaxImpostorCap = 3
	// AnalystMinPlayers is the smallest roster that gets an Analyst
	AnalystMinPlayers = 6

	CrewmateTaskCount = 4
	ImpostorTaskCount = 3
	AnalystTaskCount  = 3
)

// MaxImpostors returns the largest impostor count allowed for n players:
// n/3 (at least 1), capped at MaxImpostorCap
func MaxImpostors(n int) int {
	return clamp(n/3, 1, MaxImpostorCap)
}

// ClampImpostors clamps a requested impostor count to [1, MaxImpostors(n)]
func ClampImpostors(requested, n int) int {
	return clamp(requested, 1, MaxImpostors(n))
}

// TaskCount returns the size of the hand dealt to a role
func TaskCount(role model.Role) int {
	switch role {
	case model.RoleImpostor:
		return ImpostorTaskCount
	case model.RoleAnalyst:
		return AnalystTaskCount
	default:
		return CrewmateTaskCount
	}
}

// Engine deals roles and tasks at the start of a round
type Engine struct {
	banks  *content.Banks
	random random.Random
}

// New creates a new assignment Engine
func New(banks *content.Banks, random random.Random) *Engine {
	return &Engine{
		banks:  banks,
		random: random,
	}
}

// Assign deals roles and task hands to the roster and returns the new roster.
// Roster order is kept: the shuffle only decides which positions receive
// which role. Draws happen in a fixed order (shuffle, Analyst pick, then each
// player's hand in roster order) so a seeded source replays exactly.
func (e *Engine) Assign(players []model.Player, impostorCount int) ([]model.Player, error) {
	n := len(players)
	if n < MinPlayers {
		return nil, fmt.Errorf("%w: have %d", model.ErrInsufficientPlayers, n)
	}
	impostorCount = ClampImpostors(impostorCount, n)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	random.Shuffle(e.random, order)

	roles := make([]model.Role, n)
	for _, idx := range order[:impostorCount] {
		roles[idx] = model.RoleImpostor
	}
	candidates := order[impostorCount:]
	for _, idx := range candidates {
		roles[idx] = model.RoleCrewmate
	}
	if n >= AnalystMinPlayers && len(candidates) > 0 {
		roles[candidates[e.random.Intn(len(candidates))]] = model.RoleAnalyst
	}

	out := make([]model.Player, n)
	for i, p := range players {
		p = p.Clone()
		p.Role = roles[i]
		p.Tasks = e.dealTasks(roles[i])
		p.Status = model.StatusAlive
		p.CardSeen = false
		out[i] = p
	}
	return out, nil
}

func (e *Engine) dealTasks(role model.Role) []model.Task {
	kind := role.TaskKind()
	texts := random.Sample(e.random, e.banks.ForKind(kind), TaskCount(role))
	tasks := make([]model.Task, len(texts))
	for i, text := range texts {
		tasks[i] = model.Task{
			ID:   model.TaskID(fmt.Sprintf("t%d", i+1)),
			Text: text,
			Kind: kind,
		}
	}
	return tasks
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
