package response

import (
	"time"

	"github.com/mcoot/susround/internal/model"
	"github.com/mcoot/susround/internal/services/assignment"
)

// Task represents a dealt task in API responses
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Kind      string `json:"kind"`
	Completed bool   `json:"completed"`
}

// Player represents a seated player in API responses
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	CardSeen bool   `json:"card_seen"`
	Tasks    []Task `json:"tasks"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	tasks := make([]Task, len(p.Tasks))
	for i, t := range p.Tasks {
		tasks[i] = Task{
			ID:        string(t.ID),
			Text:      t.Text,
			Kind:      string(t.Kind),
			Completed: t.Completed,
		}
	}
	return Player{
		ID:       string(p.ID),
		Name:     p.Name,
		Role:     string(p.Role),
		Status:   string(p.Status),
		CardSeen: p.CardSeen,
		Tasks:    tasks,
	}
}

// Reveal describes the card currently being passed around
type Reveal struct {
	Index      int    `json:"index"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Shown      bool   `json:"shown"`
}

// Outcome represents a resolved round
type Outcome struct {
	Winner string `json:"winner"`
	Reason string `json:"reason"`
}

// LogEntry represents a mission log line
type LogEntry struct {
	Type       string    `json:"type"`
	At         time.Time `json:"at"`
	PlayerID   string    `json:"player_id,omitempty"`
	PlayerName string    `json:"player_name,omitempty"`
	Detail     string    `json:"detail,omitempty"`
}

// Session is the projected view of a session: phase is what players see,
// stored_phase is what the machine holds
type Session struct {
	Code          string     `json:"code"`
	Round         int        `json:"round"`
	Phase         string     `json:"phase"`
	StoredPhase   string     `json:"stored_phase"`
	ImpostorCount int        `json:"impostor_count"`
	MaxImpostors  int        `json:"max_impostors"`
	Players       []Player   `json:"players"`
	Reveal        *Reveal    `json:"reveal,omitempty"`
	SuspectID     *string    `json:"suspect_id"`
	Outcome       *Outcome   `json:"outcome"`
	Log           []LogEntry `json:"log"`
	Prompt        string     `json:"prompt,omitempty"`
	Error         string     `json:"error,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// SessionFromModel converts a model.Session
func SessionFromModel(s *model.Session) Session {
	players := make([]Player, len(s.Players))
	for i := range s.Players {
		players[i] = PlayerFromModel(&s.Players[i])
	}

	log := make([]LogEntry, len(s.Log))
	for i, e := range s.Log {
		log[i] = LogEntry{
			Type:       string(e.Type),
			At:         e.At,
			PlayerID:   string(e.PlayerID),
			PlayerName: e.PlayerName,
			Detail:     e.Detail,
		}
	}

	var reveal *Reveal
	if p := s.RevealPlayer(); p != nil {
		reveal = &Reveal{
			Index:      s.RevealIndex,
			PlayerID:   string(p.ID),
			PlayerName: p.Name,
			Shown:      s.RevealShown,
		}
	}

	var suspect *string
	if s.SuspectID != nil {
		id := string(*s.SuspectID)
		suspect = &id
	}

	var outcome *Outcome
	if s.Outcome != nil {
		outcome = &Outcome{
			Winner: string(s.Outcome.Winner),
			Reason: s.Outcome.Reason,
		}
	}

	return Session{
		Code:          string(s.Code),
		Round:         s.Round,
		Phase:         string(s.DisplayPhase()),
		StoredPhase:   string(s.Phase),
		ImpostorCount: s.ImpostorCount,
		MaxImpostors:  assignment.MaxImpostors(len(s.Players)),
		Players:       players,
		Reveal:        reveal,
		SuspectID:     suspect,
		Outcome:       outcome,
		Log:           log,
		Prompt:        s.Prompt,
		Error:         s.Error,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// SessionList is the response for listing sessions
type SessionList struct {
	Sessions []string `json:"sessions"`
}

// SessionListFromCodes converts session codes
func SessionListFromCodes(codes []model.SessionCode) SessionList {
	sessions := make([]string, len(codes))
	for i, c := range codes {
		sessions[i] = string(c)
	}
	return SessionList{Sessions: sessions}
}

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}
