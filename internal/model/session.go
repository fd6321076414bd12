package model

import (
	"strings"
	"time"
)

// SessionCode is a human-readable identifier for a shared-device table
type SessionCode string

// Phase is the stored phase of a round
type Phase string

const (
	PhaseLobby   Phase = "lobby"   // Building the roster
	PhaseReveal  Phase = "reveal"  // Passing the device around for private role cards
	PhaseMission Phase = "mission" // Tasks and eliminations
	PhaseMeeting Phase = "meeting" // Emergency meeting vote

	// PhaseEnded is only ever produced by DisplayPhase, never stored
	PhaseEnded Phase = "ended"
)

// DefaultImpostorCount is the selector value for a fresh lobby
const DefaultImpostorCount = 1

// Session holds the complete state of one table. It is treated as an
// immutable value: transitions produce a new Session via Clone.
type Session struct {
	Code  SessionCode
	Round int // Number of rounds armed since the lobby was last cleared
	Phase Phase

	Players       []Player
	ImpostorCount int // Requested impostor count, clamped to the roster size

	// Reveal bookkeeping
	RevealIndex int
	RevealShown bool

	SuspectID *PlayerID // Meeting selection, nil when nothing is selected
	Outcome   *Outcome  // Cached evaluation, nil while the round continues

	Log    []LogEntry // Newest first
	Prompt string     // Last drawn prompt card, empty if none
	Error  string     // Current validation message, empty if none

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession creates an empty lobby session
func NewSession(code SessionCode, now time.Time) Session {
	return Session{
		Code:          code,
		Phase:         PhaseLobby,
		Players:       []Player{},
		ImpostorCount: DefaultImpostorCount,
		Log:           []LogEntry{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DisplayPhase projects the stored phase and outcome onto the phase shown to
// players. A resolved outcome during mission or meeting displays as ended.
func (s *Session) DisplayPhase() Phase {
	if s.Outcome != nil && (s.Phase == PhaseMission || s.Phase == PhaseMeeting) {
		return PhaseEnded
	}
	return s.Phase
}

// IsEnded returns true if the round is displayed as ended
func (s *Session) IsEnded() bool {
	return s.DisplayPhase() == PhaseEnded
}

// GetPlayer returns the player with the given ID, or nil if not found
func (s *Session) GetPlayer(id PlayerID) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// PlayerIndex returns the roster position of the player, or -1
func (s *Session) PlayerIndex(id PlayerID) int {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return i
		}
	}
	return -1
}

// HasPlayerNamed checks for a name clash, ignoring case and surrounding space
func (s *Session) HasPlayerNamed(name string) bool {
	name = strings.TrimSpace(name)
	for _, p := range s.Players {
		if strings.EqualFold(strings.TrimSpace(p.Name), name) {
			return true
		}
	}
	return false
}

// RevealPlayer returns the player whose card is currently up, or nil outside
// the reveal phase
func (s *Session) RevealPlayer() *Player {
	if s.Phase != PhaseReveal || s.RevealIndex < 0 || s.RevealIndex >= len(s.Players) {
		return nil
	}
	return &s.Players[s.RevealIndex]
}

// Clone returns a deep copy that shares no mutable memory with s
func (s Session) Clone() Session {
	if s.Players != nil {
		players := make([]Player, len(s.Players))
		for i, p := range s.Players {
			players[i] = p.Clone()
		}
		s.Players = players
	}
	if s.Log != nil {
		log := make([]LogEntry, len(s.Log))
		copy(log, s.Log)
		s.Log = log
	}
	if s.SuspectID != nil {
		id := *s.SuspectID
		s.SuspectID = &id
	}
	if s.Outcome != nil {
		o := *s.Outcome
		s.Outcome = &o
	}
	return s
}
