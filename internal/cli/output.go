package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// logLinesShown is how many mission log entries the text view prints
const logLinesShown = 5

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case SessionList:
		o.printSessionList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Task response type (matches API)
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Kind      string `json:"kind"`
	Completed bool   `json:"completed"`
}

// Player response type
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	CardSeen bool   `json:"card_seen"`
	Tasks    []Task `json:"tasks"`
}

// Reveal response type
type Reveal struct {
	Index      int    `json:"index"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Shown      bool   `json:"shown"`
}

// Outcome response type
type Outcome struct {
	Winner string `json:"winner"`
	Reason string `json:"reason"`
}

// LogEntry response type
type LogEntry struct {
	Type       string `json:"type"`
	PlayerName string `json:"player_name,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

// Session response type
type Session struct {
	Code          string     `json:"code"`
	Round         int        `json:"round"`
	Phase         string     `json:"phase"`
	ImpostorCount int        `json:"impostor_count"`
	MaxImpostors  int        `json:"max_impostors"`
	Players       []Player   `json:"players"`
	Reveal        *Reveal    `json:"reveal,omitempty"`
	SuspectID     *string    `json:"suspect_id"`
	Outcome       *Outcome   `json:"outcome"`
	Log           []LogEntry `json:"log"`
	Prompt        string     `json:"prompt,omitempty"`
	Error         string     `json:"error,omitempty"`
}

// SessionList response type
type SessionList struct {
	Sessions []string `json:"sessions"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSession(s Session) {
	_, _ = fmt.Fprintf(o.w, "Session: %s\n", s.Code)
	_, _ = fmt.Fprintf(o.w, "Round: %d\n", s.Round)
	_, _ = fmt.Fprintf(o.w, "Phase: %s\n", s.Phase)
	_, _ = fmt.Fprintf(o.w, "Impostors: %d (max %d)\n", s.ImpostorCount, s.MaxImpostors)

	if s.Reveal != nil {
		shown := "hidden"
		if s.Reveal.Shown {
			shown = "shown"
		}
		_, _ = fmt.Fprintf(o.w, "Card %d/%d: %s (%s)\n", s.Reveal.Index+1, len(s.Players), s.Reveal.PlayerName, shown)
	}

	_, _ = fmt.Fprintf(o.w, "Players (%d):\n", len(s.Players))
	for _, p := range s.Players {
		o.printPlayer(p, s)
	}

	if s.Prompt != "" {
		_, _ = fmt.Fprintf(o.w, "Prompt: %s\n", s.Prompt)
	}

	if s.Outcome != nil {
		_, _ = fmt.Fprintf(o.w, "\nWinner: %s (%s)\n", s.Outcome.Winner, s.Outcome.Reason)
	}

	if len(s.Log) > 0 {
		_, _ = fmt.Fprintln(o.w, "\nRecent:")
		for i, e := range s.Log {
			if i == logLinesShown {
				break
			}
			_, _ = fmt.Fprintf(o.w, "  - %s\n", describeLogEntry(e))
		}
	}

	if s.Error != "" {
		_, _ = fmt.Fprintf(o.w, "\nError: %s\n", s.Error)
	}
}

func (o *Output) printPlayer(p Player, s Session) {
	var flags []string
	if p.Status != "alive" {
		flags = append(flags, p.Status)
	}
	if s.SuspectID != nil && *s.SuspectID == p.ID {
		flags = append(flags, "suspect")
	}
	flagStr := ""
	if len(flags) > 0 {
		flagStr = " [" + strings.Join(flags, ", ") + "]"
	}

	// Roles and tasks only exist once a round is dealt
	if len(p.Tasks) == 0 {
		_, _ = fmt.Fprintf(o.w, "  - %s (%s)%s\n", p.Name, p.ID, flagStr)
		return
	}

	done := 0
	for _, t := range p.Tasks {
		if t.Completed {
			done++
		}
	}
	_, _ = fmt.Fprintf(o.w, "  - %s (%s) %s, tasks %d/%d%s\n", p.Name, p.ID, p.Role, done, len(p.Tasks), flagStr)
	if s.Phase != "lobby" {
		for _, t := range p.Tasks {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			_, _ = fmt.Fprintf(o.w, "      [%s] %s %s\n", mark, t.ID, t.Text)
		}
	}
}

func describeLogEntry(e LogEntry) string {
	parts := []string{e.Type}
	if e.PlayerName != "" {
		parts = append(parts, e.PlayerName)
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	return strings.Join(parts, ": ")
}

func (o *Output) printSessionList(l SessionList) {
	if len(l.Sessions) == 0 {
		_, _ = fmt.Fprintln(o.w, "No sessions")
		return
	}
	for _, code := range l.Sessions {
		_, _ = fmt.Fprintln(o.w, code)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
