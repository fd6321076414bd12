package model

import "time"

// LogEntryType identifies the domain event recorded in the mission log
type LogEntryType string

const (
	// Roster events
	LogPlayerAdded   LogEntryType = "player_added"
	LogPlayerRemoved LogEntryType = "player_removed"

	// Round flow events
	LogRoundArmed     LogEntryType = "round_armed"
	LogMissionStarted LogEntryType = "mission_started"
	LogMeetingCalled  LogEntryType = "meeting_called"
	LogPlayerEjected  LogEntryType = "player_ejected"
	LogVoteSkipped    LogEntryType = "vote_skipped"
	LogPromptDrawn    LogEntryType = "prompt_drawn"

	// Mission events
	LogTaskCompleted    LogEntryType = "task_completed"
	LogTaskReopened     LogEntryType = "task_reopened"
	LogPlayerEliminated LogEntryType = "player_eliminated"
	LogPlayerRevived    LogEntryType = "player_revived"

	// Outcome events
	LogOutcomeResolved LogEntryType = "outcome_resolved"
	LogOutcomeCleared  LogEntryType = "outcome_cleared"
)

// LogEntry is a single mission log record. Formatting for display is left
// to the presentation layer.
type LogEntry struct {
	Type       LogEntryType
	At         time.Time
	PlayerID   PlayerID // Empty for round-wide events
	PlayerName string
	Detail     string
}
