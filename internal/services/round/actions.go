package round

import "github.com/mcoot/susround/internal/model"

// ActionType identifies a player-facing action
type ActionType string

const (
	ActionAddPlayer        ActionType = "add_player"
	ActionRemovePlayer     ActionType = "remove_player"
	ActionSetImpostorCount ActionType = "set_impostor_count"
	ActionStartRound       ActionType = "start_round"
	ActionToggleReveal     ActionType = "toggle_reveal"
	ActionAdvanceCard      ActionType = "advance_card"
	ActionSkipReveal       ActionType = "skip_reveal"
	ActionToggleTask       ActionType = "toggle_task"
	ActionToggleStatus     ActionType = "toggle_status"
	ActionCallMeeting      ActionType = "call_meeting"
	ActionSelectSuspect    ActionType = "select_suspect"
	ActionConfirmEjection  ActionType = "confirm_ejection"
	ActionSkipVote         ActionType = "skip_vote"
	ActionDrawPrompt       ActionType = "draw_prompt"
	ActionResetRound       ActionType = "reset_round"
	ActionResetLobby       ActionType = "reset_lobby"
)

// Action is a single input to the machine. Only the fields relevant to the
// type are read.
type Action struct {
	Type     ActionType     `json:"type"`
	Name     string         `json:"name,omitempty"`
	PlayerID model.PlayerID `json:"player_id,omitempty"`
	TaskID   model.TaskID   `json:"task_id,omitempty"`
	Count    int            `json:"count,omitempty"`
}

func AddPlayer(name string) Action {
	return Action{Type: ActionAddPlayer, Name: name}
}

func RemovePlayer(id model.PlayerID) Action {
	return Action{Type: ActionRemovePlayer, PlayerID: id}
}

func SetImpostorCount(n int) Action {
	return Action{Type: ActionSetImpostorCount, Count: n}
}

func StartRound() Action {
	return Action{Type: ActionStartRound}
}

func ToggleReveal() Action {
	return Action{Type: ActionToggleReveal}
}

func AdvanceCard() Action {
	return Action{Type: ActionAdvanceCard}
}

func SkipReveal() Action {
	return Action{Type: ActionSkipReveal}
}

func ToggleTask(playerID model.PlayerID, taskID model.TaskID) Action {
	return Action{Type: ActionToggleTask, PlayerID: playerID, TaskID: taskID}
}

func ToggleStatus(playerID model.PlayerID) Action {
	return Action{Type: ActionToggleStatus, PlayerID: playerID}
}

func CallMeeting() Action {
	return Action{Type: ActionCallMeeting}
}

// SelectSuspect selects a suspect; an empty id clears the selection
func SelectSuspect(playerID model.PlayerID) Action {
	return Action{Type: ActionSelectSuspect, PlayerID: playerID}
}

func ConfirmEjection() Action {
	return Action{Type: ActionConfirmEjection}
}

func SkipVote() Action {
	return Action{Type: ActionSkipVote}
}

func DrawPrompt() Action {
	return Action{Type: ActionDrawPrompt}
}

func ResetRound() Action {
	return Action{Type: ActionResetRound}
}

func ResetLobby() Action {
	return Action{Type: ActionResetLobby}
}
