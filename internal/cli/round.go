package cli

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"
)

// dispatch sends a round action for the current session and prints the
// resulting session
func dispatch(cmd *cobra.Command, method, suffix string, body any) error {
	path, err := sessionPath(suffix)
	if err != nil {
		return err
	}

	var result Session

	switch method {
	case http.MethodPost:
		err = client.Post(path, body, &result)
	case http.MethodPut:
		err = client.Put(path, body, &result)
	case http.MethodDelete:
		err = client.Delete(path, &result)
	default:
		err = fmt.Errorf("unsupported method %s", method)
	}
	if err != nil {
		return err
	}

	out := NewOutput(cfg.Output, cmd.OutOrStdout())
	out.Print(result)
	return nil
}

// actionCmd builds a no-argument command that triggers a single action
func actionCmd(use, short, method, suffix string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(cmd, method, suffix, nil)
		},
	}
}

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Roster commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Seat a player (lobby only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(cmd, http.MethodPost, "/players", map[string]string{"name": args[0]})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(cmd, http.MethodDelete, "/players/"+args[0], nil)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status <player-id>",
		Short: "Toggle a player between alive and eliminated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(cmd, http.MethodPost, "/players/"+args[0]+"/status", nil)
		},
	})

	return cmd
}

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Task commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <player-id> <task-id>",
		Short: "Toggle a task between done and not done",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(cmd, http.MethodPost, fmt.Sprintf("/players/%s/tasks/%s", args[0], args[1]), nil)
		},
	})

	return cmd
}

func newImpostorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "impostors <count>",
		Short: "Set how many impostors the next round deals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("count must be a number: %w", err)
			}
			return dispatch(cmd, http.MethodPut, "/impostors", map[string]int{"count": n})
		},
	}
}

func newRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Round commands",
	}

	cmd.AddCommand(actionCmd("start", "Deal roles and tasks and begin the reveal", http.MethodPost, "/round"))
	cmd.AddCommand(actionCmd("reset", "Return to the lobby keeping the roster", http.MethodDelete, "/round"))

	return cmd
}

func newLobbyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lobby",
		Short: "Lobby commands",
	}

	cmd.AddCommand(actionCmd("reset", "Clear the roster and start over", http.MethodPost, "/reset"))

	return cmd
}

func newRevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Role card commands",
	}

	cmd.AddCommand(actionCmd("show", "Show or hide the current card", http.MethodPost, "/reveal/toggle"))
	cmd.AddCommand(actionCmd("next", "Pass the device to the next player", http.MethodPost, "/reveal/advance"))
	cmd.AddCommand(actionCmd("skip", "Skip the remaining cards", http.MethodPost, "/reveal/skip"))

	return cmd
}

func newMeetingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meeting",
		Short: "Meeting commands",
	}

	cmd.AddCommand(actionCmd("call", "Call an emergency meeting", http.MethodPost, "/meeting"))
	cmd.AddCommand(&cobra.Command{
		Use:   "suspect [player-id]",
		Short: "Select a suspect, or clear the selection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{}
			if len(args) == 1 {
				body["player_id"] = args[0]
			}
			return dispatch(cmd, http.MethodPut, "/meeting/suspect", body)
		},
	})
	cmd.AddCommand(actionCmd("eject", "Eject the selected suspect", http.MethodPost, "/meeting/eject"))
	cmd.AddCommand(actionCmd("skip", "Skip the vote", http.MethodPost, "/meeting/skip"))

	return cmd
}

func newPromptCmd() *cobra.Command {
	return actionCmd("prompt", "Draw a discussion prompt", http.MethodPost, "/prompt")
}
