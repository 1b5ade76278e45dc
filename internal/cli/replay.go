package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-ssr-template/internal/app/state"
	"github.com/jsamuelsen11/go-ssr-template/internal/replay"
)

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Fold an action log through the reducers and print the final tree",
		Long: `Replay a YAML action log through the root reducer and print the
resulting state tree as JSON.

Examples:
  ssrctl replay testdata/login_flow.yaml
  ssrctl replay -v session.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

func runReplay(opts *RootOptions, cmd *cobra.Command, path string) error {
	l, err := replay.Load(path)
	if err != nil {
		if errors.Is(err, replay.ErrInvalidLog) {
			return WrapExitError(ExitFailure, "invalid action log", err)
		}
		return WrapExitError(ExitCommandError, "failed to read action log", err)
	}

	actions, err := l.Actions(state.Actions())
	if err != nil {
		return WrapExitError(ExitFailure, "invalid action log", err)
	}

	if opts.Verbose {
		for i, a := range actions {
			fmt.Fprintf(cmd.ErrOrStderr(), "%3d %s\n", i, a.Type())
		}
	}

	out, err := replay.Encode(replay.Fold(l.Initial(), actions))
	if err != nil {
		return WrapExitError(ExitFailure, "failed to encode state", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
