package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-code098/Neo-Translate/internal/cli/ui"
)

var historyQuery string

// historyCmd is the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "read the consultation log",
	Long: `Read the ordered consultation log.

Every turn shows both sides of the language barrier: the text as it was
spoken or typed, and the translation the other participant saw. Turns that
started as recordings carry the URL of the stored clip.`,
	Example: `  # Full log
  $ medctl history

  # Only turns mentioning a word
  $ medctl history -q headache`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyQuery, "query", "q", "", "filter turns containing this substring")

	historyCmd.SilenceUsage = true
}

func runHistory(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, _, err := newClient()
	if err != nil {
		return err
	}

	turns, err := apiClient.History(ctx, historyQuery)
	if err != nil {
		ui.PrintError("failed to fetch history: %v", err)
		return fmt.Errorf("history operation failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderTurns(turns))

	return nil
}
