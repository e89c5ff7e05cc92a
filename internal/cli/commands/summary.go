package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-code098/Neo-Translate/internal/cli/ui"
)

// summaryCmd is the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "generate the clinical summary",
	Long: `Generate a structured clinical summary of the current consultation.

The server reads the whole log and produces a report with patient symptoms,
diagnosis, and the medication plan. An empty consultation returns a fixed
placeholder without calling the language model.`,
	Example: `  $ medctl summary`,
	RunE:    runSummary,
}

func init() {
	summaryCmd.SilenceUsage = true
}

func runSummary(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	apiClient, _, err := newClient()
	if err != nil {
		return err
	}

	ui.PrintInfo("Generating clinical summary...")

	summary, err := apiClient.Summary(ctx)
	if err != nil {
		ui.PrintError("failed to generate summary: %v", err)
		return fmt.Errorf("summary operation failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderSummary(summary))

	return nil
}
