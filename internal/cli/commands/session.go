package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-code098/Neo-Translate/internal/cli/ui"
)

// sessionCmd groups session boundary operations
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "manage the consultation session",
}

// sessionClearCmd starts a fresh consultation
var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "start a fresh consultation",
	Long: `Start a fresh consultation.

Removes every turn and every stored audio clip on the server. Running it
against an already empty consultation is harmless.`,
	Example: `  $ medctl session clear`,
	RunE:    runSessionClear,
}

func init() {
	sessionClearCmd.SilenceUsage = true
	sessionCmd.AddCommand(sessionClearCmd)
}

func runSessionClear(cmd *cobra.Command, args []string) error {
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

	if err := apiClient.ClearSession(ctx); err != nil {
		ui.PrintError("failed to clear session: %v", err)
		return fmt.Errorf("session operation failed")
	}

	ui.PrintSuccess("consultation cleared")
	return nil
}
