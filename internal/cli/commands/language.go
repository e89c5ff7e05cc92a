package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-code098/Neo-Translate/internal/cli/ui"
)

// languageCmd reads or changes the patient language
var languageCmd = &cobra.Command{
	Use:   "language [name]",
	Short: "show or change the patient language",
	Long: `Show or change the configured patient language.

Without arguments, prints the current patient language and the supported set.
With a language name, switches the consultation to that language for all
subsequent messages.`,
	Example: `  # Show the current configuration
  $ medctl language

  # Switch the patient language
  $ medctl language French`,
	RunE: runLanguage,
}

func init() {
	languageCmd.SilenceUsage = true
}

func runLanguage(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		ui.PrintError("unexpected argument: %s", args[1])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, _, err := newClient()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		cfg, err := apiClient.SetLanguage(ctx, args[0])
		if err != nil {
			ui.PrintError("failed to set language: %v", err)
			return fmt.Errorf("language operation failed")
		}

		ui.PrintSuccess("patient language set to %s", cfg.PatientLanguage)
		return nil
	}

	cfg, err := apiClient.GetLanguage(ctx)
	if err != nil {
		ui.PrintError("failed to fetch language config: %v", err)
		return fmt.Errorf("language operation failed")
	}

	fmt.Println()
	ui.PrintBold("Patient language: %s", cfg.PatientLanguage)
	fmt.Printf("Supported: %s\n", strings.Join(cfg.Supported, ", "))

	return nil
}
