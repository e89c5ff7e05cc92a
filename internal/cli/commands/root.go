package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-code098/Neo-Translate/internal/cli/ui"
)

const version = "0.1.0"

// serverFlag overrides the server address from the config file
var serverFlag string

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "medctl",
	Short:   "Bilingual medical consultation CLI",
	Version: version,
	Long: `A command-line tool for the Neo-Translate consultation server. Send messages
as the doctor or the patient, read the translated consultation log, generate
clinical summaries, and manage the patient language.`,
	Example: `  # Send a message as the doctor
  $ medctl send "How long have you had this pain?"

  # Send a message as the patient
  $ medctl send --role patient "Me duele la cabeza"

  # Read the consultation log
  $ medctl history

  # Generate the clinical summary
  $ medctl summary

  # Start a fresh consultation
  $ medctl session clear`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(formatVersion())
	return rootCmd.Execute()
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&serverFlag, "server", "s", "", "API server address (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(languageCmd)

	// Set custom template with bold uppercase headers
	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// formatVersion formats the version output
func formatVersion() string {
	return fmt.Sprintf("medctl version %s\n", version)
}
