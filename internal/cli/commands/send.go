package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-code098/Neo-Translate/internal/cli/ui"
)

var (
	sendRole       string
	sendTargetLang string
	sendAudioFile  string
)

// sendCmd is the send command
var sendCmd = &cobra.Command{
	Use:   "send [text]",
	Short: "send a message into the consultation",
	Long: `Send a message into the consultation as the doctor or the patient.

The server translates the message for the other side of the conversation and
appends it to the consultation log. Pass --audio with a recorded clip instead
of text to have the server transcribe it first.`,
	Example: `  # Send as the doctor (default role)
  $ medctl send "How long have you had this pain?"

  # Send as the patient
  $ medctl send --role patient "Me duele la cabeza"

  # Send a recorded clip
  $ medctl send --role patient --audio ./clip.webm

  # Override the translation target
  $ medctl send --role doctor --target French "Take one tablet daily"`,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVarP(&sendRole, "role", "r", "", "speaker role: doctor or patient (default from config)")
	sendCmd.Flags().StringVarP(&sendTargetLang, "target", "t", "", "target language (derived from role when empty)")
	sendCmd.Flags().StringVarP(&sendAudioFile, "audio", "a", "", "path to a recorded audio clip")

	// Silence usage to avoid showing help on every error
	sendCmd.SilenceUsage = true
}

func runSend(cmd *cobra.Command, args []string) error {
	if sendAudioFile == "" && len(args) == 0 {
		ui.PrintError("message text or --audio is required")
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	apiClient, cfg, err := newClient()
	if err != nil {
		return err
	}

	role := sendRole
	if role == "" {
		role = cfg.Role
	}

	if sendAudioFile != "" {
		audio, err := os.ReadFile(sendAudioFile)
		if err != nil {
			ui.PrintError("failed to read audio file: %v", err)
			return fmt.Errorf("send operation failed")
		}

		ui.PrintInfo("Transcribing and translating clip as %s...", role)
		turn, err := apiClient.SendAudio(ctx, role, sendTargetLang, sendAudioFile, audio)
		if err != nil {
			ui.PrintErrorBox("Send failed", err.Error())
			return fmt.Errorf("send operation failed")
		}

		fmt.Println()
		fmt.Println(ui.RenderTurn(*turn))
		return nil
	}

	text := strings.Join(args, " ")

	turn, err := apiClient.SendText(ctx, role, text, sendTargetLang)
	if err != nil {
		ui.PrintErrorBox("Send failed", err.Error())
		return fmt.Errorf("send operation failed")
	}

	fmt.Println()
	fmt.Println(ui.RenderTurn(*turn))
	return nil
}
