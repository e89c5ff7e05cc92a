package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/gaurav-code098/Neo-Translate/internal/cli/types"
)

var (
	// Color definitions for terminal output
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	boldColor    = color.New(color.Bold)
)

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	successColor.Printf("✓ %s\n", msg)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	errorColor.Printf("✗ %s\n", msg)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	infoColor.Printf("ℹ %s\n", msg)
}

// PrintBold prints a bold message
func PrintBold(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	boldColor.Println(msg)
}

// RenderTurn renders one consultation turn for terminal display
func RenderTurn(t types.Turn) string {
	var b strings.Builder

	tag := Styles.PatientTag
	if t.Role == "doctor" {
		tag = Styles.DoctorTag
	}

	b.WriteString(fmt.Sprintf("%s  %s\n",
		tag.Render(fmt.Sprintf("[%d] %s", t.ID, strings.ToUpper(t.Role))),
		t.CreatedAt.Local().Format("15:04:05"),
	))
	b.WriteString(fmt.Sprintf("  %s (%s)\n", t.OriginalText, t.OriginalLang))
	b.WriteString(fmt.Sprintf("  → %s (%s)\n", t.TranslatedText, t.TargetLang))
	if t.OriginalAudioURL != "" {
		b.WriteString(fmt.Sprintf("  ♪ %s\n", t.OriginalAudioURL))
	}

	return b.String()
}

// RenderTurns renders a list of turns in log order
func RenderTurns(turns []types.Turn) string {
	if len(turns) == 0 {
		return infoColor.Sprint("the consultation log is empty")
	}

	var b strings.Builder
	for _, t := range turns {
		b.WriteString(RenderTurn(t))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%d turn(s)", len(turns)))

	return b.String()
}

// RenderSummary renders the clinical summary in a box
func RenderSummary(summary string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	content := fmt.Sprintf("%s\n\n%s",
		titleStyle.Render("CLINICAL SUMMARY"),
		summary,
	)

	return Styles.SummaryBox.Render(content)
}

// PrintErrorBox prints an error message in a box
func PrintErrorBox(title, content string) {
	boxContent := fmt.Sprintf("%s\n\n%s",
		errorColor.Sprint(title),
		content,
	)
	fmt.Println(Styles.ErrorBox.Render(boxContent))
}
