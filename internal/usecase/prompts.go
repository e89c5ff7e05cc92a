package usecase

// prompts.go holds the fixed text handed to the AI provider and to clients.
// Keeping it in one file makes the prompts easy to tune without touching the
// pipeline logic.

const (
	// SummaryInstruction is the clinical-scribe prompt. The transcript is
	// appended below it by the summary usecase.
	SummaryInstruction = "You are a medical scribe. Summarize the following consultation.\n" +
		"Format strictly as:\n" +
		"**PATIENT SYMPTOMS:** ...\n" +
		"**DIAGNOSIS:** ...\n" +
		"**MEDICATIONS/PLAN:** ...\n\n" +
		"TRANSCRIPT:\n"

	// EmptySummaryText is returned when there is nothing to summarize; the
	// provider is not called in that case.
	EmptySummaryText = "No conversation logs found."
)
