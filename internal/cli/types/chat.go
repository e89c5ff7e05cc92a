package types

import "time"

// Turn represents one stored consultation turn as returned by the server
type Turn struct {
	ID               int64     `json:"id"`
	Role             string    `json:"role"` // doctor or patient
	OriginalText     string    `json:"original_text"`
	OriginalLang     string    `json:"original_lang"`
	TranslatedText   string    `json:"translated_text"`
	TargetLang       string    `json:"target_lang"`
	OriginalAudioURL string    `json:"original_audio_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// TextMessageRequest is the body for submitting a typed message
type TextMessageRequest struct {
	Role       string `json:"role"`
	Text       string `json:"text"`
	TargetLang string `json:"target_lang,omitempty"`
}

// SummaryResponse is the clinical summary payload
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// LanguageConfig is the patient language configuration payload
type LanguageConfig struct {
	PatientLanguage string   `json:"patient_language"`
	Supported       []string `json:"supported"`
}

// LanguageConfigRequest is the body for changing the patient language
type LanguageConfigRequest struct {
	PatientLanguage string `json:"patient_language"`
}

// ErrorBody is the error envelope returned by the server
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
