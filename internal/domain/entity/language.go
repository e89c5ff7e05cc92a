package entity

// LangEnglish is the doctor-side language. It is fixed: the doctor always
// speaks English and patient turns are always translated into English.
const LangEnglish = "English"

// PatientLanguages is the closed set of languages a consultation can be
// configured with on the patient side.
var PatientLanguages = []string{
	"Hindi",
	"Spanish",
	"French",
	"German",
	"Chinese",
	"Japanese",
	"Arabic",
	"Portuguese",
	"Russian",
}

// IsPatientLanguage reports whether lang is a valid patient-side language.
func IsPatientLanguage(lang string) bool {
	for _, l := range PatientLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
