package entity

import "time"

// Role identifies who authored a turn.
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// Valid reports whether the role is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleDoctor || r == RolePatient
}

// Turn is one recorded exchange: what the speaker said and its translation
// into the counterpart's language. Turns are immutable once appended; the
// store-assigned ID defines the canonical conversation order.
type Turn struct {
	ID             int64
	Role           Role
	OriginalText   string
	OriginalLang   string
	TranslatedText string
	TargetLang     string
	AudioURL       string // set only when the turn originated from a recording
	CreatedAt      time.Time
}
