package models

import "time"

// DateLayout is the calendar-date format used for journal natural keys
// and streak check-in comparisons.
const DateLayout = "2006-01-02"

// Profile represents a user profile in the system
type Profile struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	DisplayName  string     `json:"display_name"`
	SobrietyDate *time.Time `json:"sobriety_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UrgeOutcome is the resolution state of a tracked urge. An urge starts
// pending and moves exactly once to resisted or indulged.
type UrgeOutcome string

const (
	OutcomePending  UrgeOutcome = "pending"
	OutcomeResisted UrgeOutcome = "resisted"
	OutcomeIndulged UrgeOutcome = "indulged"
)

// Valid reports whether the value is one of the three outcome states
func (o UrgeOutcome) Valid() bool {
	return o == OutcomePending || o == OutcomeResisted || o == OutcomeIndulged
}

// Resolved reports whether the urge has a terminal outcome
func (o UrgeOutcome) Resolved() bool {
	return o == OutcomeResisted || o == OutcomeIndulged
}

// Urge represents a tracked urge record
type Urge struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Intensity int         `json:"intensity"` // 1-10
	Location  string      `json:"location,omitempty"`
	Trigger   string      `json:"trigger,omitempty"`
	Notes     string      `json:"notes,omitempty"`
	Outcome   UrgeOutcome `json:"outcome"`
	CreatedAt time.Time   `json:"created_at"`
}

// JournalEntry represents a daily journal record. At most one entry exists
// per (user, date); the extended attributes are first-class optional fields
// rather than a serialized blob inside the content column.
type JournalEntry struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Date             string    `json:"date"` // YYYY-MM-DD
	Mood             int       `json:"mood"` // 1-5
	Content          string    `json:"content,omitempty"`
	EntryType        string    `json:"entry_type,omitempty"`
	Emotions         []string  `json:"emotions,omitempty"`
	Triggers         []string  `json:"triggers,omitempty"`
	CopingStrategies []string  `json:"coping_strategies,omitempty"`
	Gratitude        []string  `json:"gratitude,omitempty"`
	Goals            []string  `json:"goals,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Streak represents a user's clean-day counters. It is mutated only by the
// check-in and relapse flows; everything downstream reads it.
type Streak struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	CurrentStreak  int        `json:"current_streak"`
	BestStreak     int        `json:"best_streak"`
	TotalDaysClean int        `json:"total_days_clean"`
	LastCheckIn    *time.Time `json:"last_check_in,omitempty"`
	RelapseCount   int        `json:"relapse_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CreateUrgeRequest represents the request to log a new urge
type CreateUrgeRequest struct {
	Intensity int    `json:"intensity" binding:"required,min=1,max=10"`
	Location  string `json:"location"`
	Trigger   string `json:"trigger"`
	Notes     string `json:"notes"`
}

// ResolveUrgeRequest represents the request to record an urge's outcome
type ResolveUrgeRequest struct {
	Outcome UrgeOutcome `json:"outcome" binding:"required,oneof=resisted indulged"`
}

// UpsertJournalRequest represents the request to create or update the
// journal entry for a date
type UpsertJournalRequest struct {
	Mood             int      `json:"mood" binding:"required,min=1,max=5"`
	Content          string   `json:"content"`
	EntryType        string   `json:"entry_type"`
	Emotions         []string `json:"emotions"`
	Triggers         []string `json:"triggers"`
	CopingStrategies []string `json:"coping_strategies"`
	Gratitude        []string `json:"gratitude"`
	Goals            []string `json:"goals"`
}

// UpdateProfileRequest represents the request to update profile fields
type UpdateProfileRequest struct {
	DisplayName  *string    `json:"display_name"`
	SobrietyDate *time.Time `json:"sobriety_date"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents the signup request
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         Profile `json:"user"`
}
