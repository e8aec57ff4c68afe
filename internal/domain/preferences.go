package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	// PreferencesID is the key of the singleton preferences row.
	PreferencesID = "default"

	DefaultPreferredDurationSec = 300
	MinPreferredMinutes         = 1
	MaxPreferredMinutes         = 60
)

// ErrDurationOutOfRange is returned when a preferred duration falls outside 1..60 minutes.
var ErrDurationOutOfRange = errors.New("preferred duration out of range")

// Preferences is the singleton user preferences record.
type Preferences struct {
	ID                   string
	PreferredDurationSec int
	DarkMode             bool
	UpdatedAt            time.Time
}

// DefaultPreferences returns the record created lazily on first use:
// a five minute default duration in light mode.
func DefaultPreferences() *Preferences {
	return &Preferences{
		ID:                   PreferencesID,
		PreferredDurationSec: DefaultPreferredDurationSec,
		DarkMode:             false,
		UpdatedAt:            time.Now().UTC(),
	}
}

// PreferredMinutes returns the preferred duration in whole minutes.
func (p *Preferences) PreferredMinutes() int {
	return p.PreferredDurationSec / 60
}

// PreferredDuration returns the preferred duration as a time.Duration.
func (p *Preferences) PreferredDuration() time.Duration {
	return time.Duration(p.PreferredDurationSec) * time.Second
}

// SetPreferredMinutes validates and applies a new preferred duration.
func (p *Preferences) SetPreferredMinutes(minutes int) error {
	if err := ValidatePreferredMinutes(minutes); err != nil {
		return err
	}
	p.PreferredDurationSec = minutes * 60
	return nil
}

// ValidatePreferredMinutes checks that minutes is within the stepper range.
func ValidatePreferredMinutes(minutes int) error {
	if minutes < MinPreferredMinutes || minutes > MaxPreferredMinutes {
		return fmt.Errorf("%w: %d min (want %d-%d)", ErrDurationOutOfRange, minutes, MinPreferredMinutes, MaxPreferredMinutes)
	}
	return nil
}
