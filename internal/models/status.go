package models

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state shared by projects and tasks.
// The integer values are persisted, so the order must not change.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusPaused
	StatusCompleted
)

var statusNames = [...]string{
	StatusNotStarted: "Not Started",
	StatusInProgress: "In Progress",
	StatusPaused:     "Paused",
	StatusCompleted:  "Completed",
}

func (s Status) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Valid reports whether s is one of the four known states
func (s Status) Valid() bool {
	return s >= StatusNotStarted && s <= StatusCompleted
}

// ParseStatus accepts a display name ("In Progress"), a compact form
// ("in-progress", "in_progress", "inprogress") or the persisted integer.
func ParseStatus(raw string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)

	switch key {
	case "notstarted", "0":
		return StatusNotStarted, nil
	case "inprogress", "1":
		return StatusInProgress, nil
	case "paused", "2":
		return StatusPaused, nil
	case "completed", "done", "3":
		return StatusCompleted, nil
	}
	return StatusNotStarted, fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}
