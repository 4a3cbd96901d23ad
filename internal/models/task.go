package models

import (
	"math"
	"strings"
	"time"
)

const (
	MinProgress = 0.0
	MaxProgress = 100.0
)

// Task is a single unit of work inside a project.
// Name is unique within its project, compared without regard to case.
type Task struct {
	Name        string
	Description string
	Status      Status
	Deadline    time.Time // second resolution is what gets persisted
	Progress    float64   // percentage, kept within [0, 100]
}

// ClampProgress bounds p to [0, 100]. NaN counts as no progress.
func ClampProgress(p float64) float64 {
	if math.IsNaN(p) {
		return MinProgress
	}
	return max(MinProgress, min(MaxProgress, p))
}

// SameName reports whether two task or project names refer to the same entity
func SameName(a, b string) bool {
	return strings.EqualFold(a, b)
}

// IsComplete reports whether the task has reached full progress
func (t Task) IsComplete() bool {
	return t.Progress >= MaxProgress
}
