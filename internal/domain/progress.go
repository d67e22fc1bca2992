package domain

import "time"

// ProgressEntry is one journaled status transition of a course.
type ProgressEntry struct {
	ID         string
	PlanName   string
	CourseCode string
	FromStatus Status
	ToStatus   Status
	LoggedAt   time.Time
}
