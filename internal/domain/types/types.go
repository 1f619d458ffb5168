// Package types contains common types used across the application
package types

// Priority ranks a recommendation. Output ordering is High before Medium
// before Low.
type Priority string

// Declared priorities.
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Rank returns the sort rank for the priority; lower sorts first.
// Unknown priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Recommendation is a single actionable suggestion for the client.
type Recommendation struct {
	Priority       Priority `json:"priority"`
	Recommendation string   `json:"recommendation"`
	Category       string   `json:"category"`
}

// MoodReport is the response body for a successful prediction.
type MoodReport struct {
	MoodScore       float64          `json:"mood_score"`
	Recommendations []Recommendation `json:"recommendations"`
}
