package models

import "slices"

// Priority orders announcements by urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Announcement is a campus news item.
type Announcement struct {
	ID       string   `json:"id" example:"ann1"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Date     int64    `json:"date"` // epoch milliseconds
	Priority Priority `json:"priority" example:"high"`
	Icon     string   `json:"icon"`
	Category string   `json:"category"`
}

// Announcements holds announcements in insertion order.
type Announcements []Announcement

// Validate implements Validatable.
func (as Announcements) Validate() error {
	ids := make([]string, len(as))
	for i, a := range as {
		if !a.Priority.Valid() {
			return invalid("announcement", a.ID, "unknown priority %q", a.Priority)
		}
		ids[i] = a.ID
	}
	return uniqueIDs("announcement", ids)
}

// Clone returns a copy.
func (as Announcements) Clone() Announcements {
	return slices.Clone(as)
}

// DashboardStats are the community-wide counters shown on the dashboard.
type DashboardStats struct {
	OnlineStudents int `json:"onlineStudents"`
	ResourcesAdded int `json:"resourcesAdded"`
	HostelReviews  int `json:"hostelReviews"`
	ActiveListings int `json:"activeListings"`
	QuestionsToday int `json:"questionsToday"`
}
