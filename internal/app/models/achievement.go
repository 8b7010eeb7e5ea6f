package models

import "slices"

// Achievement is a badge the current user earns or works towards.
// EarnedDate is present iff Earned.
type Achievement struct {
	ID          string `json:"id" example:"ach1"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Progress    int    `json:"progress" example:"100"` // 0-100
	Earned      bool   `json:"earned"`
	EarnedDate  string `json:"earnedDate,omitempty" example:"2023-01-15"`
	Category    string `json:"category"`
}

// Validate implements Validatable.
func (a Achievement) Validate() error {
	if a.Progress < 0 || a.Progress > 100 {
		return invalid("achievement", a.ID, "progress %d out of range", a.Progress)
	}
	if a.Earned && a.EarnedDate == "" {
		return invalid("achievement", a.ID, "earned without earned date")
	}
	if !a.Earned && a.EarnedDate != "" {
		return invalid("achievement", a.ID, "earned date on unearned achievement")
	}
	return nil
}

// Achievements holds achievements in insertion order.
type Achievements []Achievement

// Validate implements Validatable.
func (as Achievements) Validate() error {
	ids := make([]string, len(as))
	for i, a := range as {
		if err := a.Validate(); err != nil {
			return err
		}
		ids[i] = a.ID
	}
	return uniqueIDs("achievement", ids)
}

// Clone returns a copy.
func (as Achievements) Clone() Achievements {
	return slices.Clone(as)
}

// Earned returns the earned achievements in order.
func (as Achievements) Earned() Achievements {
	var out Achievements
	for _, a := range as {
		if a.Earned {
			out = append(out, a)
		}
	}
	return out
}
