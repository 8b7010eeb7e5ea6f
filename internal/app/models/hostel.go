package models

import "slices"

// Review is a student's review of a hostel.
type Review struct {
	ID         string `json:"id" example:"r1"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar"`
	Rating     int    `json:"rating" example:"5"` // 1-5
	Comment    string `json:"comment"`
	Date       int64  `json:"date"` // epoch milliseconds
	Helpful    int    `json:"helpful"`
}

// Hostel is an accommodation near campus.
type Hostel struct {
	ID          string   `json:"id" example:"h1"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating" example:"4.5"`
	ReviewCount int      `json:"reviewCount"`
	AvgPrice    float64  `json:"avgPrice"`
	Distance    string   `json:"distance" example:"0.5 km"`
	Amenities   []string `json:"amenities"`
	Image       string   `json:"image,omitempty"`
	Reviews     []Review `json:"reviews"`
}

// Validate implements Validatable.
func (h Hostel) Validate() error {
	if h.Name == "" {
		return invalid("hostel", h.ID, "empty name")
	}
	if h.Rating < 0 || h.Rating > 5 {
		return invalid("hostel", h.ID, "rating %.1f out of range", h.Rating)
	}
	ids := make([]string, len(h.Reviews))
	for i, r := range h.Reviews {
		if r.Rating < 1 || r.Rating > 5 {
			return invalid("review", r.ID, "rating %d out of range", r.Rating)
		}
		ids[i] = r.ID
	}
	return uniqueIDs("review", ids)
}

// Hostels holds hostels in insertion order.
type Hostels []Hostel

// Validate implements Validatable.
func (hs Hostels) Validate() error {
	ids := make([]string, len(hs))
	for i, h := range hs {
		if err := h.Validate(); err != nil {
			return err
		}
		ids[i] = h.ID
	}
	return uniqueIDs("hostel", ids)
}

// Clone returns a deep copy.
func (hs Hostels) Clone() Hostels {
	out := make(Hostels, len(hs))
	for i, h := range hs {
		h.Amenities = cloneStrings(h.Amenities)
		h.Reviews = slices.Clone(h.Reviews)
		out[i] = h
	}
	return out
}
