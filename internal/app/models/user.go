package models

import "slices"

// User is a community member. Users are immutable seed records.
type User struct {
	ID           string   `json:"id" example:"user1"`
	Name         string   `json:"name" example:"Alex Johnson"`
	Avatar       string   `json:"avatar" example:"assets/avatars/user1.jpg"`
	Email        string   `json:"email,omitempty" example:"alex.johnson@university.edu"`
	College      string   `json:"college" example:"Engineering College"`
	Year         string   `json:"year" example:"3rd Year"`
	Department   string   `json:"department,omitempty" example:"Computer Science"`
	Interests    []string `json:"interests,omitempty"`
	JoinedDate   string   `json:"joinedDate,omitempty" example:"2023-01-15"`
	OnlineStatus bool     `json:"onlineStatus"`
}

// Validate implements Validatable.
func (u User) Validate() error {
	if u.ID == "" {
		return invalid("user", "", "empty id")
	}
	if u.Name == "" {
		return invalid("user", u.ID, "empty name")
	}
	return nil
}

// Clone returns a deep copy.
func (u User) Clone() User {
	u.Interests = cloneStrings(u.Interests)
	return u
}

// BlockedUsers is the set of user ids hidden from the current user's chat,
// kept in insertion order.
type BlockedUsers []string

// Validate implements Validatable.
func (b BlockedUsers) Validate() error {
	return uniqueIDs("blocked user", b)
}

// Contains reports whether id is blocked.
func (b BlockedUsers) Contains(id string) bool {
	return slices.Contains(b, id)
}

// With returns the set with id added. Adding a present id returns an equal set.
func (b BlockedUsers) With(id string) BlockedUsers {
	if b.Contains(id) {
		return b.Clone()
	}
	return append(b.Clone(), id)
}

// Without returns the set with id removed.
func (b BlockedUsers) Without(id string) BlockedUsers {
	out := make(BlockedUsers, 0, len(b))
	for _, v := range b {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Clone returns a copy that is never nil, so it always encodes as a JSON array.
func (b BlockedUsers) Clone() BlockedUsers {
	return append(BlockedUsers{}, b...)
}
