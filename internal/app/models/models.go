package models

import (
	"fmt"
	"slices"
	"strings"
)

// Validatable is implemented by every record that crosses the storage boundary.
// A record failing Validate is treated as absent and replaced with seed data.
type Validatable interface {
	Validate() error
}

// StateKey names a persisted collection.
type StateKey string

const (
	KeyCurrentUser      StateKey = "currentUser"
	KeyBlockedUsers     StateKey = "blockedUsers"
	KeyChatMessages     StateKey = "chatMessages"
	KeyMarketplaceItems StateKey = "marketplaceItems"
	KeyQnaPosts         StateKey = "qnaPosts"
	KeyResources        StateKey = "resources"
	KeyHostels          StateKey = "hostels"
	KeyAchievements     StateKey = "achievements"
	KeyAnnouncements    StateKey = "announcements"
)

// TrackedKeys lists every persisted key in initialization order.
var TrackedKeys = []StateKey{
	KeyCurrentUser,
	KeyBlockedUsers,
	KeyChatMessages,
	KeyMarketplaceItems,
	KeyQnaPosts,
	KeyResources,
	KeyHostels,
	KeyAchievements,
	KeyAnnouncements,
}

// ValidationError describes why a decoded record was rejected.
type ValidationError struct {
	Kind   string
	ID     string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("invalid %s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.ID, e.Reason)
}

func invalid(kind, id, format string, args ...interface{}) error {
	return &ValidationError{Kind: kind, ID: id, Reason: fmt.Sprintf(format, args...)}
}

// uniqueIDs rejects empty and duplicate ids.
func uniqueIDs(kind string, ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return invalid(kind, "", "empty id")
		}
		if _, ok := seen[id]; ok {
			return invalid(kind, id, "duplicate id")
		}
		seen[id] = struct{}{}
	}
	return nil
}

// cloneStrings copies s, keeping nil and empty distinct.
func cloneStrings(s []string) []string {
	return slices.Clone(s)
}
