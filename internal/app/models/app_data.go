package models

// AppData aggregates every collection the application state tracks.
type AppData struct {
	CurrentUser      User             `json:"currentUser"`
	BlockedUsers     BlockedUsers     `json:"blockedUsers"`
	ChatMessages     ChatMessages     `json:"chatMessages"`
	MarketplaceItems MarketplaceItems `json:"marketplaceItems"`
	QnaPosts         QnaPosts         `json:"qnaPosts"`
	Resources        ResourceLibrary  `json:"resources"`
	Hostels          Hostels          `json:"hostels"`
	Achievements     Achievements     `json:"achievements"`
	Announcements    Announcements    `json:"announcements"`
}

// Clone returns a deep copy.
func (d AppData) Clone() AppData {
	return AppData{
		CurrentUser:      d.CurrentUser.Clone(),
		BlockedUsers:     d.BlockedUsers.Clone(),
		ChatMessages:     d.ChatMessages.Clone(),
		MarketplaceItems: d.MarketplaceItems.Clone(),
		QnaPosts:         d.QnaPosts.Clone(),
		Resources:        d.Resources.Clone(),
		Hostels:          d.Hostels.Clone(),
		Achievements:     d.Achievements.Clone(),
		Announcements:    d.Announcements.Clone(),
	}
}

// Field returns a pointer to the collection stored under key, or nil for an
// unknown key. The pointer is suitable for JSON decoding.
func (d *AppData) Field(key StateKey) Validatable {
	switch key {
	case KeyCurrentUser:
		return &d.CurrentUser
	case KeyBlockedUsers:
		return &d.BlockedUsers
	case KeyChatMessages:
		return &d.ChatMessages
	case KeyMarketplaceItems:
		return &d.MarketplaceItems
	case KeyQnaPosts:
		return &d.QnaPosts
	case KeyResources:
		return &d.Resources
	case KeyHostels:
		return &d.Hostels
	case KeyAchievements:
		return &d.Achievements
	case KeyAnnouncements:
		return &d.Announcements
	default:
		return nil
	}
}

// CopyField replaces the collection under key with the one held by src.
func (d *AppData) CopyField(key StateKey, src *AppData) {
	switch key {
	case KeyCurrentUser:
		d.CurrentUser = src.CurrentUser
	case KeyBlockedUsers:
		d.BlockedUsers = src.BlockedUsers
	case KeyChatMessages:
		d.ChatMessages = src.ChatMessages
	case KeyMarketplaceItems:
		d.MarketplaceItems = src.MarketplaceItems
	case KeyQnaPosts:
		d.QnaPosts = src.QnaPosts
	case KeyResources:
		d.Resources = src.Resources
	case KeyHostels:
		d.Hostels = src.Hostels
	case KeyAchievements:
		d.Achievements = src.Achievements
	case KeyAnnouncements:
		d.Announcements = src.Announcements
	}
}
