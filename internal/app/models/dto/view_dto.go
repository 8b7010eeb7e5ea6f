package dto

import "github.com/yigit/campushub/internal/app/models"

// PageView is a rendered page together with its navigation fragment.
type PageView struct {
	Page     string      `json:"page" example:"chat"`
	Fragment string      `json:"fragment" example:"#chat"`
	View     interface{} `json:"view"`
}

// UserCard is the compact form of a user shown next to content.
type UserCard struct {
	ID      string `json:"id" example:"user2"`
	Name    string `json:"name" example:"Sarah Chen"`
	Avatar  string `json:"avatar"`
	College string `json:"college,omitempty"`
	Year    string `json:"year,omitempty"`
	Online  bool   `json:"online"`
}

// ChatMessageView is a chat message resolved against the user directory.
type ChatMessageView struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	AuthorName   string         `json:"authorName"`
	AuthorAvatar string         `json:"authorAvatar"`
	Text         string         `json:"text"`
	Timestamp    int64          `json:"timestamp"`
	TimeAgo      string         `json:"timeAgo" example:"15 minutes ago"`
	Reactions    map[string]int `json:"reactions"`
	IsOwn        bool           `json:"isOwn"`
}

// AnnouncementView is an announcement with a relative date label.
type AnnouncementView struct {
	models.Announcement
	TimeAgo string `json:"timeAgo"`
}

// DashboardView is the landing page.
type DashboardView struct {
	User           UserCard              `json:"user"`
	Stats          models.DashboardStats `json:"stats"`
	Announcements  []AnnouncementView    `json:"announcements"`
	Achievements   []models.Achievement  `json:"achievements"`
	RecentMessages []ChatMessageView     `json:"recentMessages"`
}

// ChatView is the general chat page.
type ChatView struct {
	Messages     []ChatMessageView `json:"messages"`
	OnlineUsers  []UserCard        `json:"onlineUsers"`
	BlockedCount int               `json:"blockedCount"`
}

// MarketplaceFilter narrows and orders the listing grid.
type MarketplaceFilter struct {
	Search   string `form:"search" json:"search,omitempty"`
	Category string `form:"category" json:"category,omitempty"`
	Sort     string `form:"sort" json:"sort,omitempty" enums:"newest,price-low,price-high"`
}

// MarketplaceView is the marketplace page.
type MarketplaceView struct {
	Items      []models.MarketplaceItem `json:"items"`
	Total      int                      `json:"total"`
	Categories []string                 `json:"categories"`
	Conditions []models.ItemCondition   `json:"conditions"`
	Filter     MarketplaceFilter        `json:"filter"`
}

// QnaPostView is a question with its relative date label.
type QnaPostView struct {
	models.QnaPost
	TimeAgo string `json:"timeAgo"`
}

// QnaView is the Q&A forum, ordered by votes.
type QnaView struct {
	Posts []QnaPostView `json:"posts"`
}

// ResourcesView holds the two resource tabs.
type ResourcesView struct {
	Visual []models.Resource `json:"visual"`
	Text   []models.Resource `json:"text"`
}

// ReviewView is a hostel review with its relative date label.
type ReviewView struct {
	models.Review
	TimeAgo string `json:"timeAgo"`
}

// HostelCardView is a hostel as shown in the hostel grid.
type HostelCardView struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Rating           float64      `json:"rating"`
	ReviewCount      int          `json:"reviewCount"`
	AvgPrice         float64      `json:"avgPrice"`
	Distance         string       `json:"distance"`
	Image            string       `json:"image,omitempty"`
	AmenitiesPreview []string     `json:"amenitiesPreview"`
	MoreAmenities    int          `json:"moreAmenities"`
	Reviews          []ReviewView `json:"reviews"`
}

// HostelsView is the hostel review page.
type HostelsView struct {
	Hostels []HostelCardView `json:"hostels"`
}

// ReportTypeOption is a choice of the report form.
type ReportTypeOption struct {
	Value string `json:"value" example:"spam"`
	Label string `json:"label" example:"Spam"`
}

// BlocksView is the block and report page.
type BlocksView struct {
	Blocked     []UserCard         `json:"blocked"`
	Blockable   []UserCard         `json:"blockable"`
	ReportTypes []ReportTypeOption `json:"reportTypes"`
}

// RankedItem is one row of a top-rated list.
type RankedItem struct {
	Rank   int     `json:"rank"`
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// RatingsView summarises ratings across categories.
type RatingsView struct {
	AverageHostelRating   float64      `json:"averageHostelRating" example:"4.3"`
	HostelReviewCount     int          `json:"hostelReviewCount"`
	AverageResourceRating float64      `json:"averageResourceRating" example:"4.8"`
	ResourceCount         int          `json:"resourceCount"`
	TopHostels            []RankedItem `json:"topHostels"`
	TopResources          []RankedItem `json:"topResources"`
}

// AchievementsView splits achievements by status.
type AchievementsView struct {
	Earned      []models.Achievement `json:"earned"`
	InProgress  []models.Achievement `json:"inProgress"`
	EarnedCount int                  `json:"earnedCount"`
	Total       int                  `json:"total"`
}

// AnnouncementsView lists announcements in publication order.
type AnnouncementsView struct {
	Announcements []AnnouncementView `json:"announcements"`
}

// ProfileView is the current user's local profile page.
type ProfileView struct {
	User           models.User          `json:"user"`
	EarnedCount    int                  `json:"earnedCount"`
	Achievements   []models.Achievement `json:"achievements"`
	MessagesSent   int                  `json:"messagesSent"`
	ListingsPosted int                  `json:"listingsPosted"`
	QuestionsAsked int                  `json:"questionsAsked"`
}
