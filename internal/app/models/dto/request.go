package dto

import "github.com/yigit/campushub/internal/app/models"

// CreateListingRequest is the marketplace listing form
type CreateListingRequest struct {
	Title       string   `json:"title" binding:"required,notblank,max=200" example:"Desk Lamp"`
	Description string   `json:"description" binding:"required,notblank" example:"LED lamp with three brightness levels"`
	Price       *float64 `json:"price" binding:"required,gte=0" example:"15"`
	Condition   string   `json:"condition" binding:"required,oneof='Like New' Excellent Good Fair" example:"Good"`
	Category    string   `json:"category" binding:"required,oneof=Electronics Books Furniture Sports Appliances" example:"Furniture"`
	Location    string   `json:"location" binding:"required,notblank" example:"North Campus"`
	Tags        string   `json:"tags" example:"lamp, desk, study"`
}

// AskQuestionRequest is the Q&A question form
type AskQuestionRequest struct {
	Title   string `json:"title" binding:"required,notblank,max=300" example:"How do I prepare for the DSA midterm?"`
	Content string `json:"content" binding:"required,notblank" example:"Looking for resources and tips."`
	Tags    string `json:"tags" example:"dsa, exams"`
}

// PostAnswerRequest answers a Q&A question
type PostAnswerRequest struct {
	Content string `json:"content" binding:"required,notblank" example:"Practice past papers first."`
}

// BlockUserRequest names a user to block
type BlockUserRequest struct {
	UserID string `json:"userId" binding:"required,notblank" example:"user3"`
}

// ReportRequest is the moderation report form
type ReportRequest struct {
	Type        string `json:"type" binding:"required,oneof=user content spam other" example:"spam"`
	Description string `json:"description" binding:"required,notblank,max=2000" example:"Repeated advertising in chat"`
}

// ReportResponse confirms a submitted report
type ReportResponse struct {
	ReportID string `json:"reportId" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Type     string `json:"type" example:"spam"`
	Message  string `json:"message" example:"Report submitted. Our moderators will review it shortly."`
}

// ClearDataRequest confirms erasing every stored collection
type ClearDataRequest struct {
	Confirm bool `json:"confirm" example:"true"`
}

// AddSkillRequest adds a skill to a profile
type AddSkillRequest struct {
	Skill string `json:"skill" binding:"required,notblank,max=64" example:"Go"`
}

// AddProfileAchievementRequest adds an achievement line to a profile
type AddProfileAchievementRequest struct {
	Achievement string `json:"achievement" binding:"required,notblank,max=200" example:"Hackathon finalist 2024"`
}

// ProfileResponse is an identity profile as shown to a viewer
type ProfileResponse struct {
	ID           string   `json:"id"`
	Phone        string   `json:"phone" example:"+91 •••••• ••••"`
	Name         string   `json:"name"`
	Email        string   `json:"email" example:"••••••••@••••.com"`
	RollNo       string   `json:"rollNo" example:"••••••••"`
	DOB          string   `json:"dob" example:"••/••/••••"`
	College      string   `json:"college"`
	Year         string   `json:"year"`
	Branch       string   `json:"branch"`
	Skills       []string `json:"skills"`
	Achievements []string `json:"achievements"`
	Masked       bool     `json:"masked"`
	IsAdmin      bool     `json:"isAdmin"`
}

// ExportDocument is the user's downloadable data export
type ExportDocument struct {
	User             models.User             `json:"user"`
	ChatMessages     models.ChatMessages     `json:"chatMessages"`
	MarketplaceItems models.MarketplaceItems `json:"marketplaceItems"`
	QnaPosts         models.QnaPosts         `json:"qnaPosts"`
	Achievements     models.Achievements     `json:"achievements"`
	BlockedUsers     models.BlockedUsers     `json:"blockedUsers"`
}
