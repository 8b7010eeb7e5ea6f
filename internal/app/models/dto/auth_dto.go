package dto

// SignUpRequest registers a student identity
type SignUpRequest struct {
	Phone    string `json:"phone" binding:"required,phone" example:"9876543210"`
	Password string `json:"password" binding:"required,min=8" example:"s3cretpass"`
	Name     string `json:"name" binding:"required,notblank,max=100" example:"Alex Johnson"`
	Email    string `json:"email" binding:"omitempty,email" example:"alex.johnson@university.edu"`
	RollNo   string `json:"rollNo" binding:"omitempty,max=32" example:"CS2021042"`
	DOB      string `json:"dob" binding:"omitempty,date" example:"2003-05-14"`
	College  string `json:"college" binding:"omitempty,max=100" example:"Engineering College"`
	Year     string `json:"year" binding:"omitempty,max=32" example:"3rd Year"`
	Branch   string `json:"branch" binding:"omitempty,max=100" example:"Computer Science"`
}

// RequestOTPRequest asks for a one-time code
type RequestOTPRequest struct {
	Phone string `json:"phone" binding:"required,phone" example:"9876543210"`
}

// VerifyOTPRequest exchanges a one-time code for a session token
type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required,phone" example:"9876543210"`
	Code  string `json:"code" binding:"required,numeric" example:"482913"`
}

// OTPRequestedResponse confirms a code was issued
type OTPRequestedResponse struct {
	Phone     string `json:"phone" example:"9876543210"`
	ExpiresIn int    `json:"expiresIn" example:"300"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
	UserID      string `json:"userId"`
}
