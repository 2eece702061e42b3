package models

import "time"

// GenerateCVRequest represents the CV service request body
// @Description CV generation request with the user's stored details
type GenerateCVRequest struct {
	UserID      FlexibleID  `json:"user_id" swaggertype:"string" example:"42"`
	UserDetails UserDetails `json:"user_details"`
}

// GenerateCVResult describes a generated CV without its content
// @Description Generated CV metadata
type GenerateCVResult struct {
	FileName string `json:"file_name" example:"student_cv_42.pdf"`
	Location string `json:"location" example:"cvs/student_cv_42.pdf"`
	Pages    int    `json:"pages" example:"1"`
	Sections int    `json:"sections" example:"5"`
}

// CVRecord is stored per user once a CV has been generated
type CVRecord struct {
	UserID      string    `json:"userId" firestore:"userId"`
	FileName    string    `json:"fileName" firestore:"fileName"`
	Location    string    `json:"location" firestore:"location"`
	Model       string    `json:"model" firestore:"model"`
	Pages       int       `json:"pages" firestore:"pages"`
	GeneratedAt time.Time `json:"generatedAt" firestore:"generatedAt"`
}

// StudentRegistrationRequest is forwarded to the backend's /student_registration
type StudentRegistrationRequest struct {
	UserID      FlexibleID         `json:"userId"`
	Description string             `json:"description"`
	ImagePath   *string            `json:"imagePath"`
	Jobs        []StudentJob       `json:"jobs"`
	Education   []StudentEducation `json:"education"`
}

// CompanyRegistrationRequest is forwarded to the backend's /company_registration
type CompanyRegistrationRequest struct {
	UserID      FlexibleID `json:"userId"`
	Name        string     `json:"name"`
	Size        string     `json:"size"`
	Address     string     `json:"address"`
	Description string     `json:"description"`
	ImagePath   string     `json:"image_path,omitempty"`
	VideoPath   string     `json:"video_path,omitempty"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"user_id is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Provider  string `json:"provider,omitempty" example:"anthropic"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
