package notitechsdk

import "time"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message" example:"Invalid credentials"`
}

// MessageResponse acknowledges an operation with no other result.
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Password updated successfully"`
}

// ============================================================================
// Accounts
// ============================================================================

type RegisterRequest struct {
	Name     string `json:"name" example:"Alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"correct horse"`

	// SecurityQuestion is a key from GET /api/auth/security-questions or the
	// question text itself. Optional.
	SecurityQuestion string `json:"securityQuestion,omitempty" example:"birth_city"`
	SecurityAnswer   string `json:"securityAnswer,omitempty" example:"Paris"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"correct horse"`
}

// User is the public projection of an account. Hashes never leave the server.
type User struct {
	ID               string    `json:"id" example:"01HZX4M0QK6W4B2V1N3C5D7E9F"`
	Name             string    `json:"name" example:"Alice"`
	Email            string    `json:"email" example:"alice@example.com"`
	SecurityQuestion string    `json:"securityQuestion,omitempty" example:"birth_city"`
	CreatedAt        time.Time `json:"createdAt"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// MeResponse is the current user with their usage counters.
type MeResponse struct {
	User
	SignInCount   int64 `json:"signInCount" example:"3"`
	AppUsageCount int64 `json:"appUsageCount" example:"12"`
}

type AppUsageResponse struct {
	Success       bool  `json:"success" example:"true"`
	AppUsageCount int64 `json:"appUsageCount" example:"13"`
}

type EmailRequest struct {
	Email string `json:"email" example:"alice@example.com"`
}

type CheckEmailResponse struct {
	Exists  bool   `json:"exists" example:"true"`
	UserID  string `json:"userId,omitempty"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

// ============================================================================
// Password recovery
// ============================================================================

type RequestResetCodeResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Reset code sent to your email"`

	// Code is only echoed when the server runs with EXPOSE_RESET_CODE.
	Code string `json:"code,omitempty" example:"4821"`
}

type VerifyResetCodeRequest struct {
	Email string `json:"email" example:"alice@example.com"`
	Code  string `json:"code" example:"4821"`
}

type VerifyResetCodeResponse struct {
	Valid   bool   `json:"valid" example:"true"`
	Message string `json:"message" example:"Code verified successfully"`
}

// ResetPasswordRequest redeems an emailed code.
type ResetPasswordRequest struct {
	Email       string `json:"email" example:"alice@example.com"`
	Code        string `json:"code" example:"4821"`
	NewPassword string `json:"newPassword" example:"battery staple"`
}

type SecurityResetRequest struct {
	Email          string `json:"email" example:"alice@example.com"`
	SecurityAnswer string `json:"securityAnswer" example:"Paris"`
	NewPassword    string `json:"newPassword" example:"battery staple"`
}

type SecurityQuestion struct {
	Key      string `json:"key" example:"birth_city"`
	Question string `json:"question" example:"In what city were you born?"`
}

type SecurityQuestionsResponse struct {
	Questions []SecurityQuestion `json:"questions"`
}

type VerifySecurityAnswerRequest struct {
	Email            string `json:"email" example:"alice@example.com"`
	SecurityQuestion string `json:"securityQuestion" example:"birth_city"`
	SecurityAnswer   string `json:"securityAnswer" example:"Paris"`
}

type VerifySecurityAnswerResponse struct {
	Verified bool   `json:"verified" example:"true"`
	UserID   string `json:"userId,omitempty"`
}

// AdminResetPasswordRequest is accepted with a valid X-Admin-Token header.
type AdminResetPasswordRequest struct {
	Email       string `json:"email" example:"alice@example.com"`
	NewPassword string `json:"newPassword" example:"battery staple"`
}

// ============================================================================
// Resources
// ============================================================================

type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title" example:"Groceries"`
	Body      string    `json:"body" example:"milk, eggs"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NoteRequest struct {
	Title string `json:"title" example:"Groceries"`
	Body  string `json:"body" example:"milk, eggs"`
}

type Reminder struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title" example:"Dentist"`
	Description string    `json:"description" example:"Bring referral"`
	DateTime    time.Time `json:"dateTime"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ReminderRequest struct {
	Title       string `json:"title" example:"Dentist"`
	Description string `json:"description" example:"Bring referral"`

	// DateTime is RFC 3339.
	DateTime string `json:"dateTime" example:"2025-03-14T15:30:00+11:00"`
}

type Statistics struct {
	UserID           string    `json:"userId"`
	NotesCreated     int64     `json:"notesCreated" example:"4"`
	RemindersCreated int64     `json:"remindersCreated" example:"2"`
	AppUsageCount    int64     `json:"appUsageCount" example:"13"`
	SignInCount      int64     `json:"signInCount" example:"3"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ============================================================================
// Health
// ============================================================================

// HealthChecks reports each dependency as "ok" or "error: ...".
type HealthChecks struct {
	Database   string `json:"database" example:"ok"`
	ResetCodes string `json:"reset_codes,omitempty" example:"ok"`
}

type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime" example:"1h2m3s"`
	Version string        `json:"version" example:"0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
