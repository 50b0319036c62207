package models

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
}

type LogoutRequest struct {
	SessionID string `json:"sessionId"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type VerifyOTPRequest struct {
	OTPCode string `json:"otpCode"`
	Email   string `json:"email"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
	Email       string `json:"email"`
}

type DashboardStats struct {
	TotalMessages      int64            `json:"totalMessages"`
	UnreadMessages     int64            `json:"unreadMessages"`
	TotalGalleryImages int64            `json:"totalGalleryImages"`
	TotalServices      int64            `json:"totalServices"`
	RecentActivity     []ContactMessage `json:"recentActivity"`
}
