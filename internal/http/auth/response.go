package auth

import (
	"github.com/MrJamesThe3rd/budgeter/internal/auth"
)

type statusResponse struct {
	SetupComplete bool `json:"setupComplete"`
}

type statusOK struct {
	Status string `json:"status"`
}

type userResponse struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

type meResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type enrollmentResponse struct {
	OTPAuthURL string `json:"otpauthUrl"`
	QRCode     string `json:"qrCode"`
	Secret     string `json:"secret"`
}

func toUserResponse(u *auth.User) userResponse {
	return userResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
	}
}
