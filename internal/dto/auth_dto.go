package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest keeps the credential fields untyped so the service can
// distinguish a missing key from a key of the wrong JSON type before any
// other validation runs.
type RegisterRequest struct {
	FullName any `json:"fullName"`
	Username any `json:"username"`
	Password any `json:"password"`
}

type UserResponse struct {
	Id        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName,omitempty"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AuthToken string       `json:"authToken"`
	User      UserResponse `json:"user"`
}
