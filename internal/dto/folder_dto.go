package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFolderRequest struct {
	Name *string `json:"name" validate:"required"`
}

// UpdateFolderRequest carries pointers so the service can tell an absent
// key from an explicit value. UserId exists only to detect (and reject)
// ownership-change attempts.
type UpdateFolderRequest struct {
	Id     uuid.UUID `json:"-"`
	Name   *string   `json:"name"`
	UserId *string   `json:"userId"`
}

type FolderResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UserId    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
