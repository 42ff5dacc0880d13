package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTagRequest struct {
	Name *string `json:"name" validate:"required"`
}

type UpdateTagRequest struct {
	Id     uuid.UUID `json:"-"`
	Name   *string   `json:"name"`
	UserId *string   `json:"userId"`
}

type TagResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UserId    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
