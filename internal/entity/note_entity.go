package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note references its folder and tags by id only. FolderId is nil when the
// note is unfiled. TagIds keeps insertion order; membership itself is
// order-irrelevant.
type Note struct {
	Id        uuid.UUID
	Title     string
	Content   string
	FolderId  *uuid.UUID
	TagIds    []uuid.UUID
	UserId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
