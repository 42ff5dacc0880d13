package dto

import (
	"time"

	"github.com/google/uuid"
)

// Foreign references arrive as strings and are format-checked before any
// query runs; the reference checker resolves them to UUIDs.
type CreateNoteRequest struct {
	Title    *string  `json:"title" validate:"required"`
	Content  *string  `json:"content"`
	FolderId *string  `json:"folderId"`
	Tags     []string `json:"tags"`
}

// UpdateNoteRequest distinguishes three folder states: key present with a
// value (re-file), key present empty or key absent (clear). Tags nil means
// leave the tag set untouched; an empty slice clears it.
type UpdateNoteRequest struct {
	Id       uuid.UUID `json:"-"`
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	FolderId *string   `json:"folderId"`
	Tags     *[]string `json:"tags"`
	UserId   *string   `json:"userId"`
}

// ListNotesQuery mirrors the supported query parameters; all supplied
// dimensions combine with AND.
type ListNotesQuery struct {
	SearchTerm string `query:"searchTerm"`
	FolderId   string `query:"folderId"`
	TagId      string `query:"tagId"`
}

type NoteResponse struct {
	Id        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	FolderId  *uuid.UUID  `json:"folderId"`
	Tags      []uuid.UUID `json:"tags"`
	UserId    uuid.UUID   `json:"userId"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
