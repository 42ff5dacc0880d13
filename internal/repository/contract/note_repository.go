package contract

import (
	"context"

	"noteful-be/internal/entity"
	"noteful-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByFolder removes every note of the owner filed under the folder,
	// including the notes' tag membership rows.
	DeleteByFolder(ctx context.Context, folderId, userId uuid.UUID) error
	// PullTag removes the tag from every note's tag set without touching the
	// notes themselves.
	PullTag(ctx context.Context, tagId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
