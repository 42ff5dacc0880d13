package unitofwork

import (
	"context"

	"noteful-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	FolderRepository() contract.FolderRepository
	TagRepository() contract.TagRepository
	NoteRepository() contract.NoteRepository
}
