package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"noteful-be/internal/apperror"
	"noteful-be/internal/repository/specification"
	"noteful-be/internal/repository/unitofwork"
)

// ReferenceChecker confirms that a note's folder and tag references exist
// and belong to the acting user before the note is written.
type ReferenceChecker struct{}

func NewReferenceChecker() *ReferenceChecker {
	return &ReferenceChecker{}
}

// ParseFolderReference normalizes a raw folderId. An absent or empty value
// means "no folder". A malformed value fails before any query runs.
func (c *ReferenceChecker) ParseFolderReference(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, apperror.InvalidIdentifier("folderId")
	}
	return &id, nil
}

// ParseTagReferences format-checks every tag id. Any malformed id rejects
// the whole set before any existence check. The tag list is a set: repeated
// ids collapse to their first occurrence so the membership rows stay unique.
func (c *ReferenceChecker) ParseTagReferences(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	seen := make(map[uuid.UUID]struct{}, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, apperror.InvalidIdentifier("tags")
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// VerifyReferences runs the scoped existence checks. The folder check and
// each tag check are issued concurrently; the call returns only after every
// launched check has resolved, surfacing the first rejection.
func (c *ReferenceChecker) VerifyReferences(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, folderId *uuid.UUID, tagIds []uuid.UUID) error {
	g, gctx := errgroup.WithContext(ctx)

	if folderId != nil {
		id := *folderId
		g.Go(func() error {
			count, err := uow.FolderRepository().Count(gctx,
				specification.ByID{ID: id},
				specification.OwnedBy{UserID: userId},
			)
			if err != nil {
				return err
			}
			if count != 1 {
				return apperror.ForeignOwnership("folder")
			}
			return nil
		})
	}

	for _, tagId := range tagIds {
		id := tagId
		g.Go(func() error {
			count, err := uow.TagRepository().Count(gctx,
				specification.ByID{ID: id},
				specification.OwnedBy{UserID: userId},
			)
			if err != nil {
				return err
			}
			if count != 1 {
				return apperror.ForeignOwnership("tag")
			}
			return nil
		})
	}

	return g.Wait()
}
