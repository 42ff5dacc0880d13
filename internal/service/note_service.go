package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"noteful-be/internal/apperror"
	"noteful-be/internal/dto"
	"noteful-be/internal/entity"
	"noteful-be/internal/repository/specification"
	"noteful-be/internal/repository/unitofwork"
)

type INoteService interface {
	GetAll(ctx context.Context, userId uuid.UUID, query *dto.ListNotesQuery) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	refChecker *ReferenceChecker
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		refChecker: NewReferenceChecker(),
	}
}

// GetAll lists the owner's notes, newest update first. The filter is built
// as a conjunction of independently-optional clauses on top of the
// always-present owner clause; supplying several dimensions narrows, never
// widens, the result.
func (s *noteService) GetAll(ctx context.Context, userId uuid.UUID, query *dto.ListNotesQuery) ([]*dto.NoteResponse, error) {
	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId},
	}

	if query.SearchTerm != "" {
		specs = append(specs, specification.SearchTerm{Term: query.SearchTerm})
	}
	if query.FolderId != "" {
		folderId, err := uuid.Parse(query.FolderId)
		if err != nil {
			return nil, apperror.InvalidIdentifier("folderId")
		}
		specs = append(specs, specification.ByFolderID{FolderID: folderId})
	}
	if query.TagId != "" {
		tagId, err := uuid.Parse(query.TagId)
		if err != nil {
			return nil, apperror.InvalidIdentifier("tagId")
		}
		specs = append(specs, specification.HasTag{TagID: tagId})
	}
	specs = append(specs, specification.OrderBy{Field: "updated_at", Desc: true})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NoteResponse, len(notes))
	for i, note := range notes {
		result[i] = toNoteResponse(note)
	}
	return result, nil
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if req.Title == nil || *req.Title == "" {
		return nil, apperror.MissingField("title")
	}

	// Format checks fail fast, before any existence query.
	folderId, err := s.refChecker.ParseFolderReference(req.FolderId)
	if err != nil {
		return nil, err
	}
	tagIds, err := s.refChecker.ParseTagReferences(req.Tags)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Every reference must pass the scoped ownership check before anything
	// is written; a single failure rejects the whole request.
	if err := s.refChecker.VerifyReferences(ctx, uow, userId, folderId, tagIds); err != nil {
		return nil, err
	}

	note := entity.Note{
		Id:        uuid.New(),
		Title:     *req.Title,
		FolderId:  folderId,
		TagIds:    tagIds,
		UserId:    userId,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if req.Content != nil {
		note.Content = *req.Content
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toNoteResponse(&note), nil
}

func (s *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("Note")
	}

	return toNoteResponse(note), nil
}

// Update applies the allow-listed mutable fields. A folderId key that is
// absent (or empty) clears any prior folder assignment; an absent tags key
// leaves the tag set untouched.
func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if req.UserId != nil {
		return nil, apperror.OwnershipChangeForbidden()
	}
	if req.Title == nil && req.Content == nil && req.FolderId == nil && req.Tags == nil {
		return nil, apperror.EmptyUpdate()
	}
	if req.Title != nil && *req.Title == "" {
		return nil, apperror.MissingField("title")
	}

	folderId, err := s.refChecker.ParseFolderReference(req.FolderId)
	if err != nil {
		return nil, err
	}
	var tagIds []uuid.UUID
	if req.Tags != nil {
		tagIds, err = s.refChecker.ParseTagReferences(*req.Tags)
		if err != nil {
			return nil, err
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("Note")
	}

	if err := s.refChecker.VerifyReferences(ctx, uow, userId, folderId, tagIds); err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	note.FolderId = folderId
	if req.Tags != nil {
		note.TagIds = tagIds
	}
	note.UpdatedAt = time.Now()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return apperror.NotFound("Note")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}
	return uow.Commit()
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	tags := note.TagIds
	if tags == nil {
		tags = []uuid.UUID{}
	}
	return &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		FolderId:  note.FolderId,
		Tags:      tags,
		UserId:    note.UserId,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
