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

type ITagService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.TagResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TagResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTagRequest) (*dto.TagResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type tagService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTagService(uowFactory unitofwork.RepositoryFactory) ITagService {
	return &tagService{
		uowFactory: uowFactory,
	}
}

func (s *tagService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags, err := uow.TagRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TagResponse, len(tags))
	for i, tag := range tags {
		result[i] = toTagResponse(tag)
	}
	return result, nil
}

func (s *tagService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	if req.Name == nil {
		return nil, apperror.MissingField("name")
	}

	tag := entity.Tag{
		Id:        uuid.New(),
		Name:      *req.Name,
		UserId:    userId,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TagRepository().Create(ctx, &tag); err != nil {
		return nil, err
	}

	return toTagResponse(&tag), nil
}

func (s *tagService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag, err := uow.TagRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, apperror.NotFound("Tag")
	}

	return toTagResponse(tag), nil
}

func (s *tagService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTagRequest) (*dto.TagResponse, error) {
	if req.UserId != nil {
		return nil, apperror.OwnershipChangeForbidden()
	}
	if req.Name == nil {
		return nil, apperror.EmptyUpdate()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag, err := uow.TagRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, apperror.NotFound("Tag")
	}

	tag.Name = *req.Name
	tag.UpdatedAt = time.Now()

	if err := uow.TagRepository().Update(ctx, tag); err != nil {
		return nil, err
	}

	return toTagResponse(tag), nil
}

// Delete removes the tag and pulls its id from every note's tag set. Notes
// themselves are never deleted here.
func (s *tagService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag, err := uow.TagRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if tag == nil {
		return apperror.NotFound("Tag")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.TagRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.NoteRepository().PullTag(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func toTagResponse(tag *entity.Tag) *dto.TagResponse {
	return &dto.TagResponse{
		Id:        tag.Id,
		Name:      tag.Name,
		UserId:    tag.UserId,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}
