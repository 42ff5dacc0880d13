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

type IFolderService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.FolderResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) (*dto.FolderResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.FolderResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFolderRequest) (*dto.FolderResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type folderService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFolderService(uowFactory unitofwork.RepositoryFactory) IFolderService {
	return &folderService{
		uowFactory: uowFactory,
	}
}

func (s *folderService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.FolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folders, err := uow.FolderRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FolderResponse, len(folders))
	for i, folder := range folders {
		result[i] = toFolderResponse(folder)
	}
	return result, nil
}

func (s *folderService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) (*dto.FolderResponse, error) {
	if req.Name == nil {
		return nil, apperror.MissingField("name")
	}

	folder := entity.Folder{
		Id:        uuid.New(),
		Name:      *req.Name,
		UserId:    userId,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.FolderRepository().Create(ctx, &folder); err != nil {
		return nil, err
	}

	return toFolderResponse(&folder), nil
}

func (s *folderService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.FolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperror.NotFound("Folder")
	}

	return toFolderResponse(folder), nil
}

func (s *folderService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFolderRequest) (*dto.FolderResponse, error) {
	if req.UserId != nil {
		return nil, apperror.OwnershipChangeForbidden()
	}
	if req.Name == nil {
		return nil, apperror.EmptyUpdate()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperror.NotFound("Folder")
	}

	folder.Name = *req.Name
	folder.UpdatedAt = time.Now()

	if err := uow.FolderRepository().Update(ctx, folder); err != nil {
		return nil, err
	}

	return toFolderResponse(folder), nil
}

// Delete removes the folder and cascades to the owner's notes filed under
// it, atomically. Another user's same-named folder and its notes are out of
// reach by construction: both deletes carry the owner clause.
func (s *folderService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if folder == nil {
		return apperror.NotFound("Folder")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.FolderRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.NoteRepository().DeleteByFolder(ctx, id, userId); err != nil {
		return err
	}

	return uow.Commit()
}

func toFolderResponse(folder *entity.Folder) *dto.FolderResponse {
	return &dto.FolderResponse{
		Id:        folder.Id,
		Name:      folder.Name,
		UserId:    folder.UserId,
		CreatedAt: folder.CreatedAt,
		UpdatedAt: folder.UpdatedAt,
	}
}
