package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"noteful-be/internal/apperror"
	"noteful-be/internal/dto"
	"noteful-be/internal/entity"
	"noteful-be/internal/repository/specification"
)

func newFolderFixture() (IFolderService, *fakeUnitOfWork) {
	uow := newFakeUnitOfWork()
	svc := NewFolderService(&fakeFactory{uow: uow})
	return svc, uow
}

func TestFolderCreateStampsOwner(t *testing.T) {
	svc, uow := newFolderFixture()
	userId := uuid.New()

	var created *entity.Folder
	uow.folders.On("Create", mock.Anything, mock.AnythingOfType("*entity.Folder")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Folder)
		}).
		Return(nil)

	res, err := svc.Create(context.Background(), userId, &dto.CreateFolderRequest{Name: ptr("Work")})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Work", created.Name)
	assert.Equal(t, userId, created.UserId)
	assert.Equal(t, created.Id, res.Id)
	assert.Equal(t, userId, res.UserId)
}

func TestFolderCreateMissingName(t *testing.T) {
	svc, uow := newFolderFixture()

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateFolderRequest{})

	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindMissingField, appErr.Kind)
	assert.Equal(t, "Missing 'name' in request body", appErr.Message)
	uow.folders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFolderCreateDuplicateName(t *testing.T) {
	svc, uow := newFolderFixture()
	uow.folders.On("Create", mock.Anything, mock.Anything).
		Return(apperror.DuplicateName("You already have a folder with that name"))

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateFolderRequest{Name: ptr("Work")})

	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindDuplicateName, appErr.Kind)
	assert.Equal(t, 400, appErr.Status)
}

func TestFolderShowScopesLookupToOwner(t *testing.T) {
	svc, uow := newFolderFixture()
	userId := uuid.New()
	folderId := uuid.New()

	var gotSpecs []specification.Specification
	uow.folders.On("FindOne", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotSpecs = args.Get(1).([]specification.Specification)
		}).
		Return(nil, nil)

	_, err := svc.Show(context.Background(), userId, folderId)

	// Another user's folder id resolves to 404, never 403.
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Folder not found", appErr.Message)

	require.Len(t, gotSpecs, 2)
	assert.Contains(t, gotSpecs, specification.ByID{ID: folderId})
	assert.Contains(t, gotSpecs, specification.OwnedBy{UserID: userId})
}

func TestFolderUpdateRejectsOwnershipChange(t *testing.T) {
	svc, uow := newFolderFixture()

	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateFolderRequest{
		Id:     uuid.New(),
		Name:   ptr("Renamed"),
		UserId: ptr(uuid.NewString()),
	})

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindOwnershipChangeForbidden))
	uow.folders.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
	uow.folders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFolderUpdateEmptyBody(t *testing.T) {
	svc, uow := newFolderFixture()

	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateFolderRequest{Id: uuid.New()})

	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindEmptyUpdate, appErr.Kind)
	assert.Equal(t, "Nothing to update in request body", appErr.Message)
	uow.folders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFolderUpdateRenames(t *testing.T) {
	svc, uow := newFolderFixture()
	userId := uuid.New()
	folderId := uuid.New()

	uow.folders.On("FindOne", mock.Anything, mock.Anything).Return(&entity.Folder{
		Id:     folderId,
		Name:   "Old",
		UserId: userId,
	}, nil)

	var updated *entity.Folder
	uow.folders.On("Update", mock.Anything, mock.AnythingOfType("*entity.Folder")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*entity.Folder)
		}).
		Return(nil)

	res, err := svc.Update(context.Background(), userId, &dto.UpdateFolderRequest{
		Id:   folderId,
		Name: ptr("New"),
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, userId, updated.UserId)
	assert.Equal(t, "New", res.Name)
}

func TestFolderDeleteCascadesToNotes(t *testing.T) {
	svc, uow := newFolderFixture()
	userId := uuid.New()
	folderId := uuid.New()

	uow.folders.On("FindOne", mock.Anything, mock.Anything).Return(&entity.Folder{
		Id:     folderId,
		UserId: userId,
	}, nil)
	uow.folders.On("Delete", mock.Anything, folderId).Return(nil)
	uow.notes.On("DeleteByFolder", mock.Anything, folderId, userId).Return(nil)

	err := svc.Delete(context.Background(), userId, folderId)

	require.NoError(t, err)
	uow.folders.AssertCalled(t, "Delete", mock.Anything, folderId)
	// The cascade carries the owner id so another user's notes stay put.
	uow.notes.AssertCalled(t, "DeleteByFolder", mock.Anything, folderId, userId)
	assert.Equal(t, 1, uow.began)
	assert.Equal(t, 1, uow.committed)
}

func TestFolderDeleteNotFound(t *testing.T) {
	svc, uow := newFolderFixture()
	uow.folders.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	uow.folders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.notes.AssertNotCalled(t, "DeleteByFolder", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, 0, uow.began)
}

func TestFolderGetAllOrdersByRecency(t *testing.T) {
	svc, uow := newFolderFixture()
	userId := uuid.New()

	var gotSpecs []specification.Specification
	uow.folders.On("FindAll", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotSpecs = args.Get(1).([]specification.Specification)
		}).
		Return([]*entity.Folder{}, nil)

	res, err := svc.GetAll(context.Background(), userId)

	require.NoError(t, err)
	assert.Empty(t, res)
	require.Len(t, gotSpecs, 2)
	assert.Contains(t, gotSpecs, specification.OwnedBy{UserID: userId})
	assert.Contains(t, gotSpecs, specification.OrderBy{Field: "updated_at", Desc: true})
}
