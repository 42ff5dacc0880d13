package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"noteful-be/internal/entity"
	"noteful-be/internal/repository/contract"
	"noteful-be/internal/repository/specification"
	"noteful-be/internal/repository/unitofwork"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	args := m.Called(ctx, specs)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

type MockFolderRepository struct {
	mock.Mock
}

func (m *MockFolderRepository) Create(ctx context.Context, folder *entity.Folder) error {
	args := m.Called(ctx, folder)
	return args.Error(0)
}

func (m *MockFolderRepository) Update(ctx context.Context, folder *entity.Folder) error {
	args := m.Called(ctx, folder)
	return args.Error(0)
}

func (m *MockFolderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFolderRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Folder, error) {
	args := m.Called(ctx, specs)
	if f := args.Get(0); f != nil {
		return f.(*entity.Folder), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFolderRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Folder, error) {
	args := m.Called(ctx, specs)
	if f := args.Get(0); f != nil {
		return f.([]*entity.Folder), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFolderRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) Update(ctx context.Context, tag *entity.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTagRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error) {
	args := m.Called(ctx, specs)
	if t := args.Get(0); t != nil {
		return t.(*entity.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTagRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	args := m.Called(ctx, specs)
	if t := args.Get(0); t != nil {
		return t.([]*entity.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTagRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNoteRepository) DeleteByFolder(ctx context.Context, folderId, userId uuid.UUID) error {
	args := m.Called(ctx, folderId, userId)
	return args.Error(0)
}

func (m *MockNoteRepository) PullTag(ctx context.Context, tagId uuid.UUID) error {
	args := m.Called(ctx, tagId)
	return args.Error(0)
}

func (m *MockNoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	args := m.Called(ctx, specs)
	if n := args.Get(0); n != nil {
		return n.(*entity.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	args := m.Called(ctx, specs)
	if n := args.Get(0); n != nil {
		return n.([]*entity.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

// fakeUnitOfWork hands out the mock repositories and records transaction
// calls so tests can assert atomicity.
type fakeUnitOfWork struct {
	users   *MockUserRepository
	folders *MockFolderRepository
	tags    *MockTagRepository
	notes   *MockNoteRepository

	began      int
	committed  int
	rolledBack int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		users:   new(MockUserRepository),
		folders: new(MockFolderRepository),
		tags:    new(MockTagRepository),
		notes:   new(MockNoteRepository),
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.began++
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.committed++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	u.rolledBack++
	return nil
}

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository     { return u.users }
func (u *fakeUnitOfWork) FolderRepository() contract.FolderRepository { return u.folders }
func (u *fakeUnitOfWork) TagRepository() contract.TagRepository       { return u.tags }
func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository     { return u.notes }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func ptr[T any](v T) *T {
	return &v
}
