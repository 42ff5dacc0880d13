package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"noteful-be/internal/apperror"
	"noteful-be/internal/dto"
	"noteful-be/internal/entity"
)

const testJwtSecret = "test-secret"

func newAuthFixture() (IAuthService, *fakeUnitOfWork) {
	uow := newFakeUnitOfWork()
	svc := NewAuthService(&fakeFactory{uow: uow}, testJwtSecret, time.Hour)
	return svc, uow
}

func TestRegisterValidationOrder(t *testing.T) {
	tests := []struct {
		name     string
		req      *dto.RegisterRequest
		wantKind apperror.Kind
		wantMsg  string
	}{
		{
			name:     "missing username",
			req:      &dto.RegisterRequest{Password: "longenough"},
			wantKind: apperror.KindMissingField,
			wantMsg:  "Missing 'username' in request body",
		},
		{
			name:     "missing password",
			req:      &dto.RegisterRequest{Username: "alice"},
			wantKind: apperror.KindMissingField,
			wantMsg:  "Missing 'password' in request body",
		},
		{
			name:     "numeric password",
			req:      &dto.RegisterRequest{Username: "alice", Password: float64(12345678)},
			wantKind: apperror.KindTypeMismatch,
			wantMsg:  "'password' expected to be a string",
		},
		{
			name:     "numeric fullName",
			req:      &dto.RegisterRequest{FullName: float64(7), Username: "alice", Password: "longenough"},
			wantKind: apperror.KindTypeMismatch,
			wantMsg:  "'fullName' expected to be a string",
		},
		{
			name:     "username with leading whitespace",
			req:      &dto.RegisterRequest{Username: " alice", Password: "longenough"},
			wantKind: apperror.KindWhitespaceViolation,
			wantMsg:  "'username' cannot have whitespace before or after",
		},
		{
			name:     "password with trailing whitespace",
			req:      &dto.RegisterRequest{Username: "alice", Password: "longenough "},
			wantKind: apperror.KindWhitespaceViolation,
			wantMsg:  "'password' cannot have whitespace before or after",
		},
		{
			name:     "empty username",
			req:      &dto.RegisterRequest{Username: "", Password: "longenough"},
			wantKind: apperror.KindTooShort,
			wantMsg:  "'username' must be at least 1 characters",
		},
		{
			name:     "password of 7 characters",
			req:      &dto.RegisterRequest{Username: "alice", Password: "1234567"},
			wantKind: apperror.KindLengthOutOfRange,
			wantMsg:  "'password' must be between 8 and 72 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, uow := newAuthFixture()

			res, err := svc.Register(context.Background(), tt.req)

			require.Error(t, err)
			assert.Nil(t, res)
			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, appErr.Kind)
			assert.Equal(t, 422, appErr.Status)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			uow.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterSuccess(t *testing.T) {
	svc, uow := newAuthFixture()

	var created *entity.User
	uow.users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil)

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Alice Liddell",
		Username: "alice",
		Password: "12345678",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "alice", created.Username)
	assert.NotEqual(t, "12345678", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("12345678")))

	assert.Equal(t, created.Id, res.Id)
	assert.Equal(t, "Alice Liddell", res.FullName)
	assert.Equal(t, "alice", res.Username)
}

func TestRegisterMinimalPasswordAccepted(t *testing.T) {
	svc, uow := newAuthFixture()
	uow.users.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "a",
		Password: "12345678",
	})

	require.NoError(t, err)
	uow.users.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, uow := newAuthFixture()
	uow.users.On("Create", mock.Anything, mock.Anything).
		Return(apperror.DuplicateName("The username already exists"))

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Password: "12345678",
	})

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindDuplicateName))
}

func TestLoginUnknownUsername(t *testing.T) {
	svc, uow := newAuthFixture()
	uow.users.On("FindOne", mock.Anything, mock.Anything).Return(nil, nil)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ghost",
		Password: "whatever123",
	})

	assert.Nil(t, res)
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindUnauthorized, appErr.Kind)
	assert.Equal(t, 401, appErr.Status)
	assert.Equal(t, "Unauthorized", appErr.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, uow := newAuthFixture()

	hash, err := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.MinCost)
	require.NoError(t, err)
	uow.users.On("FindOne", mock.Anything, mock.Anything).Return(&entity.User{
		Id:           uuid.New(),
		Username:     "alice",
		PasswordHash: string(hash),
	}, nil)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "wrongpassword",
	})

	assert.Nil(t, res)
	require.Error(t, err)

	// Indistinguishable from the unknown-username rejection.
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindUnauthorized, appErr.Kind)
	assert.Equal(t, "Unauthorized", appErr.Message)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, uow := newAuthFixture()

	userId := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.MinCost)
	require.NoError(t, err)
	uow.users.On("FindOne", mock.Anything, mock.Anything).Return(&entity.User{
		Id:           userId,
		FullName:     "Alice Liddell",
		Username:     "alice",
		PasswordHash: string(hash),
	}, nil)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "rightpassword",
	})

	require.NoError(t, err)
	require.NotEmpty(t, res.AuthToken)
	assert.Equal(t, "alice", res.User.Username)

	parsed, err := jwt.Parse(res.AuthToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJwtSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userId.String(), claims["user_id"])
	assert.Equal(t, "alice", claims["username"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}
