package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"noteful-be/internal/apperror"
	"noteful-be/internal/dto"
	"noteful-be/internal/entity"
	"noteful-be/internal/repository/specification"
	"noteful-be/internal/repository/unitofwork"
)

const (
	minUsernameLength = 1
	minPasswordLength = 8
	maxPasswordLength = 72
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory  unitofwork.RepositoryFactory
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string, tokenExpiry time.Duration) IAuthService {
	return &authService{
		uowFactory:  uowFactory,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
	}
}

// validateRegistration applies the registration checks in order: presence,
// JSON type, surrounding whitespace, then length bounds.
func validateRegistration(req *dto.RegisterRequest) (fullName, username, password string, err error) {
	fields := []struct {
		name  string
		value any
	}{
		{"username", req.Username},
		{"password", req.Password},
	}

	for _, f := range fields {
		if f.value == nil {
			return "", "", "", apperror.New(apperror.KindMissingField,
				fiber.StatusUnprocessableEntity, fmt.Sprintf("Missing '%s' in request body", f.name))
		}
	}

	typed := map[string]string{}
	for _, f := range []struct {
		name  string
		value any
	}{
		{"fullName", req.FullName},
		{"username", req.Username},
		{"password", req.Password},
	} {
		if f.value == nil {
			continue
		}
		s, ok := f.value.(string)
		if !ok {
			return "", "", "", apperror.TypeMismatch(f.name)
		}
		typed[f.name] = s
	}

	for _, name := range []string{"username", "password"} {
		if strings.TrimSpace(typed[name]) != typed[name] {
			return "", "", "", apperror.WhitespaceViolation(name)
		}
	}

	if len(typed["username"]) < minUsernameLength {
		return "", "", "", apperror.TooShort("username", minUsernameLength)
	}
	if len(typed["password"]) < minPasswordLength || len(typed["password"]) > maxPasswordLength {
		return "", "", "", apperror.LengthOutOfRange("password", minPasswordLength, maxPasswordLength)
	}

	return typed["fullName"], typed["username"], typed["password"], nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	fullName, username, password, err := validateRegistration(req)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		FullName:     fullName,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	// Unknown username and wrong password get the same generic rejection so
	// the response never reveals which one was wrong.
	if user == nil {
		return nil, apperror.Unauthorized()
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperror.Unauthorized()
	}

	claims := jwt.MapClaims{
		"user_id":  user.Id.String(),
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AuthToken: signedToken,
		User:      *toUserResponse(user),
	}, nil
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        user.Id,
		FullName:  user.FullName,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
