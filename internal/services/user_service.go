package services

import (
	"context"
	"errors"
	"strings"

	"github.com/resumely/resumely/internal/models"
	mongorepo "github.com/resumely/resumely/internal/repositories/mongo"
	"github.com/resumely/resumely/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
)

type CreateUserInput struct {
	Email    string
	Name     string
	Picture  string
	Password string // optional, hashed before storage
}

type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, rawID string) (*models.User, error)
	Update(ctx context.Context, rawID string, fields map[string]any) (*models.User, error)
}

type userService struct {
	users mongorepo.UserRepository
}

func NewUserService(users mongorepo.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	const op = "UserService.Create"

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email is required", nil)
	}

	u := &models.User{
		Email:   email,
		Name:    strings.TrimSpace(in.Name),
		Picture: in.Picture,
	}
	if in.Password != "" {
		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
		}
		u.PasswordHash = hash
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeConflict, op, "email already registered", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}
	return u, nil
}

// Authenticate verifies an email/password pair. Unknown email, a user
// without a stored hash, and a wrong password all collapse into the same
// unauthorized error so the response never reveals which part failed.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	const op = "UserService.Authenticate"

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}

	if u.PasswordHash == "" {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}
	if err := utils.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", err)
	}
	return u, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "UserService.GetByEmail"

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email is required", nil)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}
	return u, nil
}

func (s *userService) GetByID(ctx context.Context, rawID string) (*models.User, error) {
	const op = "UserService.GetByID"

	id, ok := utils.ParseID(rawID)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "user not found", utils.ErrInvalidID)
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, rawID string, fields map[string]any) (*models.User, error) {
	const op = "UserService.Update"

	id, ok := utils.ParseID(rawID)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "user not found", utils.ErrInvalidID)
	}
	if len(fields) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "no fields to update", nil)
	}

	if err := s.users.Update(ctx, id, bson.M(fields)); err != nil {
		switch {
		case errors.Is(err, utils.ErrNotFound):
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		case errors.Is(err, utils.ErrDuplicate):
			return nil, utils.E(utils.CodeConflict, op, "email already registered", err)
		default:
			return nil, utils.E(utils.CodeInternal, op, "failed to update user", err)
		}
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to reload user", err)
	}
	return u, nil
}
