package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"livpulse/internal/common/apperror"
	"livpulse/internal/common/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService is the admin account-management surface.
type UserService interface {
	ListUsers(ctx context.Context) ([]Public, error)
	GetUser(ctx context.Context, id string) (Public, error)
	CreateUser(ctx context.Context, input CreateUserInput) (Public, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (Public, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserServiceImpl struct {
	repo UserRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewUserService(repo UserRepository, log *zap.Logger) UserService {
	return &UserServiceImpl{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]Public, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "Failed to list users")
	}

	out := make([]Public, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (Public, error) {
	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return Public{}, apperror.NotFound("User not found")
	}
	if err != nil {
		return Public{}, apperror.Wrap(apperror.KindInternal, err, "Failed to load user")
	}
	return u.Public(), nil
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, input CreateUserInput) (Public, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"username", input.Username},
		{"email", input.Email},
		{"name", input.Name},
		{"password", input.Password},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return Public{}, apperror.BadRequest("Missing required fields: %s", strings.Join(missing, ", "))
	}

	role := input.Role
	if role == "" {
		role = models.RolePM
	}
	if !models.ValidRole(role) {
		return Public{}, apperror.BadRequest("Invalid role: %s", role)
	}

	if _, err := s.repo.FindDuplicate(ctx, input.Username, input.Email, ""); err == nil {
		return Public{}, apperror.Conflict("Username or email already exists")
	} else if !errors.Is(err, ErrUserNotFound) {
		return Public{}, apperror.Wrap(apperror.KindInternal, err, "Failed to check for duplicates")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return Public{}, apperror.Wrap(apperror.KindInternal, err, "Failed to hash password")
	}

	now := s.now()
	u := User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		Name:         input.Name,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Insert(ctx, u); err != nil {
		return Public{}, apperror.Wrap(apperror.KindInternal, err, "Failed to create user")
	}

	s.log.Info("user created", zap.String("id", u.ID), zap.String("role", string(u.Role)))
	return u.Public(), nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (Public, error) {
	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return Public{}, apperror.NotFound("User not found")
	}
	if err != nil {
		return Public{}, apperror.Wrap(apperror.KindInternal, err, "Failed to load user")
	}

	if input.Username != nil {
		u.Username = *input.Username
	}
	if input.Email != nil {
		u.Email = *input.Email
	}
	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.Role != nil {
		if !models.ValidRole(*input.Role) {
			return Public{}, apperror.BadRequest("Invalid role: %s", *input.Role)
		}
		u.Role = *input.Role
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return Public{}, apperror.Wrap(apperror.KindInternal, err, "Failed to hash password")
		}
		u.PasswordHash = string(hash)
	}

	if input.Username != nil || input.Email != nil {
		if _, err := s.repo.FindDuplicate(ctx, u.Username, u.Email, u.ID); err == nil {
			return Public{}, apperror.Conflict("Username or email already exists")
		} else if !errors.Is(err, ErrUserNotFound) {
			return Public{}, apperror.Wrap(apperror.KindInternal, err, "Failed to check for duplicates")
		}
	}

	u.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, u); err != nil {
		return Public{}, apperror.Wrap(apperror.KindInternal, err, "Failed to update user")
	}
	return u.Public(), nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return apperror.NotFound("User not found")
	}
	if err != nil {
		return apperror.Wrap(apperror.KindInternal, err, "Failed to delete user")
	}
	return nil
}
