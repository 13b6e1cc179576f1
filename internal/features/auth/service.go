package auth

import (
	"context"
	"errors"
	"strings"

	"livpulse/internal/common/apperror"
	"livpulse/internal/common/models"
	"livpulse/internal/features/user"
	"livpulse/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Session is a successful login or registration result.
type Session struct {
	Token string      `json:"token"`
	User  user.Public `json:"user"`
}

// RegisterInput is the self-service signup payload. Role defaults to pm.
type RegisterInput struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role"`
}

// AuthService signs users in and out.
type AuthService interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Register(ctx context.Context, input RegisterInput) (Session, error)
	CurrentUser(ctx context.Context, userID string) (user.Public, error)
}

type AuthServiceImpl struct {
	users user.UserService
	repo  user.UserRepository
	log   *zap.Logger
}

func NewAuthService(users user.UserService, repo user.UserRepository, log *zap.Logger) AuthService {
	return &AuthServiceImpl{
		users: users,
		repo:  repo,
		log:   log,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return Session{}, apperror.BadRequest("Email and password are required")
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrUserNotFound) {
		return Session{}, apperror.Unauthorized("Invalid credentials")
	}
	if err != nil {
		return Session{}, apperror.Wrap(apperror.KindInternal, err, "Login failed")
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return Session{}, apperror.Unauthorized("Invalid credentials")
	}

	token, err := utils.GenerateToken(u.ID, u.Email, u.Role)
	if err != nil {
		return Session{}, apperror.Wrap(apperror.KindInternal, err, "Login failed")
	}

	s.log.Info("user logged in", zap.String("id", u.ID), zap.String("role", string(u.Role)))
	return Session{Token: token, User: u.Public()}, nil
}

func (s *AuthServiceImpl) Register(ctx context.Context, input RegisterInput) (Session, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" || strings.TrimSpace(input.Name) == "" {
		return Session{}, apperror.BadRequest("Email, password, and name are required")
	}

	if _, err := s.repo.GetByEmail(ctx, input.Email); err == nil {
		return Session{}, apperror.Conflict("User already exists")
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return Session{}, apperror.Wrap(apperror.KindInternal, err, "Registration failed")
	}

	username := input.Email
	if at := strings.Index(input.Email, "@"); at > 0 {
		username = input.Email[:at]
	}

	created, err := s.users.CreateUser(ctx, user.CreateUserInput{
		Username: username,
		Email:    input.Email,
		Name:     input.Name,
		Role:     input.Role,
		Password: input.Password,
	})
	if err != nil {
		return Session{}, err
	}

	token, err := utils.GenerateToken(created.ID, created.Email, created.Role)
	if err != nil {
		return Session{}, apperror.Wrap(apperror.KindInternal, err, "Registration failed")
	}
	return Session{Token: token, User: created}, nil
}

func (s *AuthServiceImpl) CurrentUser(ctx context.Context, userID string) (user.Public, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if errors.Is(err, user.ErrUserNotFound) {
		return user.Public{}, apperror.NotFound("User not found")
	}
	if err != nil {
		return user.Public{}, apperror.Wrap(apperror.KindInternal, err, "Failed to get user info")
	}
	return u.Public(), nil
}
