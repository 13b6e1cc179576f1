package auth

import (
	"context"
	"testing"

	"livpulse/internal/common/apperror"
	"livpulse/internal/common/models"
	"livpulse/internal/features/user"

	"go.uber.org/zap"
)

func newTestAuth() AuthService {
	log := zap.NewNop()
	repo := user.NewMemoryUserRepository(nil)
	return NewAuthService(user.NewUserService(repo, log), repo, log)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	session, err := svc.Register(ctx, RegisterInput{
		Email:    "pat@example.com",
		Password: "secret123",
		Name:     "Pat Doe",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if session.Token == "" {
		t.Error("no token issued")
	}
	if session.User.Role != models.RolePM {
		t.Errorf("default role = %s, want pm", session.User.Role)
	}
	if session.User.Username != "pat" {
		t.Errorf("username = %q, want email local part", session.User.Username)
	}

	login, err := svc.Login(ctx, "pat@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if login.Token == "" || login.User.Email != "pat@example.com" {
		t.Errorf("login session = %+v", login)
	}
}

func TestLoginFailures(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "pat@example.com", Password: "secret123", Name: "Pat Doe"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantKind apperror.Kind
	}{
		{"missing credentials", "", "", apperror.KindBadRequest},
		{"missing password", "pat@example.com", "", apperror.KindBadRequest},
		{"unknown email", "nobody@example.com", "secret123", apperror.KindUnauthorized},
		{"wrong password", "pat@example.com", "hunter2", apperror.KindUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(ctx, tt.email, tt.password); !apperror.IsKind(err, tt.wantKind) {
				t.Errorf("Login() error = %v, want kind %d", err, tt.wantKind)
			}
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "x@example.com"}); !apperror.IsKind(err, apperror.KindBadRequest) {
		t.Errorf("missing fields: err = %v, want bad request", err)
	}

	if _, err := svc.Register(ctx, RegisterInput{Email: "pat@example.com", Password: "secret123", Name: "Pat Doe"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Email: "pat@example.com", Password: "other456", Name: "Pat Again"}); !apperror.IsKind(err, apperror.KindConflict) {
		t.Errorf("duplicate email: err = %v, want conflict", err)
	}
}

func TestCurrentUser(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	session, err := svc.Register(ctx, RegisterInput{Email: "pat@example.com", Password: "secret123", Name: "Pat Doe"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, err := svc.CurrentUser(ctx, session.User.ID)
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if got.Email != "pat@example.com" {
		t.Errorf("Email = %q", got.Email)
	}

	if _, err := svc.CurrentUser(ctx, "ghost"); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("unknown id: err = %v, want not found", err)
	}
}
