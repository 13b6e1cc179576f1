package user

import (
	"context"
	"testing"
	"time"

	"livpulse/internal/common/apperror"
	"livpulse/internal/common/models"

	"go.uber.org/zap"
)

func newTestUserService() UserService {
	return &UserServiceImpl{
		repo: NewMemoryUserRepository(seedUsers()),
		log:  zap.NewNop(),
		now:  time.Now,
	}
}

func TestListUsersSeeded(t *testing.T) {
	svc := newTestUserService()

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(users) != 6 {
		t.Fatalf("len = %d, want one account per role", len(users))
	}

	roles := make(map[models.Role]bool)
	for _, u := range users {
		roles[u.Role] = true
	}
	for _, role := range []models.Role{
		models.RoleAdmin, models.RoleExecutive, models.RolePM,
		models.RoleTPM, models.RoleEM, models.RoleSRE,
	} {
		if !roles[role] {
			t.Errorf("no seeded account for role %s", role)
		}
	}
}

func TestCreateUserValidation(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{})
	if !apperror.IsKind(err, apperror.KindBadRequest) {
		t.Fatalf("err = %v, want bad request", err)
	}
	if err.Error() != "Missing required fields: username, email, name, password" {
		t.Errorf("message = %q", err.Error())
	}

	_, err = svc.CreateUser(ctx, CreateUserInput{
		Username: "kim", Email: "kim@livpulse.com", Name: "Kim Lee",
		Password: "kim12345", Role: models.Role("wizard"),
	})
	if !apperror.IsKind(err, apperror.KindBadRequest) || err.Error() != "Invalid role: wizard" {
		t.Errorf("invalid role: err = %v", err)
	}
}

func TestCreateUserDuplicates(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateUserInput
	}{
		{"username taken", CreateUserInput{Username: "admin", Email: "new@livpulse.com", Name: "N", Password: "pw123456"}},
		{"email taken", CreateUserInput{Username: "newbie", Email: "admin@livpulse.com", Name: "N", Password: "pw123456"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateUser(ctx, tt.input); !apperror.IsKind(err, apperror.KindConflict) {
				t.Errorf("err = %v, want conflict", err)
			}
		})
	}

	created, err := svc.CreateUser(ctx, CreateUserInput{
		Username: "kim", Email: "kim@livpulse.com", Name: "Kim Lee", Password: "kim12345",
	})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if created.Role != models.RolePM {
		t.Errorf("default role = %s, want pm", created.Role)
	}
}

func TestUpdateUser(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	name := "Program Lead"
	updated, err := svc.UpdateUser(ctx, "pm", UpdateUserInput{Name: &name})
	if err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}
	if updated.Name != name {
		t.Errorf("Name = %q", updated.Name)
	}

	// Taking another account's email is a conflict; keeping your own is not.
	adminEmail := "admin@livpulse.com"
	if _, err := svc.UpdateUser(ctx, "pm", UpdateUserInput{Email: &adminEmail}); !apperror.IsKind(err, apperror.KindConflict) {
		t.Errorf("duplicate email: err = %v, want conflict", err)
	}
	ownEmail := "pm@livpulse.com"
	if _, err := svc.UpdateUser(ctx, "pm", UpdateUserInput{Email: &ownEmail}); err != nil {
		t.Errorf("own email: err = %v", err)
	}

	badRole := models.Role("wizard")
	if _, err := svc.UpdateUser(ctx, "pm", UpdateUserInput{Role: &badRole}); !apperror.IsKind(err, apperror.KindBadRequest) {
		t.Errorf("invalid role: err = %v, want bad request", err)
	}

	if _, err := svc.UpdateUser(ctx, "ghost", UpdateUserInput{Name: &name}); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("unknown id: err = %v, want not found", err)
	}
}

func TestDeleteUser(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	if err := svc.DeleteUser(ctx, "em"); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}
	if err := svc.DeleteUser(ctx, "em"); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("second delete: err = %v, want not found", err)
	}
	if _, err := svc.GetUser(ctx, "em"); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("GetUser after delete: err = %v, want not found", err)
	}
}
