package user

import (
	"time"

	"livpulse/internal/common/models"

	"golang.org/x/crypto/bcrypt"
)

var seedTime = time.Date(2025, time.January, 26, 10, 0, 0, 0, time.UTC)

// seedUsers returns the demo accounts, one per role. The password for
// each is "<username>123".
func seedUsers() []User {
	seeds := []struct {
		username string
		name     string
		role     models.Role
	}{
		{"admin", "Admin User", models.RoleAdmin},
		{"executive", "Executive User", models.RoleExecutive},
		{"pm", "Program Manager", models.RolePM},
		{"tpm", "Technical Program Manager", models.RoleTPM},
		{"em", "Engineering Manager", models.RoleEM},
		{"sre", "Site Reliability Engineer", models.RoleSRE},
	}

	users := make([]User, 0, len(seeds))
	for i, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.username+"123"), bcrypt.DefaultCost)
		if err != nil {
			panic(err)
		}
		users = append(users, User{
			ID:           s.username,
			Username:     s.username,
			Email:        s.username + "@livpulse.com",
			Name:         s.name,
			Role:         s.role,
			PasswordHash: string(hash),
			CreatedAt:    seedTime.Add(time.Duration(i) * time.Second),
			UpdatedAt:    seedTime.Add(time.Duration(i) * time.Second),
		})
	}
	return users
}
