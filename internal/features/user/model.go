package user

import (
	"time"

	"livpulse/internal/common/models"
)

// User is an account that can sign in and hit the dashboard APIs.
// PasswordHash never leaves the process.
type User struct {
	ID           string      `json:"id" bson:"_id"`
	Username     string      `json:"username" bson:"username"`
	Email        string      `json:"email" bson:"email"`
	Name         string      `json:"name" bson:"name"`
	Role         models.Role `json:"role" bson:"role"`
	PasswordHash string      `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt" bson:"updatedAt"`
}

// Public is the wire shape of a user.
type Public struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (u User) Public() Public {
	return Public{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// CreateUserInput is the admin create payload.
type CreateUserInput struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role"`
	Password string      `json:"password"`
}

// UpdateUserInput patches a user; nil fields stay unchanged.
type UpdateUserInput struct {
	Username *string      `json:"username"`
	Email    *string      `json:"email"`
	Name     *string      `json:"name"`
	Role     *models.Role `json:"role"`
	Password *string      `json:"password"`
}
