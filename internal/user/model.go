package user

import "time"

// Role is fixed at sign-up; there is no role-change flow.
type Role string

const (
	RoleOwner Role = "owner"
	RoleUser  Role = "user"
)

// Destination is the dashboard an account lands on after login.
type Destination string

const (
	DestinationOwner Destination = "owner"
	DestinationUser  Destination = "user"
)

// Destination routes owners to the owner dashboard and everyone else,
// including role values this system does not model, to the user dashboard.
func (r Role) Destination() Destination {
	if r == RoleOwner {
		return DestinationOwner
	}
	return DestinationUser
}

func (d Destination) Path() string {
	if d == DestinationOwner {
		return "/owner"
	}
	return "/user"
}

type User struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=owner user"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Destination  string `json:"destination"`
	User         User   `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required" validate:"required,min=6"`
}
