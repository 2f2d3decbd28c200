package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gymperday/internal/auth"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// ErrAccountDataMissing means an authenticated session has no matching
	// account record. The caller must surface it instead of routing to a
	// default dashboard.
	ErrAccountDataMissing = errors.New("account data missing")
)

// Mailer delivers password-reset mail. Satisfied by email.Service.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, string, Destination, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
	ResolveDestination(ctx context.Context, userID int) (Destination, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type service struct {
	repo       Repository
	mailer     Mailer
	jwtSecret  string
	appBaseURL string
}

func NewService(repo Repository, mailer Mailer, jwtSecret, appBaseURL string) Service {
	return &service{
		repo:       repo,
		mailer:     mailer,
		jwtSecret:  jwtSecret,
		appBaseURL: appBaseURL,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", "", err
	}
	if exists {
		return nil, "", "", ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	role := Role(req.Role)
	if role != RoleOwner {
		role = RoleUser
	}

	u, err := s.repo.Create(ctx, req.Email, passwordHash, role)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		u.ID,
		u.Email,
		string(u.Role),
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, "", "", err
	}

	return u, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, Destination, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Only an absent account is a credentials problem; a store outage
		// must surface as such so the caller can re-submit.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", "", "", ErrInvalidCredentials
		}
		return nil, "", "", "", err
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, "", "", "", ErrInvalidCredentials
	}

	// Re-read the account record by id, the same lookup a restored session
	// performs. A missing record here is a data-integrity failure, not a
	// bad-credentials one.
	destination, err := s.ResolveDestination(ctx, u.ID)
	if err != nil {
		return nil, "", "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		u.ID,
		u.Email,
		string(u.Role),
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, "", "", "", err
	}

	return u, accessToken, refreshToken, destination, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	u, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, ErrUserNotFound
	}

	newAccessToken, err := auth.GenerateAccessToken(u.ID, u.Email, string(u.Role), s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, u, nil
}

// ResolveDestination looks up the account record for an authenticated uid
// and picks one of exactly two dashboards. Owners go to the owner dashboard;
// every other role value falls through to the user dashboard.
func (s *service) ResolveDestination(ctx context.Context, userID int) (Destination, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrAccountDataMissing
		}
		return "", err
	}

	return u.Role.Destination(), nil
}

func (s *service) RequestPasswordReset(ctx context.Context, email string) error {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}

	token, err := auth.GenerateResetToken(u.ID, u.Email, s.jwtSecret)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.appBaseURL, token)
	return s.mailer.SendPasswordReset(ctx, u.Email, resetLink)
}

func (s *service) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := auth.ValidateResetToken(token, s.jwtSecret)
	if err != nil {
		return err
	}

	u, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, u.ID, passwordHash)
}
