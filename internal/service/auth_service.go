package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"craftquiz/internal/model"
	"craftquiz/internal/repository"
)

const bcryptCost = 10

var (
	// ErrUserAlreadyExists is returned when signing up with a registered email.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound is returned when logging in with an unknown email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword is returned when the password does not match the stored hash.
	ErrInvalidPassword = errors.New("invalid password")
)

// AuthService handles signup and login.
type AuthService interface {
	Signup(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) error
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Normalized email is the uniqueness and lookup key for signup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new user with a bcrypt-hashed password.
func (s *authService) Signup(ctx context.Context, email, password string) error {
	email = NormalizeEmail(email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check user existence: %w", err)
	}
	if existing != nil {
		return ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique index can still fire when two signups race the
		// existence check above.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login verifies the supplied credentials against the stored hash.
//
// Lookup uses the email exactly as supplied. Signup normalizes before
// storing, login does not; a user created as "a@b.com" is not found by
// "A@B.com". This asymmetry is carried over from the original system
// unchanged.
func (s *authService) Login(ctx context.Context, email, password string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}
