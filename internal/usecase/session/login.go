package session

import (
	"context"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/buyer-leads/internal/auth"
	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/httperr"
	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

var ErrInvalidEmail = httperr.ErrBusiness("invalid_email")

type LoginInput struct {
	Email string
	Name  string
}

type LoginOutput struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

// Login signs a user in by email alone, creating the account on first
// use.
type Login struct {
	users  domain.UserRepository
	secret string
	ttl    time.Duration
}

func NewLogin(users domain.UserRepository, secret string, ttl time.Duration) *Login {
	return &Login{users: users, secret: secret, ttl: ttl}
}

func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, ErrInvalidEmail
	}

	user, err := uc.users.UpsertByEmail(ctx, email, in.Name)
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(user.ID, user.Email, uc.secret, uc.ttl)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:      user,
		Token:     token,
		ExpiresAt: time.Now().Add(uc.ttl),
	}, nil
}

type CurrentUser struct {
	users domain.UserRepository
}

func NewCurrentUser(users domain.UserRepository) *CurrentUser {
	return &CurrentUser{users: users}
}

func (uc *CurrentUser) Execute(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return uc.users.GetUserByID(ctx, id)
}
