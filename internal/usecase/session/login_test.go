package session

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/buyer-leads/internal/auth"
	"github.com/BruksfildServices01/buyer-leads/internal/httperr"
	"github.com/BruksfildServices01/buyer-leads/internal/infra/repository"
)

func TestLoginCreatesUserAndToken(t *testing.T) {
	repo := repository.NewMemoryRepository()
	uc := NewLogin(repo, "secret", time.Hour)

	out, err := uc.Execute(context.Background(), LoginInput{Email: "Agent@Example.com", Name: "Priya"})
	if err != nil {
		t.Fatal(err)
	}

	claims, err := auth.ParseToken(out.Token, "secret")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if claims.UserID != out.User.ID || claims.Email != "agent@example.com" {
		t.Errorf("claims = %+v", claims)
	}

	me, err := NewCurrentUser(repo).Execute(context.Background(), out.User.ID)
	if err != nil || *me.Name != "Priya" {
		t.Fatalf("current user = %+v, %v", me, err)
	}
}

func TestLoginRejectsBadEmail(t *testing.T) {
	uc := NewLogin(repository.NewMemoryRepository(), "secret", time.Hour)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "nope"})
	if !httperr.IsBusiness(err, "invalid_email") {
		t.Fatalf("err = %v", err)
	}
}
