// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Chiggy-Playz/Todo-API/internal/auth"
	"github.com/Chiggy-Playz/Todo-API/internal/metrics"
	"github.com/Chiggy-Playz/Todo-API/internal/model"
	"github.com/Chiggy-Playz/Todo-API/internal/repository"
)

// Identity service errors.
var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrMissingName  = errors.New("name is required")
	ErrMissingEmail = errors.New("email is required")
)

// maxKeyRetries bounds regeneration attempts on the (astronomically
// unlikely) api_key unique-constraint collision.
const maxKeyRetries = 3

// IdentityService issues credentials and registers users.
type IdentityService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(repo *repository.Repository, recorder metrics.Recorder) *IdentityService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &IdentityService{
		repo:    repo,
		metrics: recorder,
	}
}

// RegisterInput defines input for registering a user.
type RegisterInput struct {
	Name  string
	Email string
}

// Register creates a new user and returns the freshly issued API key.
// The key is revealed only here; it is stored for equality lookup and
// there is no recovery flow.
func (s *IdentityService) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, "", ErrMissingName
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, "", ErrMissingEmail
	}

	for attempt := 0; attempt < maxKeyRetries; attempt++ {
		apiKey, err := auth.GenerateAPIKey()
		if err != nil {
			return nil, "", fmt.Errorf("failed to generate API key: %w", err)
		}

		user := &model.User{
			Name:   name,
			Email:  email,
			APIKey: apiKey,
		}

		err = s.repo.CreateUser(ctx, user)
		if err == nil {
			s.metrics.IncUserRegistered()
			return user, apiKey, nil
		}
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, "", ErrEmailTaken
		}
		if errors.Is(err, repository.ErrAPIKeyExists) {
			continue
		}
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}

	return nil, "", errors.New("failed to issue a unique API key after retries")
}
