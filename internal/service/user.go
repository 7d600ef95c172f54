package service

import (
	"context"
	"errors"
	"strings"

	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/repo"
)

type UserService struct {
	repo repo.UserRepository
}

func NewUserService(repo repo.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, in model.CreateUserInput) (model.User, error) {
	u := model.User{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Address: strings.TrimSpace(in.Address),
	}
	if err := validateStruct(model.CreateUserInput{Name: u.Name, Email: u.Email, Address: u.Address}); err != nil {
		return model.User{}, err
	}

	created, err := s.repo.Create(ctx, u)
	return created, emailConflict(err)
}

func (s *UserService) Get(ctx context.Context, id int64) (model.User, error) {
	return s.repo.Get(ctx, id)
}

func (s *UserService) List(ctx context.Context, q model.UserQuery) ([]model.User, error) {
	return s.repo.List(ctx, q)
}

func (s *UserService) Update(ctx context.Context, id int64, in model.UpdateUserInput) (model.User, error) {
	u := model.User{
		ID:      id,
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Address: strings.TrimSpace(in.Address),
	}
	if err := validateStruct(model.UpdateUserInput{Name: u.Name, Email: u.Email, Address: u.Address}); err != nil {
		return model.User{}, err
	}

	updated, err := s.repo.Update(ctx, u)
	return updated, emailConflict(err)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// emailConflict turns the store's unique-email violation into a
// validation error on the email field.
func emailConflict(err error) error {
	if errors.Is(err, repo.ErrorConflict) {
		return &ValidationError{Fields: map[string]string{"email": "is already in use"}}
	}
	return err
}
