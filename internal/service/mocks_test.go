package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

// MockToDoRepository - мок репозитория задач
type MockToDoRepository struct {
	mock.Mock
}

func (m *MockToDoRepository) Create(ctx context.Context, t model.ToDo) (model.ToDo, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.ToDo), args.Error(1)
}

func (m *MockToDoRepository) Get(ctx context.Context, id int64) (model.ToDo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.ToDo), args.Error(1)
}

func (m *MockToDoRepository) List(ctx context.Context, q model.ToDoQuery) ([]model.ToDo, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]model.ToDo), args.Error(1)
}

func (m *MockToDoRepository) Update(ctx context.Context, t model.ToDo) (model.ToDo, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.ToDo), args.Error(1)
}

func (m *MockToDoRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository - мок репозитория пользователей
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) Get(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, q model.UserQuery) ([]model.User, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
