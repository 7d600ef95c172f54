package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/repo"
)

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name       string
		input      model.CreateUserInput
		setupMock  func(*MockUserRepository)
		wantErr    error
		wantFields map[string]string
	}{
		{
			name:  "successful creation",
			input: model.CreateUserInput{Name: "Alice Smith", Email: "alice@example.com", Address: "123 Main St"},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, model.User{
					Name: "Alice Smith", Email: "alice@example.com", Address: "123 Main St",
				}).Return(model.User{ID: 1, Name: "Alice Smith", Email: "alice@example.com", Address: "123 Main St"}, nil)
			},
		},
		{
			name:       "invalid email",
			input:      model.CreateUserInput{Name: "Bob", Email: "not-an-email", Address: "456 Oak Ave"},
			setupMock:  func(m *MockUserRepository) {},
			wantErr:    ErrValidation,
			wantFields: map[string]string{"email": "invalid email format"},
		},
		{
			name:       "missing fields",
			input:      model.CreateUserInput{},
			setupMock:  func(m *MockUserRepository) {},
			wantErr:    ErrValidation,
			wantFields: map[string]string{"name": "is required", "email": "is required", "address": "is required"},
		},
		{
			name:  "duplicate email",
			input: model.CreateUserInput{Name: "Alice Again", Email: "alice@example.com", Address: "1 Elm St"},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(model.User{}, repo.ErrorConflict)
			},
			wantErr:    ErrValidation,
			wantFields: map[string]string{"email": "is already in use"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			result, err := NewUserService(mockRepo).Create(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantFields, verr.Fields)
			} else {
				require.NoError(t, err)
				assert.NotZero(t, result.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	t.Run("keeps id and replaces fields", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		want := model.User{ID: 2, Name: "Bob J", Email: "bob.j@example.com", Address: "1 New Rd"}
		mockRepo.On("Update", mock.Anything, want).Return(want, nil)

		got, err := NewUserService(mockRepo).Update(context.Background(), 2, model.UpdateUserInput{
			Name: "Bob J", Email: "bob.j@example.com", Address: "1 New Rd",
		})

		require.NoError(t, err)
		assert.Equal(t, want, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(model.User{}, repo.ErrorConflict)

		_, err := NewUserService(mockRepo).Update(context.Background(), 2, model.UpdateUserInput{
			Name: "Bob", Email: "alice@example.com", Address: "456 Oak Ave",
		})

		assert.ErrorIs(t, err, ErrValidation)
		assert.NotErrorIs(t, err, repo.ErrorConflict)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(model.User{}, repo.ErrorNotFound)

		_, err := NewUserService(mockRepo).Update(context.Background(), 42, model.UpdateUserInput{
			Name: "Bob", Email: "bob@example.com", Address: "456 Oak Ave",
		})

		assert.ErrorIs(t, err, repo.ErrorNotFound)
	})
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"name": "is required", "email": "invalid email format"}}
	assert.Equal(t, "validation error: email: invalid email format; name: is required", err.Error())
}
