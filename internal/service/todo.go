package service

import (
	"context"
	"strings"

	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/repo"
)

type ToDoService struct {
	repo repo.ToDoRepository
}

func NewToDoService(repo repo.ToDoRepository) *ToDoService {
	return &ToDoService{repo: repo}
}

// Create stores a new item. Status always starts as false.
func (s *ToDoService) Create(ctx context.Context, in model.CreateToDoInput) (model.ToDo, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := validateStruct(in); err != nil { // Валидация модели на корректность введенных данных
		return model.ToDo{}, err
	}

	return s.repo.Create(ctx, model.ToDo{
		Title:       in.Title,
		Description: in.Description,
		Status:      false,
	})
}

func (s *ToDoService) Get(ctx context.Context, id int64) (model.ToDo, error) {
	return s.repo.Get(ctx, id)
}

func (s *ToDoService) List(ctx context.Context, q model.ToDoQuery) ([]model.ToDo, error) {
	return s.repo.List(ctx, q)
}

// Update replaces every field of item id.
func (s *ToDoService) Update(ctx context.Context, id int64, in model.UpdateToDoInput) (model.ToDo, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := validateStruct(in); err != nil {
		return model.ToDo{}, err
	}

	return s.repo.Update(ctx, model.ToDo{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
	})
}

func (s *ToDoService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
