package repo

import (
	"context"
	"errors"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")
)

// ToDoRepository определяет интерфейс для работы с задачами
type ToDoRepository interface {
	Create(ctx context.Context, t model.ToDo) (model.ToDo, error)
	Get(ctx context.Context, id int64) (model.ToDo, error)
	List(ctx context.Context, q model.ToDoQuery) ([]model.ToDo, error)
	Update(ctx context.Context, t model.ToDo) (model.ToDo, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository stores users. Implementations return ErrorConflict when
// an email is already taken by another user.
type UserRepository interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	Get(ctx context.Context, id int64) (model.User, error)
	List(ctx context.Context, q model.UserQuery) ([]model.User, error)
	Update(ctx context.Context, u model.User) (model.User, error)
	Delete(ctx context.Context, id int64) error
}
