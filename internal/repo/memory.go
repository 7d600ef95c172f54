package repo

import (
	"context"
	"slices"
	"sync"

	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/query"
)

// memoryTable keeps rows in id order. Ids come from a counter that only
// grows, so a deleted id is never handed out again.
type memoryTable[T any] struct {
	mu     sync.RWMutex
	rows   []T
	lastID int64
	id     func(T) int64
	setID  func(*T, int64)
}

func (m *memoryTable[T]) index(id int64) int {
	return slices.IndexFunc(m.rows, func(r T) bool { return m.id(r) == id })
}

// insert assigns the next id. check runs under the write lock and may veto
// the insert.
func (m *memoryTable[T]) insert(row T, check func(rows []T, row T) error) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setID(&row, m.lastID+1)
	if check != nil {
		if err := check(m.rows, row); err != nil {
			var zero T
			return zero, err
		}
	}
	m.lastID++
	m.rows = append(m.rows, row)
	return row, nil
}

func (m *memoryTable[T]) get(id int64) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.index(id)
	if i < 0 {
		var zero T
		return zero, ErrorNotFound
	}
	return m.rows[i], nil
}

func (m *memoryTable[T]) snapshot() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.rows)
}

func (m *memoryTable[T]) replace(row T, check func(rows []T, row T) error) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(m.id(row))
	if i < 0 {
		var zero T
		return zero, ErrorNotFound
	}
	if check != nil {
		if err := check(m.rows, row); err != nil {
			var zero T
			return zero, err
		}
	}
	m.rows[i] = row
	return row, nil
}

func (m *memoryTable[T]) remove(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return ErrorNotFound
	}
	m.rows = slices.Delete(m.rows, i, i+1)
	return nil
}

// MemoryToDoRepo is a process-local ToDoRepository.
type MemoryToDoRepo struct {
	table memoryTable[model.ToDo]
}

func NewMemoryToDoRepo() *MemoryToDoRepo {
	return &MemoryToDoRepo{
		table: memoryTable[model.ToDo]{
			id:    func(t model.ToDo) int64 { return t.ID },
			setID: func(t *model.ToDo, id int64) { t.ID = id },
		},
	}
}

func (r *MemoryToDoRepo) Create(ctx context.Context, t model.ToDo) (model.ToDo, error) {
	if err := ctx.Err(); err != nil {
		return model.ToDo{}, err
	}
	return r.table.insert(t, nil)
}

func (r *MemoryToDoRepo) Get(ctx context.Context, id int64) (model.ToDo, error) {
	if err := ctx.Err(); err != nil {
		return model.ToDo{}, err
	}
	return r.table.get(id)
}

func (r *MemoryToDoRepo) List(ctx context.Context, q model.ToDoQuery) ([]model.ToDo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return query.ToDos(r.table.snapshot(), q), nil
}

func (r *MemoryToDoRepo) Update(ctx context.Context, t model.ToDo) (model.ToDo, error) {
	if err := ctx.Err(); err != nil {
		return model.ToDo{}, err
	}
	return r.table.replace(t, nil)
}

func (r *MemoryToDoRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.table.remove(id)
}

// MemoryUserRepo is a process-local UserRepository. Email uniqueness is
// checked under the table lock, byte for byte like the SQL unique indexes.
type MemoryUserRepo struct {
	table memoryTable[model.User]
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{
		table: memoryTable[model.User]{
			id:    func(u model.User) int64 { return u.ID },
			setID: func(u *model.User, id int64) { u.ID = id },
		},
	}
}

func uniqueEmail(rows []model.User, u model.User) error {
	for _, other := range rows {
		if other.ID != u.ID && other.Email == u.Email {
			return ErrorConflict
		}
	}
	return nil
}

func (r *MemoryUserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}
	return r.table.insert(u, uniqueEmail)
}

func (r *MemoryUserRepo) Get(ctx context.Context, id int64) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}
	return r.table.get(id)
}

func (r *MemoryUserRepo) List(ctx context.Context, q model.UserQuery) ([]model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return query.Users(r.table.snapshot(), q), nil
}

func (r *MemoryUserRepo) Update(ctx context.Context, u model.User) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}
	return r.table.replace(u, uniqueEmail)
}

func (r *MemoryUserRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.table.remove(id)
}
