package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

type PostgresToDoRepo struct { // Репозиторий для работы непосредственно с БД
	pool *pgxpool.Pool
}

func NewPostgresToDoRepo(pool *pgxpool.Pool) *PostgresToDoRepo {
	return &PostgresToDoRepo{
		pool: pool,
	}
}

func (r *PostgresToDoRepo) Create(ctx context.Context, t model.ToDo) (model.ToDo, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO todos (title, description, status)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, status
	`, t.Title, t.Description, t.Status).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status,
	)
	return t, mapError(err)
}

func (r *PostgresToDoRepo) Get(ctx context.Context, id int64) (model.ToDo, error) {
	var t model.ToDo
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, description, status
		FROM todos
		WHERE id = $1
	`, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *PostgresToDoRepo) List(ctx context.Context, q model.ToDoQuery) ([]model.ToDo, error) {
	query := fmt.Sprintf(`
		SELECT id, title, description, status
		FROM todos
		WHERE ($1::text = '' OR strpos(lower(title), lower($1)) > 0)
		  AND ($2::boolean IS NULL OR status = $2)
		ORDER BY %s
		LIMIT $3 OFFSET $4
	`, todoOrder(pgToDoOrder, q))

	rows, err := r.pool.Query(ctx, query, q.Title, q.Status, q.Size, q.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]model.ToDo, 0, q.Size)
	for rows.Next() {
		var t model.ToDo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *PostgresToDoRepo) Update(ctx context.Context, t model.ToDo) (model.ToDo, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE todos
		SET title = $2, description = $3, status = $4
		WHERE id = $1
		RETURNING id, title, description, status
	`, t.ID, t.Title, t.Description, t.Status).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return t, ErrorNotFound
	}
	return t, mapError(err)
}

func (r *PostgresToDoRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM todos WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}
