package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

type PostgresUserRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepo(pool *pgxpool.Pool) *PostgresUserRepo {
	return &PostgresUserRepo{
		pool: pool,
	}
}

func (r *PostgresUserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, address)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, address
	`, u.Name, u.Email, u.Address).Scan(
		&u.ID, &u.Name, &u.Email, &u.Address,
	)
	return u, mapError(err)
}

func (r *PostgresUserRepo) Get(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, address
		FROM users
		WHERE id = $1
	`, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Address,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return u, ErrorNotFound
	}
	return u, err
}

func (r *PostgresUserRepo) List(ctx context.Context, q model.UserQuery) ([]model.User, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, address
		FROM users
		WHERE ($1::text = '' OR strpos(lower(name), lower($1)) > 0)
		  AND ($2::text = '' OR strpos(lower(email), lower($2)) > 0)
		  AND ($3::text = '' OR strpos(lower(address), lower($3)) > 0)
		ORDER BY %s
		LIMIT $4 OFFSET $5
	`, userOrder(pgUserOrder, q))

	rows, err := r.pool.Query(ctx, query, q.Name, q.Email, q.Address, q.Size, q.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.User, 0, q.Size)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Address); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PostgresUserRepo) Update(ctx context.Context, u model.User) (model.User, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE users
		SET name = $2, email = $3, address = $4
		WHERE id = $1
		RETURNING id, name, email, address
	`, u.ID, u.Name, u.Email, u.Address).Scan(
		&u.ID, &u.Name, &u.Email, &u.Address,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return u, ErrorNotFound
	}
	return u, mapError(err)
}

func (r *PostgresUserRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}
