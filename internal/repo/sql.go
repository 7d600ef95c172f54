package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

// Sort columns per backend. Text columns in PostgreSQL use the "C"
// collation so that ordering is byte-wise like the in-memory store.
var (
	pgToDoOrder = map[model.ToDoSortField]string{
		model.ToDoSortID:          "id",
		model.ToDoSortTitle:       `title COLLATE "C"`,
		model.ToDoSortDescription: `description COLLATE "C"`,
		model.ToDoSortStatus:      "status",
	}
	pgUserOrder = map[model.UserSortField]string{
		model.UserSortID:      "id",
		model.UserSortName:    `name COLLATE "C"`,
		model.UserSortEmail:   `email COLLATE "C"`,
		model.UserSortAddress: `address COLLATE "C"`,
	}
	sqliteToDoOrder = map[model.ToDoSortField]string{
		model.ToDoSortID:          "id",
		model.ToDoSortTitle:       "title",
		model.ToDoSortDescription: "description",
		model.ToDoSortStatus:      "status",
	}
	sqliteUserOrder = map[model.UserSortField]string{
		model.UserSortID:      "id",
		model.UserSortName:    "name",
		model.UserSortEmail:   "email",
		model.UserSortAddress: "address",
	}
)

// orderBy builds the ORDER BY list for a list query. column is empty when
// sortBy did not name a known field; id breaks ties so equal rows stay in
// id order in both directions.
func orderBy(column string, desc, byIDDesc bool) string {
	switch {
	case column != "" && desc:
		return column + " DESC, id"
	case column != "":
		return column + ", id"
	case byIDDesc:
		return "id DESC"
	default:
		return "id"
	}
}

func todoOrder(columns map[model.ToDoSortField]string, q model.ToDoQuery) string {
	var column string
	if f, ok := q.SortField(); ok {
		column = columns[f]
	}
	return orderBy(column, q.SortDescending, q.DescendingByID())
}

func userOrder(columns map[model.UserSortField]string, q model.UserQuery) string {
	var column string
	if f, ok := q.SortField(); ok {
		column = columns[f]
	}
	return orderBy(column, q.SortDescending, q.DescendingByID())
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return ErrorConflict
		}
	}
	return err
}
