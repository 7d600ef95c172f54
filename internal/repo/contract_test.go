package repo

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

// The same behaviour is checked against every backend.

func seedToDos(t *testing.T, r ToDoRepository) []model.ToDo {
	t.Helper()
	seed := []model.ToDo{
		{Title: "Buy Groceries", Description: "Milk, Eggs, Bread", Status: false},
		{Title: "Clean House", Description: "Vacuum, Dust, Mop", Status: true},
		{Title: "Finish Report", Description: "Complete Q3 Sales Report", Status: false},
		{Title: "Call Mom", Description: "Wish her happy birthday", Status: false},
		{Title: "Code Review", Description: "Review PR #123", Status: true},
	}
	out := make([]model.ToDo, 0, len(seed))
	for _, s := range seed {
		created, err := r.Create(context.Background(), s)
		require.NoError(t, err)
		out = append(out, created)
	}
	return out
}

func seedUsers(t *testing.T, r UserRepository) []model.User {
	t.Helper()
	seed := []model.User{
		{Name: "Alice Smith", Email: "alice@example.com", Address: "123 Main St"},
		{Name: "Bob Johnson", Email: "bob@example.com", Address: "456 Oak Ave"},
		{Name: "Charlie Brown", Email: "charlie@example.com", Address: "789 Pine Ln"},
	}
	out := make([]model.User, 0, len(seed))
	for _, s := range seed {
		created, err := r.Create(context.Background(), s)
		require.NoError(t, err)
		out = append(out, created)
	}
	return out
}

func todoTitles(items []model.ToDo) []string {
	out := make([]string, len(items))
	for i, t := range items {
		out[i] = t.Title
	}
	return out
}

func testToDoRepository(t *testing.T, newRepo func(t *testing.T) ToDoRepository) {
	ctx := context.Background()
	page := model.NewPage(1, 10, 15)

	t.Run("list filters sorts and paginates", func(t *testing.T) {
		r := newRepo(t)
		seeded := seedToDos(t, r)
		done := true

		got, err := r.List(ctx, model.ToDoQuery{Page: page, Status: &done})
		require.NoError(t, err)
		assert.Equal(t, []string{"Clean House", "Code Review"}, todoTitles(got))

		got, err = r.List(ctx, model.ToDoQuery{Page: page, Title: "report"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Finish Report"}, todoTitles(got))

		got, err = r.List(ctx, model.ToDoQuery{Page: page, SortBy: "Title"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Buy Groceries", "Call Mom", "Clean House", "Code Review", "Finish Report"}, todoTitles(got))

		got, err = r.List(ctx, model.ToDoQuery{Page: page, SortBy: "status", SortDescending: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"Clean House", "Code Review", "Buy Groceries", "Finish Report", "Call Mom"}, todoTitles(got))

		got, err = r.List(ctx, model.ToDoQuery{Page: page, SortDescending: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"Code Review", "Call Mom", "Finish Report", "Clean House", "Buy Groceries"}, todoTitles(got))

		got, err = r.List(ctx, model.ToDoQuery{Page: page, SortBy: "unknown", SortDescending: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"Buy Groceries", "Clean House", "Finish Report", "Call Mom", "Code Review"}, todoTitles(got))

		got, err = r.List(ctx, model.ToDoQuery{Page: model.NewPage(2, 2, 15)})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, seeded[2].ID, got[0].ID)
		assert.Equal(t, seeded[3].ID, got[1].ID)

		got, err = r.List(ctx, model.ToDoQuery{Page: model.NewPage(9, 2, 15)})
		require.NoError(t, err)
		assert.Empty(t, got)

		got, err = r.List(ctx, model.ToDoQuery{Page: page, SortBy: " ", SortDescending: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"Code Review", "Call Mom", "Finish Report", "Clean House", "Buy Groceries"}, todoTitles(got))
	})

	t.Run("huge page numbers are empty", func(t *testing.T) {
		r := newRepo(t)
		seedToDos(t, r)

		for _, number := range []int{1229782938247303443, 1<<62 + 1, math.MaxInt} {
			got, err := r.List(ctx, model.ToDoQuery{Page: model.NewPage(number, 15, 15)})
			require.NoError(t, err, "page %d", number)
			assert.Empty(t, got, "page %d", number)
		}
	})

	t.Run("title filter folds non-ascii case", func(t *testing.T) {
		r := newRepo(t)
		seedToDos(t, r)
		_, err := r.Create(ctx, model.ToDo{Title: "ÄPFEL kaufen", Description: "Beim Markt"})
		require.NoError(t, err)

		got, err := r.List(ctx, model.ToDoQuery{Page: page, Title: "äpfel"})
		require.NoError(t, err)
		assert.Equal(t, []string{"ÄPFEL kaufen"}, todoTitles(got))
	})

	t.Run("create forces unique ids", func(t *testing.T) {
		r := newRepo(t)
		seen := map[int64]bool{}
		for i := 0; i < 25; i++ {
			created, err := r.Create(ctx, model.ToDo{Title: fmt.Sprintf("Task %d", i), Description: "Something to do"})
			require.NoError(t, err)
			assert.False(t, seen[created.ID], "id %d handed out twice", created.ID)
			seen[created.ID] = true
		}
	})

	t.Run("get update delete", func(t *testing.T) {
		r := newRepo(t)
		created, err := r.Create(ctx, model.ToDo{Title: "Original", Description: "Original description"})
		require.NoError(t, err)

		got, err := r.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)

		updated, err := r.Update(ctx, model.ToDo{ID: created.ID, Title: "Updated", Description: "New description", Status: true})
		require.NoError(t, err)
		assert.Equal(t, model.ToDo{ID: created.ID, Title: "Updated", Description: "New description", Status: true}, updated)

		got, err = r.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got)

		require.NoError(t, r.Delete(ctx, created.ID))
		assert.ErrorIs(t, r.Delete(ctx, created.ID), ErrorNotFound)

		_, err = r.Get(ctx, created.ID)
		assert.ErrorIs(t, err, ErrorNotFound)
	})

	t.Run("update of missing id changes nothing", func(t *testing.T) {
		r := newRepo(t)
		seeded := seedToDos(t, r)

		_, err := r.Update(ctx, model.ToDo{ID: 9999, Title: "Ghost", Description: "Does not exist"})
		assert.ErrorIs(t, err, ErrorNotFound)

		all, err := r.List(ctx, model.ToDoQuery{Page: page})
		require.NoError(t, err)
		assert.Equal(t, seeded, all)
	})
}

func testUserRepository(t *testing.T, newRepo func(t *testing.T) UserRepository) {
	ctx := context.Background()
	page := model.NewPage(1, 10, 15)

	t.Run("sort by email descending", func(t *testing.T) {
		r := newRepo(t)
		seedUsers(t, r)

		got, err := r.List(ctx, model.UserQuery{Page: page, SortBy: "Email", SortDescending: true})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "charlie@example.com", got[0].Email)
		assert.Equal(t, "bob@example.com", got[1].Email)
		assert.Equal(t, "alice@example.com", got[2].Email)
	})

	t.Run("filters combine", func(t *testing.T) {
		r := newRepo(t)
		seedUsers(t, r)

		got, err := r.List(ctx, model.UserQuery{Page: page, Name: "o", Address: "OAK"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Bob Johnson", got[0].Name)
	})

	t.Run("name filter folds non-ascii case", func(t *testing.T) {
		r := newRepo(t)
		seedUsers(t, r)
		_, err := r.Create(ctx, model.User{Name: "ÉLODIE Durand", Email: "elodie@example.com", Address: "12 Rue de Rivoli"})
		require.NoError(t, err)

		got, err := r.List(ctx, model.UserQuery{Page: page, Name: "élodie"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "elodie@example.com", got[0].Email)
	})

	t.Run("email must be unique", func(t *testing.T) {
		r := newRepo(t)
		users := seedUsers(t, r)

		_, err := r.Create(ctx, model.User{Name: "Other Alice", Email: "alice@example.com", Address: "1 Elm St"})
		assert.ErrorIs(t, err, ErrorConflict)

		_, err = r.Update(ctx, model.User{ID: users[1].ID, Name: "Bob", Email: "alice@example.com", Address: "456 Oak Ave"})
		assert.ErrorIs(t, err, ErrorConflict)

		// Keeping one's own email is not a conflict.
		_, err = r.Update(ctx, model.User{ID: users[0].ID, Name: "Alice S.", Email: "alice@example.com", Address: "123 Main St"})
		assert.NoError(t, err)

		got, err := r.Get(ctx, users[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", got.Email)
	})

	t.Run("delete once", func(t *testing.T) {
		r := newRepo(t)
		created, err := r.Create(ctx, model.User{Name: "Dave", Email: "dave@example.com", Address: "1 Road"})
		require.NoError(t, err)

		require.NoError(t, r.Delete(ctx, created.ID))
		assert.ErrorIs(t, r.Delete(ctx, created.ID), ErrorNotFound)
	})
}
