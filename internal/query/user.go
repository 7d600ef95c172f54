package query

import "github.com/BuzzLyutic/todo-api/internal/model"

var userOrder = map[model.UserSortField]Compare[model.User]{
	model.UserSortID:      By(func(u model.User) int64 { return u.ID }),
	model.UserSortName:    By(func(u model.User) string { return u.Name }),
	model.UserSortEmail:   By(func(u model.User) string { return u.Email }),
	model.UserSortAddress: By(func(u model.User) string { return u.Address }),
}

// Users applies q to items, which must be in store (id) order.
func Users(items []model.User, q model.UserQuery) []model.User {
	out := Filter(items,
		Contains(q.Name, func(u model.User) string { return u.Name }),
		Contains(q.Email, func(u model.User) string { return u.Email }),
		Contains(q.Address, func(u model.User) string { return u.Address }),
	)

	switch field, ok := q.SortField(); {
	case ok:
		out = Sort(out, userOrder[field], q.SortDescending)
	case q.DescendingByID():
		out = Sort(out, userOrder[model.UserSortID], true)
	}

	return Paginate(out, q.Page)
}
