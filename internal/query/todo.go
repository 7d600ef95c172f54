package query

import "github.com/BuzzLyutic/todo-api/internal/model"

var todoOrder = map[model.ToDoSortField]Compare[model.ToDo]{
	model.ToDoSortID:          By(func(t model.ToDo) int64 { return t.ID }),
	model.ToDoSortTitle:       By(func(t model.ToDo) string { return t.Title }),
	model.ToDoSortDescription: By(func(t model.ToDo) string { return t.Description }),
	model.ToDoSortStatus:      ByBool(func(t model.ToDo) bool { return t.Status }),
}

// ToDos applies q to items, which must be in store (id) order.
func ToDos(items []model.ToDo, q model.ToDoQuery) []model.ToDo {
	out := Filter(items,
		Contains(q.Title, func(t model.ToDo) string { return t.Title }),
		Equals(q.Status, func(t model.ToDo) bool { return t.Status }),
	)

	switch field, ok := q.SortField(); {
	case ok:
		out = Sort(out, todoOrder[field], q.SortDescending)
	case q.DescendingByID():
		out = Sort(out, todoOrder[model.ToDoSortID], true)
	}

	return Paginate(out, q.Page)
}
