package model

type ToDo struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      bool   `json:"status"`
}

// CreateToDoInput is the body of POST /api/todos. Status is not accepted:
// new items always start as not done.
type CreateToDoInput struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=5,max=250"`
}

// UpdateToDoInput replaces every mutable field of an item.
type UpdateToDoInput struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=5,max=250"`
	Status      bool   `json:"status"`
}

type ToDoSortField string

const (
	ToDoSortID          ToDoSortField = "id"
	ToDoSortTitle       ToDoSortField = "title"
	ToDoSortDescription ToDoSortField = "description"
	ToDoSortStatus      ToDoSortField = "status"
)

var todoSortFields = map[string]ToDoSortField{
	"id":          ToDoSortID,
	"title":       ToDoSortTitle,
	"description": ToDoSortDescription,
	"status":      ToDoSortStatus,
}

// ToDoQuery holds list parameters for todos. Status is nil when the
// status filter is absent.
type ToDoQuery struct {
	Page
	Title          string
	Status         *bool
	SortBy         string
	SortDescending bool
}

// SortField resolves SortBy against the known todo fields, ignoring case.
func (q ToDoQuery) SortField() (ToDoSortField, bool) {
	return lookupSortField(todoSortFields, q.SortBy)
}

// DescendingByID reports whether q lists by id descending because no sort
// field was given.
func (q ToDoQuery) DescendingByID() bool {
	return descendingByID(q.SortBy, q.SortDescending)
}
