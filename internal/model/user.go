package model

type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type CreateUserInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
}

type UpdateUserInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
}

type UserSortField string

const (
	UserSortID      UserSortField = "id"
	UserSortName    UserSortField = "name"
	UserSortEmail   UserSortField = "email"
	UserSortAddress UserSortField = "address"
)

var userSortFields = map[string]UserSortField{
	"id":      UserSortID,
	"name":    UserSortName,
	"email":   UserSortEmail,
	"address": UserSortAddress,
}

type UserQuery struct {
	Page
	Name           string
	Email          string
	Address        string
	SortBy         string
	SortDescending bool
}

func (q UserQuery) SortField() (UserSortField, bool) {
	return lookupSortField(userSortFields, q.SortBy)
}

// DescendingByID reports whether q lists by id descending because no sort
// field was given.
func (q UserQuery) DescendingByID() bool {
	return descendingByID(q.SortBy, q.SortDescending)
}
