package handler

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/service"
	"github.com/BuzzLyutic/todo-api/pkg/respond"
)

const msgUserNotFound = "User not found"

type UserHandler struct {
	service     *service.UserService
	logger      *zap.Logger
	maxPageSize int
}

func NewUserHandler(srv *service.UserService, logger *zap.Logger, maxPageSize int) *UserHandler {
	return &UserHandler{
		service:     srv,
		logger:      logger,
		maxPageSize: maxPageSize,
	}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserInput
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	h.logger.Info("user created", zap.Int64("user_id", user.ID))

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", user.ID))
	respond.Success(w, r, http.StatusCreated, "New User created successfully", user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.Success(w, r, http.StatusOK, "User found and fetched successfully", user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	params := newQueryParams(r)
	q := model.UserQuery{
		Page:           params.page(h.maxPageSize),
		Name:           params.text("name"),
		Email:          params.text("email"),
		Address:        params.text("address"),
		SortBy:         params.text("sortBy"),
		SortDescending: params.flag("sortDescending"),
	}
	if err := params.err(); err != nil {
		h.handleErrors(w, r, err)
		return
	}

	users, err := h.service.List(r.Context(), q)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	if len(users) == 0 {
		respond.Success(w, r, http.StatusOK, "No User Found - list is empty", users)
		return
	}
	respond.Success(w, r, http.StatusOK, "All Users fetched successfully", users)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	var req model.UpdateUserInput
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.Success(w, r, http.StatusOK, "User updated successfully", user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.Success(w, r, http.StatusOK, "User deleted successfully", nil)
}

func (h *UserHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	handleErrors(w, r, h.logger, msgUserNotFound, err)
}
