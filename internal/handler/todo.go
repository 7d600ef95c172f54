package handler

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/service"
	"github.com/BuzzLyutic/todo-api/pkg/respond"
)

const msgTaskNotFound = "Task not found"

type ToDoHandler struct {
	service     *service.ToDoService
	logger      *zap.Logger
	maxPageSize int
}

func NewToDoHandler(srv *service.ToDoService, logger *zap.Logger, maxPageSize int) *ToDoHandler {
	return &ToDoHandler{
		service:     srv,
		logger:      logger,
		maxPageSize: maxPageSize,
	}
}

func (h *ToDoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateToDoInput
	if !decodeJSON(w, r, &req) {
		return
	}

	task, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	h.logger.Info("task created", zap.Int64("todo_id", task.ID))

	w.Header().Set("Location", fmt.Sprintf("/api/todos/%d", task.ID))
	respond.Success(w, r, http.StatusCreated, "New Task created successfully", task)
}

func (h *ToDoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	task, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.Success(w, r, http.StatusOK, "Task found and fetched successfully", task)
}

func (h *ToDoHandler) List(w http.ResponseWriter, r *http.Request) {
	params := newQueryParams(r)
	q := model.ToDoQuery{
		Page:           params.page(h.maxPageSize),
		Title:          params.text("title"),
		Status:         params.optBool("status"),
		SortBy:         params.text("sortBy"),
		SortDescending: params.flag("sortDescending"),
	}
	if err := params.err(); err != nil {
		h.handleErrors(w, r, err)
		return
	}

	tasks, err := h.service.List(r.Context(), q)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	if len(tasks) == 0 {
		respond.Success(w, r, http.StatusOK, "No Task Found - list is empty", tasks)
		return
	}
	respond.Success(w, r, http.StatusOK, "All Tasks fetched successfully", tasks)
}

func (h *ToDoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	var req model.UpdateToDoInput
	if !decodeJSON(w, r, &req) {
		return
	}

	task, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.Success(w, r, http.StatusOK, "Task updated successfully", task)
}

func (h *ToDoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.Success(w, r, http.StatusOK, "Task deleted successfully", nil)
}

func (h *ToDoHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	handleErrors(w, r, h.logger, msgTaskNotFound, err)
}
