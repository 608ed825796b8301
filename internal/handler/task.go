package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Chiggy-Playz/Todo-API/internal/auth"
	"github.com/Chiggy-Playz/Todo-API/internal/handler/dto"
	"github.com/Chiggy-Playz/Todo-API/internal/service"
)

// TaskHandler handles HTTP requests for task operations.
// Every method reads the resolved caller from the request context; the
// auth middleware guarantees it is present.
type TaskHandler struct {
	svc      *service.TaskService
	logger   *slog.Logger
	validate *validator.Validate
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *service.TaskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		svc:      svc,
		logger:   logger,
		validate: validator.New(),
	}
}

// Create handles POST /todos/.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())

	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "Title is required")
		return
	}

	task, err := h.svc.CreateTask(r.Context(), user.ID, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", user.ID),
		slog.String("request_id", requestIDFrom(r)),
	)

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(task))
}

// List handles GET /todos/.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())

	tasks, err := h.svc.ListTasks(r.Context(), user.ID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// Update handles PUT /todos/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())

	taskID, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "INVALID_FIELD", "Status must be pending or completed")
		return
	}

	task, err := h.svc.UpdateTask(r.Context(), user.ID, taskID, service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("task updated",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", user.ID),
		slog.Bool("no_op", req.IsEmpty()),
		slog.String("request_id", requestIDFrom(r)),
	)

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// Delete handles DELETE /todos/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())

	taskID, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteTask(r.Context(), user.ID, taskID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("task deleted",
		slog.Int64("task_id", taskID),
		slog.Int64("user_id", user.ID),
		slog.String("request_id", requestIDFrom(r)),
	)

	writeJSON(w, http.StatusOK, dto.DeleteTaskResponse{Message: "Todo deleted successfully"})
}

// taskIDFromPath parses the {id} path segment. A non-numeric identifier
// cannot name any task, so it reports the same generic 404 as a missing one.
func (h *TaskHandler) taskIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, "TASK_NOT_FOUND", "Todo not found")
		return 0, false
	}
	return id, true
}

// handleServiceError maps task service errors to HTTP responses.
func (h *TaskHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, "TASK_NOT_FOUND", "Todo not found")
	case errors.Is(err, service.ErrEmptyTitle):
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "Title must not be empty")
	case errors.Is(err, service.ErrInvalidStatus):
		writeError(w, http.StatusUnprocessableEntity, "INVALID_FIELD", "Status must be pending or completed")
	default:
		h.logger.Error("internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
