package handlers

import (
	"net/http"
	"time"

	"github.com/Anal-Rauth/Task-Manager/firebase"
	"github.com/Anal-Rauth/Task-Manager/models"
	"github.com/Anal-Rauth/Task-Manager/utilities"
	"github.com/Anal-Rauth/Task-Manager/validation"

	"github.com/google/uuid"
)

type listPageData struct {
	Email           string
	Tasks           []models.Task
	Filters         models.Filters
	LoadError       string
	Failure         *ActionFailure
	CreateURL       string
	ToggleURL       string
	DeleteURL       string
	PriorityOptions []string
	StatusOptions   []string
}

var (
	priorityOptions = []string{models.FilterAll, models.PriorityLow, models.PriorityMedium, models.PriorityHigh}
	statusOptions   = []string{models.FilterAll, models.StatusPending, models.StatusInProgress, models.StatusCompleted}
)

// ListPage renders the task list for the authenticated user. A failed list
// query never aborts the response: the page renders with an empty list and a
// load-error message instead.
func (h *Handler) ListPage(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	if session == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	h.renderList(w, r, session, nil, http.StatusOK)
}

func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, session *firebase.Session, failure *ActionFailure, status int) {
	filters := validation.Filters(r.URL.Query())

	var tasks []models.Task
	var loadError string
	if session != nil {
		var err error
		tasks, err = h.store.List(r.Context(), session.UID, filters)
		if err != nil {
			utilities.LogError(err, "Loading tasks")
			tasks = []models.Task{}
			loadError = "Could not load tasks."
		}
	}

	// Action URLs keep the current query string so filters survive the
	// redirect round trip.
	suffix := ""
	if r.URL.RawQuery != "" {
		suffix = "?" + r.URL.RawQuery
	}

	data := listPageData{
		Tasks:           tasks,
		Filters:         filters,
		LoadError:       loadError,
		Failure:         failure,
		CreateURL:       "/tasks/create" + suffix,
		ToggleURL:       "/tasks/toggle" + suffix,
		DeleteURL:       "/tasks/delete" + suffix,
		PriorityOptions: priorityOptions,
		StatusOptions:   statusOptions,
	}
	if session != nil {
		data.Email = session.Email
	}

	if err := h.renderer.Render(w, status, "list", data); err != nil {
		utilities.LogError(err, "Rendering task list")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// failAction re-renders the list page with the failure payload so the form
// keeps its submitted values and field errors.
func (h *Handler) failAction(w http.ResponseWriter, r *http.Request, failure *ActionFailure, status int) {
	h.renderList(w, r, h.resolveSession(r), failure, status)
}

// CreateTask inserts a new task tagged with the caller's user id.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	input, errs := validation.Task(r.PostForm)
	if !errs.Ok() {
		h.metrics.RecordAction("create", "invalid")
		h.failAction(w, r, &ActionFailure{
			Action:  "create",
			Errors:  errs,
			Values:  r.PostForm,
			Message: "Please correct the highlighted fields.",
		}, http.StatusBadRequest)
		return
	}

	session := h.resolveSession(r)
	if session == nil {
		h.metrics.RecordAction("create", "unauthorized")
		h.failAction(w, r, &ActionFailure{
			Action:  "create",
			Values:  r.PostForm,
			Message: "You must be signed in to create a task.",
		}, http.StatusUnauthorized)
		return
	}

	now := time.Now().UTC()
	task := models.Task{
		ID:          uuid.NewString(),
		UserID:      session.UID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		Status:      input.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.store.Create(r.Context(), task); err != nil {
		utilities.LogError(err, "Creating task")
		h.metrics.RecordAction("create", "store_error")
		h.failAction(w, r, &ActionFailure{
			Action:  "create",
			Values:  r.PostForm,
			Message: "Could not create task.",
		}, http.StatusBadRequest)
		return
	}

	h.metrics.RecordAction("create", "ok")
	redirectBack(w, r)
}

// UpdateTask writes all validated fields of an existing task, scoped by both
// task id and owner id so a guessed id cannot touch another user's task.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	id, input, errs := validation.TaskUpdate(r.PostForm)
	if !errs.Ok() {
		h.metrics.RecordAction("update", "invalid")
		h.failAction(w, r, &ActionFailure{
			Action:  "update",
			Errors:  errs,
			Values:  r.PostForm,
			Message: "Please review the task details.",
		}, http.StatusBadRequest)
		return
	}

	session := h.resolveSession(r)
	if session == nil {
		h.metrics.RecordAction("update", "unauthorized")
		h.failAction(w, r, &ActionFailure{
			Action:  "update",
			Values:  r.PostForm,
			Message: "You must be signed in to update a task.",
		}, http.StatusUnauthorized)
		return
	}

	if err := h.store.Update(r.Context(), id, session.UID, input, time.Now().UTC()); err != nil {
		utilities.LogError(err, "Updating task")
		h.metrics.RecordAction("update", "store_error")
		h.failAction(w, r, &ActionFailure{
			Action:  "update",
			Values:  r.PostForm,
			Message: "Unable to update the task.",
		}, http.StatusBadRequest)
		return
	}

	h.metrics.RecordAction("update", "ok")
	redirectBack(w, r)
}

// DeleteTask removes the one task matching the submitted id and the caller.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	id, errs := validation.TaskID(r.PostForm)
	if !errs.Ok() {
		h.metrics.RecordAction("delete", "invalid")
		h.failAction(w, r, &ActionFailure{
			Action:  "delete",
			Message: "Task identifier missing.",
		}, http.StatusBadRequest)
		return
	}

	session := h.resolveSession(r)
	if session == nil {
		h.metrics.RecordAction("delete", "unauthorized")
		h.failAction(w, r, &ActionFailure{
			Action:  "delete",
			Message: "You must be signed in to delete a task.",
		}, http.StatusUnauthorized)
		return
	}

	if err := h.store.Delete(r.Context(), id, session.UID); err != nil {
		utilities.LogError(err, "Deleting task")
		h.metrics.RecordAction("delete", "store_error")
		h.failAction(w, r, &ActionFailure{
			Action:  "delete",
			Message: "Unable to delete task.",
		}, http.StatusBadRequest)
		return
	}

	h.metrics.RecordAction("delete", "ok")
	redirectBack(w, r)
}

// ToggleTask flips a task's status: Completed goes back to Pending, anything
// else goes to Completed.
func (h *Handler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	id, status, errs := validation.Toggle(r.PostForm)
	if !errs.Ok() {
		h.metrics.RecordAction("toggle", "invalid")
		h.failAction(w, r, &ActionFailure{
			Action:  "toggle",
			Message: "Task identifier missing.",
		}, http.StatusBadRequest)
		return
	}

	session := h.resolveSession(r)
	if session == nil {
		h.metrics.RecordAction("toggle", "unauthorized")
		h.failAction(w, r, &ActionFailure{
			Action:  "toggle",
			Message: "You must be signed in to update status.",
		}, http.StatusUnauthorized)
		return
	}

	next := models.NextStatus(status)
	if err := h.store.SetStatus(r.Context(), id, session.UID, next, time.Now().UTC()); err != nil {
		utilities.LogError(err, "Toggling task status")
		h.metrics.RecordAction("toggle", "store_error")
		h.failAction(w, r, &ActionFailure{
			Action:  "toggle",
			Message: "Unable to update status.",
		}, http.StatusBadRequest)
		return
	}

	h.metrics.RecordAction("toggle", "ok")
	redirectBack(w, r)
}
