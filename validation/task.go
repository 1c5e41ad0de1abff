package validation

import (
	"net/url"
	"unicode/utf8"

	"github.com/Anal-Rauth/Task-Manager/models"
)

// Task validates the task form and returns the normalized input. The
// description defaults to empty and the status to Pending when absent. The
// due date is accepted as any non-empty string; no calendar check is made.
func Task(form url.Values) (models.TaskInput, Errors) {
	errs := Errors{}

	title := field(form, "title")
	if title == "" {
		errs.add("title", "Title is required")
	} else if utf8.RuneCountInString(title) > 100 {
		errs.add("title", "Keep titles under 100 characters")
	}

	description := form.Get("description")
	if utf8.RuneCountInString(description) > 500 {
		errs.add("description", "Description must be 500 characters or fewer")
	}

	priority := form.Get("priority")
	if !models.ValidPriority(priority) {
		errs.add("priority", "Select a priority")
	}

	dueDate := field(form, "due_date")
	if dueDate == "" {
		errs.add("due_date", "Due date is required")
	}

	status := form.Get("status")
	if status == "" {
		status = models.StatusPending
	}
	if !models.ValidStatus(status) {
		errs.add("status", "Select a valid status")
	}

	return models.TaskInput{
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		Status:      status,
	}, errs
}

// TaskUpdate validates the task form plus the required task identifier.
func TaskUpdate(form url.Values) (string, models.TaskInput, Errors) {
	input, errs := Task(form)

	id := field(form, "id")
	if id == "" {
		errs.add("id", "Task id missing")
	}

	return id, input, errs
}

// TaskID validates that a task identifier is present, nothing more. Used by
// the delete action.
func TaskID(form url.Values) (string, Errors) {
	errs := Errors{}

	id := field(form, "id")
	if id == "" {
		errs.add("id", "Task id missing")
	}

	return id, errs
}

// Toggle validates the toggle form: a task identifier and the task's current
// status.
func Toggle(form url.Values) (string, string, Errors) {
	errs := Errors{}

	id := field(form, "id")
	if id == "" {
		errs.add("id", "Task id missing")
	}

	status := form.Get("status")
	if !models.ValidStatus(status) {
		errs.add("status", "Select a valid status")
	}

	return id, status, errs
}

// Filters normalizes the list filter parameters. Every field is optional;
// missing or invalid values fall back to their defaults, so filter
// normalization never fails.
func Filters(params url.Values) models.Filters {
	f := models.DefaultFilters()

	f.Search = params.Get("search")

	if p := params.Get("priority"); models.ValidPriority(p) || p == models.FilterAll {
		f.Priority = p
	}
	if s := params.Get("status"); models.ValidStatus(s) || s == models.FilterAll {
		f.Status = s
	}
	switch params.Get("sort") {
	case models.SortPriority:
		f.Sort = models.SortPriority
	case models.SortCreatedAt:
		f.Sort = models.SortCreatedAt
	}

	return f
}
