package validation

import (
	"net/url"
	"strings"
	"testing"

	"github.com/Anal-Rauth/Task-Manager/models"
)

func validTaskForm() url.Values {
	return url.Values{
		"title":    {"Write report"},
		"priority": {models.PriorityMedium},
		"due_date": {"2024-01-01"},
	}
}

func TestTaskAppliesDefaults(t *testing.T) {
	input, errs := Task(validTaskForm())
	if !errs.Ok() {
		t.Fatalf("Task() errors = %v, want none", errs)
	}
	if input.Description != "" {
		t.Errorf("Description = %q, want empty default", input.Description)
	}
	if input.Status != models.StatusPending {
		t.Errorf("Status = %q, want %q default", input.Status, models.StatusPending)
	}
}

func TestTaskTrimsTitle(t *testing.T) {
	form := validTaskForm()
	form.Set("title", "  Write report  ")
	input, errs := Task(form)
	if !errs.Ok() {
		t.Fatalf("Task() errors = %v, want none", errs)
	}
	if input.Title != "Write report" {
		t.Errorf("Title = %q, want trimmed", input.Title)
	}
}

func TestTaskFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(url.Values)
		field   string
		message string
	}{
		{
			name:    "missing title",
			mutate:  func(f url.Values) { f.Set("title", "") },
			field:   "title",
			message: "Title is required",
		},
		{
			name:    "whitespace-only title",
			mutate:  func(f url.Values) { f.Set("title", "   ") },
			field:   "title",
			message: "Title is required",
		},
		{
			name:    "title over 100 characters",
			mutate:  func(f url.Values) { f.Set("title", strings.Repeat("x", 101)) },
			field:   "title",
			message: "Keep titles under 100 characters",
		},
		{
			name:    "description over 500 characters",
			mutate:  func(f url.Values) { f.Set("description", strings.Repeat("d", 501)) },
			field:   "description",
			message: "Description must be 500 characters or fewer",
		},
		{
			name:    "unknown priority",
			mutate:  func(f url.Values) { f.Set("priority", "Urgent") },
			field:   "priority",
			message: "Select a priority",
		},
		{
			name:    "missing due date",
			mutate:  func(f url.Values) { f.Del("due_date") },
			field:   "due_date",
			message: "Due date is required",
		},
		{
			name:    "unknown status",
			mutate:  func(f url.Values) { f.Set("status", "Archived") },
			field:   "status",
			message: "Select a valid status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validTaskForm()
			tt.mutate(form)
			_, errs := Task(form)
			if errs.Ok() {
				t.Fatalf("Task() passed, want error on %q", tt.field)
			}
			if got := errs[tt.field]; got != tt.message {
				t.Errorf("errs[%q] = %q, want %q", tt.field, got, tt.message)
			}
		})
	}
}

func TestTaskTitleAtLimitPasses(t *testing.T) {
	form := validTaskForm()
	form.Set("title", strings.Repeat("x", 100))
	if _, errs := Task(form); !errs.Ok() {
		t.Fatalf("Task() errors = %v, want none for 100-char title", errs)
	}
}

func TestTaskDueDateAcceptsAnyNonEmptyString(t *testing.T) {
	// No calendar validation on purpose: any non-empty string passes.
	form := validTaskForm()
	form.Set("due_date", "not-a-date")
	if _, errs := Task(form); !errs.Ok() {
		t.Fatalf("Task() errors = %v, want none for arbitrary due date", errs)
	}
}

func TestTaskUpdateRequiresID(t *testing.T) {
	_, _, errs := TaskUpdate(validTaskForm())
	if errs["id"] != "Task id missing" {
		t.Errorf(`errs["id"] = %q, want "Task id missing"`, errs["id"])
	}

	form := validTaskForm()
	form.Set("id", "abc-123")
	id, _, errs := TaskUpdate(form)
	if !errs.Ok() {
		t.Fatalf("TaskUpdate() errors = %v, want none", errs)
	}
	if id != "abc-123" {
		t.Errorf("id = %q, want %q", id, "abc-123")
	}
}

func TestToggleValidation(t *testing.T) {
	form := url.Values{"id": {"abc"}, "status": {models.StatusInProgress}}
	id, status, errs := Toggle(form)
	if !errs.Ok() {
		t.Fatalf("Toggle() errors = %v, want none", errs)
	}
	if id != "abc" || status != models.StatusInProgress {
		t.Errorf("Toggle() = (%q, %q), want (abc, In Progress)", id, status)
	}

	if _, _, errs := Toggle(url.Values{"status": {models.StatusPending}}); errs["id"] == "" {
		t.Error("Toggle() missing id not reported")
	}
	if _, _, errs := Toggle(url.Values{"id": {"abc"}}); errs["status"] == "" {
		t.Error("Toggle() missing status not reported")
	}
}

func TestFiltersDefaults(t *testing.T) {
	f := Filters(url.Values{})
	want := models.DefaultFilters()
	if f != want {
		t.Errorf("Filters(empty) = %+v, want %+v", f, want)
	}
}

func TestFiltersInvalidValuesFallBack(t *testing.T) {
	f := Filters(url.Values{
		"priority": {"Urgent"},
		"status":   {"Archived"},
		"sort":     {"title"},
	})
	want := models.DefaultFilters()
	if f != want {
		t.Errorf("Filters(invalid) = %+v, want defaults %+v", f, want)
	}
}

func TestFiltersAcceptsValidValues(t *testing.T) {
	f := Filters(url.Values{
		"search":   {"report"},
		"priority": {models.PriorityHigh},
		"status":   {models.StatusPending},
		"sort":     {models.SortCreatedAt},
	})
	if f.Search != "report" || f.Priority != models.PriorityHigh ||
		f.Status != models.StatusPending || f.Sort != models.SortCreatedAt {
		t.Errorf("Filters() = %+v, want submitted values", f)
	}
}
