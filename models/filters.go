package models

// Sort keys for the task list.
const (
	SortDueDate   = "due_date"
	SortPriority  = "priority"
	SortCreatedAt = "created_at"
)

// FilterAll is the sentinel meaning "do not filter on this field".
const FilterAll = "all"

// Filters is the normalized filter set for a list load. It is derived from
// URL query parameters on every request and never persisted.
type Filters struct {
	Search   string
	Priority string
	Status   string
	Sort     string
}

// DefaultFilters returns the filter set applied when no parameters are given.
func DefaultFilters() Filters {
	return Filters{
		Search:   "",
		Priority: FilterAll,
		Status:   FilterAll,
		Sort:     SortDueDate,
	}
}
