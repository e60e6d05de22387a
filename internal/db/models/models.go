package models

const (
	// DefaultLimit is the max number of rows retrieved per listing call when
	// the caller asks for pagination without an explicit limit.
	DefaultLimit = 50
)

// ListOptions represents filtering and pagination options for list
// operations. The zero value returns every row.
type ListOptions struct {
	Limit  int            `json:"limit"`  // Number of items to return; <= 0 means no limit
	Offset int            `json:"offset"` // Number of items to skip
	Status *ProjectStatus `json:"status,omitempty"`
}
