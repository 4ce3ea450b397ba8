package models

// CreatedAtLayout is the SQLite TIMESTAMP text format used for created_at.
const CreatedAtLayout = "2006-01-02 15:04:05"

// Resource is a stored record. ID and CreatedAt are assigned by the store.
type Resource struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"` // UTC, "YYYY-MM-DD HH:MM:SS"
}

// NewResource is the creation input.
type NewResource struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateResource replaces name and email of an existing record.
type UpdateResource struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
