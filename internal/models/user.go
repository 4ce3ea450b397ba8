package models

// User is a credential record. Only the hash is stored; it is never serialized.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
}

// Identity is the authenticated principal attached to a single request.
type Identity struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}
