package domain

// Status represents a lightweight state value shared by aggregates.
type Status string

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}
