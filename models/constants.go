package models

// Match statuses. Accepted and declined are both terminal.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// Respond actions
const (
	ActionAccept  = "accept"
	ActionDecline = "decline"
)
