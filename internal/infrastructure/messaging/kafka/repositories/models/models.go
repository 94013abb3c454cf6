package models

// Notification is the fact published after a committed mutation.
type Notification struct {
	Topic    string `json:"topic"`
	Action   string `json:"action"`
	EntityID string `json:"entity_id"`
}
