package entity

import "time"

// Change actions
const (
	ChangeActionCreate = "create"
	ChangeActionUpdate = "update"
	ChangeActionDelete = "delete"
)

// ChangeEvent describes one committed write. It is logged as an audit entry
// and published to subscribers.
type ChangeEvent struct {
	Entity     string      `json:"entity"`
	Action     string      `json:"action"`
	EntityID   int64       `json:"entity_id"`
	CallerID   string      `json:"caller_id,omitempty"`
	RequestID  string      `json:"request_id,omitempty"`
	Removed    int64       `json:"rows_removed,omitempty"`
	Payload    interface{} `json:"payload,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}
