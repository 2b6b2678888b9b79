package wsmodels

// QueueEvent is pushed to connected reviewers whenever the audit queue
// changes.
type QueueEvent struct {
	Time         string `json:"time"`
	Code         string `json:"code"` // event code
	PendingCount int64  `json:"pending_count"`
	EntityType   string `json:"entity_type,omitempty"`
	EntityID     string `json:"entity_id,omitempty"`
}

const (
	EventQueueSubmitted = "queue_submitted"
	EventQueueResolved  = "queue_resolved"
)
