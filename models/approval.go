package models

// EntityType tags the kind of record an audit queue entry points at.
type EntityType string

const (
	EntityTypeEmployeeEdit EntityType = "employeeEdit"
	EntityTypeNews         EntityType = "news"
)

func (t EntityType) IsValid() bool {
	return t == EntityTypeEmployeeEdit || t == EntityTypeNews
}

type EditStatus string

const (
	EditStatusPending  EditStatus = "pending"
	EditStatusApproved EditStatus = "approved"
	EditStatusRejected EditStatus = "rejected"
)

// IsTerminal reports whether the proposal can no longer change.
func (s EditStatus) IsTerminal() bool {
	return s == EditStatusApproved || s == EditStatusRejected
}

type NewsStatus string

const (
	NewsStatusDraft     NewsStatus = "draft"
	NewsStatusPending   NewsStatus = "pending"
	NewsStatusPublished NewsStatus = "published"
)

type QueueStatus string

const (
	// QueueStatusPending is the only status a live queue entry ever has,
	// entries are deleted on resolution rather than marked.
	QueueStatusPending QueueStatus = "pending"
)

type ActionType string

const (
	ActionSubmit  ActionType = "submit"
	ActionPublish ActionType = "publish"
	ActionApprove ActionType = "approve"
	ActionReject  ActionType = "reject"
	ActionCreate  ActionType = "create"
	ActionUpdate  ActionType = "update"
	ActionDelete  ActionType = "delete"
	ActionUpload  ActionType = "upload"
)

type AlertPriority string

const (
	AlertPriorityCritical AlertPriority = "critical"
	AlertPriorityWarning  AlertPriority = "warning"
	AlertPriorityNormal   AlertPriority = "normal"
	AlertPriorityLow      AlertPriority = "low"
)
