package models

// Ticket display statuses. Pending is derived (no feedback row); the rest
// come from the feedback's status column.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusFinished   = "Finished"
	StatusResolved   = "Resolved"
)

// Severity classes for status badges. Kept here so any client renders the
// same mapping.
const (
	SeverityWarning = "warning"
	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityNeutral = "neutral"
)

// StatusSeverity maps a ticket status to its semantic severity. Resolved is
// treated as a success state alongside Completed and Finished; anything
// unrecognized falls back to neutral.
func StatusSeverity(status string) string {
	switch status {
	case StatusPending:
		return SeverityWarning
	case StatusInProgress:
		return SeverityInfo
	case StatusCompleted, StatusFinished, StatusResolved:
		return SeveritySuccess
	default:
		return SeverityNeutral
	}
}
