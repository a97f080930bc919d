package driven

// NotifyLevel is the severity of a notification.
type NotifyLevel string

// Notification levels.
const (
	NotifySuccess NotifyLevel = "success"
	NotifyInfo    NotifyLevel = "info"
	NotifyWarning NotifyLevel = "warning"
	NotifyError   NotifyLevel = "error"
)

// Notifier is the alert display sink. The client core only ever writes to it.
type Notifier interface {
	Notify(level NotifyLevel, message string)
}
