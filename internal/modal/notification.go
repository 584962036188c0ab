package modal

// Kind classifies a notification.
type Kind string

// Notification kinds.
const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is the outward message emitted after a trigger.
type Notification struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Notifier receives notifications. Delivery mechanics belong to the
// implementation.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) { f(n) }

// Messages shown to the user.
const (
	MsgAdded          = "PC part added successfully"
	MsgUpdated        = "PC part updated successfully"
	MsgDeleted        = "PC part deleted successfully"
	MsgRequiredFields = "Please fill in all required fields"
	MsgInvalidDate    = "Please enter the date acquired as YYYY-MM-DD"
	MsgNotFound       = "PC part not found"
	MsgFailed         = "Could not save PC part"
	MsgDeleteFailed   = "Could not delete PC part"
)
