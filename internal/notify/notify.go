// Package notify shows desktop notifications over the freedesktop D-Bus
// interface.
package notify

// Urgency is the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification is one desktop notification.
type Notification struct {
	Title      string // summary line
	Body       string
	Icon       string // icon name or image path
	Timeout    int32  // ms; -1 leaves it to the server, 0 never expires
	ReplacesID uint32 // non-zero updates that notification in place
	Urgency    Urgency

	// Transient notifications skip the server's history.
	Transient bool
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns the server's ID for it.
	Notify(n Notification) (uint32, error)
	// Close removes a notification by ID.
	Close(id uint32) error
}

// nopNotifier drops everything. Returned where no notification server can
// be reached.
type nopNotifier struct{}

func (nopNotifier) Notify(Notification) (uint32, error) { return 0, nil }
func (nopNotifier) Close(uint32) error                  { return nil }
