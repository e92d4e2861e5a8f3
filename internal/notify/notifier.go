package notify

import (
	"slices"
	"sync"
	"time"

	"github.com/BruksfildServices01/optic-manager/internal/ids"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

const DefaultDelay = 3 * time.Second

type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// Sink receives every notification as it is raised.
type Sink interface {
	Deliver(n Notification)
}

// Notifier shows short lived feedback. Each notification is removed
// after the delay no matter what happened in between; several can be
// visible at the same time.
type Notifier struct {
	mu     sync.Mutex
	delay  time.Duration
	active []Notification
	sinks  []Sink
}

func New(delay time.Duration, sinks ...Sink) *Notifier {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Notifier{delay: delay, sinks: sinks}
}

func (n *Notifier) Notify(message string, severity Severity) Notification {
	switch severity {
	case SeveritySuccess, SeverityError:
	default:
		severity = SeverityInfo
	}

	note := Notification{
		ID:        ids.New(),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}

	n.mu.Lock()
	n.active = append(n.active, note)
	n.mu.Unlock()

	for _, s := range n.sinks {
		s.Deliver(note)
	}

	time.AfterFunc(n.delay, func() { n.remove(note.ID) })
	return note
}

func (n *Notifier) Success(message string) Notification {
	return n.Notify(message, SeveritySuccess)
}

func (n *Notifier) Error(message string) Notification {
	return n.Notify(message, SeverityError)
}

func (n *Notifier) Info(message string) Notification {
	return n.Notify(message, SeverityInfo)
}

// Active lists visible notifications, oldest first.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.active)
}

func (n *Notifier) remove(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.active = slices.DeleteFunc(n.active, func(x Notification) bool { return x.ID == id })
}
