package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier surfaces transient, non-blocking messages to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 4 * time.Second

// HistoryLimit bounds how many past toasts History keeps.
const HistoryLimit = 50

// Toast is a single notification.
type Toast struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Toaster keeps the notifications raised by the page and auto-dismisses them
// once they are older than the TTL.
type Toaster struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	toasts []Toast
	seen   []Toast
}

// NewToaster returns a Toaster with the given TTL (DefaultTTL when zero).
func NewToaster(ttl time.Duration) *Toaster {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Toaster{ttl: ttl, now: time.Now}
}

func (t *Toaster) Success(message string) { t.push(KindSuccess, message) }
func (t *Toaster) Error(message string)   { t.push(KindError, message) }

func (t *Toaster) push(kind Kind, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	toast := Toast{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: t.now(),
	}
	t.toasts = append(t.toasts, toast)
	t.seen = append(t.seen, toast)
	if over := len(t.seen) - HistoryLimit; over > 0 {
		t.seen = append(t.seen[:0], t.seen[over:]...)
	}
}

// Active returns the toasts still on screen, dropping expired ones.
func (t *Toaster) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	kept := t.toasts[:0]
	for _, toast := range t.toasts {
		if now.Sub(toast.CreatedAt) < t.ttl {
			kept = append(kept, toast)
		}
	}
	t.toasts = kept
	out := make([]Toast, len(kept))
	copy(out, kept)
	return out
}

// Dismiss removes a toast before it expires.
func (t *Toaster) Dismiss(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, toast := range t.toasts {
		if toast.ID == id {
			t.toasts = append(t.toasts[:i], t.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// History returns the last HistoryLimit toasts raised, including dismissed
// and expired ones, oldest first.
func (t *Toaster) History() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Toast, len(t.seen))
	copy(out, t.seen)
	return out
}

// LogNotifier writes notifications to a zap logger.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(message string) {
	n.logger.Info(message, zap.String("kind", string(KindSuccess)))
}

func (n *LogNotifier) Error(message string) {
	n.logger.Warn(message, zap.String("kind", string(KindError)))
}
