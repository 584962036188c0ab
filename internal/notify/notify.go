// Package notify provides modal.Notifier implementations: structured
// logging, plain-text output, fan-out and in-memory recording.
package notify

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/partsdesk/internal/modal"
)

// Logger logs every notification with zap: success at Info, error at Warn.
type Logger struct {
	log *zap.Logger
}

// NewLogger wraps log; a nil logger discards output.
func NewLogger(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log}
}

// Notify implements modal.Notifier.
func (l *Logger) Notify(n modal.Notification) {
	fields := []zap.Field{zap.String("kind", string(n.Kind))}
	if n.Kind == modal.KindError {
		l.log.Warn(n.Message, fields...)
		return
	}
	l.log.Info(n.Message, fields...)
}

// Writer prints notifications as "[kind] message" lines, the terminal
// stand-in for a toast.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer printing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Notify implements modal.Notifier.
func (w *Writer) Notify(n modal.Notification) {
	fmt.Fprintf(w.w, "[%s] %s\n", n.Kind, n.Message)
}

// Multi fans a notification out to every notifier in order.
type Multi []modal.Notifier

// Notify implements modal.Notifier.
func (m Multi) Notify(n modal.Notification) {
	for _, next := range m {
		if next != nil {
			next.Notify(n)
		}
	}
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu   sync.Mutex
	sent []modal.Notification
}

// Notify implements modal.Notifier.
func (r *Recorder) Notify(n modal.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

// All returns a copy of the recorded notifications in order.
func (r *Recorder) All() []modal.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]modal.Notification(nil), r.sent...)
}

// Last returns the most recent notification; ok is false if none was sent.
func (r *Recorder) Last() (n modal.Notification, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return modal.Notification{}, false
	}
	return r.sent[len(r.sent)-1], true
}

// Reset clears the recording.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
}
