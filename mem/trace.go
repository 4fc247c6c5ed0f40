package mem

import "log/slog"

// Trace is an Allocator that logs every call at debug level before
// delegating to another allocator. Intended for diagnosing allocation
// churn in development; not for hot paths.
type Trace struct {
	log  *slog.Logger
	next Allocator
}

// NewTrace wraps next with debug logging on logger. A nil logger uses
// slog.Default().
func NewTrace(logger *slog.Logger, next Allocator) *Trace {
	if logger == nil {
		logger = slog.Default()
	}
	return &Trace{log: logger, next: next}
}

func (t *Trace) Allocate(size int) error {
	if err := t.next.Allocate(size); err != nil {
		t.log.Debug("allocation refused", "size", size, "error", err)
		return err
	}
	t.log.Debug("allocate", "size", size)
	return nil
}

func (t *Trace) Deallocate(size int) {
	t.next.Deallocate(size)
	t.log.Debug("deallocate", "size", size)
}
