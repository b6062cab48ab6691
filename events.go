package gui

// Event is a synchronous notification source generic over the payload type T.
// Handlers run on the caller's goroutine in registration order. A zero Event
// is ready to use. Event is not safe for concurrent use; a control tree lives
// on a single goroutine.
type Event[T any] struct {
	handlers []*handler[T]
	closed   bool
}

// handler is a registered callback. active is cleared on unsubscribe so an
// emission already in progress skips it.
type handler[T any] struct {
	fn     func(T)
	active bool
}

// Subscription is a disposable handle to a registered handler.
// The zero Subscription is inert.
type Subscription struct {
	cancel func()
}

// Unsubscribe removes the handler. It is idempotent and safe to call from
// inside any handler, including the one being removed.
func (s Subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Subscribe registers fn and returns the handle that removes it.
// Subscribing to a closed Event returns an inert Subscription.
func (e *Event[T]) Subscribe(fn func(T)) Subscription {
	if e.closed || fn == nil {
		return Subscription{}
	}
	h := &handler[T]{fn: fn, active: true}
	e.handlers = append(e.handlers, h)
	return Subscription{cancel: func() { e.remove(h) }}
}

func (e *Event[T]) remove(h *handler[T]) {
	if !h.active {
		return
	}
	h.active = false
	for i, x := range e.handlers {
		if x == h {
			e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
			return
		}
	}
}

// Emit calls every live handler with v. Handlers added during the emission
// are not called until the next one; handlers removed during it are skipped.
func (e *Event[T]) Emit(v T) {
	if e.closed || len(e.handlers) == 0 {
		return
	}
	snapshot := make([]*handler[T], len(e.handlers))
	copy(snapshot, e.handlers)
	for _, h := range snapshot {
		if h.active {
			h.fn(v)
		}
	}
}

// Len returns the number of live handlers.
func (e *Event[T]) Len() int {
	return len(e.handlers)
}

// Close drops every handler. A closed Event ignores Emit and Subscribe.
func (e *Event[T]) Close() {
	for _, h := range e.handlers {
		h.active = false
	}
	e.handlers = nil
	e.closed = true
}

// Closed reports whether Close has been called.
func (e *Event[T]) Closed() bool {
	return e.closed
}
