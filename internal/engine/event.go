package engine

// ListenerID identifies a listener so it can be removed later.
type ListenerID uint64

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// Event is a multi-cast event with one argument. Listeners run in the
// order they were added.
type Event[T any] struct {
	next      ListenerID
	listeners []listener[T]
}

// AddListener registers callback and returns its id. A nil callback is
// ignored and gets the zero id.
func (e *Event[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.next++
	e.listeners = append(e.listeners, listener[T]{id: e.next, fn: callback})
	return e.next
}

func (e *Event[T]) RemoveListener(id ListenerID) bool {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Event[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners
func (e *Event[T]) Invoke(arg T) {
	for _, l := range append([]listener[T](nil), e.listeners...) {
		l.fn(arg)
	}
}

func (e *Event[T]) GetListenerCount() int {
	return len(e.listeners)
}
