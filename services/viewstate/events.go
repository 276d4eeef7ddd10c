package viewstate

import "sync"

// PointerEvent is a pointer-down somewhere on the page. Target is the id of
// the element that was hit.
type PointerEvent struct {
	Target string
}

// Dispatcher fans page-level pointer events out to scoped listeners.
type Dispatcher struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(PointerEvent)
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[int]func(PointerEvent))}
}

// Subscribe registers fn and returns the func that removes it. The returned
// func is safe to call more than once.
func (d *Dispatcher) Subscribe(fn func(PointerEvent)) (unsubscribe func()) {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.listeners, id)
			d.mu.Unlock()
		})
	}
}

// Dispatch delivers ev to every current listener.
func (d *Dispatcher) Dispatch(ev PointerEvent) {
	d.mu.Lock()
	fns := make([]func(PointerEvent), 0, len(d.listeners))
	for _, fn := range d.listeners {
		fns = append(fns, fn)
	}
	d.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Listeners returns how many listeners are registered.
func (d *Dispatcher) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}
