package ui

// EventKind identifies a pointer event a listener can subscribe to
type EventKind int

const (
	EventClick EventKind = iota
	EventMouseOver
	EventMouseOut
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "Click"
	case EventMouseOver:
		return "MouseOver"
	case EventMouseOut:
		return "MouseOut"
	default:
		return "Unknown"
	}
}

// Listener is a callback registered for an event kind
type Listener func()

// listeners maps event kinds to their callbacks in registration order
type listeners map[EventKind][]Listener

func (l listeners) add(kind EventKind, fn Listener) {
	l[kind] = append(l[kind], fn)
}

// fire runs every listener for kind synchronously and returns how many ran
func (l listeners) fire(kind EventKind) int {
	fns := l[kind]
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

func (l listeners) count(kind EventKind) int {
	return len(l[kind])
}
