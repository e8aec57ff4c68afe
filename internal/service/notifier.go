package service

import "sync"

type ChangeKind int

const (
	SessionsChanged ChangeKind = iota + 1
	PreferencesChanged
)

func (k ChangeKind) String() string {
	switch k {
	case SessionsChanged:
		return "sessions"
	case PreferencesChanged:
		return "preferences"
	default:
		return "unknown"
	}
}

// ChangeEvent is published after a mutation has been committed.
type ChangeEvent struct {
	Kind ChangeKind
}

// ChangeNotifier fans committed mutations out to subscribers. Listeners
// run synchronously on the publishing goroutine and must not block.
type ChangeNotifier struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(ChangeEvent)
}

func NewChangeNotifier() *ChangeNotifier {
	return &ChangeNotifier{listeners: make(map[int]func(ChangeEvent))}
}

// Subscribe registers fn and returns a function that removes it.
func (n *ChangeNotifier) Subscribe(fn func(ChangeEvent)) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

func (n *ChangeNotifier) Publish(ev ChangeEvent) {
	if n == nil {
		return
	}
	n.mu.Lock()
	fns := make([]func(ChangeEvent), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}
