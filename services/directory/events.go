package directory

import "sync"

// ChangeKind names the directory mutation that happened.
type ChangeKind string

const (
	// HospitalCreated is published after a hospital is registered.
	HospitalCreated ChangeKind = "hospital.created"
)

// ChangeEvent is the typed payload delivered to directory subscribers,
// replacing ad hoc broadcast with an explicit subscription carrying the
// affected entity.
type ChangeEvent struct {
	Kind ChangeKind
	ID   string
	Name string
}

// Subscriber receives directory change events. Callbacks run synchronously
// on the publishing goroutine and must not block.
type Subscriber func(ChangeEvent)

type eventBroker struct {
	mu   sync.RWMutex
	subs []Subscriber
}

func (b *eventBroker) subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

func (b *eventBroker) publish(ev ChangeEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, fn := range b.subs {
		fn(ev)
	}
}
