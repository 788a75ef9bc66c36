// Package notify implements the in-process "document changed" signal.
// There is one signal with two producers: the configuration service fires
// it after every successful local mutation, and the cross-context watcher
// fires it when another process rewrites the stored document. Every
// observer consumes both identically by re-reading current state.
package notify

import (
	"sync"

	"github.com/tabdeck/tabdeck/internal/logger"
)

// Notifier is a synchronous publish/subscribe broadcaster. Construct one
// per application and thread it explicitly; there is no package-level
// instance.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func()
	log    logger.Logger
}

func New(log logger.Logger) *Notifier {
	return &Notifier{subs: make(map[int]func()), log: log}
}

// Subscribe registers fn to run on every Emit. The returned function
// removes the subscription; call it when the observer is torn down so
// callbacks never run against disposed state. Unsubscribing twice is
// harmless.
func (n *Notifier) Subscribe(fn func()) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// Emit invokes every currently subscribed callback synchronously. A
// panicking callback is recovered and logged so one observer's failure
// cannot block the others.
func (n *Notifier) Emit() {
	n.mu.Lock()
	callbacks := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		callbacks = append(callbacks, fn)
	}
	n.mu.Unlock()

	n.log.Debug("config change emitted", logger.Int("listeners", len(callbacks)))

	for _, fn := range callbacks {
		n.safeCall(fn)
	}
}

// Len returns the current subscriber count.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}

func (n *Notifier) safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			n.log.Error("config change listener panicked", logger.Any("panic", r))
		}
	}()
	fn()
}
