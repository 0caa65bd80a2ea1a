// Package notify delivers change notifications for configuration
// options.
//
// Components subscribe either globally or to a single option ID and
// receive a callback whenever the option's stored value changes.
package notify

import (
	"sync"

	"github.com/webgroom/webgroom/internal/config/registry"
)

// ChangeType represents the type of configuration change.
type ChangeType int

const (
	// ChangeSet indicates a value was set or updated.
	ChangeSet ChangeType = iota

	// ChangeReset indicates a value was reset to its default.
	ChangeReset

	// ChangeReload indicates the whole configuration was replaced,
	// for example by a snapshot restore or a file reload.
	ChangeReload
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeReset:
		return "reset"
	case ChangeReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Change represents a configuration change event.
type Change struct {
	// Option identifies the changed option. It is registry.UnknownOption
	// for reload events.
	Option registry.OptionID

	// Name is the canonical option name, empty for reload events.
	Name string

	// Type is the type of change.
	Type ChangeType

	// Old is the previous value, rendered as the option's save form.
	Old string

	// New is the new value, empty for resets.
	New string

	// Source identifies where the change came from, typically a file
	// path, "env" or "api".
	Source string
}

// Observer is called when configuration changes occur.
type Observer func(change Change)

// Subscription represents an active observer registration.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages configuration change subscriptions. The zero value
// is not usable; construct with New.
type Notifier struct {
	mu sync.RWMutex

	global map[uint64]Observer
	perOpt map[registry.OptionID]map[uint64]Observer
	nextID uint64

	async  bool
	buffer chan Change
	done   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithAsync enables asynchronous delivery through a buffered channel.
func WithAsync(bufferSize int) Option {
	return func(n *Notifier) {
		if bufferSize > 0 {
			n.async = true
			n.buffer = make(chan Change, bufferSize)
		}
	}
}

// New creates a new Notifier.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		global: make(map[uint64]Observer),
		perOpt: make(map[registry.OptionID]map[uint64]Observer),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.async {
		n.wg.Add(1)
		go n.processAsync()
	}
	return n
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.global[id] = observer

	return &Subscription{id: id, notifier: n}
}

// SubscribeOption registers an observer for one option. The observer
// also fires on reload events, since any option may have changed.
func (n *Notifier) SubscribeOption(id registry.OptionID, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	sid := n.nextID
	n.nextID++
	if n.perOpt[id] == nil {
		n.perOpt[id] = make(map[uint64]Observer)
	}
	n.perOpt[id][sid] = observer

	return &Subscription{id: sid, notifier: n}
}

// Notify sends a change to all relevant observers.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()
	if n.closed {
		n.mu.RUnlock()
		return
	}
	n.mu.RUnlock()

	if n.async {
		select {
		case n.buffer <- change:
		case <-n.done:
		}
		return
	}
	n.deliver(change)
}

// NotifyReload is a convenience method for reload events.
func (n *Notifier) NotifyReload(source string) {
	n.Notify(Change{Type: ChangeReload, Source: source})
}

// Close shuts down the notifier. It is safe to call multiple times.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.done)
	n.wg.Wait()
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.global, id)
	for opt, observers := range n.perOpt {
		delete(observers, id)
		if len(observers) == 0 {
			delete(n.perOpt, opt)
		}
	}
}

func (n *Notifier) deliver(change Change) {
	n.mu.RLock()
	var observers []Observer
	for _, obs := range n.global {
		observers = append(observers, obs)
	}
	if change.Type == ChangeReload {
		for _, optObs := range n.perOpt {
			for _, obs := range optObs {
				observers = append(observers, obs)
			}
		}
	} else if optObs, ok := n.perOpt[change.Option]; ok {
		for _, obs := range optObs {
			observers = append(observers, obs)
		}
	}
	n.mu.RUnlock()

	// Observers run outside the lock so they may subscribe or
	// unsubscribe without deadlocking.
	for _, obs := range observers {
		obs(change)
	}
}

func (n *Notifier) processAsync() {
	defer n.wg.Done()

	for {
		select {
		case change := <-n.buffer:
			n.deliver(change)
		case <-n.done:
			for {
				select {
				case change := <-n.buffer:
					n.deliver(change)
				default:
					return
				}
			}
		}
	}
}
