package core

import (
	"fmt"
	"sync"
)

// Proxy forwards calls of a shared function to a subject connected by a test. Only one
// subject can be connected at a time: Connect waits until the previous connection is
// released, so tests sharing the proxy are serialized. Connections do not nest.
type Proxy[F any] struct {
	prototype string

	connection sync.Mutex // held while a subject is connected
	mu         sync.Mutex
	subject    F
	connected  bool
}

// NewProxy creates a proxy for functions of type F.
func NewProxy[F any](prototype string) *Proxy[F] {
	return &Proxy[F]{prototype: prototype}
}

// Connect waits for exclusive use of the proxy, resets state (the subject's auxiliary data,
// may be nil), and routes calls to subject until release is called.
func (p *Proxy[F]) Connect(subject F, state Resetter) (release func()) {
	p.connection.Lock()

	if state != nil {
		state.Reset()
	}

	p.mu.Lock()
	p.subject = subject
	p.connected = true
	p.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			var zero F

			p.mu.Lock()
			p.subject = zero
			p.connected = false
			p.mu.Unlock()

			p.connection.Unlock()
		})
	}
}

// ConnectT connects subject for the rest of the test: the connection is released when t's
// cleanup runs. Failures of a trackable state are routed to t while connected.
func (p *Proxy[F]) ConnectT(t TestReporter, subject F, state Resetter) {
	t.Helper()

	registrar, ok := t.(cleanupRegistrar)
	if !ok {
		t.Fatalf("jg: %T cannot register cleanups, use Connect for %s", t, p.prototype)

		return
	}

	release := p.Connect(subject, state)

	if trackable, ok := state.(Trackable); ok {
		trackable.Attach(t)
		release = chain(func() { trackable.Attach(nil) }, release)
	}

	registrar.Cleanup(release)
}

// Connected reports whether a subject is connected.
func (p *Proxy[F]) Connected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.connected
}

// Prototype returns the signature text of the proxied function.
func (p *Proxy[F]) Prototype() string {
	return p.prototype
}

// Subject returns the connected subject. With none connected it reports ErrNoSubject and
// returns false.
func (p *Proxy[F]) Subject() (F, bool) {
	p.mu.Lock()
	subject, connected := p.subject, p.connected
	p.mu.Unlock()

	if !connected {
		fail(nil, fmt.Errorf("%w: %s", ErrNoSubject, p.prototype), 1)

		return subject, false
	}

	return subject, true
}

func chain(funcs ...func()) func() {
	return func() {
		for _, fn := range funcs {
			fn()
		}
	}
}
