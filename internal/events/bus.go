// Package events provides the synchronous publish/subscribe bus that every
// component of the storefront communicates through. Subscribers register
// either an exact topic string or a regular expression; a single Emit
// invokes every matching handler in registration order before returning.
//
// Dispatch is single-threaded and reentrant: a handler may Emit further
// topics, and those dispatch depth-first before the outer Emit returns.
// Dispatch depth is bounded so an accidental emit cycle fails loudly
// instead of hanging the UI.
package events

import (
	"fmt"
	"log"
	"regexp"
	"sync"
)

// Handler consumes a published payload. Payloads are the typed structs
// defined in topics.go; handlers type-assert with the ok form.
type Handler func(payload any)

// ErrorHook receives the topic and recovered value when a handler panics.
// The bus isolates handler failures: siblings for the same Emit still run.
type ErrorHook func(topic string, recovered any)

// DefaultMaxDepth bounds reentrant dispatch. 32 is far beyond any wired
// flow; hitting it means an emit cycle.
const DefaultMaxDepth = 32

type subscription struct {
	id      uint64
	topic   string         // exact matcher when pattern is nil
	pattern *regexp.Regexp // pattern matcher when non-nil
	fn      Handler
}

func (s *subscription) matches(topic string) bool {
	if s.pattern != nil {
		return s.pattern.MatchString(topic)
	}
	return s.topic == topic
}

// Bus dispatches published payloads to subscribers. The zero value is not
// usable; construct with New.
type Bus struct {
	mu      sync.Mutex
	subs    []*subscription
	nextID  uint64
	depth   int
	chain   []string // topic chain for the depth panic message
	max     int
	onError ErrorHook
}

// Option configures a Bus at construction.
type Option func(*Bus)

// WithErrorHook installs the hook called when a handler panics.
func WithErrorHook(h ErrorHook) Option {
	return func(b *Bus) { b.onError = h }
}

// WithMaxDepth overrides the reentrant dispatch bound.
func WithMaxDepth(n int) Option {
	return func(b *Bus) {
		if n > 0 {
			b.max = n
		}
	}
}

// New constructs an empty bus. Without an explicit hook, handler panics
// are reported through the standard logger.
func New(opts ...Option) *Bus {
	b := &Bus{max: DefaultMaxDepth}
	for _, opt := range opts {
		opt(b)
	}
	if b.onError == nil {
		b.onError = func(topic string, recovered any) {
			log.Printf("events: handler panic on %q: %v", topic, recovered)
		}
	}
	return b
}

// On subscribes h to the exact topic. Multiple handlers may share a topic;
// all run, in registration order. The returned func removes the
// subscription and is safe to call more than once.
func (b *Bus) On(topic string, h Handler) func() {
	return b.add(&subscription{topic: topic, fn: h})
}

// OnMatch subscribes h to every topic the expression matches. Pattern and
// exact subscriptions share one registration order.
func (b *Bus) OnMatch(re *regexp.Regexp, h Handler) func() {
	return b.add(&subscription{pattern: re, fn: h})
}

func (b *Bus) add(sub *subscription) func() {
	b.mu.Lock()
	b.nextID++
	sub.id = b.nextID
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	var once sync.Once
	return func() { once.Do(func() { b.remove(sub.id) }) }
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Emit invokes every subscriber matching topic, in registration order,
// synchronously. No matching subscriber is a no-op. A nil payload is
// delivered as an empty struct so handlers never see nil.
func (b *Bus) Emit(topic string, payload any) {
	if payload == nil {
		payload = struct{}{}
	}

	b.mu.Lock()
	if b.depth >= b.max {
		chain := append(append([]string{}, b.chain...), topic)
		b.mu.Unlock()
		panic(fmt.Sprintf("events: emit depth %d exceeded, topic chain %v", b.max, chain))
	}
	b.depth++
	b.chain = append(b.chain, topic)
	// Snapshot so handlers can subscribe/unsubscribe mid-dispatch without
	// affecting this Emit.
	snapshot := make([]*subscription, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.depth--
		b.chain = b.chain[:len(b.chain)-1]
		b.mu.Unlock()
	}()

	for _, sub := range snapshot {
		if !sub.matches(topic) {
			continue
		}
		b.dispatch(topic, sub, payload)
	}
}

func (b *Bus) dispatch(topic string, sub *subscription, payload any) {
	defer func() {
		if r := recover(); r != nil {
			if b.onError != nil {
				b.onError(topic, r)
			}
		}
	}()
	sub.fn(payload)
}

// Trigger returns a callback that emits topic with whatever payload the
// call site supplies. Views take these as action callbacks so they never
// hold a bus reference.
func (b *Bus) Trigger(topic string) func(payload any) {
	return func(payload any) { b.Emit(topic, payload) }
}
