package content

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/windseal/windseal-cms/internal/uniuri"
)

var (
	// ErrNotFound is returned when an update or delete names an unknown ID.
	ErrNotFound = errors.New("content: no item with that id")
)

// CollectionOption customizes collection behavior at construction time.
type CollectionOption[T any] func(*Collection[T])

// WithPrependInserts makes Create put new items at the front of the list
// instead of appending. The gallery shows newest first.
func WithPrependInserts[T any]() CollectionOption[T] {
	return func(c *Collection[T]) {
		c.prepend = true
	}
}

// WithUpdateMerge installs a merge hook applied on every Update, receiving
// the stored item and the incoming one. Products use this to keep the stored
// image list when an edit submits none.
func WithUpdateMerge[T any](merge func(old, incoming T) T) CollectionOption[T] {
	return func(c *Collection[T]) {
		c.merge = merge
	}
}

// Collection is an ordered, mutex-guarded list of one entity type. All
// mutations go through Create, Update and Delete; observers registered with
// OnChange see a snapshot copy after each commit.
type Collection[T any] struct {
	mu        sync.Mutex
	key       string
	items     []T
	idOf      func(T) string
	withID    func(T, string) T
	prepend   bool
	merge     func(old, incoming T) T
	observers []func([]T)
}

// NewCollection builds a collection over the given items. idOf extracts an
// item's ID, withID returns a copy with the ID set; both are required.
func NewCollection[T any](key string, items []T, idOf func(T) string, withID func(T, string) T, opts ...CollectionOption[T]) *Collection[T] {
	if idOf == nil || withID == nil {
		panic("content: collection needs idOf and withID")
	}

	c := &Collection[T]{
		key:    key,
		items:  append([]T(nil), items...),
		idOf:   idOf,
		withID: withID,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Key returns the storage key this collection persists under.
func (c *Collection[T]) Key() string {
	return c.key
}

// OnChange registers an observer called with a snapshot copy after every
// successful mutation. Observers run synchronously on the mutating goroutine
// but outside the collection lock.
func (c *Collection[T]) OnChange(fn func([]T)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.observers = append(c.observers, fn)
}

// List returns a snapshot copy of all items in display order.
func (c *Collection[T]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]T(nil), c.items...)
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Get returns the item with the given ID.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, nil
		}
	}

	var zero T

	return zero, ErrNotFound
}

// Create assigns the item a fresh random ID and commits it. The stored item
// is returned so callers see the generated ID.
func (c *Collection[T]) Create(item T) T {
	item = c.withID(item, uniuri.New())

	c.mu.Lock()

	if c.prepend {
		c.items = append([]T{item}, c.items...)
	} else {
		c.items = append(c.items, item)
	}

	snapshot := append([]T(nil), c.items...)
	observers := c.observers

	c.mu.Unlock()

	for _, fn := range observers {
		fn(snapshot)
	}

	return item
}

// Update replaces the item carrying incoming's ID in place, keeping its
// position. The merge hook, when installed, reconciles the stored item with
// the incoming one first.
func (c *Collection[T]) Update(incoming T) (T, error) {
	id := c.idOf(incoming)

	c.mu.Lock()

	idx := -1

	for i, item := range c.items {
		if c.idOf(item) == id {
			idx = i
			break
		}
	}

	if idx < 0 {
		c.mu.Unlock()

		var zero T

		return zero, errors.Wrapf(ErrNotFound, "update %q", id)
	}

	if c.merge != nil {
		incoming = c.merge(c.items[idx], incoming)
	}

	c.items[idx] = incoming

	snapshot := append([]T(nil), c.items...)
	observers := c.observers

	c.mu.Unlock()

	for _, fn := range observers {
		fn(snapshot)
	}

	return incoming, nil
}

// Delete removes the item with the given ID, preserving the order of the
// rest. Deleting an unknown ID is an error.
func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()

	idx := -1

	for i, item := range c.items {
		if c.idOf(item) == id {
			idx = i
			break
		}
	}

	if idx < 0 {
		c.mu.Unlock()

		return errors.Wrapf(ErrNotFound, "delete %q", id)
	}

	c.items = append(c.items[:idx], c.items[idx+1:]...)

	snapshot := append([]T(nil), c.items...)
	observers := c.observers

	c.mu.Unlock()

	for _, fn := range observers {
		fn(snapshot)
	}

	return nil
}
