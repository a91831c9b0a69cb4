package core

// Checked holds a value that must be assigned before it is read, so a test cannot silently
// consume a zero value it never configured.
type Checked[T any] struct {
	value    T
	assigned bool
}

// Get returns the value, or ErrUnconfiguredAccess if it was never set.
func (c *Checked[T]) Get() (T, error) {
	if !c.assigned {
		var zero T

		return zero, ErrUnconfiguredAccess
	}

	return c.value, nil
}

// IsSet reports whether the value was assigned.
func (c *Checked[T]) IsSet() bool {
	return c.assigned
}

// Reset forgets the value.
func (c *Checked[T]) Reset() {
	var zero T

	c.value = zero
	c.assigned = false
}

// Set assigns the value.
func (c *Checked[T]) Set(value T) {
	c.value = value
	c.assigned = true
}
