// Package errors accumulates independent failures so they can be reported
// together, e.g. every invalid configuration value at once instead of only
// the first one found.
package errors

import "errors"

// Collection is a thread-unsafe utility for accumulating multiple errors.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Addf records err only when cond is true. It reads well for validation:
//
//	errs.Addf(cfg.Size < 0, ErrNegativeSize)
func (c *Collection) Addf(cond bool, err error) {
	if cond {
		c.Add(err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when there
// is one, and errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
