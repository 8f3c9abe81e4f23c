// Package inject defines the two-phase contract every fact provider
// implements and the Context those providers publish into.
//
// Prepare derives values and may fail; a failure there aborts the run.
// Publish only writes already-derived values into a Context; failures there
// are isolated per key so one broken binding does not blank the banner.
package inject

// Injector is implemented by every probe and by the orchestrator itself.
type Injector interface {
	// Prepare performs any work that can fail and stores the results.
	Prepare() error
	// Publish writes the prepared values into c. It must not do I/O.
	Publish(c *Context) error
}

// Optional holds an Injector that may legitimately be absent on this
// machine. The zero value is the absent state.
type Optional[T Injector] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T Injector](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns the absent state.
func None[T Injector]() Optional[T] {
	return Optional[T]{}
}

// Get returns the wrapped value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Present reports whether a value is held.
func (o Optional[T]) Present() bool { return o.ok }

// Prepare delegates to the wrapped value; absent values have nothing to do.
func (o Optional[T]) Prepare() error {
	if !o.ok {
		return nil
	}
	return o.value.Prepare()
}

// Publish delegates to the wrapped value; absent values publish no keys.
func (o Optional[T]) Publish(c *Context) error {
	if !o.ok {
		return nil
	}
	return o.value.Publish(c)
}

// Pair is one key/value to publish.
type Pair struct {
	Key   string
	Value any
}

// PublishAll sets every pair on c, attempting all of them even when some
// fail, and returns the joined failures.
func PublishAll(c *Context, pairs ...Pair) error {
	var errs []error
	for _, p := range pairs {
		if err := c.Set(p.Key, p.Value); err != nil {
			errs = append(errs, err)
		}
	}
	return joinErrors(errs)
}
