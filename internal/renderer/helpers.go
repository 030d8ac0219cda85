package renderer

import "go.uber.org/multierr"

// Unwind is a stack of release steps run in reverse order of acquisition.
type Unwind []func() error

func (u *Unwind) Add(cleanup func() error) {
	*u = append(*u, cleanup)
}

// AddFunc registers a release step that cannot fail.
func (u *Unwind) AddFunc(cleanup func()) {
	u.Add(func() error {
		cleanup()
		return nil
	})
}

// Unwind runs every step, last added first, and empties the stack. All
// steps run even if some fail.
func (u *Unwind) Unwind() error {
	var err error
	for i := len(*u) - 1; i >= 0; i-- {
		err = multierr.Append(err, (*u)[i]())
	}
	*u = (*u)[:0]
	return err
}

// Discard forgets every step without running it.
func (u *Unwind) Discard() {
	*u = (*u)[:0]
}
