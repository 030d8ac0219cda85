package renderer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestUnwindRunsInReverseOrder(t *testing.T) {
	var order []int
	var u Unwind
	for i := 0; i < 3; i++ {
		i := i
		u.AddFunc(func() { order = append(order, i) })
	}

	assert.NoError(t, u.Unwind())
	assert.Equal(t, []int{2, 1, 0}, order)
	assert.Empty(t, u)
}

func TestUnwindKeepsGoingAfterFailure(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	ran := 0

	var u Unwind
	u.Add(func() error { ran++; return errA })
	u.Add(func() error { ran++; return nil })
	u.Add(func() error { ran++; return errB })

	err := u.Unwind()
	assert.Equal(t, 3, ran)
	assert.ElementsMatch(t, []error{errB, errA}, multierr.Errors(err))
}

func TestUnwindDiscard(t *testing.T) {
	ran := false
	var u Unwind
	u.AddFunc(func() { ran = true })

	u.Discard()

	assert.NoError(t, u.Unwind())
	assert.False(t, ran)
}
