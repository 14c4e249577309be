package logging

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorChain_WrappedCauses(t *testing.T) {
	root := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	middle := errors.Wrap(root, "failed to connect to database")
	outer := errors.Wrap(middle, "startup failed")

	chain, rootMsg := errorChain(outer)
	assert.Equal(t, []string{
		"startup failed: failed to connect to database: dial tcp 127.0.0.1:5432: connect: connection refused",
		"failed to connect to database: dial tcp 127.0.0.1:5432: connect: connection refused",
		"dial tcp 127.0.0.1:5432: connect: connection refused",
	}, chain)
	assert.Equal(t, "dial tcp 127.0.0.1:5432: connect: connection refused", rootMsg)
}

func TestErrorChain_StdWrap(t *testing.T) {
	root := errors.New("connection refused")
	wrapped := fmt.Errorf("wrap: %w", root)

	chain, rootMsg := errorChain(wrapped)
	assert.Equal(t, []string{"wrap: connection refused", "connection refused"}, chain)
	assert.Equal(t, "connection refused", rootMsg)
}

func TestErrorChain_Mixed(t *testing.T) {
	root := errors.New("connection refused")
	std := fmt.Errorf("dial: %w", root)
	outer := errors.WithMessage(std, "startup failed")

	chain, rootMsg := errorChain(outer)
	require.Len(t, chain, 3)
	assert.Equal(t, "startup failed: dial: connection refused", chain[0])
	assert.Equal(t, "connection refused", rootMsg)
}

func TestErrorChain_Nil(t *testing.T) {
	chain, rootMsg := errorChain(nil)
	assert.Empty(t, chain)
	assert.Equal(t, "", rootMsg)
}

func TestErrorChain_SingleError(t *testing.T) {
	err := errors.New("lonely")
	chain, rootMsg := errorChain(err)
	assert.Equal(t, []string{"lonely"}, chain)
	assert.Equal(t, "lonely", rootMsg)
}

// selfCausedError reports itself as its own cause.
type selfCausedError struct{}

func (selfCausedError) Error() string { return "loop" }
func (e selfCausedError) Cause() error {
	return e
}

// bottomlessError produces a fresh cause on every unwrap.
type bottomlessError struct{ n int }

func (e *bottomlessError) Error() string { return fmt.Sprintf("level %d", e.n) }
func (e *bottomlessError) Cause() error {
	return &bottomlessError{n: e.n + 1}
}

func TestErrorChain_CycleGuards(t *testing.T) {
	t.Run("self cause terminates", func(t *testing.T) {
		chain, rootMsg := errorChain(selfCausedError{})
		assert.Equal(t, []string{"loop"}, chain)
		assert.Equal(t, "loop", rootMsg)
	})

	t.Run("depth is capped", func(t *testing.T) {
		chain, _ := errorChain(&bottomlessError{})
		assert.Len(t, chain, 50)
	})
}

func TestJoinChain(t *testing.T) {
	assert.Equal(t, "", joinChain(nil))
	assert.Equal(t, "a", joinChain([]string{"a"}))
	assert.Equal(t, "a -> b -> c", joinChain([]string{"a", "b", "c"}))
}
