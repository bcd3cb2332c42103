package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestWrapKeepsChain(t *testing.T) {
	err := Wrap(Wrapf(errSentinel, "lookup %d", 7), "login failed")

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "login failed: lookup 7: sentinel", err.Error())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

func TestWithStackRecordsCaller(t *testing.T) {
	err := WithStack(errSentinel)

	assert.Equal(t, "sentinel", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWithStackRecordsCaller")
}

func TestAsFindsWrappedType(t *testing.T) {
	err := Wrap(&codedError{code: "USER_NOT_FOUND"}, "get user")

	var coded *codedError
	assert.True(t, As(err, &coded))
	assert.Equal(t, "USER_NOT_FOUND", coded.code)
}

func TestJoinAndErrorf(t *testing.T) {
	other := Errorf("rollback failed: %s", "conn reset")
	joined := Join(errSentinel, other)

	assert.True(t, Is(joined, errSentinel))
	assert.True(t, Is(joined, other))
	assert.Contains(t, fmt.Sprintf("%+v", other), "TestJoinAndErrorf")
}
