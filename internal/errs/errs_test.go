package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIOFailedErrorUnwraps(t *testing.T) {
	inner := errors.New("disk full")
	err := &IOFailedError{Op: "write", Path: "/tmp/x", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "disk full")
}

func TestTypedErrorsAreDistinguishableByErrorsAs(t *testing.T) {
	var err error = &NotFoundError{PlaylistID: 5}

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint32(5), notFound.PlaylistID)

	var trackNotFound *TrackNotFoundError
	assert.False(t, errors.As(err, &trackNotFound))
}
