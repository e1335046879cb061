package pipeline_test

import (
	"errors"
	"testing"

	"github.com/grailbio/bedalgebra/pipeline"
	"github.com/stretchr/testify/assert"
)

func TestErrorsKeepsFirstSet(t *testing.T) {
	var e pipeline.Errors
	assert.NoError(t, e.Err())

	first := errors.New("first")
	second := errors.New("second")
	e.Set(first)
	e.Set(second)
	assert.Equal(t, first, e.Err())
}

func TestErrorsIgnoresNil(t *testing.T) {
	var e pipeline.Errors
	e.Set(nil)
	assert.NoError(t, e.Err())

	e.Set(errors.New("boom"))
	assert.Error(t, e.Err())
}

func TestWrapAddsContext(t *testing.T) {
	var e pipeline.Errors
	cause := errors.New("underlying")
	e.Wrap(cause, "reading stream")
	assert.ErrorIs(t, e.Err(), cause)
	assert.Contains(t, e.Err().Error(), "reading stream")
}
