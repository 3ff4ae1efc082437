package service

import (
	"brainvault/pkg/errs"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDTokenVerifier_NotConfigured(t *testing.T) {
	v := &IDTokenVerifier{}
	_, err := v.Verify(context.Background(), "any")

	var e *errs.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errs.KindInternal, e.Kind)
	assert.Contains(t, e.Err.Error(), "client id not configured")
}
