package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapAIErrorClassifiesQuota(t *testing.T) {
	for _, raw := range []string{
		"googleapi: Error 429: too many requests",
		"rpc error: RESOURCE_EXHAUSTED",
		"generate failed: quota exceeded for project",
	} {
		err := wrapAIError(errors.New(raw))
		assert.ErrorIs(t, err, ErrQuotaExceeded, raw)
	}
}

func TestWrapAIErrorPassesThroughOtherErrors(t *testing.T) {
	original := errors.New("connection refused")
	err := wrapAIError(original)
	assert.NotErrorIs(t, err, ErrQuotaExceeded)
	assert.Equal(t, original, err)

	assert.NoError(t, wrapAIError(nil))
}

func TestLocalizedAIError(t *testing.T) {
	message, quota := LocalizedAIError(wrapAIError(errors.New("429")))
	assert.Equal(t, MsgQuotaExceeded, message)
	assert.True(t, quota)

	message, quota = LocalizedAIError(errors.New("boom"))
	assert.Equal(t, MsgTechnicalFailure, message)
	assert.False(t, quota)
}
