package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecognizer struct {
	starts   int
	stops    int
	startErr error
}

func (r *fakeRecognizer) Available() bool { return true }
func (r *fakeRecognizer) Start(lang string) error {
	r.starts++
	return r.startErr
}
func (r *fakeRecognizer) Stop() { r.stops++ }

func TestAppendTranscript(t *testing.T) {
	assert.Equal(t, "अ", AppendTranscript("", "अ"))
	assert.Equal(t, "नमस्कार अ", AppendTranscript("नमस्कार", "अ"))
}

func TestToggleStartsThenStops(t *testing.T) {
	rec := &fakeRecognizer{}
	m := NewSessionManager(rec, "")

	listening, err := m.Toggle("notes", "जुना मजकूर")
	require.NoError(t, err)
	assert.True(t, listening)
	assert.Equal(t, 1, rec.starts)

	state := m.State()
	assert.Equal(t, "notes", state.Field)
	assert.Equal(t, "जुना मजकूर", state.Text)

	// Second toggle stops; it never restarts.
	listening, err = m.Toggle("notes", "जुना मजकूर")
	require.NoError(t, err)
	assert.False(t, listening)
	assert.Equal(t, 1, rec.starts)
	assert.Equal(t, 1, rec.stops)
}

func TestToggleUnavailableRecognizer(t *testing.T) {
	m := NewSessionManager(UnavailableRecognizer{}, "")

	listening, err := m.Toggle("notes", "")
	assert.ErrorIs(t, err, ErrRecognitionUnavailable)
	assert.False(t, listening)
	assert.False(t, m.State().Listening)
}

func TestFinalTranscriptAppends(t *testing.T) {
	m := NewSessionManager(&fakeRecognizer{}, "")

	_, err := m.Toggle("notes", "नमस्कार")
	require.NoError(t, err)

	m.HandleInterim("शेत...")
	assert.Equal(t, "शेत...", m.State().Interim)
	assert.Equal(t, "नमस्कार", m.State().Text)

	m.HandleFinal("शेती")
	state := m.State()
	assert.Equal(t, "नमस्कार शेती", state.Text)
	assert.Empty(t, state.Interim)

	m.HandleFinal("")
	assert.Equal(t, "नमस्कार शेती", m.State().Text)
}

func TestInterimIgnoredWhenIdle(t *testing.T) {
	m := NewSessionManager(&fakeRecognizer{}, "")
	m.HandleInterim("काही")
	assert.Empty(t, m.State().Interim)
}

func TestPermissionDeniedError(t *testing.T) {
	m := NewSessionManager(&fakeRecognizer{}, "")

	_, err := m.Toggle("notes", "")
	require.NoError(t, err)

	m.HandleError("not-allowed")
	state := m.State()
	assert.False(t, state.Listening)
	assert.True(t, state.Denied)
	assert.Equal(t, "माइक वापरण्याची परवानगी नाकारली आहे.", state.Error)
}

func TestGenericRecognitionError(t *testing.T) {
	m := NewSessionManager(&fakeRecognizer{}, "")

	_, err := m.Toggle("notes", "")
	require.NoError(t, err)

	m.HandleError("network")
	state := m.State()
	assert.False(t, state.Listening)
	assert.False(t, state.Denied)
	assert.Equal(t, "व्हॉइस टायपिंगमध्ये अडथळा आला.", state.Error)
}

func TestNaturalEndReturnsToIdle(t *testing.T) {
	m := NewSessionManager(&fakeRecognizer{}, "")

	_, err := m.Toggle("notes", "मजकूर")
	require.NoError(t, err)

	m.HandleEnd()
	state := m.State()
	assert.False(t, state.Listening)
	assert.Empty(t, state.Error)
	assert.Equal(t, "मजकूर", state.Text)
}

func TestToggleClearsPreviousError(t *testing.T) {
	m := NewSessionManager(&fakeRecognizer{}, "")

	_, err := m.Toggle("notes", "")
	require.NoError(t, err)
	m.HandleError("network")

	_, err = m.Toggle("notes", "")
	require.NoError(t, err)
	state := m.State()
	assert.Empty(t, state.Error)
	assert.False(t, state.Denied)
}

func TestStopForceStops(t *testing.T) {
	rec := &fakeRecognizer{}
	m := NewSessionManager(rec, "")

	_, err := m.Toggle("notes", "")
	require.NoError(t, err)

	m.Stop()
	assert.False(t, m.State().Listening)
	assert.Equal(t, 1, rec.stops)

	// Stop when idle is a no-op.
	m.Stop()
	assert.Equal(t, 1, rec.stops)
}
