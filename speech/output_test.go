package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTTS struct {
	pcm      []byte
	err      error
	lastText string
}

func (f *fakeTTS) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	f.lastText = text
	return f.pcm, f.err
}

type fakePlayer struct {
	played  [][]int16
	stops   int
	playErr error
}

func (f *fakePlayer) Play(samples []int16) error {
	f.played = append(f.played, samples)
	return f.playErr
}
func (f *fakePlayer) Stop() { f.stops++ }

type fakeSynthesizer struct {
	spoken  []string
	lang    string
	rate    float64
	cancels int
}

func (f *fakeSynthesizer) Speak(text, lang string, rate float64) error {
	f.spoken = append(f.spoken, text)
	f.lang = lang
	f.rate = rate
	return nil
}
func (f *fakeSynthesizer) Cancel() { f.cancels++ }

func TestSpeakerPrimaryPath(t *testing.T) {
	tts := &fakeTTS{pcm: []byte{0x01, 0x00, 0xFF, 0x7F}}
	player := &fakePlayer{}
	fallback := &fakeSynthesizer{}
	s := NewSpeaker(tts, player, fallback)

	require.NoError(t, s.Speak(context.Background(), "नमस्कार"))

	require.Len(t, player.played, 1)
	assert.Equal(t, []int16{1, 32767}, player.played[0])
	assert.Empty(t, fallback.spoken)
	assert.Contains(t, tts.lastText, "नमस्कार")
	assert.False(t, s.Speaking())
}

func TestSpeakerFallsBackOnSynthesisError(t *testing.T) {
	tts := &fakeTTS{err: errors.New("quota")}
	player := &fakePlayer{}
	fallback := &fakeSynthesizer{}
	s := NewSpeaker(tts, player, fallback)

	require.NoError(t, s.Speak(context.Background(), "नमस्कार"))

	assert.Empty(t, player.played)
	require.Len(t, fallback.spoken, 1)
	assert.Equal(t, "नमस्कार", fallback.spoken[0])
	assert.Equal(t, FallbackLang, fallback.lang)
	assert.Equal(t, FallbackRate, fallback.rate)
}

func TestSpeakerFallsBackOnPlaybackError(t *testing.T) {
	tts := &fakeTTS{pcm: []byte{0x01, 0x00}}
	player := &fakePlayer{playErr: errors.New("device busy")}
	fallback := &fakeSynthesizer{}
	s := NewSpeaker(tts, player, fallback)

	require.NoError(t, s.Speak(context.Background(), "नमस्कार"))
	assert.Len(t, fallback.spoken, 1)
}

func TestSpeakerCancelsBeforeSpeaking(t *testing.T) {
	tts := &fakeTTS{pcm: []byte{0x01, 0x00}}
	player := &fakePlayer{}
	fallback := &fakeSynthesizer{}
	s := NewSpeaker(tts, player, fallback)

	require.NoError(t, s.Speak(context.Background(), "पहिले"))
	require.NoError(t, s.Speak(context.Background(), "दुसरे"))

	// Each Speak stops both channels first.
	assert.Equal(t, 2, player.stops)
	assert.Equal(t, 2, fallback.cancels)
	assert.Len(t, player.played, 2)
}

func TestSpeakerCancelIdempotent(t *testing.T) {
	player := &fakePlayer{}
	fallback := &fakeSynthesizer{}
	s := NewSpeaker(&fakeTTS{}, player, fallback)

	s.Cancel()
	s.Cancel()
	assert.Equal(t, 2, player.stops)
	assert.Equal(t, 2, fallback.cancels)
	assert.False(t, s.Speaking())
}
