package speech

import (
	"context"
	"sync"
)

// Marathi delivery settings for the fallback synthesizer.
const (
	FallbackLang = "mr-IN"
	FallbackRate = 1.1
)

// speakPrefix steers the TTS service toward short, clear Marathi.
const speakPrefix = "मराठीत स्पष्ट आणि अत्यंत थोडक्यात बोला: "

// TTSClient is the primary synthesis path: it returns raw 16-bit
// little-endian mono PCM at SampleRate for the given text.
type TTSClient interface {
	SynthesizeSpeech(ctx context.Context, text string) ([]byte, error)
}

// Player is the audio output channel for decoded PCM. Play blocks
// until the utterance finishes or Stop is called; Stop is idempotent.
type Player interface {
	Play(samples []int16) error
	Stop()
}

// Synthesizer is the built-in fallback voice (the browser speech
// synthesis surface). Cancel is idempotent.
type Synthesizer interface {
	Speak(text, lang string, rate float64) error
	Cancel()
}

// Speaker serializes the single global audio output channel: Speak
// cancels whatever is playing on either path before starting, so at
// most one utterance plays at a time system-wide.
type Speaker struct {
	mu         sync.Mutex
	tts        TTSClient
	player     Player
	fallback   Synthesizer
	speaking   bool
	generation int
}

// NewSpeaker wires the speaker to its playback providers.
func NewSpeaker(tts TTSClient, player Player, fallback Synthesizer) *Speaker {
	return &Speaker{tts: tts, player: player, fallback: fallback}
}

// Speak voices the text: primary path synthesizes raw PCM and plays
// it; any primary failure (network, decode, quota) falls back to the
// built-in Marathi voice at a slightly raised rate. Blocks until the
// utterance completes or is cancelled.
func (s *Speaker) Speak(ctx context.Context, text string) error {
	s.Cancel()

	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.speaking = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.generation == generation {
			s.speaking = false
		}
		s.mu.Unlock()
	}()

	pcm, err := s.tts.SynthesizeSpeech(ctx, speakPrefix+text)
	if err == nil {
		err = s.player.Play(DecodePCM16(pcm))
		if err == nil {
			return nil
		}
	}

	return s.fallback.Speak(text, FallbackLang, FallbackRate)
}

// Cancel stops both playback mechanisms. Safe to call when nothing is
// playing.
func (s *Speaker) Cancel() {
	s.player.Stop()
	s.fallback.Cancel()
}

// Speaking reports whether an utterance is in progress.
func (s *Speaker) Speaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}
