package controllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"go-smartagro/speech"
	"go-smartagro/utils"
)

// wavSink is the playback channel for synthesized audio: "playing"
// means framing the PCM as WAV for the client to stream.
type wavSink struct {
	mu      sync.Mutex
	current []byte
}

func (s *wavSink) Play(samples []int16) error {
	wav := speech.EncodeWAV(samples, speech.SampleRate)
	s.mu.Lock()
	s.current = wav
	s.mu.Unlock()
	return nil
}

func (s *wavSink) Stop() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// take hands the pending utterance to the response and clears it.
func (s *wavSink) take() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	wav := s.current
	s.current = nil
	return wav
}

// fallbackDirective records that the client's built-in voice should
// speak instead, with the Marathi delivery settings.
type fallbackDirective struct {
	mu     sync.Mutex
	active bool
	text   string
	lang   string
	rate   float64
}

func (f *fallbackDirective) Speak(text, lang string, rate float64) error {
	f.mu.Lock()
	f.active, f.text, f.lang, f.rate = true, text, lang, rate
	f.mu.Unlock()
	return nil
}

func (f *fallbackDirective) Cancel() {
	f.mu.Lock()
	f.active = false
	f.mu.Unlock()
}

func (f *fallbackDirective) take() (string, string, float64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	active := f.active
	f.active = false
	return f.text, f.lang, f.rate, active
}

// SpeechController handles voice output and dictation sessions.
type SpeechController struct {
	speakMu  sync.Mutex
	speaker  *speech.Speaker
	sink     *wavSink
	fallback *fallbackDirective
	session  *speech.SessionManager
}

// NewSpeechController wires the single audio output channel and the
// single dictation session.
func NewSpeechController(tts speech.TTSClient, session *speech.SessionManager) *SpeechController {
	sink := &wavSink{}
	fallback := &fallbackDirective{}
	return &SpeechController{
		speaker:  speech.NewSpeaker(tts, sink, fallback),
		sink:     sink,
		fallback: fallback,
		session:  session,
	}
}

// SpeakRequest is the read-aloud payload.
type SpeakRequest struct {
	Text string `json:"text" binding:"required"`
}

// Speak voices the text: on the primary path the response is the WAV
// audio; when synthesis fails the response directs the client's
// built-in Marathi voice instead. Any current utterance is cancelled
// first.
func (c *SpeechController) Speak(ctx *gin.Context) {
	var req SpeakRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	c.speakMu.Lock()
	defer c.speakMu.Unlock()

	if err := c.speaker.Speak(ctx.Request.Context(), req.Text); err != nil {
		utils.InternalServerError(ctx, "speech synthesis failed")
		return
	}

	if wav := c.sink.take(); wav != nil {
		ctx.Data(http.StatusOK, "audio/wav", wav)
		return
	}
	if text, lang, rate, ok := c.fallback.take(); ok {
		utils.Success(ctx, gin.H{
			"fallback": true,
			"text":     text,
			"lang":     lang,
			"rate":     rate,
		})
		return
	}
	utils.InternalServerError(ctx, "speech synthesis failed")
}

// CancelSpeech stops any current utterance on both paths.
func (c *SpeechController) CancelSpeech(ctx *gin.Context) {
	c.speaker.Cancel()
	utils.Success(ctx, gin.H{"speaking": c.speaker.Speaking()})
}

// ToggleRequest starts or stops dictation for a named target field.
type ToggleRequest struct {
	Field string `json:"field" binding:"required"`
	Text  string `json:"text"`
}

// ToggleDictation starts a session for the field, or stops the active
// one. An active session is stopped, never restarted.
func (c *SpeechController) ToggleDictation(ctx *gin.Context) {
	var req ToggleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	listening, err := c.session.Toggle(req.Field, req.Text)
	if err != nil {
		utils.UnprocessableEntity(ctx, err.Error())
		return
	}
	utils.Success(ctx, gin.H{"listening": listening, "state": c.session.State()})
}

// DictationEventRequest relays one recognition event from the capture
// surface.
type DictationEventRequest struct {
	Type       string `json:"type" binding:"required,oneof=interim final error end"`
	Transcript string `json:"transcript"`
	Code       string `json:"code"`
}

// DictationEvent feeds interim/final/error/end events into the
// session state machine.
func (c *SpeechController) DictationEvent(ctx *gin.Context) {
	var req DictationEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	switch req.Type {
	case "interim":
		c.session.HandleInterim(req.Transcript)
	case "final":
		c.session.HandleFinal(req.Transcript)
	case "error":
		c.session.HandleError(req.Code)
	case "end":
		c.session.HandleEnd()
	}
	utils.Success(ctx, c.session.State())
}

// DictationState returns the observable dictation state.
func (c *SpeechController) DictationState(ctx *gin.Context) {
	utils.Success(ctx, c.session.State())
}
