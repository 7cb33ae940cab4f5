// Package speech holds the voice input and output controllers. The
// browser capability surfaces (recognition, synthesis, playback) are
// injected providers so the state machines stay testable and no
// ambient globals exist.
package speech

import (
	"errors"
	"sync"
)

// Recognition error codes reported by the capability surface.
const errCodeNotAllowed = "not-allowed"

// Localized recognition notices.
const (
	msgRecognitionUnavailable = "तुमच्या ब्राउझरमध्ये व्हॉइस इनपुट उपलब्ध नाही. कृपया गुगल क्रोम वापरा."
	msgPermissionDenied       = "माइक वापरण्याची परवानगी नाकारली आहे."
	msgRecognitionFailed      = "व्हॉइस टायपिंगमध्ये अडथळा आला."
)

// ErrRecognitionUnavailable is returned when the capability surface
// lacks speech recognition; the caller shows a one-time notice and
// never starts a session.
var ErrRecognitionUnavailable = errors.New(msgRecognitionUnavailable)

// ErrPermissionDenied marks a recognition error caused by the user
// declining microphone access.
var ErrPermissionDenied = errors.New(msgPermissionDenied)

// Recognizer is the speech-recognition capability provider. The
// Available/Unavailable variant is fixed at construction and checked
// once, not feature-detected per call.
type Recognizer interface {
	Available() bool
	Start(lang string) error
	Stop()
}

// UnavailableRecognizer is the capability-absent variant.
type UnavailableRecognizer struct{}

func (UnavailableRecognizer) Available() bool         { return false }
func (UnavailableRecognizer) Start(lang string) error { return ErrRecognitionUnavailable }
func (UnavailableRecognizer) Stop()                   {}

// RemoteRecognizer is the capability-present variant for a capture
// surface that runs on the client: Start/Stop only gate the session,
// transcripts arrive as events.
type RemoteRecognizer struct{}

func (RemoteRecognizer) Available() bool         { return true }
func (RemoteRecognizer) Start(lang string) error { return nil }
func (RemoteRecognizer) Stop()                   {}

// AppendTranscript joins a confirmed transcript segment onto existing
// field text with a single separating space when the field is
// non-empty.
func AppendTranscript(existing, final string) string {
	if existing == "" {
		return final
	}
	return existing + " " + final
}

// SessionState is the observable dictation state.
type SessionState struct {
	Listening bool   `json:"listening"`
	Field     string `json:"field,omitempty"`
	Text      string `json:"text"`
	Interim   string `json:"interim,omitempty"`
	Error     string `json:"error,omitempty"`
	Denied    bool   `json:"denied,omitempty"`
}

// SessionManager runs the dictation state machine: idle -> listening ->
// (idle | error). Output is attached to one named target field per
// session; only one recognition session is active at a time.
type SessionManager struct {
	mu         sync.Mutex
	recognizer Recognizer
	lang       string

	listening bool
	field     string
	text      string
	interim   string
	errText   string
	denied    bool
}

// NewSessionManager wires the manager to its capability provider.
func NewSessionManager(recognizer Recognizer, lang string) *SessionManager {
	if lang == "" {
		lang = "mr-IN"
	}
	return &SessionManager{recognizer: recognizer, lang: lang}
}

// Toggle starts dictation targeting the given field with its current
// text, or stops the active session when one is already listening —
// stop, never restart. Returns whether a session is now listening.
func (m *SessionManager) Toggle(field, currentText string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.recognizer.Available() {
		return false, ErrRecognitionUnavailable
	}

	if m.listening {
		m.recognizer.Stop()
		m.listening = false
		return false, nil
	}

	if err := m.recognizer.Start(m.lang); err != nil {
		return false, err
	}
	m.listening = true
	m.field = field
	m.text = currentText
	m.interim = ""
	m.errText = ""
	m.denied = false
	return true, nil
}

// HandleInterim updates the transient buffer; interim results never
// touch the target field.
func (m *SessionManager) HandleInterim(transcript string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listening {
		m.interim = transcript
	}
}

// HandleFinal appends a confirmed segment to the target field text.
func (m *SessionManager) HandleFinal(transcript string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.listening || transcript == "" {
		return
	}
	m.text = AppendTranscript(m.text, transcript)
	m.interim = ""
}

// HandleError ends the session with an error classified as permission
// denial or a generic failure from the underlying error code.
func (m *SessionManager) HandleError(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listening = false
	m.interim = ""
	if code == errCodeNotAllowed {
		m.errText = msgPermissionDenied
		m.denied = true
	} else {
		m.errText = msgRecognitionFailed
		m.denied = false
	}
}

// HandleEnd returns to idle on natural end-of-speech, without error.
func (m *SessionManager) HandleEnd() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listening = false
	m.interim = ""
}

// Stop force-stops any active session. Called on teardown.
func (m *SessionManager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listening {
		m.recognizer.Stop()
		m.listening = false
		m.interim = ""
	}
}

// State returns the observable dictation state.
func (m *SessionManager) State() SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return SessionState{
		Listening: m.listening,
		Field:     m.field,
		Text:      m.text,
		Interim:   m.interim,
		Error:     m.errText,
		Denied:    m.denied,
	}
}
