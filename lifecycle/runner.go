// Package lifecycle implements the request lifecycle shared by every
// advice feature: a feature is idle, loading, or holding a dismissible
// error. While loading, duplicate submissions are rejected rather than
// cancelled, and a caption ticker cycles human-readable progress text
// for status polling.
package lifecycle

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrBusy is returned when a submission arrives while a request for
// the same feature instance is still in flight.
var ErrBusy = errors.New("request already in flight")

// ErrClosed is returned when the runner has been torn down.
var ErrClosed = errors.New("runner closed")

// States of a feature instance.
const (
	StateIdle    = "idle"
	StateLoading = "loading"
	StateError   = "error"
)

// DefaultCaptionInterval matches the progress caption rotation of the
// inspection screen.
const DefaultCaptionInterval = 1500 * time.Millisecond

// Snapshot is the observable state exposed to the UI.
type Snapshot struct {
	State        string      `json:"state"`
	Caption      string      `json:"caption,omitempty"`
	Result       interface{} `json:"result,omitempty"`
	ErrorMessage string      `json:"error,omitempty"`
	QuotaError   bool        `json:"quotaError,omitempty"`
}

// Runner is the per-feature request state machine.
type Runner struct {
	mu              sync.Mutex
	state           string
	captions        []string
	captionIndex    int
	captionInterval time.Duration
	stopCaptions    chan struct{}
	result          interface{}
	errMessage      string
	quotaError      bool
	closed          bool
}

// NewRunner creates an idle runner. Captions may be empty for features
// without progress text.
func NewRunner(captions []string) *Runner {
	return &Runner{
		state:           StateIdle,
		captions:        captions,
		captionInterval: DefaultCaptionInterval,
	}
}

// SetCaptionInterval overrides the rotation interval. Test hook.
func (r *Runner) SetCaptionInterval(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.captionInterval = d
}

// Begin transitions idle/error -> loading. A submission while loading
// is rejected with ErrBusy; there is no cancellation of the in-flight
// request.
func (r *Runner) Begin() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if r.state == StateLoading {
		return ErrBusy
	}

	r.state = StateLoading
	r.errMessage = ""
	r.quotaError = false
	r.captionIndex = 0
	r.startCaptionsLocked()
	return nil
}

// Succeed completes the in-flight request, storing its result.
func (r *Runner) Succeed(result interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopCaptionsLocked()
	if r.closed {
		return
	}
	r.state = StateIdle
	r.result = result
}

// Fail completes the in-flight request with a localized error message.
// The previous result is kept; failure never clears displayed data.
func (r *Runner) Fail(message string, quota bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopCaptionsLocked()
	if r.closed {
		return
	}
	r.state = StateError
	r.errMessage = message
	r.quotaError = quota
}

// SetResult replaces the stored result without a state transition.
// Used for local edits to an already-completed result; an in-flight
// request keeps its loading state and still resolves on its own.
func (r *Runner) SetResult(result interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.result = result
}

// DismissError clears a displayed error, returning to idle.
func (r *Runner) DismissError() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateError {
		r.state = StateIdle
		r.errMessage = ""
		r.quotaError = false
	}
}

// Status returns the current observable state.
func (r *Runner) Status() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := Snapshot{
		State:        r.state,
		Result:       r.result,
		ErrorMessage: r.errMessage,
		QuotaError:   r.quotaError,
	}
	if r.state == StateLoading && len(r.captions) > 0 {
		snapshot.Caption = r.captions[r.captionIndex%len(r.captions)]
	}
	return snapshot
}

// Close tears the runner down, stopping any caption ticker. Safe to
// call repeatedly; a closed runner rejects further submissions.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopCaptionsLocked()
	r.closed = true
}

// startCaptionsLocked spawns the caption rotation tied to this request.
// The ticker carries no semantic meaning and is always stopped on
// completion or Close.
func (r *Runner) startCaptionsLocked() {
	if len(r.captions) == 0 {
		return
	}

	stop := make(chan struct{})
	r.stopCaptions = stop
	interval := r.captionInterval

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				r.mu.Lock()
				if r.stopCaptions == stop {
					r.captionIndex = (r.captionIndex + 1) % len(r.captions)
				}
				r.mu.Unlock()
			}
		}
	}()
}

func (r *Runner) stopCaptionsLocked() {
	if r.stopCaptions != nil {
		close(r.stopCaptions)
		r.stopCaptions = nil
	}
}

// Registry hands out one runner per feature instance key.
type Registry struct {
	mu      sync.Mutex
	runners map[string]*Runner
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{runners: make(map[string]*Runner)}
}

// For returns the runner for (userID, feature), creating it on first
// use with the given captions.
func (g *Registry) For(userID int, feature string, captions []string) *Runner {
	key := fmt.Sprintf("%d/%s", userID, feature)

	g.mu.Lock()
	defer g.mu.Unlock()

	if runner, ok := g.runners[key]; ok {
		return runner
	}
	runner := NewRunner(captions)
	g.runners[key] = runner
	return runner
}

// CloseAll tears down every runner. Called on shutdown.
func (g *Registry) CloseAll() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, runner := range g.runners {
		runner.Close()
	}
	g.runners = make(map[string]*Runner)
}
