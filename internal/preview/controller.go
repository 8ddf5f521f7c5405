package preview

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/samplecrate/sample-browser/internal/model"
	"github.com/samplecrate/sample-browser/internal/player"
)

// ErrorDisplayInterval is how long a failed session shows its error state
// before the control reverts to idle.
const ErrorDisplayInterval = 2 * time.Second

// Fetcher resolves and downloads preview audio for a sample. Stage 1 picks
// the best available preview URL from the sample's remote metadata; stage 2
// downloads the audio bytes through the same authenticated channel.
type Fetcher interface {
	ResolvePreviewURL(ctx context.Context, sampleID int) (string, error)
	FetchPreview(ctx context.Context, url string) ([]byte, error)
}

// Resource is the released-once handle to locally playable audio data.
type Resource interface {
	Path() string
	Release()
}

// session is one preview lifetime, from start to natural completion,
// manual stop, or error revert.
type session struct {
	id       string
	sampleID int
	state    model.PreviewState
	handle   Resource
	playback player.Playback
}

// Controller owns the single active preview session. All transitions take
// the controller mutex, so a stop always completes (resource released,
// state reset) before the next session's fetch begins.
type Controller struct {
	fetcher     Fetcher
	player      player.Player
	onChange    func(sampleID int, state model.PreviewState)
	errorRevert time.Duration
	alloc       func(data []byte) (Resource, error)

	mu     sync.Mutex
	active *session
}

// NewController creates a controller over a fetcher and a playback primitive.
func NewController(fetcher Fetcher, p player.Player) *Controller {
	return &Controller{
		fetcher:     fetcher,
		player:      p,
		errorRevert: ErrorDisplayInterval,
		alloc: func(data []byte) (Resource, error) {
			return player.NewHandle(data)
		},
	}
}

// SetChangeCallback registers the observer invoked on every state
// transition of a sample's preview session.
func (c *Controller) SetChangeCallback(fn func(sampleID int, state model.PreviewState)) {
	c.onChange = fn
}

// Toggle starts a preview for the sample, or stops it when the sample is
// already the active session. Any other active session is stopped, and its
// resource released, before the new session's fetch begins.
func (c *Controller) Toggle(sample model.Sample) {
	c.mu.Lock()

	if c.active != nil && c.active.sampleID == sample.ID && c.active.state != model.PreviewError {
		stoppedID, stopped := c.stopLocked()
		c.mu.Unlock()
		if stopped {
			c.notify(stoppedID, model.PreviewIdle)
		}
		return
	}

	stoppedID, stopped := c.stopLocked()
	sess := &session{
		id:       uuid.NewString(),
		sampleID: sample.ID,
		state:    model.PreviewLoading,
	}
	c.active = sess
	c.mu.Unlock()

	if stopped {
		c.notify(stoppedID, model.PreviewIdle)
	}
	c.notify(sess.sampleID, model.PreviewLoading)

	logrus.Infof("preview session %s started for sample %d", sess.id, sess.sampleID)
	go c.run(sess)
}

// Stop terminates the active session, if any. Safe to call when nothing is
// playing.
func (c *Controller) Stop() {
	c.mu.Lock()
	stoppedID, stopped := c.stopLocked()
	c.mu.Unlock()
	if stopped {
		c.notify(stoppedID, model.PreviewIdle)
	}
}

// State returns the preview state of a sample, Idle unless it is the
// active session.
func (c *Controller) State(sampleID int) model.PreviewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil && c.active.sampleID == sampleID {
		return c.active.state
	}
	return model.PreviewIdle
}

// run executes the fetch pipeline for a session. The two fetch stages are
// the only suspension points; the playing transition happens atomically
// under the controller mutex.
func (c *Controller) run(sess *session) {
	ctx := context.Background()

	url, err := c.fetcher.ResolvePreviewURL(ctx, sess.sampleID)
	if err != nil {
		c.fail(sess, err)
		return
	}

	data, err := c.fetcher.FetchPreview(ctx, url)
	if err != nil {
		c.fail(sess, err)
		return
	}

	handle, err := c.alloc(data)
	if err != nil {
		c.fail(sess, err)
		return
	}

	c.mu.Lock()
	if c.active != sess {
		c.mu.Unlock()
		// Preempted mid-fetch: release the resource unplayed, make no
		// state transitions.
		handle.Release()
		logrus.Debugf("stale preview session %s discarded", sess.id)
		return
	}
	sess.handle = handle

	playback, err := c.player.Play(handle.Path(), func() { c.finish(sess) })
	if err != nil {
		c.failLocked(sess, err)
		return
	}
	sess.playback = playback
	sess.state = model.PreviewPlaying
	c.mu.Unlock()

	c.notify(sess.sampleID, model.PreviewPlaying)
}

// finish handles natural completion reported by the player.
func (c *Controller) finish(sess *session) {
	c.mu.Lock()
	if c.active != sess {
		c.mu.Unlock()
		return
	}
	c.active = nil
	handle := sess.handle
	sess.handle = nil
	c.mu.Unlock()

	if handle != nil {
		handle.Release()
	}
	logrus.Infof("preview session %s completed", sess.id)
	c.notify(sess.sampleID, model.PreviewIdle)
}

// fail moves a session into the error state.
func (c *Controller) fail(sess *session, err error) {
	c.mu.Lock()
	c.failLocked(sess, err)
}

// failLocked finishes a failed session and schedules the error revert. The
// caller holds the mutex; failLocked releases it.
func (c *Controller) failLocked(sess *session, err error) {
	if sess.handle != nil {
		sess.handle.Release()
		sess.handle = nil
	}

	if c.active != sess {
		c.mu.Unlock()
		return
	}
	sess.state = model.PreviewError
	c.mu.Unlock()

	logrus.Warnf("preview session %s for sample %d failed: %v", sess.id, sess.sampleID, err)
	c.notify(sess.sampleID, model.PreviewError)
	time.AfterFunc(c.errorRevert, func() { c.revert(sess) })
}

// revert returns an errored session to idle after the display interval,
// unless a newer session has replaced it.
func (c *Controller) revert(sess *session) {
	c.mu.Lock()
	if c.active != sess {
		c.mu.Unlock()
		return
	}
	c.active = nil
	c.mu.Unlock()
	c.notify(sess.sampleID, model.PreviewIdle)
}

// stopLocked releases the active session's resources and clears it. The
// caller holds the mutex and is responsible for the idle notification so
// observers are never called under the lock.
func (c *Controller) stopLocked() (sampleID int, stopped bool) {
	sess := c.active
	if sess == nil {
		return 0, false
	}
	c.active = nil

	if sess.playback != nil {
		sess.playback.Stop()
		sess.playback = nil
	}
	if sess.handle != nil {
		sess.handle.Release()
		sess.handle = nil
	}

	logrus.Infof("preview session %s stopped", sess.id)
	return sess.sampleID, true
}

func (c *Controller) notify(sampleID int, state model.PreviewState) {
	if c.onChange != nil {
		c.onChange(sampleID, state)
	}
}
