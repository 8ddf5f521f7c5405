package player

// Package player provides the audio playback primitive the preview
// controller depends on: fetched bytes are wrapped as a released-once local
// resource handle, and a Player turns a handle path into an active playback.

// Playback is one active audio session.
type Playback interface {
	// Stop pauses playback and terminates the session. Safe to call more
	// than once; onDone does not fire after Stop.
	Stop()
}

// Player starts audio playback for a locally stored file. onDone fires
// exactly once when playback reaches its natural end.
type Player interface {
	Play(path string, onDone func()) (Playback, error)
}
