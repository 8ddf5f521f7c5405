package model

// PreviewState represents the state of the remote-audio preview session
type PreviewState string

const (
	// PreviewIdle means no preview session is active for the sample
	PreviewIdle PreviewState = "Idle"

	// PreviewLoading means the authenticated fetch is in flight
	PreviewLoading PreviewState = "Loading"

	// PreviewPlaying means the audio resource is ready and playing
	PreviewPlaying PreviewState = "Playing"

	// PreviewError means the session failed; it auto-reverts to Idle after
	// the fixed display interval
	PreviewError PreviewState = "Error"
)

// String returns the string representation of PreviewState
func (ps PreviewState) String() string {
	return string(ps)
}

// IsActive returns true while a session holds or is acquiring resources
func (ps PreviewState) IsActive() bool {
	return ps == PreviewLoading || ps == PreviewPlaying
}
