package model

import "testing"

func TestPreviewStateString(t *testing.T) {
	tests := []struct {
		state    PreviewState
		expected string
	}{
		{PreviewIdle, "Idle"},
		{PreviewLoading, "Loading"},
		{PreviewPlaying, "Playing"},
		{PreviewError, "Error"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestPreviewStateIsActive(t *testing.T) {
	active := []PreviewState{PreviewLoading, PreviewPlaying}
	for _, st := range active {
		if !st.IsActive() {
			t.Errorf("Expected %s to be active", st)
		}
	}

	inactive := []PreviewState{PreviewIdle, PreviewError}
	for _, st := range inactive {
		if st.IsActive() {
			t.Errorf("Expected %s to be inactive", st)
		}
	}
}
