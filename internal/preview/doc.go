package preview

// Package preview implements the preview playback controller: a UI-free
// state machine that owns at most one remote-audio session at a time,
// performs the two-stage authenticated fetch, and guarantees that every
// allocated audio resource is released exactly once across success, manual
// stop, error, and preemption paths. The UI binds to it through a thin
// state-change callback.
