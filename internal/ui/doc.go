package ui

// Package ui contains the Fyne-based catalog browser panel. It wires user
// interactions to the filter/sort pipeline, the catalog mutator, and the
// preview playback controller, and renders the sample table, the acquisition
// search dialog, settings, and notifications. The panel is a thin event
// adapter: all preview state lives in the controller.
