package model

// Package model defines domain data structures used across the app: the
// sample catalog record with its display fallback rules, and the preview
// state enum. Structures are designed for direct binding in the UI and
// explicit state transitions.
