// Package controller implements the layout customization session: a small
// state machine that turns user gestures into validated mutations of an
// in-memory layout and drives debounced persistence.
//
// # States
//
// A session is either viewing or customizing. StartCustomizing enters the
// customizing state; StopCustomizing leaves it, discarding the dirty flag
// and cancelling any pending autosave without saving. Save persists the
// working layout at any time.
//
// # Autosave
//
// While customizing, every mutation marks the session dirty and restarts a
// debounce timer (DefaultAutosaveDelay). When the timer fires with the
// session still customizing and dirty, the layout is saved through the
// preferences store. A failed save logs the error and keeps the dirty flag
// set, so the next mutation or a manual Save retries naturally. Mutations
// that land while a save is in flight keep the dirty flag for the next
// window.
//
// Timer scheduling goes through the [Clock] interface so tests drive the
// debounce with a manual clock instead of wall-clock sleeps.
//
// # Gesture semantics
//
// Single-component edits (Move, Resize, Update, ToggleVisibility) validate
// bounds for the touched component only. A full re-optimization would
// reposition unrelated components mid-drag, so it runs only on Reflow,
// which handles container resizes and breakpoint transitions.
package controller
