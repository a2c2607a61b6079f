// Package jot is the Composition Root for the jot application.
//
// It connects the core note domain (Store, Write Coalescer) with the
// persistence adapter (the filesystem Slot) using the Hexagonal
// Architecture pattern.
//
// Philosophy:
//
// jot is a local, single-user note-taking engine. The collection lives
// in memory for the process lifetime and converges to a single durable
// JSON slot on disk. Storage failures never surface: corrupt data
// degrades to an empty collection, rejected writes are retried with the
// next full snapshot.
//
// Features:
//
//   - **Hexagonal Architecture**: the store is agnostic to the medium
//     behind core.Gateway.
//   - **Write coalescing**: bursts of edits collapse into one durable
//     write after a quiet period; an explicit save path bypasses it.
//   - **Defensive persistence**: decode-or-empty loads, atomic
//     whole-snapshot writes (temp file + rename).
//   - **Reactive slot**: external edits of the slot surface as events
//     via fsnotify.
//   - **Safe preview**: a restricted, escape-first markup renderer.
//
// Usage:
//
//	// Open a store over a data directory
//	store, err := jot.New("~/.jot", jot.WithLogger(logger))
//
//	// Create and edit a note
//	n := store.CreateNote()
//	title := "groceries"
//	store.UpdateNote(n.ID, jot.Patch{Title: &title})
package jot
