// Package track holds the session/label data model and its query and
// mutation engine.
//
// A Store is the in-memory form of the whole persisted document: an ordered
// sequence of sessions in creation order. Each command invocation loads a
// Store, performs exactly one operation, saves it and exits, so nothing
// here is concurrency-safe or needs to be.
//
// Sessions are identified by an opaque unique id and bounded by a start
// instant set once at creation and an optional end instant set exactly
// once. Labels are derived, not registered: the label set is the union of
// every session's label list, and removing a label strips it everywhere.
//
// All failures are typed OpErrors carrying a category code, so callers can
// map them to user-facing messages and exit codes without string matching.
package track
