// Package storage persists the whole player record as one value under one
// key, behind a small key-value interface with swappable backends. Saves are
// whole-record overwrites; there is no partial-field merge.
package storage

import "context"

// StateKey is the single key the player record lives under.
const StateKey = "fighterQuestState"

// Store is the asynchronous key-value contract every backend satisfies.
// Each operation is independently fallible; callers are expected to log
// failures and carry on with in-memory state.
type Store interface {
	// Get returns the stored value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}
