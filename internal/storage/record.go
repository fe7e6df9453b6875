package storage

import (
	"encoding/json"
	"fmt"
)

// RecordVersion is the current persisted record schema version.
const RecordVersion = 2

// migrations[i] upgrades a raw decoded record from version i to i+1. Each is
// a pure function on the untyped record, applied before the record is
// validated into the typed player state.
var migrations = []func(map[string]any) map[string]any{
	migrateV0toV1,
	migrateV1toV2,
}

// MigrateRecord decodes raw JSON, walks the migration chain up to
// RecordVersion and re-encodes. Records with no version field are v0.
func MigrateRecord(raw []byte) ([]byte, error) {
	var rec map[string]any
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	v := 0
	if f, ok := rec["v"].(float64); ok && f > 0 {
		v = int(f)
	}
	for ; v < RecordVersion && v < len(migrations); v++ {
		rec = migrations[v](rec)
	}
	rec["v"] = RecordVersion
	out, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return out, nil
}

// migrateV0toV1 upgrades the legacy stamina field: a bare number becomes
// {cur, max:100}, and a stamina object missing max gains max:100.
func migrateV0toV1(rec map[string]any) map[string]any {
	switch st := rec["stamina"].(type) {
	case float64:
		cur := st
		if cur < 0 {
			cur = 0
		}
		if cur > 100 {
			cur = 100
		}
		rec["stamina"] = map[string]any{"cur": cur, "max": float64(100)}
	case map[string]any:
		if _, ok := st["max"].(float64); !ok {
			st["max"] = float64(100)
		}
	}
	return rec
}

// migrateV1toV2 guarantees the ledger maps exist so later code can index
// them without nil checks surviving into the typed state.
func migrateV1toV2(rec map[string]any) map[string]any {
	for _, key := range []string{
		"challenges",
		"challengeCompletionDate",
		"challengeCompletionWeek",
		"unlockedCategories",
		"upgrades",
		"taskBase",
		"tasks",
	} {
		if _, ok := rec[key].(map[string]any); !ok {
			rec[key] = map[string]any{}
		}
	}
	if _, ok := rec["xp"].(map[string]any); !ok {
		rec["xp"] = map[string]any{"cur": float64(0), "toNext": float64(100)}
	}
	return rec
}
