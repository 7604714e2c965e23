package journal

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	mdwerror "github.com/msto63/mLaunch/foundation/core/error"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := Open(Config{Path: filepath.Join(t.TempDir(), "data", "journal.db")})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"sqlite": sqlite,
		"memory": NewMemoryStore(),
	}
}

func seed(t *testing.T, store Store) {
	t.Helper()
	now := time.Now()

	entries := []*Entry{
		{
			Timestamp:   now.Add(-3 * time.Hour),
			RequestID:   "r1",
			Application: "mlaunch",
			Options:     map[string]string{"u": "T"},
			Command:     "cmd",
			Unresolved:  "cmd",
			Message:     "Success",
		},
		{
			Timestamp:   now.Add(-2 * time.Hour),
			RequestID:   "r2",
			Application: "mlaunch",
			Command:     "cmd",
			Unresolved:  "cmd",
			Message:     "InvalidCommandParameter",
			ExitCode:    -1,
		},
		{
			Timestamp:   now.Add(-time.Hour),
			RequestID:   "r3",
			Application: "other",
			Options:     map[string]string{"u": "C", "wait": ""},
			Command:     "notepad.exe",
			Unresolved:  "open notepad",
			Message:     "Success",
		},
	}
	for _, e := range entries {
		if err := store.Record(context.Background(), e); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
		if e.ID == "" {
			t.Error("Record() did not assign an id")
		}
	}
}

func requestIDs(entries []*Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.RequestID
	}
	return ids
}

func TestStore_Query(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			seed(t, store)
			ctx := context.Background()

			tests := []struct {
				name   string
				filter Filter
				want   []string
			}{
				{"all newest first", Filter{}, []string{"r3", "r2", "r1"}},
				{"by message", Filter{Message: "Success"}, []string{"r3", "r1"}},
				{"by application", Filter{Application: "other"}, []string{"r3"}},
				{"since", Filter{Since: time.Now().Add(-150 * time.Minute)}, []string{"r3", "r2"}},
				{"limit", Filter{Limit: 1}, []string{"r3"}},
				{"no match", Filter{Message: "CreateProcessFailed"}, []string{}},
			}

			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					got, err := store.Query(ctx, tt.filter)
					if err != nil {
						t.Fatalf("Query() error = %v", err)
					}
					if ids := requestIDs(got); !reflect.DeepEqual(ids, tt.want) {
						t.Errorf("Query() = %v, want %v", ids, tt.want)
					}
				})
			}

			got, err := store.Query(ctx, Filter{Application: "other"})
			if err != nil || len(got) != 1 {
				t.Fatalf("Query() = %v, %v", got, err)
			}
			if !reflect.DeepEqual(got[0].Options, map[string]string{"u": "C", "wait": ""}) {
				t.Errorf("Options = %v", got[0].Options)
			}
			if got[0].Unresolved != "open notepad" || got[0].Command != "notepad.exe" {
				t.Errorf("entry = %+v", got[0])
			}
		})
	}
}

func TestStore_StatsAndPrune(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			seed(t, store)
			ctx := context.Background()

			stats, err := store.Stats(ctx)
			if err != nil {
				t.Fatalf("Stats() error = %v", err)
			}
			if stats.Total != 3 || stats.Failures != 1 {
				t.Errorf("Stats() = %+v", stats)
			}
			if stats.ByMessage["Success"] != 2 || stats.ByMessage["InvalidCommandParameter"] != 1 {
				t.Errorf("ByMessage = %v", stats.ByMessage)
			}
			if stats.LastEntry.IsZero() {
				t.Error("LastEntry is zero")
			}

			deleted, err := store.Prune(ctx, 90*time.Minute)
			if err != nil {
				t.Fatalf("Prune() error = %v", err)
			}
			if deleted != 2 {
				t.Errorf("Prune() deleted %d, want 2", deleted)
			}

			rest, err := store.Query(ctx, Filter{})
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if ids := requestIDs(rest); !reflect.DeepEqual(ids, []string{"r3"}) {
				t.Errorf("after Prune() = %v", ids)
			}
		})
	}
}

func TestStore_EmptyStats(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			stats, err := store.Stats(context.Background())
			if err != nil {
				t.Fatalf("Stats() error = %v", err)
			}
			if stats.Total != 0 || !stats.LastEntry.IsZero() {
				t.Errorf("Stats() = %+v, want empty", stats)
			}
		})
	}
}

func TestOpen_ReopensExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	store, err := Open(Config{Path: path})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := store.Record(context.Background(), &Entry{RequestID: "keep", Application: "mlaunch", Message: "Success"}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	store.Close()

	store, err = Open(Config{Path: path})
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer store.Close()

	got, err := store.Query(context.Background(), Filter{})
	if err != nil || len(got) != 1 || got[0].RequestID != "keep" {
		t.Errorf("Query() = %v, %v", got, err)
	}
}

func TestSQLiteStore_QueryCorruptOptions(t *testing.T) {
	store, err := Open(Config{Path: filepath.Join(t.TempDir(), "journal.db")})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	entry := &Entry{Application: "mlaunch", Options: map[string]string{"u": "T"}, Message: "Success"}
	if err := store.Record(ctx, entry); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if _, err := store.db.ExecContext(ctx, `UPDATE launches SET options = '{"u":' WHERE id = ?`, entry.ID); err != nil {
		t.Fatalf("corrupt row: %v", err)
	}

	got, err := store.Query(ctx, Filter{})
	if !mdwerror.HasCode(err, mdwerror.CodeInternal) {
		t.Errorf("Query() = %v, %v, want INTERNAL error", got, err)
	}
}
