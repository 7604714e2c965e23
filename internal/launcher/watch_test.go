package launcher

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestWatcher_ReloadsShortcuts(t *testing.T) {
	res := newTestResources(t, `{"ShortCutList_V2":{"np":"notepad.exe"}}`, nil)

	w := NewWatcher(res)
	w.SetDebounce(20 * time.Millisecond)

	reloaded := make(chan error, 8)
	w.SetOnReload(func(path string, err error) {
		if path == res.ShortcutsFile() {
			reloaded <- err
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(res.ShortcutsFile(), []byte(`{"ShortCutList_V2":{"np":"gedit"}}`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// a truncating write may be seen as more than one change
	deadline := time.After(5 * time.Second)
	for res.Resolve("np") != "gedit" {
		select {
		case err := <-reloaded:
			if err != nil {
				t.Fatalf("reload error = %v", err)
			}
		case <-deadline:
			t.Fatalf("Resolve(np) = %q, want gedit after the file changed", res.Resolve("np"))
		}
	}
}

func TestWatcher_StartStop(t *testing.T) {
	res := newTestResources(t, "", nil)
	w := NewWatcher(res)

	ctx := context.Background()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := w.Start(ctx); err != nil {
		t.Errorf("second Start() error = %v", err)
	}
	w.Stop()
	w.Stop()

	if err := w.Start(ctx); err != nil {
		t.Fatalf("restart error = %v", err)
	}
	w.Stop()
}
