package browser

import (
	"time"

	"github.com/msto63/mLaunch/internal/launcher"
)

// shortcutsLoadedMsg carries a fresh copy of the shortcut table
type shortcutsLoadedMsg struct {
	entries []launcher.Shortcut
}

// tickMsg triggers a periodic reload while watching
type tickMsg time.Time
