package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestLauncherVersion(t *testing.T) {
	if !semverRegex.MatchString(Launcher) {
		t.Errorf("Launcher version %q does not match semver format (x.y.z)", Launcher)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Launcher {
		t.Errorf("Version = %v, want %v", info.Version, Launcher)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %v", info.GoVersion)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %v", info.Platform)
	}
}

func TestText(t *testing.T) {
	text := Text()
	if !strings.HasPrefix(text, "mLaunch "+Launcher) {
		t.Errorf("Text() = %q", text)
	}
}
