package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteSourceList fills the target path with one locator per line.
func WriteSourceList(t testing.TB, path string, locators ...string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	content := strings.Join(locators, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// GuideDoc assembles a minimal XMLTV document from channel and programme
// fragments, for tests that exercise parsing and merging.
func GuideDoc(fragments ...string) string {
	return "<tv>\n" + strings.Join(fragments, "\n") + "\n</tv>"
}

// ChannelElem renders one channel element.
func ChannelElem(id, displayName string) string {
	return `<channel id="` + id + `"><display-name>` + displayName + `</display-name></channel>`
}

// ProgrammeElem renders one programme element.
func ProgrammeElem(channel, start, stop, title string) string {
	return `<programme channel="` + channel + `" start="` + start + `" stop="` + stop + `"><title>` + title + `</title></programme>`
}
