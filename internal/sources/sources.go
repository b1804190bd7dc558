// Package sources loads the guide source list: a UTF-8 text file with one
// locator per line. Blank lines and lines starting with # are ignored; order
// is preserved because merge precedence follows list order.
package sources

import (
	"fmt"
	"os"
	"strings"
)

// Load reads the source list at path and returns the locators in file order.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source list %s: %w", path, err)
	}
	var locators []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		locators = append(locators, line)
	}
	return locators, nil
}
