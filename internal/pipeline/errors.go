package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel classes for run failures, mirroring the layers of the pipeline.
// Source-list problems and an empty merge are expected operational outcomes
// the CLI reports calmly; output failures are the run's terminal error.
var (
	ErrSourceList = errors.New("source list error")
	ErrLocked     = errors.New("output directory locked")
	ErrEmptyGuide = errors.New("empty guide")
	ErrOutput     = errors.New("output error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification via errors.Is.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrOutput
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
