package xmltv

import (
	"fmt"
	"regexp"
	"time"
)

// timestampLayout is the XMLTV grammar YYYYMMDDHHMMSS±HHMM. The offset is
// mandatory; ParseTime rejects values without one.
const timestampLayout = "20060102150405-0700"

// outputOffset is the canonical marker stamped on every published timestamp.
const outputOffset = "+0800"

var internalWhitespace = regexp.MustCompile(`\s+`)

// cst is the fixed zone used for the generation stamp on the artifact root.
var cst = time.FixedZone("CST", 8*60*60)

// ParseTime parses an XMLTV timestamp. Internal whitespace is stripped first;
// sources disagree on whether a space separates seconds from the offset.
func ParseTime(value string) (time.Time, error) {
	cleaned := internalWhitespace.ReplaceAllString(value, "")
	parsed, err := time.Parse(timestampLayout, cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q outside grammar YYYYMMDDHHMMSS±HHMM: %w", value, err)
	}
	return parsed, nil
}

// FormatTime renders the wall-clock reading of t followed by the canonical
// +0800 marker. The source offset is dropped, not converted: the aggregate
// feed has always carried a flat +0800 and consumers key on that shape.
func FormatTime(t time.Time) string {
	return t.Format("20060102150405") + " " + outputOffset
}

// GenerationStamp returns the date attribute value for a freshly built
// artifact.
func GenerationStamp(now time.Time) string {
	return FormatTime(now.In(cst))
}
