package xmltv

import (
	"strings"
	"testing"
)

func TestDecodeBasicDocument(t *testing.T) {
	doc, err := Decode(`<?xml version="1.0" encoding="UTF-8"?>
<tv>
	<channel id="ch1"><display-name lang="zh">測試台</display-name><display-name>alt</display-name></channel>
	<programme channel="ch1" start="20240101060000 +0000" stop="20240101070000 +0000">
		<title>Morning</title>
		<desc>news</desc>
	</programme>
</tv>`)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(doc.Channels) != 1 || len(doc.Programmes) != 1 {
		t.Fatalf("unexpected counts: %d channels, %d programmes", len(doc.Channels), len(doc.Programmes))
	}
	if doc.Channels[0].FirstDisplayName() != "測試台" {
		t.Fatalf("unexpected display name: %q", doc.Channels[0].FirstDisplayName())
	}
	if doc.Programmes[0].Desc != "news" {
		t.Fatalf("unexpected desc: %q", doc.Programmes[0].Desc)
	}
}

func TestDecodeHonorsDeclaredCharset(t *testing.T) {
	// "中文台" encoded as GBK bytes inside a document that declares GB2312.
	body := `<?xml version="1.0" encoding="GB2312"?><tv><channel id="c"><display-name>` +
		"\xd6\xd0\xce\xc4\xcc\xa8" + `</display-name></channel></tv>`
	doc, err := Decode(body)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got := doc.Channels[0].FirstDisplayName(); got != "中文台" {
		t.Fatalf("charset not decoded: %q", got)
	}
}

func TestDecodeUnknownCharsetErrors(t *testing.T) {
	if _, err := Decode(`<?xml version="1.0" encoding="NO-SUCH"?><tv></tv>`); err == nil {
		t.Fatal("expected error for unknown charset")
	}
}

func TestDecodeMalformedMarkupErrors(t *testing.T) {
	if _, err := Decode("<tv><channel id='x'>"); err == nil {
		t.Fatal("expected error for truncated markup")
	}
}

func TestWriteUsesTabsAndHeader(t *testing.T) {
	doc := &Document{
		Date:     "20240101000000 +0800",
		Channels: []Channel{{ID: "ch1", DisplayNames: []DisplayName{{Lang: "zh", Value: "一台"}}}},
		Programmes: []Programme{{
			Channel: "ch1",
			Start:   "20240101060000 +0800",
			Stop:    "20240101070000 +0800",
			Title:   "Morning",
		}},
	}
	data, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "<?xml") {
		t.Fatalf("missing XML header: %q", text[:20])
	}
	if !strings.Contains(text, "\n\t<channel id=\"ch1\">") {
		t.Fatalf("expected tab-indented channel element:\n%s", text)
	}
	if strings.Contains(text, "<desc>") {
		t.Fatalf("empty desc should be omitted:\n%s", text)
	}

	// The artifact must decode back into the same shape.
	parsed, err := Decode(text)
	if err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}
	if parsed.Date != doc.Date || len(parsed.Programmes) != 1 {
		t.Fatalf("round trip drifted: %+v", parsed)
	}
}
