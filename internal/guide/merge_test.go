package guide_test

import (
	"testing"

	"myepg/internal/guide"
)

func parseDoc(t *testing.T, doc string) guide.ParseResult {
	t.Helper()
	return guide.NewParser(nil, nil).Parse(doc)
}

func twoSources(t *testing.T) []guide.ParseResult {
	t.Helper()
	a := parseDoc(t, `<tv>
		<channel id="c1"><display-name>A Name</display-name></channel>
		<programme channel="c1" start="20240101060000 +0000" stop="20240101070000 +0000"><title>From A</title></programme>
	</tv>`)
	b := parseDoc(t, `<tv>
		<channel id="c1"><display-name>B Name</display-name></channel>
		<programme channel="c1" start="20240101070000 +0000" stop="20240101080000 +0000"><title>From B</title></programme>
	</tv>`)
	return []guide.ParseResult{a, b}
}

func TestMergeLastWriteWinsDisplayName(t *testing.T) {
	agg := guide.Merge(twoSources(t), guide.StrategyConcat)
	if agg.Channels["c1"].DisplayName != "B Name" {
		t.Fatalf("expected second source to win display name, got %q", agg.Channels["c1"].DisplayName)
	}
}

func TestMergeAccumulatesProgrammesInSourceOrder(t *testing.T) {
	agg := guide.Merge(twoSources(t), guide.StrategyConcat)
	progs := agg.Programmes["c1"]
	if len(progs) != 2 {
		t.Fatalf("expected two programmes, got %+v", progs)
	}
	if progs[0].Title != "From A" || progs[1].Title != "From B" {
		t.Fatalf("source order not preserved: %+v", progs)
	}
}

func TestMergePreferFirst(t *testing.T) {
	agg := guide.Merge(twoSources(t), guide.StrategyPreferFirst)
	if agg.Channels["c1"].DisplayName != "A Name" {
		t.Fatalf("expected first source to keep the channel, got %q", agg.Channels["c1"].DisplayName)
	}
	progs := agg.Programmes["c1"]
	if len(progs) != 1 || progs[0].Title != "From A" {
		t.Fatalf("expected only the first source's programmes: %+v", progs)
	}
}

func TestMergePreferLast(t *testing.T) {
	agg := guide.Merge(twoSources(t), guide.StrategyPreferLast)
	if agg.Channels["c1"].DisplayName != "B Name" {
		t.Fatalf("expected last source to keep the channel, got %q", agg.Channels["c1"].DisplayName)
	}
	progs := agg.Programmes["c1"]
	if len(progs) != 1 || progs[0].Title != "From B" {
		t.Fatalf("expected only the last source's programmes: %+v", progs)
	}
}

func TestMergeDisjointChannelsUnion(t *testing.T) {
	a := parseDoc(t, `<tv><channel id="c1"><display-name>One</display-name></channel></tv>`)
	b := parseDoc(t, `<tv><channel id="c2"><display-name>Two</display-name></channel></tv>`)

	agg := guide.Merge([]guide.ParseResult{a, b}, guide.StrategyConcat)
	if agg.ChannelCount() != 2 {
		t.Fatalf("expected both channels, got %v", agg.Channels)
	}
	ids := agg.ChannelIDs()
	if ids[0] != "c1" || ids[1] != "c2" {
		t.Fatalf("first-seen order not preserved: %v", ids)
	}
}

func TestMergeEmptyInputYieldsEmptyAggregate(t *testing.T) {
	agg := guide.Merge(nil, guide.StrategyConcat)
	if agg.ChannelCount() != 0 || agg.ProgrammeCount() != 0 {
		t.Fatalf("expected empty aggregate, got %+v", agg)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, value := range []string{"concat", "prefer-first", "prefer-last"} {
		if _, err := guide.ParseStrategy(value); err != nil {
			t.Fatalf("ParseStrategy(%q) returned error: %v", value, err)
		}
	}
	if _, err := guide.ParseStrategy("zip"); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestAggregateDocumentRendersCanonicalTimestamps(t *testing.T) {
	agg := guide.Merge(twoSources(t), guide.StrategyConcat)
	doc := agg.Document("zh")

	if len(doc.Channels) != 1 || len(doc.Programmes) != 2 {
		t.Fatalf("unexpected document shape: %+v", doc)
	}
	if doc.Channels[0].DisplayNames[0].Lang != "zh" {
		t.Fatalf("language marker missing: %+v", doc.Channels[0])
	}
	if doc.Programmes[0].Start != "20240101060000 +0800" {
		t.Fatalf("timestamp not canonicalized: %q", doc.Programmes[0].Start)
	}
	if doc.Programmes[1].Start != "20240101070000 +0800" {
		t.Fatalf("timestamp not canonicalized: %q", doc.Programmes[1].Start)
	}
}
