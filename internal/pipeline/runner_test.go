package pipeline_test

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"myepg/internal/fetch"
	"myepg/internal/pipeline"
	"myepg/internal/testsupport"
	"myepg/internal/xmltv"
)

func serveDoc(t *testing.T, doc string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		io.WriteString(w, doc)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRunTwoSourceAggregation(t *testing.T) {
	sourceA := testsupport.GuideDoc(
		testsupport.ChannelElem("ch1", "A Name"),
		testsupport.ProgrammeElem("ch1", "20240101060000 +0000", "20240101070000 +0000", "Morning"),
	)
	sourceB := testsupport.GuideDoc(
		testsupport.ChannelElem("ch1", "B Name"),
		testsupport.ProgrammeElem("ch1", "20240101070000 +0000", "20240101080000 +0000", "Midday"),
	)
	serverA := serveDoc(t, sourceA)
	serverB := serveDoc(t, sourceB)

	cfg := testsupport.NewConfig(t)
	testsupport.WriteSourceList(t, cfg.Paths.SourcesFile, serverA.URL, serverB.URL)

	runner, err := pipeline.NewRunner(cfg, nil, pipeline.Events{})
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.Sources != 2 || summary.Fetched != 2 || summary.Parsed != 2 {
		t.Fatalf("unexpected summary counts: %+v", summary)
	}
	if summary.Channels != 1 || summary.Programmes != 2 {
		t.Fatalf("unexpected aggregate size: %+v", summary)
	}

	data, err := os.ReadFile(summary.OutputPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	doc, err := xmltv.Decode(string(data))
	if err != nil {
		t.Fatalf("artifact does not parse: %v", err)
	}
	if doc.Date == "" || !strings.HasSuffix(doc.Date, "+0800") {
		t.Fatalf("generation stamp missing or wrong: %q", doc.Date)
	}
	if len(doc.Channels) != 1 || doc.Channels[0].FirstDisplayName() != "B Name" {
		t.Fatalf("last-write-wins violated: %+v", doc.Channels)
	}
	if len(doc.Programmes) != 2 {
		t.Fatalf("expected two programmes, got %+v", doc.Programmes)
	}
	if doc.Programmes[0].Title != "Morning" || doc.Programmes[1].Title != "Midday" {
		t.Fatalf("source order violated: %+v", doc.Programmes)
	}
	for _, p := range doc.Programmes {
		if !strings.HasSuffix(p.Start, " +0800") || !strings.HasSuffix(p.Stop, " +0800") {
			t.Fatalf("timestamps not canonicalized: %+v", p)
		}
	}
	if doc.Programmes[0].Start != "20240101060000 +0800" {
		t.Fatalf("wall clock altered: %q", doc.Programmes[0].Start)
	}

	// Compressed copy decompresses to exactly the plain artifact.
	gzFile, err := os.Open(summary.CompressedPath)
	if err != nil {
		t.Fatalf("open compressed artifact: %v", err)
	}
	defer gzFile.Close()
	zr, err := gzip.NewReader(gzFile)
	if err != nil {
		t.Fatalf("artifact not gzip: %v", err)
	}
	unzipped, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("decompress artifact: %v", err)
	}
	if string(unzipped) != string(data) {
		t.Fatal("compressed artifact differs from plain artifact")
	}
}

func TestRunToleratesFailingSource(t *testing.T) {
	good := serveDoc(t, testsupport.GuideDoc(
		testsupport.ChannelElem("ch1", "Solo"),
		testsupport.ProgrammeElem("ch1", "20240101060000 +0000", "20240101070000 +0000", "Only"),
	))
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer bad.Close()

	cfg := testsupport.NewConfig(t)
	testsupport.WriteSourceList(t, cfg.Paths.SourcesFile, bad.URL, good.URL)

	runner, err := pipeline.NewRunner(cfg, nil, pipeline.Events{})
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed despite healthy source: %v", err)
	}
	if summary.Fetched != 1 || summary.Channels != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestRunIdenticalSourcesHitCache(t *testing.T) {
	doc := testsupport.GuideDoc(
		testsupport.ChannelElem("ch1", "Twin"),
		testsupport.ProgrammeElem("ch1", "20240101060000 +0000", "20240101070000 +0000", "Echo"),
	)
	server := serveDoc(t, doc)

	cfg := testsupport.NewConfig(t)
	testsupport.WriteSourceList(t, cfg.Paths.SourcesFile, server.URL, server.URL)

	runner, err := pipeline.NewRunner(cfg, nil, pipeline.Events{})
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.CacheHits != 1 {
		t.Fatalf("expected one cache hit for identical bytes, got %d", summary.CacheHits)
	}
	// Both sources still contribute: identical programmes accumulate.
	if summary.Programmes != 2 {
		t.Fatalf("expected both copies merged, got %d programmes", summary.Programmes)
	}
}

func TestRunMissingSourceListIsSourceListError(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	runner, err := pipeline.NewRunner(cfg, nil, pipeline.Events{})
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}
	_, err = runner.Run(context.Background())
	if !errors.Is(err, pipeline.ErrSourceList) {
		t.Fatalf("expected ErrSourceList, got %v", err)
	}
}

func TestRunAllSourcesFailingIsEmptyGuide(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer bad.Close()

	cfg := testsupport.NewConfig(t)
	testsupport.WriteSourceList(t, cfg.Paths.SourcesFile, bad.URL)

	runner, err := pipeline.NewRunner(cfg, nil, pipeline.Events{})
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}
	_, err = runner.Run(context.Background())
	if !errors.Is(err, pipeline.ErrEmptyGuide) {
		t.Fatalf("expected ErrEmptyGuide, got %v", err)
	}
	if _, statErr := os.Stat(cfg.OutputPath()); !os.IsNotExist(statErr) {
		t.Fatal("no artifact should be written for an empty guide")
	}
}

func TestRunEventsFire(t *testing.T) {
	server := serveDoc(t, testsupport.GuideDoc(testsupport.ChannelElem("ch1", "One")))

	cfg := testsupport.NewConfig(t, testsupport.WithCompression(false))
	testsupport.WriteSourceList(t, cfg.Paths.SourcesFile, server.URL)

	var loaded, fetched, parsed int
	runner, err := pipeline.NewRunner(cfg, nil, pipeline.Events{
		SourcesLoaded: func(count int) { loaded = count },
		FetchDone:     func(fetch.Result) { fetched++ },
		ParseDone:     func(string, bool) { parsed++ },
	})
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if loaded != 1 || fetched != 1 || parsed != 1 {
		t.Fatalf("events missed: loaded=%d fetched=%d parsed=%d", loaded, fetched, parsed)
	}
	if summary.CompressedPath != "" {
		t.Fatalf("compression disabled but compressed artifact reported: %q", summary.CompressedPath)
	}
}
