package main

import (
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/mattn/go-isatty"

	"myepg/internal/fetch"
	"myepg/internal/pipeline"
)

// progressReporter bridges pipeline events to terminal progress bars. It is
// only constructed when stdout is a terminal; otherwise the run stays quiet
// beyond its log lines.
type progressReporter struct {
	writer       progress.Writer
	fetchTracker *progress.Tracker
	parseTracker *progress.Tracker
}

func newProgressReporter() *progressReporter {
	if !isTerminal(os.Stdout) {
		return nil
	}
	pw := progress.NewWriter()
	pw.SetOutputWriter(os.Stdout)
	pw.SetTrackerLength(25)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	return &progressReporter{writer: pw}
}

// events returns pipeline hooks. Safe on a nil receiver: every hook is nil
// and the pipeline runs silently.
func (p *progressReporter) events() pipeline.Events {
	if p == nil {
		return pipeline.Events{}
	}
	return pipeline.Events{
		SourcesLoaded: p.sourcesLoaded,
		FetchDone:     func(fetch.Result) { p.fetchTracker.Increment(1) },
		ParseDone:     func(string, bool) { p.parseTracker.Increment(1) },
	}
}

func (p *progressReporter) sourcesLoaded(count int) {
	p.fetchTracker = &progress.Tracker{Message: "Fetching sources", Total: int64(count)}
	p.parseTracker = &progress.Tracker{Message: "Parsing documents", Total: int64(count)}
	p.writer.AppendTracker(p.fetchTracker)
	p.writer.AppendTracker(p.parseTracker)
	go p.writer.Render()
}

func (p *progressReporter) stop() {
	if p == nil {
		return
	}
	if p.fetchTracker != nil {
		p.fetchTracker.MarkAsDone()
	}
	if p.parseTracker != nil {
		p.parseTracker.MarkAsDone()
	}
	p.writer.Stop()
}

func isTerminal(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
