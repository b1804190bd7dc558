package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"myepg/internal/config"
	"myepg/internal/fetch"
	"myepg/internal/fileutil"
	"myepg/internal/guide"
	"myepg/internal/hanconv"
	"myepg/internal/logging"
	"myepg/internal/sources"
	"myepg/internal/xmltv"
)

// Events carries optional hooks the CLI uses for progress reporting. All
// fields may be nil. SourcesLoaded fires once before fetching begins;
// FetchDone fires per settled retrieval (from fetching goroutines);
// ParseDone fires per source after its parse-or-skip step.
type Events struct {
	SourcesLoaded func(count int)
	FetchDone     func(fetch.Result)
	ParseDone     func(url string, ok bool)
}

// Summary describes what one run produced.
type Summary struct {
	RunID          string
	Sources        int
	Fetched        int
	Parsed         int
	CacheHits      int
	Channels       int
	Programmes     int
	Elapsed        time.Duration
	OutputPath     string
	CompressedPath string
}

// Runner executes the aggregation pipeline: load sources, fetch, parse
// through the content cache, merge, publish.
type Runner struct {
	cfg      *config.Config
	logger   *slog.Logger
	cache    *guide.Cache
	strategy guide.Strategy
	events   Events
}

// NewRunner wires a runner from configuration. The script converter and merge
// strategy are resolved here so a misconfiguration surfaces before any I/O.
func NewRunner(cfg *config.Config, logger *slog.Logger, events Events) (*Runner, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	conv, err := hanconv.FromConfig(cfg.Hanconv)
	if err != nil {
		return nil, err
	}
	strategy, err := guide.ParseStrategy(cfg.Merge.Strategy)
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:      cfg,
		logger:   logger,
		cache:    guide.NewCache(guide.NewParser(conv, logger)),
		strategy: strategy,
		events:   events,
	}, nil
}

// Run executes one batch aggregation to completion.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.NewString()
	logger := r.logger.With(slog.String(logging.FieldRunID, runID))
	started := time.Now()

	locators, err := sources.Load(r.cfg.Paths.SourcesFile)
	if err != nil {
		return nil, Wrap(ErrSourceList, "pipeline", "load sources", "", err)
	}
	if len(locators) == 0 {
		return nil, Wrap(ErrSourceList, "pipeline", "load sources",
			"no usable locators in "+r.cfg.Paths.SourcesFile, nil)
	}
	if r.events.SourcesLoaded != nil {
		r.events.SourcesLoaded(len(locators))
	}

	if err := fileutil.EnsureDir(r.cfg.Paths.OutputDir); err != nil {
		return nil, Wrap(ErrOutput, "pipeline", "ensure output directory", "", err)
	}

	lock := flock.New(filepath.Join(r.cfg.Paths.OutputDir, "myepg.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, Wrap(ErrOutput, "pipeline", "acquire run lock", "", err)
	}
	if !locked {
		return nil, Wrap(ErrLocked, "pipeline", "acquire run lock",
			"another run is writing to "+r.cfg.Paths.OutputDir, nil)
	}
	defer lock.Unlock()

	logger.Info("fetching guide sources", slog.Int("count", len(locators)))
	fetcher := fetch.NewFromConfig(r.cfg, logger, r.events.FetchDone)
	results := fetcher.FetchAll(ctx, locators)

	fetched := 0
	parseResults := make([]guide.ParseResult, 0, len(results))
	for _, result := range results {
		if !result.OK() {
			if r.events.ParseDone != nil {
				r.events.ParseDone(result.URL, false)
			}
			continue
		}
		fetched++
		parsed := r.cache.GetOrCompute(result.Body)
		parseResults = append(parseResults, parsed)
		logger.Debug("source parsed",
			slog.String(logging.FieldSourceURL, result.URL),
			slog.String(logging.FieldFingerprint, guide.Fingerprint(result.Body)),
			slog.Int("channels", len(parsed.Channels)))
		if r.events.ParseDone != nil {
			r.events.ParseDone(result.URL, true)
		}
	}

	aggregate := guide.Merge(parseResults, r.strategy)
	if aggregate.ChannelCount() == 0 {
		return nil, Wrap(ErrEmptyGuide, "pipeline", "merge",
			"no channels decoded from any source", nil)
	}

	summary := &Summary{
		RunID:      runID,
		Sources:    len(locators),
		Fetched:    fetched,
		Parsed:     len(parseResults),
		CacheHits:  r.cache.Hits(),
		Channels:   aggregate.ChannelCount(),
		Programmes: aggregate.ProgrammeCount(),
	}

	if err := r.publish(aggregate, summary); err != nil {
		return nil, err
	}

	summary.Elapsed = time.Since(started)
	logger.Info("guide published",
		slog.Int("sources", summary.Sources),
		slog.Int("fetched", summary.Fetched),
		slog.Int("channels", summary.Channels),
		slog.Int("programmes", summary.Programmes),
		slog.String("output", summary.OutputPath),
		slog.Duration("elapsed", summary.Elapsed))
	return summary, nil
}

func (r *Runner) publish(aggregate *guide.Aggregate, summary *Summary) error {
	doc := aggregate.Document(r.cfg.Output.Language)
	doc.Date = xmltv.GenerationStamp(time.Now())

	payload, err := xmltv.Marshal(doc)
	if err != nil {
		return Wrap(ErrOutput, "pipeline", "render artifact", "", err)
	}

	outputPath := r.cfg.OutputPath()
	if err := fileutil.WriteFileAtomic(outputPath, payload, 0o644); err != nil {
		return Wrap(ErrOutput, "pipeline", "write artifact", "", err)
	}
	summary.OutputPath = outputPath

	if r.cfg.Output.Compress {
		compressedPath := r.cfg.CompressedPath()
		if err := fileutil.GzipFile(outputPath, compressedPath); err != nil {
			return Wrap(ErrOutput, "pipeline", "compress artifact", "", err)
		}
		summary.CompressedPath = compressedPath
	}
	return nil
}
