package config

const (
	defaultSourcesFile      = "~/.config/myepg/sources.txt"
	defaultOutputDir        = "~/.local/share/myepg/output"
	defaultLogDir           = "~/.local/share/myepg/logs"
	defaultFetchConcurrency = 16
	defaultFetchTimeout     = 30
	defaultUserAgent        = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/113.0.0.0 Safari/537.36"
	defaultMergeStrategy    = "concat"
	defaultOutputFilename   = "epg.xml"
	defaultOutputLanguage   = "zh"
	defaultConversion       = "t2s"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SourcesFile: defaultSourcesFile,
			OutputDir:   defaultOutputDir,
			LogDir:      defaultLogDir,
		},
		Fetch: Fetch{
			Concurrency:    defaultFetchConcurrency,
			TimeoutSeconds: defaultFetchTimeout,
			UserAgent:      defaultUserAgent,
		},
		Merge: Merge{
			Strategy: defaultMergeStrategy,
		},
		Output: Output{
			Filename: defaultOutputFilename,
			Compress: true,
			Language: defaultOutputLanguage,
		},
		Hanconv: Hanconv{
			Enabled:    true,
			Conversion: defaultConversion,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
