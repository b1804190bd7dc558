package config

import "strings"

// normalize expands path fields and canonicalizes string values so validation
// and downstream consumers see one spelling of each setting.
func (c *Config) normalize() error {
	var err error
	if c.Paths.SourcesFile, err = ExpandPath(strings.TrimSpace(c.Paths.SourcesFile)); err != nil {
		return err
	}
	if c.Paths.OutputDir, err = ExpandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return err
	}
	if c.Paths.LogDir, err = ExpandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return err
	}

	c.Fetch.UserAgent = strings.TrimSpace(c.Fetch.UserAgent)
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = defaultUserAgent
	}

	c.Merge.Strategy = strings.ToLower(strings.TrimSpace(c.Merge.Strategy))
	if c.Merge.Strategy == "" {
		c.Merge.Strategy = defaultMergeStrategy
	}

	c.Output.Filename = strings.TrimSpace(c.Output.Filename)
	if c.Output.Filename == "" {
		c.Output.Filename = defaultOutputFilename
	}
	c.Output.Language = strings.TrimSpace(c.Output.Language)

	c.Hanconv.Conversion = strings.ToLower(strings.TrimSpace(c.Hanconv.Conversion))
	if c.Hanconv.Conversion == "" {
		c.Hanconv.Conversion = defaultConversion
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	return nil
}
