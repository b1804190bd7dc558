package guide

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"myepg/internal/hanconv"
	"myepg/internal/logging"
	"myepg/internal/xmltv"
)

// Parser turns the raw text of one source document into a ParseResult.
// Document-level failures (blank input, malformed markup) yield an empty
// result, never an error; element-level failures skip that element only.
type Parser struct {
	conv   hanconv.Converter
	logger *slog.Logger
}

// NewParser builds a parser around the given script converter. A nil
// converter means no normalization; a nil logger discards diagnostics.
func NewParser(conv hanconv.Converter, logger *slog.Logger) *Parser {
	if conv == nil {
		conv = hanconv.Nop()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Parser{conv: conv, logger: logger}
}

// Parse extracts channels and programmes from rawText.
func (p *Parser) Parse(rawText string) ParseResult {
	result := NewParseResult()

	if strings.TrimSpace(rawText) == "" {
		p.logger.Debug("guide document empty, skipping parse")
		return result
	}

	doc, err := xmltv.Decode(rawText)
	if err != nil {
		p.logger.Warn("malformed guide document",
			slog.Any("error", err),
			slog.String("fragment", fragment(rawText)))
		return result
	}

	for _, ch := range doc.Channels {
		id := p.conv.Convert(strings.TrimSpace(ch.ID))
		if id == "" {
			continue
		}
		result.addChannel(Channel{
			ID:          id,
			DisplayName: p.conv.Convert(ch.FirstDisplayName()),
		})
	}

	for _, prog := range doc.Programmes {
		channelID := p.conv.Convert(strings.TrimSpace(prog.Channel))
		if channelID == "" {
			continue
		}
		if prog.Start == "" || prog.Stop == "" {
			continue
		}

		start, err := xmltv.ParseTime(prog.Start)
		if err != nil {
			p.logger.Warn("programme skipped", slog.Any("error", err))
			continue
		}
		stop, err := xmltv.ParseTime(prog.Stop)
		if err != nil {
			p.logger.Warn("programme skipped", slog.Any("error", err))
			continue
		}

		title := p.conv.Convert(prog.Title)
		if strings.TrimSpace(title) == "" {
			continue
		}

		entry := Programme{
			ChannelID: channelID,
			Start:     start,
			Stop:      stop,
			Title:     title,
		}
		if prog.Desc != "" {
			entry.Desc = p.conv.Convert(prog.Desc)
		}
		result.addProgramme(entry)
	}

	return result
}

// fragment trims a document to a diagnosable prefix for log lines, cutting
// on a rune boundary so the line stays valid UTF-8.
func fragment(text string) string {
	const limit = 200
	text = strings.TrimSpace(text)
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
