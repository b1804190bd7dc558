package guide

import (
	"time"

	"myepg/internal/xmltv"
)

// Channel is one aggregate channel. Identity is the normalized ID.
type Channel struct {
	ID          string
	DisplayName string
}

// Programme is one scheduled item admitted into the model. Start and Stop
// carry the offset they were parsed with; canonicalization to the output
// marker happens at render time.
type Programme struct {
	ChannelID string
	Start     time.Time
	Stop      time.Time
	Title     string
	Desc      string
}

// ParseResult is the outcome of parsing one source document.
type ParseResult struct {
	Channels   map[string]Channel
	Programmes map[string][]Programme
	// channelOrder and programmeOrder record first appearance so the merge
	// fold and the artifact stay deterministic across runs.
	channelOrder   []string
	programmeOrder []string
}

// NewParseResult returns an empty result ready for population.
func NewParseResult() ParseResult {
	return ParseResult{
		Channels:   make(map[string]Channel),
		Programmes: make(map[string][]Programme),
	}
}

func (r *ParseResult) addChannel(ch Channel) {
	if _, seen := r.Channels[ch.ID]; !seen {
		r.channelOrder = append(r.channelOrder, ch.ID)
	}
	r.Channels[ch.ID] = ch
}

func (r *ParseResult) addProgramme(p Programme) {
	if _, seen := r.Programmes[p.ChannelID]; !seen {
		r.programmeOrder = append(r.programmeOrder, p.ChannelID)
	}
	r.Programmes[p.ChannelID] = append(r.Programmes[p.ChannelID], p)
}

// Aggregate is the merged guide. It is mutated only by the merge fold and
// treated as immutable once handed to the serializer.
type Aggregate struct {
	Channels   map[string]Channel
	Programmes map[string][]Programme

	channelOrder   []string
	programmeOrder []string
}

// NewAggregate returns an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{
		Channels:   make(map[string]Channel),
		Programmes: make(map[string][]Programme),
	}
}

// ChannelCount returns the number of distinct channels.
func (a *Aggregate) ChannelCount() int { return len(a.Channels) }

// ProgrammeCount returns the total number of programmes across channels.
func (a *Aggregate) ProgrammeCount() int {
	total := 0
	for _, list := range a.Programmes {
		total += len(list)
	}
	return total
}

// ChannelIDs returns channel ids in first-seen order.
func (a *Aggregate) ChannelIDs() []string {
	return append([]string(nil), a.channelOrder...)
}

// Document renders the aggregate as an XMLTV document: channels first in
// first-seen order, then programmes grouped per channel. Programme groups for
// ids that never produced a channel element are still emitted, matching the
// union semantics of the merge.
func (a *Aggregate) Document(language string) *xmltv.Document {
	doc := &xmltv.Document{}
	for _, id := range a.channelOrder {
		ch := a.Channels[id]
		doc.Channels = append(doc.Channels, xmltv.Channel{
			ID:           ch.ID,
			DisplayNames: []xmltv.DisplayName{{Lang: language, Value: ch.DisplayName}},
		})
	}
	for _, id := range a.programmeOrder {
		for _, p := range a.Programmes[id] {
			doc.Programmes = append(doc.Programmes, xmltv.Programme{
				Channel: p.ChannelID,
				Start:   xmltv.FormatTime(p.Start),
				Stop:    xmltv.FormatTime(p.Stop),
				Title:   p.Title,
				Desc:    p.Desc,
			})
		}
	}
	return doc
}
