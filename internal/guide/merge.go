package guide

import "fmt"

// Strategy selects how sources that define the same channel id are resolved.
type Strategy string

const (
	// StrategyConcat is the historical behavior: the last source wins the
	// display name and programme lists accumulate across sources. No
	// time-range dedup happens; redundant listings stay redundant.
	StrategyConcat Strategy = "concat"
	// StrategyPreferFirst gives a channel entirely to the first source that
	// defines it; later sources' entries and programmes for that id are
	// ignored.
	StrategyPreferFirst Strategy = "prefer-first"
	// StrategyPreferLast gives a channel entirely to the last source that
	// defines it; earlier programmes for that id are replaced, not appended.
	StrategyPreferLast Strategy = "prefer-last"
)

// ParseStrategy maps a configuration value onto a Strategy.
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(value) {
	case StrategyConcat, StrategyPreferFirst, StrategyPreferLast:
		return Strategy(value), nil
	default:
		return "", fmt.Errorf("unknown merge strategy %q", value)
	}
}

// Merge folds per-source parse results left to right into one aggregate.
// Input order is source-list order, so precedence follows the list.
func Merge(results []ParseResult, strategy Strategy) *Aggregate {
	agg := NewAggregate()
	for _, result := range results {
		agg.fold(result, strategy)
	}
	return agg
}

func (a *Aggregate) fold(result ParseResult, strategy Strategy) {
	for _, id := range result.channelOrder {
		ch := result.Channels[id]
		_, seen := a.Channels[id]
		if seen && strategy == StrategyPreferFirst {
			continue
		}
		if !seen {
			a.channelOrder = append(a.channelOrder, id)
		}
		a.Channels[id] = ch
	}

	for _, id := range result.programmeOrder {
		list := result.Programmes[id]
		existing, seen := a.Programmes[id]
		switch {
		case !seen:
			a.programmeOrder = append(a.programmeOrder, id)
			a.Programmes[id] = append([]Programme(nil), list...)
		case strategy == StrategyPreferFirst:
			// First source owns the channel; drop the newcomer's listings.
		case strategy == StrategyPreferLast:
			a.Programmes[id] = append([]Programme(nil), list...)
		default:
			a.Programmes[id] = append(existing, list...)
		}
	}
}
