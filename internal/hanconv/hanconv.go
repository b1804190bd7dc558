// Package hanconv provides the injected script-normalization capability used
// by the guide parser. The default converter maps traditional Chinese to
// simplified via OpenCC dictionaries; a passthrough converter substitutes
// when conversion is disabled.
package hanconv

import (
	"fmt"

	"github.com/longbridgeapp/opencc"

	"myepg/internal/config"
)

// Converter normalizes guide text. Implementations must accept empty input
// and must never fail: a conversion problem returns the input unchanged.
type Converter interface {
	Convert(text string) string
}

// Nop returns a converter that passes text through untouched.
func Nop() Converter {
	return nopConverter{}
}

type nopConverter struct{}

func (nopConverter) Convert(text string) string { return text }

type openccConverter struct {
	cc *opencc.OpenCC
}

// New builds an OpenCC-backed converter for the named conversion (for
// example "t2s"). Dictionary load happens once here, not per call.
func New(conversion string) (Converter, error) {
	cc, err := opencc.New(conversion)
	if err != nil {
		return nil, fmt.Errorf("initialize opencc conversion %q: %w", conversion, err)
	}
	return &openccConverter{cc: cc}, nil
}

// FromConfig returns the converter the configuration asks for.
func FromConfig(cfg config.Hanconv) (Converter, error) {
	if !cfg.Enabled {
		return Nop(), nil
	}
	return New(cfg.Conversion)
}

func (c *openccConverter) Convert(text string) string {
	if text == "" {
		return text
	}
	converted, err := c.cc.Convert(text)
	if err != nil {
		return text
	}
	return converted
}
