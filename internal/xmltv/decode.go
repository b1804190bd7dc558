package xmltv

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Decode parses one guide document. Malformed markup returns an error; the
// caller decides whether that is fatal (it never is for the pipeline, which
// degrades to an empty parse result).
func Decode(text string) (*Document, error) {
	decoder := xml.NewDecoder(strings.NewReader(text))
	decoder.CharsetReader = charsetReader

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode xmltv document: %w", err)
	}
	return &doc, nil
}

// charsetReader resolves the encoding named in an XML declaration. Chinese
// guide feeds still ship GB2312, GBK, and Big5 documents.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}
