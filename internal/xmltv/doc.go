// Package xmltv handles the XMLTV wire format: document types shared by
// decode and encode, the timestamp grammar with its canonical +0800 output
// marker, charset-aware decoding for legacy Chinese encodings, and the
// tab-indented pretty writer for the published artifact.
//
// Domain admission rules (which channels and programmes enter the model) do
// not live here; see the guide package.
package xmltv
