package xmltv

import "encoding/xml"

// Document is an XMLTV tv element, usable both for decoding source guides and
// for encoding the aggregate artifact.
type Document struct {
	XMLName    xml.Name    `xml:"tv"`
	Date       string      `xml:"date,attr,omitempty"`
	Channels   []Channel   `xml:"channel"`
	Programmes []Programme `xml:"programme"`
}

// Channel is an XMLTV channel element. Sources may carry several
// display-name children; the aggregate artifact emits exactly one.
type Channel struct {
	ID           string        `xml:"id,attr"`
	DisplayNames []DisplayName `xml:"display-name"`
}

// DisplayName is a display-name child with an optional language marker.
type DisplayName struct {
	Lang  string `xml:"lang,attr,omitempty"`
	Value string `xml:",chardata"`
}

// Programme is an XMLTV programme element. Start and Stop stay raw strings at
// this layer; the timestamp grammar lives in ParseTime/FormatTime and
// admission rules belong to the guide parser.
type Programme struct {
	Channel string `xml:"channel,attr"`
	Start   string `xml:"start,attr"`
	Stop    string `xml:"stop,attr"`
	Title   string `xml:"title"`
	Desc    string `xml:"desc,omitempty"`
}

// FirstDisplayName returns the first display-name value, or "" when absent.
func (c Channel) FirstDisplayName() string {
	if len(c.DisplayNames) == 0 {
		return ""
	}
	return c.DisplayNames[0].Value
}
