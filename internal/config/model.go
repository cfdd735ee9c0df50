// Package config recovers structural entities from raw Cisco-IOS style
// configuration text: interface blocks, VTY line blocks and access-list
// entries. Parsing is a single forward pass over trimmed lines; anything
// unrecognized is ignored and parsing never fails.
package config

import "strings"

// InterfaceStatus describes the administrative state of an interface block.
type InterfaceStatus string

const (
	StatusActive   InterfaceStatus = "active"
	StatusShutdown InterfaceStatus = "shutdown"
	StatusUnknown  InterfaceStatus = "unknown"
)

// ConfigLine is a single trimmed configuration line. Numbers are 1-indexed;
// every location reference in a finding points back to one of these.
type ConfigLine struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Interface is a parsed `interface <name>` block.
type Interface struct {
	Name       string          `json:"name"`
	IPAddress  string          `json:"ipAddress,omitempty"`
	Status     InterfaceStatus `json:"status"`
	ACL        string          `json:"acl,omitempty"`
	LineNumber int             `json:"lineNumber"`
}

// VTYLine is a parsed `line vty <range>` block governing remote
// administrative sessions.
type VTYLine struct {
	Range       string   `json:"range"`
	Password    string   `json:"password,omitempty"`
	Transport   []string `json:"transport,omitempty"`
	AccessClass string   `json:"accessClass,omitempty"`
	LineNumber  int      `json:"lineNumber"`
}

// ACLEntry preserves the raw text of an access-list directive. No further
// structure is recovered; checks only need presence and order.
type ACLEntry struct {
	Text       string `json:"text"`
	LineNumber int    `json:"lineNumber"`
}

// Summary holds the cardinalities of the parsed entity lists.
type Summary struct {
	TotalInterfaces int `json:"totalInterfaces"`
	TotalVTYLines   int `json:"totalVTYLines"`
	TotalACLs       int `json:"totalACLs"`
}

// ParsedConfig is the structured model built once per analysis. It is not
// mutated after Parse returns.
type ParsedConfig struct {
	Interfaces []Interface `json:"interfaces"`
	VTYLines   []VTYLine   `json:"vtyLines"`
	ACLs       []ACLEntry  `json:"acls"`
	Summary    Summary     `json:"summary"`
}

// SplitLines splits raw configuration text into 1-indexed, trimmed lines.
func SplitLines(text string) []ConfigLine {
	if text == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	lines := make([]ConfigLine, 0, len(raw))
	for i, l := range raw {
		lines = append(lines, ConfigLine{Number: i + 1, Text: strings.TrimSpace(l)})
	}
	return lines
}
