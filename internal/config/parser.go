package config

import "strings"

// blockState tracks which block, if any, subsequent lines belong to.
// A bare `!` is the sole block terminator; blocks never span sections.
type blockState int

const (
	stateNone blockState = iota
	stateInterface
	stateVTY
)

// Parse builds a ParsedConfig from pre-split lines in a single forward pass.
// Unrecognized lines are ignored and malformed directives degrade to empty
// values, so Parse never fails; the worst case for unrecognizable input is
// an empty model.
func Parse(lines []ConfigLine) *ParsedConfig {
	cfg := &ParsedConfig{
		Interfaces: []Interface{},
		VTYLines:   []VTYLine{},
		ACLs:       []ACLEntry{},
	}

	state := stateNone
	cur := -1 // index into Interfaces or VTYLines, depending on state

	for _, line := range lines {
		text := line.Text

		switch {
		case text == "!":
			state = stateNone
			cur = -1
			continue

		case strings.HasPrefix(text, "interface "):
			cfg.Interfaces = append(cfg.Interfaces, Interface{
				Name:       strings.TrimSpace(strings.TrimPrefix(text, "interface ")),
				Status:     StatusUnknown,
				LineNumber: line.Number,
			})
			state = stateInterface
			cur = len(cfg.Interfaces) - 1
			continue

		case strings.HasPrefix(text, "line vty"):
			cfg.VTYLines = append(cfg.VTYLines, VTYLine{
				Range:      strings.TrimSpace(strings.TrimPrefix(text, "line vty")),
				LineNumber: line.Number,
			})
			state = stateVTY
			cur = len(cfg.VTYLines) - 1
			continue
		}

		// Access lists are collected regardless of block context.
		if strings.HasPrefix(text, "access-list ") || strings.HasPrefix(text, "ip access-list") {
			cfg.ACLs = append(cfg.ACLs, ACLEntry{Text: text, LineNumber: line.Number})
		}

		switch state {
		case stateInterface:
			parseInterfaceLine(&cfg.Interfaces[cur], text)
		case stateVTY:
			parseVTYLine(&cfg.VTYLines[cur], text)
		}
	}

	cfg.Summary = Summary{
		TotalInterfaces: len(cfg.Interfaces),
		TotalVTYLines:   len(cfg.VTYLines),
		TotalACLs:       len(cfg.ACLs),
	}
	return cfg
}

func parseInterfaceLine(iface *Interface, text string) {
	switch {
	case strings.HasPrefix(text, "ip address "):
		iface.IPAddress = strings.TrimSpace(strings.TrimPrefix(text, "ip address "))
	case text == "no shutdown":
		iface.Status = StatusActive
	case text == "shutdown":
		iface.Status = StatusShutdown
	case strings.Contains(text, "ip access-group"):
		// `ip access-group <name> <direction>`; the ACL name is the third token.
		if fields := strings.Fields(text); len(fields) >= 3 {
			iface.ACL = fields[2]
		}
	}
}

func parseVTYLine(vty *VTYLine, text string) {
	switch {
	case strings.HasPrefix(text, "password"):
		if fields := strings.Fields(text); len(fields) >= 2 {
			vty.Password = fields[1]
		}
	case strings.Contains(text, "transport input"):
		rest := text[strings.Index(text, "transport input")+len("transport input"):]
		vty.Transport = strings.Fields(rest)
	case strings.Contains(text, "access-class"):
		if fields := strings.Fields(text); len(fields) >= 2 {
			vty.AccessClass = fields[1]
		}
	}
}
