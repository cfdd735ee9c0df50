package config

import (
	"strings"
	"testing"
)

const sampleConfig = `hostname edge-router
!
interface GigabitEthernet0/0
 ip address 192.168.1.1 255.255.255.0
 ip access-group 101 in
 no shutdown
!
interface GigabitEthernet0/1
 shutdown
!
interface GigabitEthernet0/2
 description spare
!
access-list 101 permit tcp any any eq 22
ip access-list extended MGMT
!
line vty 0 4
 password cisco
 transport input telnet ssh
 access-class 10 in
!
line vty 5 15
 transport input ssh
!`

func parseText(text string) *ParsedConfig {
	return Parse(SplitLines(text))
}

func TestParseInterfaces(t *testing.T) {
	cfg := parseText(sampleConfig)

	if len(cfg.Interfaces) != 3 {
		t.Fatalf("expected 3 interfaces, got %d", len(cfg.Interfaces))
	}

	gi0 := cfg.Interfaces[0]
	if gi0.Name != "GigabitEthernet0/0" {
		t.Errorf("expected name GigabitEthernet0/0, got %q", gi0.Name)
	}
	if gi0.IPAddress != "192.168.1.1 255.255.255.0" {
		t.Errorf("unexpected ip address %q", gi0.IPAddress)
	}
	if gi0.Status != StatusActive {
		t.Errorf("expected active status, got %q", gi0.Status)
	}
	if gi0.ACL != "101" {
		t.Errorf("expected ACL 101, got %q", gi0.ACL)
	}
	if gi0.LineNumber != 3 {
		t.Errorf("expected line 3, got %d", gi0.LineNumber)
	}

	if cfg.Interfaces[1].Status != StatusShutdown {
		t.Errorf("expected shutdown status, got %q", cfg.Interfaces[1].Status)
	}
	if cfg.Interfaces[2].Status != StatusUnknown {
		t.Errorf("expected unknown status, got %q", cfg.Interfaces[2].Status)
	}
}

func TestParseVTYLines(t *testing.T) {
	cfg := parseText(sampleConfig)

	if len(cfg.VTYLines) != 2 {
		t.Fatalf("expected 2 VTY lines, got %d", len(cfg.VTYLines))
	}

	first := cfg.VTYLines[0]
	if first.Range != "0 4" {
		t.Errorf("expected range %q, got %q", "0 4", first.Range)
	}
	if first.Password != "cisco" {
		t.Errorf("expected password cisco, got %q", first.Password)
	}
	if len(first.Transport) != 2 || first.Transport[0] != "telnet" || first.Transport[1] != "ssh" {
		t.Errorf("unexpected transport list %v", first.Transport)
	}
	if first.AccessClass != "10" {
		t.Errorf("expected access-class 10, got %q", first.AccessClass)
	}

	second := cfg.VTYLines[1]
	if second.Password != "" {
		t.Errorf("expected no password, got %q", second.Password)
	}
	if second.AccessClass != "" {
		t.Errorf("expected no access-class, got %q", second.AccessClass)
	}
}

func TestParseACLs(t *testing.T) {
	cfg := parseText(sampleConfig)

	if len(cfg.ACLs) != 2 {
		t.Fatalf("expected 2 ACL entries, got %d", len(cfg.ACLs))
	}
	if !strings.HasPrefix(cfg.ACLs[0].Text, "access-list 101") {
		t.Errorf("unexpected first ACL %q", cfg.ACLs[0].Text)
	}
	if !strings.HasPrefix(cfg.ACLs[1].Text, "ip access-list extended") {
		t.Errorf("unexpected second ACL %q", cfg.ACLs[1].Text)
	}
}

func TestSummaryMatchesCardinalities(t *testing.T) {
	cfg := parseText(sampleConfig)

	if cfg.Summary.TotalInterfaces != len(cfg.Interfaces) {
		t.Errorf("summary interfaces %d != %d", cfg.Summary.TotalInterfaces, len(cfg.Interfaces))
	}
	if cfg.Summary.TotalVTYLines != len(cfg.VTYLines) {
		t.Errorf("summary vty %d != %d", cfg.Summary.TotalVTYLines, len(cfg.VTYLines))
	}
	if cfg.Summary.TotalACLs != len(cfg.ACLs) {
		t.Errorf("summary acls %d != %d", cfg.Summary.TotalACLs, len(cfg.ACLs))
	}
}

func TestBangTerminatesBlocks(t *testing.T) {
	// Directives after the terminator must not mutate the closed block.
	cfg := parseText("interface Gi0/0\n!\nno shutdown\nip access-group 5 out")

	if len(cfg.Interfaces) != 1 {
		t.Fatalf("expected 1 interface, got %d", len(cfg.Interfaces))
	}
	iface := cfg.Interfaces[0]
	if iface.Status != StatusUnknown {
		t.Errorf("expected status unknown after block close, got %q", iface.Status)
	}
	if iface.ACL != "" {
		t.Errorf("expected no ACL after block close, got %q", iface.ACL)
	}
}

func TestMalformedDirectivesDegrade(t *testing.T) {
	// A bare `password` and a bare `access-class` must not panic and leave
	// the fields empty.
	cfg := parseText("line vty 0 4\npassword\naccess-class\ntransport input\n!")

	if len(cfg.VTYLines) != 1 {
		t.Fatalf("expected 1 VTY line, got %d", len(cfg.VTYLines))
	}
	vty := cfg.VTYLines[0]
	if vty.Password != "" {
		t.Errorf("expected empty password, got %q", vty.Password)
	}
	if vty.AccessClass != "" {
		t.Errorf("expected empty access-class, got %q", vty.AccessClass)
	}
	if len(vty.Transport) != 0 {
		t.Errorf("expected empty transport, got %v", vty.Transport)
	}
}

func TestParseEmptyAndUnrecognized(t *testing.T) {
	if cfg := parseText(""); cfg.Summary != (Summary{}) {
		t.Errorf("expected empty summary for empty input, got %+v", cfg.Summary)
	}

	cfg := parseText("foo bar\nbaz\nqux quux")
	if len(cfg.Interfaces)+len(cfg.VTYLines)+len(cfg.ACLs) != 0 {
		t.Errorf("expected empty model for unrecognizable input, got %+v", cfg)
	}
}

func TestSplitLinesNumbersAndTrims(t *testing.T) {
	lines := SplitLines("  a  \nb\n\tc")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, want := range []string{"a", "b", "c"} {
		if lines[i].Number != i+1 {
			t.Errorf("line %d numbered %d", i, lines[i].Number)
		}
		if lines[i].Text != want {
			t.Errorf("line %d text %q, want %q", i, lines[i].Text, want)
		}
	}
}
