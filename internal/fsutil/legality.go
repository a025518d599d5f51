package fsutil

import (
	"path/filepath"
	"strings"
)

// illegalChars are rejected unconditionally: a proposed name containing
// any of these is unsafe to join into a path on every supported platform.
const illegalChars = `<>:"/\|?*`

// reservedNames are the Windows device names, matched case-insensitively
// against the extension-stripped filename.
var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// NamePolicy controls which filename legality rules apply. The zero value
// enforces only the illegal character set; DefaultPolicy applies full
// Windows semantics so renames stay portable across filesystems.
type NamePolicy struct {
	// Reserved rejects Windows device names (CON, PRN, COM1-9, ...).
	Reserved bool
	// TrailingDotSpace rejects names ending in a space or period.
	TrailingDotSpace bool
}

// DefaultPolicy is the strict Windows-compatible policy.
var DefaultPolicy = NamePolicy{Reserved: true, TrailingDotSpace: true}

// LegalName reports whether name is a legal filename under the policy.
func (p NamePolicy) LegalName(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsAny(name, illegalChars) {
		return false
	}
	for _, r := range name {
		if r < 32 {
			return false
		}
	}
	if p.Reserved {
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if reservedNames[strings.ToUpper(stem)] {
			return false
		}
	}
	if p.TrailingDotSpace {
		if strings.HasSuffix(name, " ") || strings.HasSuffix(name, ".") {
			return false
		}
	}
	return true
}
