package envpath

import (
	"fmt"
	"os"
	"runtime"

	"git.home.luguber.info/inful/rslenv/internal/normalization"
)

// Platform selects the path-list separator convention.
type Platform string

const (
	PlatformAuto    Platform = "auto"
	PlatformPOSIX   Platform = "posix"
	PlatformWindows Platform = "windows"
)

var platformNormalizer = normalization.New(map[string]Platform{
	"auto":    PlatformAuto,
	"posix":   PlatformPOSIX,
	"unix":    PlatformPOSIX,
	"linux":   PlatformPOSIX,
	"darwin":  PlatformPOSIX,
	"windows": PlatformWindows,
	"win":     PlatformWindows,
}, PlatformAuto)

// ParsePlatform normalizes a platform name case-insensitively. Blank means
// auto.
func ParsePlatform(raw string) (Platform, error) {
	p, err := platformNormalizer.NormalizeWithError(raw)
	if err != nil {
		return "", fmt.Errorf("invalid platform: %w", err)
	}
	return p, nil
}

// Separator returns the list separator for p. Auto uses the host's.
func (p Platform) Separator() rune {
	switch p {
	case PlatformPOSIX:
		return ':'
	case PlatformWindows:
		return ';'
	default:
		return os.PathListSeparator
	}
}

// Resolve turns auto into the concrete platform of the host.
func (p Platform) Resolve() Platform {
	if p != PlatformAuto && p != "" {
		return p
	}
	if runtime.GOOS == "windows" {
		return PlatformWindows
	}
	return PlatformPOSIX
}
