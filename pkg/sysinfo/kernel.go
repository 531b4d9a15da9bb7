package sysinfo

import (
	"strings"
)

// kernelVersion reads the kernel release directly, for hosts where
// gopsutil reported none.
func kernelVersion() string {
	return parseKernelVersion(kernelVersionPlatform())
}

// parseKernelVersion reduces "/proc/version" style text to the release
// token and passes bare releases through trimmed.
func parseKernelVersion(raw string) string {
	s := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(s, "Linux version "); ok {
		s, _, _ = strings.Cut(rest, " ")
	}
	return s
}
