package sysinfo

import (
	"os"
	"runtime"
	"strings"
)

// detectContainer reports whether the process runs in a container and,
// if so, which runtime.
func detectContainer() (bool, string) {
	if v := os.Getenv("CONTAINER"); v != "" {
		return true, strings.ToLower(v)
	}
	if fileExists("/.dockerenv") {
		return true, "docker"
	}
	if fileExists("/run/.containerenv") {
		return true, "podman"
	}
	if runtime.GOOS == "linux" {
		if data, err := os.ReadFile("/proc/1/cgroup"); err == nil {
			if ct := parseCgroup(string(data)); ct != "" {
				return true, ct
			}
		}
	}
	return false, ""
}

// parseCgroup looks for container runtime signatures in cgroup text.
func parseCgroup(content string) string {
	lower := strings.ToLower(content)
	switch {
	case strings.Contains(lower, "docker"), strings.Contains(lower, "containerd"):
		return "docker"
	case strings.Contains(lower, "lxc"):
		return "lxc"
	case strings.Contains(lower, "libpod"):
		return "podman"
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
