// Package sysinfo reads the host facts the neofetch panel can show in
// place of its static lines: user, host, kernel and uptime.
package sysinfo

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/content"
)

// Facts is a snapshot of the host.
type Facts struct {
	User          string
	Hostname      string
	OS            string // "linux", "darwin"
	Platform      string // "arch", "ubuntu", "darwin"
	Kernel        string
	Uptime        time.Duration
	InContainer   bool
	ContainerType string // "docker", "podman", "lxc", ""
}

// probe is swapped out in tests.
var probe = host.InfoWithContext

// Collect gathers the host facts. Subsystems that fail are left empty, so
// the caller always gets as much as could be read; the error reports the
// first failure.
func Collect(ctx context.Context) (*Facts, error) {
	f := &Facts{OS: runtime.GOOS}
	var firstErr error

	info, err := probe(ctx)
	if err != nil {
		firstErr = fmt.Errorf("sysinfo: host info: %w", err)
	} else {
		f.Hostname = info.Hostname
		f.Platform = info.Platform
		f.Kernel = info.KernelVersion
		f.Uptime = time.Duration(info.Uptime) * time.Second
		if info.OS != "" {
			f.OS = info.OS
		}
	}

	if f.Hostname == "" {
		f.Hostname, _ = os.Hostname()
	}
	if f.Kernel == "" {
		f.Kernel = kernelVersion()
	}
	f.User = currentUser()
	f.InContainer, f.ContainerType = detectContainer()
	return f, firstErr
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// HostLine is the neofetch host value: the hostname, then the platform,
// then the container type when there is one.
func (f *Facts) HostLine() string {
	parts := []string{f.Hostname}
	if f.Platform != "" {
		parts = append(parts, f.Platform)
	}
	if f.InContainer && f.ContainerType != "" {
		parts = append(parts, "("+f.ContainerType+")")
	}
	return strings.Join(parts, " ")
}

// KernelLine is the neofetch kernel value, e.g. "Linux 6.17.9-zen1-1-zen".
func (f *Facts) KernelLine() string {
	if f.Kernel == "" {
		return ""
	}
	osName := f.OS
	switch osName {
	case "linux":
		osName = "Linux"
	case "darwin":
		osName = "Darwin"
	}
	return osName + " " + f.Kernel
}

// Apply returns a copy of stats with the user, host, kernel and uptime
// values replaced by the live ones. Rows with other labels, and facts
// that could not be read, keep their static value.
func (f *Facts) Apply(stats []content.Stat) []content.Stat {
	live := map[string]string{
		"user":   f.User,
		"host":   f.HostLine(),
		"kernel": f.KernelLine(),
	}
	if f.Uptime > 0 {
		live["uptime"] = FormatUptime(f.Uptime)
	}
	out := make([]content.Stat, len(stats))
	for i, s := range stats {
		if v := strings.TrimSpace(live[s.Label]); v != "" {
			s.Value = v
		}
		out[i] = s
	}
	return out
}

// FormatUptime renders d the way neofetch does: "3 days, 4 hours, 12 mins".
func FormatUptime(d time.Duration) string {
	if d < time.Minute {
		return "0 mins"
	}
	days := int(d / (24 * time.Hour))
	hours := int(d/time.Hour) % 24
	mins := int(d/time.Minute) % 60

	var parts []string
	add := func(n int, unit string) {
		if n == 0 {
			return
		}
		if n != 1 {
			unit += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, unit))
	}
	add(days, "day")
	add(hours, "hour")
	add(mins, "min")
	return strings.Join(parts, ", ")
}
