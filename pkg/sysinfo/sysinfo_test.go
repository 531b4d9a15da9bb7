package sysinfo

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v4/host"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/content"
)

func stubProbe(t *testing.T, info *host.InfoStat, err error) {
	t.Helper()
	orig := probe
	probe = func(context.Context) (*host.InfoStat, error) { return info, err }
	t.Cleanup(func() { probe = orig })
}

func TestCollectUsesHostInfo(t *testing.T) {
	stubProbe(t, &host.InfoStat{
		Hostname:      "archlinux",
		OS:            "linux",
		Platform:      "arch",
		KernelVersion: "6.17.9-zen1-1-zen",
		Uptime:        90061,
	}, nil)

	f, err := Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if f.Hostname != "archlinux" || f.Platform != "arch" {
		t.Errorf("facts = %+v", f)
	}
	if f.Uptime != 25*time.Hour+time.Minute+time.Second {
		t.Errorf("Uptime = %v", f.Uptime)
	}
	if got := f.KernelLine(); got != "Linux 6.17.9-zen1-1-zen" {
		t.Errorf("KernelLine() = %q", got)
	}
}

func TestCollectFallsBackOnProbeError(t *testing.T) {
	stubProbe(t, nil, errors.New("no host"))

	f, err := Collect(context.Background())
	if err == nil {
		t.Error("expected the probe error to be reported")
	}
	if f == nil {
		t.Fatal("Collect returned nil facts")
	}
	if f.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", f.OS, runtime.GOOS)
	}
	if f.Uptime != 0 {
		t.Errorf("Uptime = %v, want 0", f.Uptime)
	}
}

func TestApplyReplacesLiveRows(t *testing.T) {
	static := content.ProfileFor(content.English).Neofetch
	f := &Facts{
		User:     "root",
		Hostname: "box",
		OS:       "linux",
		Platform: "debian",
		Kernel:   "6.1.0",
		Uptime:   2*time.Hour + 5*time.Minute,
	}

	got := f.Apply(static)
	if len(got) != len(static) {
		t.Fatalf("len = %d, want %d", len(got), len(static))
	}
	want := map[string]string{
		"user":   "root",
		"host":   "box debian",
		"kernel": "Linux 6.1.0",
		"uptime": "2 hours, 5 mins",
	}
	for _, s := range got {
		if w, ok := want[s.Label]; ok && s.Value != w {
			t.Errorf("%s = %q, want %q", s.Label, s.Value, w)
		}
	}
	if got[4] != static[4] {
		t.Errorf("row %q changed: %q", static[4].Label, got[4].Value)
	}
	if static[0].Value != "tatsuki" {
		t.Error("Apply mutated its input")
	}
}

func TestApplyKeepsStaticWhenUnknown(t *testing.T) {
	static := []content.Stat{{Label: "kernel", Value: "Linux 6.17"}, {Label: "uptime", Value: "5+ years"}}
	got := (&Facts{}).Apply(static)
	if got[0] != static[0] || got[1] != static[1] {
		t.Errorf("Apply(empty facts) = %v, want %v", got, static)
	}
}

func TestHostLineContainer(t *testing.T) {
	f := &Facts{Hostname: "abc123", InContainer: true, ContainerType: "docker"}
	if got := f.HostLine(); got != "abc123 (docker)" {
		t.Errorf("HostLine() = %q", got)
	}
}

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{30 * time.Second, "0 mins"},
		{time.Minute, "1 min"},
		{time.Hour, "1 hour"},
		{49*time.Hour + 3*time.Minute, "2 days, 1 hour, 3 mins"},
		{24 * time.Hour, "1 day"},
	}
	for _, tc := range cases {
		if got := FormatUptime(tc.in); got != tc.want {
			t.Errorf("FormatUptime(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseKernelVersion(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Linux version 6.1.0-27-amd64 (debian-kernel@lists.debian.org) (gcc 12)", "6.1.0-27-amd64"},
		{"23.1.0\n", "23.1.0"},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := parseKernelVersion(tc.in); got != tc.want {
			t.Errorf("parseKernelVersion(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseCgroup(t *testing.T) {
	cases := []struct{ in, want string }{
		{"0::/docker/abc123", "docker"},
		{"0::/system.slice/containerd.service", "docker"},
		{"0::/lxc/web", "lxc"},
		{"0::/machine.slice/libpod-abc.scope", "podman"},
		{"0::/init.scope", ""},
	}
	for _, tc := range cases {
		if got := parseCgroup(tc.in); got != tc.want {
			t.Errorf("parseCgroup(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
