//go:build linux

package sysinfo

import (
	"os"
)

func kernelVersionPlatform() string {
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return ""
	}
	return string(data)
}
