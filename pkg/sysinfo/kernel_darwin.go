//go:build darwin

package sysinfo

import (
	"golang.org/x/sys/unix"
)

func kernelVersionPlatform() string {
	ver, err := unix.Sysctl("kern.osrelease")
	if err != nil {
		return ""
	}
	return ver
}
