//go:build !linux && !darwin

package sysinfo

func kernelVersionPlatform() string {
	return ""
}
