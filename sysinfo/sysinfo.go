// Package sysinfo provides the host summary line shown under the banner.
package sysinfo

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/host"
)

// test seam (override in tests)
var hostInfo = host.Info

// Summary returns a one-line description of the host the report was taken
// on.
func Summary() (string, error) {
	info, err := hostInfo()
	if err != nil {
		return "", fmt.Errorf("failed to read host info: %w", err)
	}

	up := (time.Duration(info.Uptime) * time.Second).Round(time.Minute)
	return fmt.Sprintf("host %s · %s %s · up %s", info.Hostname, info.Platform, info.PlatformVersion, up), nil
}
