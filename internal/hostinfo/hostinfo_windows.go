//go:build windows

package hostinfo

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// query reads the NT version numbers. The build number does not fit the
// patch slot of the encoding, so it is reported via Release only.
func query() (int, string) {
	major, minor, build := windows.RtlGetNtVersionNumbers()
	v := int(major)*10000 + int(minor)*100
	return v, fmt.Sprintf("%d.%d.%d", major, minor, build)
}
