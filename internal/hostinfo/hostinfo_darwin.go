//go:build darwin

package hostinfo

import "golang.org/x/sys/unix"

// query reads the Darwin kernel release via sysctl.
func query() (int, string) {
	rel, err := unix.Sysctl("kern.osrelease")
	if err != nil {
		return 0, ""
	}
	return parseRelease(rel), rel
}
