//go:build linux

package hostinfo

import "golang.org/x/sys/unix"

// query reads the kernel release via uname(2).
func query() (int, string) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return 0, ""
	}
	rel := utsString(uts.Release)
	return parseRelease(rel), rel
}

// utsString converts a NUL-terminated utsname field to a Go string.
func utsString(f [65]byte) string {
	n := 0
	for n < len(f) && f[n] != 0 {
		n++
	}
	return string(f[:n])
}
