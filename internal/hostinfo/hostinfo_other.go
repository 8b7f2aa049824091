//go:build !linux && !darwin && !windows

package hostinfo

// query reports "unknown" on platforms without a version source.
func query() (int, string) {
	return 0, ""
}
