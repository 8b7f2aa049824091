// Package hostinfo reports the host operating system version.
//
// Versions are encoded as a single int (major*10000 + minor*100 + patch)
// so upper layers can gate features with ordinary comparisons. A result
// of 0 means the host does not expose a usable version; callers must
// treat it as "unknown", never as a real version.
package hostinfo

import (
	"strconv"
	"strings"
	"sync"
)

var (
	once    sync.Once
	version int
	release string
)

// Version returns the encoded host OS version, or 0 if unknown.
// The result is computed once and cached; Version is safe for
// concurrent use and never fails.
func Version() int {
	load()
	return version
}

// Release returns the raw host OS release string (e.g. "6.8.0-41-generic"),
// or "" if unknown.
func Release() string {
	load()
	return release
}

func load() {
	once.Do(func() {
		version, release = query()
	})
}

// parseRelease extracts major.minor.patch from a kernel release string
// and encodes it as major*10000 + minor*100 + patch. Trailing suffixes
// ("-41-generic", "-rc1") are ignored. Minor and patch are clamped to 99
// to keep the encoding unambiguous. Returns 0 for unparseable input.
func parseRelease(s string) int {
	var nums [3]int
	parts := strings.SplitN(s, ".", 4)
	for i := 0; i < len(parts) && i < 3; i++ {
		n, ok := leadingInt(parts[i])
		if !ok {
			break
		}
		nums[i] = n
	}
	if nums[1] > 99 {
		nums[1] = 99
	}
	if nums[2] > 99 {
		nums[2] = 99
	}
	return nums[0]*10000 + nums[1]*100 + nums[2]
}

// leadingInt parses the leading decimal digits of s.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}
