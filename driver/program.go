package driver

import (
	"fmt"

	"github.com/gogpu/naga"
)

// Program carries shader source for a backend.
//
// Source is WGSL. Compile validates it and lowers it to SPIR-V words so
// malformed shaders are rejected before any driver sees them. An empty
// Source is a valid "null program": it compiles to nothing and is accepted
// by every backend.
type Program struct {
	// Label is an optional debug label.
	Label string

	// Source is the WGSL shader source.
	Source string
}

// Compile validates the WGSL source and returns it as SPIR-V words.
// Returns (nil, nil) for a null program.
func (p Program) Compile() ([]uint32, error) {
	if p.Source == "" {
		return nil, nil
	}

	spirvBytes, err := naga.Compile(p.Source)
	if err != nil {
		return nil, fmt.Errorf("driver: compile program %q: %w", p.Label, err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}
