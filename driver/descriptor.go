package driver

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// SwapChainDescriptor describes a presentation surface.
// Backends here are headless, so a swap chain is an offscreen image pair
// rather than a window surface.
type SwapChainDescriptor struct {
	// Label is an optional debug label.
	Label string

	// Width is the surface width in pixels.
	Width uint32

	// Height is the surface height in pixels.
	Height uint32

	// Format is the surface pixel format.
	Format gputypes.TextureFormat
}

// DefaultSwapChainDescriptor returns a swap-chain descriptor with the
// format presentation surfaces conventionally use.
func DefaultSwapChainDescriptor(width, height uint32) SwapChainDescriptor {
	return SwapChainDescriptor{
		Width:  width,
		Height: height,
		Format: gputypes.TextureFormatBGRA8Unorm,
	}
}

// BufferDescriptor describes a GPU buffer allocation.
type BufferDescriptor struct {
	// Label is an optional debug label.
	Label string

	// Size is the buffer size in bytes.
	Size uint64

	// Usage specifies how the buffer will be used.
	Usage gputypes.BufferUsage
}

// TextureDescriptor describes a texture allocation.
type TextureDescriptor struct {
	// Label is an optional debug label.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// Depth is the texture depth for 3D textures, or array layer count.
	// Use 1 for regular 2D textures.
	Depth uint32

	// MipLevelCount is the number of mipmap levels. Use 1 for no mipmaps.
	MipLevelCount uint32

	// SampleCount is the number of samples for multisampling.
	// Use 1 for no multisampling.
	SampleCount uint32

	// Dimension is the texture dimensionality.
	Dimension gputypes.TextureDimension

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage gputypes.TextureUsage
}

// DefaultTextureDescriptor returns a TextureDescriptor with sensible
// defaults. Only Width, Height, and Format need to be set.
func DefaultTextureDescriptor(width, height uint32, format gputypes.TextureFormat) TextureDescriptor {
	return TextureDescriptor{
		Width:         width,
		Height:        height,
		Depth:         1,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageRenderAttachment,
	}
}

// RenderTargetDescriptor describes an offscreen render target.
type RenderTargetDescriptor struct {
	// Label is an optional debug label.
	Label string

	// Width is the target width in pixels.
	Width uint32

	// Height is the target height in pixels.
	Height uint32

	// SampleCount is the MSAA sample count. Use 1 for no multisampling.
	SampleCount uint32

	// Format is the color attachment format.
	Format gputypes.TextureFormat
}

// PixelBufferDescriptor is a CPU-side destination for pixel readback.
type PixelBufferDescriptor struct {
	Data          []uint8
	Width, Height int
	Stride        int // bytes per row
	Format        gputypes.TextureFormat
}

// Validate checks that the descriptor is internally consistent and that
// Data can hold a full Width x Height image at the given Stride.
func (d *PixelBufferDescriptor) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("driver: pixel buffer %dx%d: dimensions must be positive", d.Width, d.Height)
	}
	if d.Stride < d.Width*4 {
		return fmt.Errorf("driver: pixel buffer stride %d too small for width %d", d.Stride, d.Width)
	}
	if len(d.Data) < d.Stride*d.Height {
		return fmt.Errorf("driver: pixel buffer data %d bytes, need %d", len(d.Data), d.Stride*d.Height)
	}
	return nil
}
