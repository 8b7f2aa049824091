package driver

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestDefaultSwapChainDescriptor(t *testing.T) {
	desc := DefaultSwapChainDescriptor(640, 480)
	if desc.Width != 640 || desc.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", desc.Width, desc.Height)
	}
	if desc.Format != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("format = %v, want BGRA8Unorm", desc.Format)
	}
}

func TestDefaultTextureDescriptor(t *testing.T) {
	desc := DefaultTextureDescriptor(256, 128, gputypes.TextureFormatRGBA8Unorm)
	if desc.Width != 256 || desc.Height != 128 {
		t.Errorf("size = %dx%d, want 256x128", desc.Width, desc.Height)
	}
	if desc.Depth != 1 || desc.MipLevelCount != 1 || desc.SampleCount != 1 {
		t.Errorf("depth/mips/samples = %d/%d/%d, want 1/1/1",
			desc.Depth, desc.MipLevelCount, desc.SampleCount)
	}
	if desc.Dimension != gputypes.TextureDimension2D {
		t.Errorf("dimension = %v, want 2D", desc.Dimension)
	}
	if desc.Usage&gputypes.TextureUsageRenderAttachment == 0 {
		t.Error("default usage missing RenderAttachment")
	}
}

func TestPixelBufferValidate(t *testing.T) {
	tests := []struct {
		name    string
		desc    PixelBufferDescriptor
		wantErr bool
	}{
		{
			name: "valid tight",
			desc: PixelBufferDescriptor{
				Data:   make([]uint8, 16*8*4),
				Width:  16,
				Height: 8,
				Stride: 16 * 4,
			},
		},
		{
			name: "valid padded stride",
			desc: PixelBufferDescriptor{
				Data:   make([]uint8, 256*8),
				Width:  16,
				Height: 8,
				Stride: 256,
			},
		},
		{
			name: "zero width",
			desc: PixelBufferDescriptor{
				Data:   make([]uint8, 64),
				Width:  0,
				Height: 8,
				Stride: 4,
			},
			wantErr: true,
		},
		{
			name: "stride too small",
			desc: PixelBufferDescriptor{
				Data:   make([]uint8, 16*8*4),
				Width:  16,
				Height: 8,
				Stride: 16,
			},
			wantErr: true,
		},
		{
			name: "data too short",
			desc: PixelBufferDescriptor{
				Data:   make([]uint8, 10),
				Width:  16,
				Height: 8,
				Stride: 16 * 4,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.desc.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
