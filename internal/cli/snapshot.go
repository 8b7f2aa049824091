package cli

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/bmp"

	"github.com/gofilament/filament/driver"
)

// writeSnapshot reads back a freshly created render target and writes it
// to path. The encoder is chosen by extension: .bmp writes BMP,
// everything else PNG.
func writeSnapshot(drv driver.Driver, width, height uint32, path string) error {
	rt, err := drv.CreateRenderTarget(driver.RenderTargetDescriptor{
		Label:       "snapshot",
		Width:       width,
		Height:      height,
		SampleCount: 1,
		Format:      gputypes.TextureFormatBGRA8Unorm,
	})
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer drv.DestroyRenderTarget(rt)

	stride := int(width) * 4
	dst := driver.PixelBufferDescriptor{
		Data:   make([]uint8, stride*int(height)),
		Width:  int(width),
		Height: int(height),
		Stride: stride,
		Format: gputypes.TextureFormatBGRA8Unorm,
	}
	if err := drv.ReadPixels(rt, &dst); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, dst.Width, dst.Height))
	for y := 0; y < dst.Height; y++ {
		row := dst.Data[y*dst.Stride:]
		out := img.Pix[y*img.Stride:]
		for x := 0; x < dst.Width; x++ {
			// BGRA -> RGBA
			out[x*4+0] = row[x*4+2]
			out[x*4+1] = row[x*4+1]
			out[x*4+2] = row[x*4+0]
			out[x*4+3] = row[x*4+3]
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		err = bmp.Encode(f, img)
	} else {
		err = png.Encode(f, img)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("snapshot: write %s: %w", path, err)
	}
	return nil
}
