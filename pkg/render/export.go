package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/goliatone/go-cardgen/pkg/document"
)

const mmPerInch = 25.4

// PhysicalSize converts the canvas geometry to millimetres using its DPI.
// Canvases already expressed in physical units pass through unchanged.
func PhysicalSize(canvas document.CanvasSettings) (widthMM, heightMM float64) {
	switch canvas.Unit {
	case document.UnitMillimeter:
		return canvas.Width, canvas.Height
	case document.UnitInch:
		return canvas.Width * mmPerInch, canvas.Height * mmPerInch
	default:
		dpi := canvas.DPI
		if dpi <= 0 {
			dpi = document.DefaultDPI
		}
		return canvas.Width / float64(dpi) * mmPerInch, canvas.Height / float64(dpi) * mmPerInch
	}
}

// PhysicalRect converts an unscaled placement rectangle into millimetres on
// the physical card, given the canvas it was measured against. Callers use
// this to position original-resolution photos in print output.
func (p PhotoPlacement) PhysicalRect(canvas document.CanvasSettings) (x, y, w, h float64) {
	if canvas.Width <= 0 || canvas.Height <= 0 {
		return 0, 0, 0, 0
	}
	cardW, cardH := PhysicalSize(canvas)
	return p.X / canvas.Width * cardW,
		p.Y / canvas.Height * cardH,
		p.Width / canvas.Width * cardW,
		p.Height / canvas.Height * cardH
}

// ScaleThumbnail downsamples a decoded raster so its longest edge is at most
// maxDim pixels, preserving aspect ratio. Images already small enough are
// returned unchanged.
func ScaleThumbnail(src image.Image, maxDim int) image.Image {
	if src == nil || maxDim <= 0 {
		return src
	}
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}

	outW, outH := maxDim, maxDim
	if w > h {
		outH = h * maxDim / w
	} else {
		outW = w * maxDim / h
	}
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}
