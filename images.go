package showcase

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const maxPlaceholderDim = 2000

// handlePlaceholder serves generated placeholder images; seed cover and
// gallery images reference /api/placeholder/<width>/<height>.
func (a *App) handlePlaceholder(c echo.Context) error {
	w, err := strconv.Atoi(c.Param("width"))
	if err != nil || w <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid width"})
	}
	h, err := strconv.Atoi(c.Param("height"))
	if err != nil || h <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid height"})
	}
	if w > maxPlaceholderDim {
		w = maxPlaceholderDim
	}
	if h > maxPlaceholderDim {
		h = maxPlaceholderDim
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, placeholderImage(w, h)); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

// placeholderImage renders a diagonal gradient on a small canvas and
// upscales it, keeping generation cheap for large dimensions.
func placeholderImage(w, h int) image.Image {
	const side = 64
	top := color.NRGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff}    // slate
	bottom := color.NRGBA{R: 0x64, G: 0x74, B: 0x8b, A: 0xff} // lighter slate

	src := image.NewNRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			t := float64(x+y) / float64(2*side-2)
			src.SetNRGBA(x, y, color.NRGBA{
				R: lerp(top.R, bottom.R, t),
				G: lerp(top.G, bottom.G, t),
				B: lerp(top.B, bottom.B, t),
				A: 0xff,
			})
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
