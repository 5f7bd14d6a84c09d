package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
)

const (
	iconRows = 5
	iconCols = 7
)

// Icon draws the calendar logo: a header bar with two binding rings over a
// 7×5 grid, with the cell of column weekday (0 = Monday) in the middle row
// highlighted.
func Icon(size, weekday int) *image.RGBA {
	headerHeight := size / 4
	margin := max(size/25, 1)

	img := image.NewRGBA(image.Rect(0, 0, size, size))

	bg := color.NRGBA{R: 249, G: 248, B: 255, A: 255}
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	border := color.NRGBA{R: 90, G: 78, B: 199, A: 255}
	for x := 0; x < size; x++ {
		img.Set(x, 0, border)
		img.Set(x, size-1, border)
	}
	for y := 0; y < size; y++ {
		img.Set(0, y, border)
		img.Set(size-1, y, border)
	}

	headerColor := color.NRGBA{R: 224, G: 62, B: 82, A: 255}
	fillRect(img, image.Rect(1, 1, size-1, headerHeight), headerColor)

	ringColor := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ringShadow := color.NRGBA{R: 200, G: 32, B: 52, A: 255}
	ringRadius := float64(size) * 0.06
	ringY := float64(headerHeight) * 0.5
	for _, cx := range []float64{float64(size) * 0.3, float64(size) * 0.7} {
		drawCircle(img, int(cx), int(ringY), int(ringRadius+2), ringShadow)
		drawCircle(img, int(cx), int(ringY), int(ringRadius), ringColor)
	}

	gridRect := image.Rect(margin, headerHeight+margin, size-margin, size-margin)
	surface := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	fillRect(img, gridRect, surface)

	gridLine := color.NRGBA{R: 220, G: 216, B: 240, A: 255}
	cellWidth := float64(gridRect.Dx()) / float64(iconCols)
	cellHeight := float64(gridRect.Dy()) / float64(iconRows)

	for c := 1; c < iconCols; c++ {
		x := int(float64(gridRect.Min.X) + cellWidth*float64(c))
		for y := gridRect.Min.Y; y < gridRect.Max.Y; y++ {
			img.Set(x, y, gridLine)
		}
	}
	for r := 1; r < iconRows; r++ {
		y := int(float64(gridRect.Min.Y) + cellHeight*float64(r))
		for x := gridRect.Min.X; x < gridRect.Max.X; x++ {
			img.Set(x, y, gridLine)
		}
	}

	// Weekend columns, matching the page's weekend-lite and weekend-full.
	weekendColors := map[int]color.NRGBA{
		5: {R: 192, G: 192, B: 255, A: 255},
		6: {R: 144, G: 144, B: 223, A: 255},
	}
	for col, c := range weekendColors {
		for r := 0; r < iconRows; r++ {
			fillRect(img, iconCell(gridRect, cellWidth, cellHeight, col, r).Inset(1), c)
		}
	}

	if weekday < 0 || weekday >= iconCols {
		weekday = 0
	}
	highlight := color.NRGBA{R: 113, G: 102, B: 226, A: 255}
	textShade := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	cellRect := iconCell(gridRect, cellWidth, cellHeight, weekday, iconRows/2)
	inset := max(cellRect.Dx()/6, 1)
	fillRect(img, cellRect.Inset(inset), highlight)
	drawCircle(img, cellRect.Min.X+cellRect.Dx()/2, cellRect.Min.Y+cellRect.Dy()/2, int(float64(cellRect.Dx())*0.18), textShade)

	return img
}

// IconPNG encodes Icon(size, weekday) as PNG into w.
func IconPNG(w io.Writer, size, weekday int) error {
	return png.Encode(w, Icon(size, weekday))
}

func IconDataURI(size, weekday int) (string, error) {
	buf := new(bytes.Buffer)
	if err := IconPNG(buf, size, weekday); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func iconCell(gridRect image.Rectangle, cellWidth, cellHeight float64, col, row int) image.Rectangle {
	return image.Rect(
		int(float64(gridRect.Min.X)+cellWidth*float64(col)),
		int(float64(gridRect.Min.Y)+cellHeight*float64(row)),
		int(float64(gridRect.Min.X)+cellWidth*float64(col+1)),
		int(float64(gridRect.Min.Y)+cellHeight*float64(row+1)),
	)
}

func fillRect(img *image.RGBA, rect image.Rectangle, c color.NRGBA) {
	draw.Draw(img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func drawCircle(img *image.RGBA, cx, cy, r int, c color.NRGBA) {
	rr := float64(r)
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if math.Hypot(float64(x), float64(y)) <= rr {
				img.Set(cx+x, cy+y, c)
			}
		}
	}
}
