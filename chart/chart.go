// Package chart draws the adjusted-price report as a PNG bar chart, one
// bar per platform, oldest release on the left.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/etnz/retroprice"
)

const (
	// ceiling is the highest original price drawn; pricier collector
	// outliers are excluded from the chart.
	ceiling = 2000
	// maxLabelRunes is the longest platform name labeled as-is; longer
	// names fall back to the abbreviation.
	maxLabelRunes = 15

	// barSlot is the horizontal room per bar, minWidth and chartHeight
	// the canvas bounds.
	barSlot     = 130
	minWidth    = 640
	chartHeight = 720
)

// Chart renders enriched platform records as a PNG bar chart.
type Chart struct {
	// FontFile optionally points to a TTF file used for all chart text;
	// when empty the built-in bitmap face is used.
	FontFile string
	// FontSize in points, only used with FontFile. Zero means 11.
	FontSize float64
}

// Render is shorthand for a default-configured Chart.
func Render(w io.Writer, platforms []retroprice.AdjustedPlatform) error {
	return (&Chart{}).Render(w, platforms)
}

// bar is one drawable column: its height and the three label lines
// below, name, original price, adjusted price.
type bar struct {
	lines [3]string
	value float64
}

// bars converts records to drawable bars, reversing arrival order so the
// oldest release lands on the left, and dropping entries priced above
// the ceiling.
func bars(platforms []retroprice.AdjustedPlatform) []bar {
	var out []bar
	for _, p := range platforms {
		if p.OriginalPrice.GreaterThan(retroprice.USD(ceiling)) {
			continue
		}
		name := p.Name
		if utf8.RuneCountInString(name) > maxLabelRunes {
			name = p.Abbreviation
		}
		b := bar{
			lines: [3]string{name, p.OriginalPrice.String(), p.AdjustedPrice.String()},
			value: p.AdjustedPrice.Amount().InexactFloat64(),
		}
		out = append([]bar{b}, out...)
	}
	return out
}

// Render draws the chart and encodes it as PNG. It fails when nothing
// remains to draw.
func (c *Chart) Render(w io.Writer, platforms []retroprice.AdjustedPlatform) error {
	bs := bars(platforms)
	if len(bs) == 0 {
		return errors.New("no platforms to draw")
	}

	width := len(bs) * barSlot
	if width < minWidth {
		width = minWidth
	}
	dc := gg.NewContext(width, chartHeight)

	if c.FontFile != "" {
		face, err := loadFontFace(c.FontFile, c.fontSize())
		if err != nil {
			return fmt.Errorf("loading chart font: %w", err)
		}
		dc.SetFontFace(face)
	}

	dc.SetColor(color.White)
	dc.Clear()

	const (
		marginLeft   = 70.0
		marginRight  = 20.0
		marginTop    = 40.0
		marginBottom = 90.0
	)
	plotW := float64(width) - marginLeft - marginRight
	plotH := float64(chartHeight) - marginTop - marginBottom

	maxVal := 0.0
	for _, b := range bs {
		if b.value > maxVal {
			maxVal = b.value
		}
	}
	if maxVal <= 0 {
		maxVal = 1
	}
	step := niceStep(maxVal / 5)
	top := math.Ceil(maxVal/step) * step
	y := func(v float64) float64 { return marginTop + plotH*(1-v/top) }

	// Horizontal grid with its value labels.
	for v := 0.0; v <= top+step/2; v += step {
		dc.SetColor(color.Gray{Y: 0xdd})
		dc.DrawLine(marginLeft, y(v), marginLeft+plotW, y(v))
		dc.Stroke()
		dc.SetColor(color.Gray{Y: 0x44})
		dc.DrawStringAnchored(strconv.FormatFloat(v, 'f', -1, 64), marginLeft-8, y(v), 1, 0.5)
	}

	// Bars with their three-line labels.
	barFill := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	slot := plotW / float64(len(bs))
	for i, b := range bs {
		cx := marginLeft + slot*(float64(i)+0.5)
		bw := slot * 0.6
		dc.SetColor(barFill)
		dc.DrawRectangle(cx-bw/2, y(b.value), bw, plotH*b.value/top)
		dc.Fill()

		dc.SetColor(color.Black)
		for j, line := range b.lines {
			dc.DrawStringAnchored(line, cx, marginTop+plotH+14+float64(j)*14, 0.5, 0.5)
		}
	}

	// Axis line and titles.
	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.DrawLine(marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH)
	dc.Stroke()
	dc.DrawStringAnchored("Year / Console", marginLeft+plotW/2, float64(chartHeight)-12, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 18, marginTop+plotH/2)
	dc.DrawStringAnchored("Adjusted price", 18, marginTop+plotH/2, 0.5, 0.5)
	dc.Pop()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding chart: %w", err)
	}
	return nil
}

func (c *Chart) fontSize() float64 {
	if c.FontSize > 0 {
		return c.FontSize
	}
	return 11
}

// niceStep returns a 1/2/5 x 10^k gridline step close to raw.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch n := raw / mag; {
	case n <= 1:
		return mag
	case n <= 2:
		return 2 * mag
	case n <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func loadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	return truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}
