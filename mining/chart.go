/*
chart.go - Time-series line chart of aggregate production

PURPOSE:
  Renders gold, silver, and diamond output as three line series against
  the calendar date and encodes the result as a PNG, entirely in memory.

FONTS:
  Text defaults to the built-in basicfont face so the binary needs no
  font file. Set CHART_FONT to a TTF path for nicer labels.

SEE ALSO:
  - export.go: The tabular counterpart of this view
*/
package mining

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	chartWidth  = 900
	chartHeight = 480
	chartMargin = 60.0
)

// One fixed color per series.
var (
	goldColor    = color.NRGBA{R: 0xD4, G: 0xAF, B: 0x37, A: 0xFF}
	silverColor  = color.NRGBA{R: 0x8A, G: 0x8D, B: 0x8F, A: 0xFF}
	diamondColor = color.NRGBA{R: 0x3A, G: 0x7B, B: 0xD5, A: 0xFF}
)

type series struct {
	label  string
	color  color.NRGBA
	values []float64
}

// RenderTimeSeries draws the three production series over time and
// returns the encoded PNG. Records must already be in chronological
// order. Returns ErrNoData when there is nothing to plot.
func RenderTimeSeries(records []AggregateRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	all := []series{
		{label: "Gold", color: goldColor},
		{label: "Silver", color: silverColor},
		{label: "Diamond", color: diamondColor},
	}
	labels := make([]string, len(records))
	for i, r := range records {
		all[0].values = append(all[0].values, float64(r.Gold))
		all[1].values = append(all[1].values, float64(r.Silver))
		all[2].values = append(all[2].values, r.Diamond.InexactFloat64())
		labels[i] = r.Date().Format(DateLayout)
	}

	maxVal := 1.0
	for _, s := range all {
		for _, v := range s.values {
			if v > maxVal {
				maxVal = v
			}
		}
	}

	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetFontFace(chartFontFace())

	// Background
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plotW := float64(chartWidth) - 2*chartMargin
	plotH := float64(chartHeight) - 2*chartMargin

	xAt := func(i int) float64 {
		if len(records) == 1 {
			return chartMargin + plotW/2
		}
		return chartMargin + plotW*float64(i)/float64(len(records)-1)
	}
	yAt := func(v float64) float64 {
		return float64(chartHeight) - chartMargin - plotH*v/maxVal
	}

	// Axes
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1)
	dc.DrawLine(chartMargin, chartMargin, chartMargin, float64(chartHeight)-chartMargin)
	dc.DrawLine(chartMargin, float64(chartHeight)-chartMargin,
		float64(chartWidth)-chartMargin, float64(chartHeight)-chartMargin)
	dc.Stroke()

	// Horizontal gridlines with value labels
	const gridSteps = 4
	for i := 0; i <= gridSteps; i++ {
		v := maxVal * float64(i) / gridSteps
		y := yAt(v)
		if i > 0 {
			dc.SetRGBA(0.8, 0.8, 0.8, 0.6)
			dc.DrawLine(chartMargin, y, float64(chartWidth)-chartMargin, y)
			dc.Stroke()
		}
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(fmt.Sprintf("%.1f", v), chartMargin-8, y, 1, 0.35)
	}

	// Date tick labels, thinned so they never overlap
	step := len(records)/8 + 1
	for i := 0; i < len(records); i += step {
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(labels[i], xAt(i), float64(chartHeight)-chartMargin+16, 0.5, 0.5)
	}

	// Series lines with point markers
	for _, s := range all {
		dc.SetColor(s.color)
		dc.SetLineWidth(2)
		for i := 1; i < len(s.values); i++ {
			dc.DrawLine(xAt(i-1), yAt(s.values[i-1]), xAt(i), yAt(s.values[i]))
		}
		dc.Stroke()
		for i, v := range s.values {
			dc.DrawCircle(xAt(i), yAt(v), 3)
		}
		dc.Fill()
	}

	// Legend, top right. The reserved width must hold all three entries
	// plus the widest label without running off the canvas.
	lx := float64(chartWidth) - chartMargin - 220
	ly := chartMargin / 2
	for _, s := range all {
		dc.SetColor(s.color)
		dc.DrawRectangle(lx, ly-5, 10, 10)
		dc.Fill()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(s.label, lx+16, ly, 0, 0.35)
		lx += 70
	}

	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawStringAnchored("Daily production", float64(chartWidth)/2, chartMargin/2, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode chart png: %w", err)
	}
	return buf.Bytes(), nil
}

// chartFontFace returns the TTF face configured via CHART_FONT, falling
// back to the built-in bitmap face when unset or unreadable.
func chartFontFace() font.Face {
	path := strings.TrimSpace(os.Getenv("CHART_FONT"))
	if path == "" {
		return basicfont.Face7x13
	}
	face, err := loadFontFace(path, 13)
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

func loadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse TTF: %w", err)
	}
	return truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}
