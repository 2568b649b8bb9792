package render

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/medtextlab/corpuseda/internal/textfreq"
)

const (
	cloudW = 800
	cloudH = 400

	cloudMargin = 24
	minFontSize = 12.0
	maxFontSize = 64.0
	wordGap     = 14
	lineGap     = 8
)

var cloudPalette = []drawing.Color{
	{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
	{R: 0x3b, G: 0x52, B: 0x8b, A: 0xff},
	{R: 0x21, G: 0x91, B: 0x8c, A: 0xff},
	{R: 0x5e, G: 0xc9, B: 0x62, A: 0xff},
	{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
}

// WordCloud lays the ranked tokens out in packed rows, font size scaled
// by count, and writes the image to outDir. The layout is fully
// deterministic: placement depends only on the entry order and counts.
func WordCloud(entries []textfreq.Entry, outDir string) (string, error) {
	r, err := chart.PNG(cloudW, cloudH)
	if err != nil {
		return "", fmt.Errorf("%w: wordcloud renderer: %v", ErrRender, err)
	}
	r.SetDPI(chart.DefaultDPI)
	fillBackground(r, cloudW, cloudH)
	font, err := chart.GetDefaultFont()
	if err != nil {
		return "", fmt.Errorf("%w: load font: %v", ErrRender, err)
	}
	r.SetFont(font)

	if len(entries) > 0 {
		maxCount := entries[0].Count
		minCount := entries[len(entries)-1].Count
		for _, e := range entries {
			if e.Count > maxCount {
				maxCount = e.Count
			}
			if e.Count < minCount {
				minCount = e.Count
			}
		}

		x, y := cloudMargin, cloudMargin+int(maxFontSize)
		rowH := 0
		for i, e := range entries {
			size := maxFontSize
			if maxCount > minCount {
				size = minFontSize + (maxFontSize-minFontSize)*
					float64(e.Count-minCount)/float64(maxCount-minCount)
			}
			r.SetFontSize(size)
			r.SetFontColor(cloudPalette[i%len(cloudPalette)])
			box := r.MeasureText(e.Token)
			if x+box.Width() > cloudW-cloudMargin {
				x = cloudMargin
				y += rowH + lineGap
				rowH = 0
			}
			if y > cloudH-cloudMargin {
				break
			}
			r.Text(e.Token, x, y)
			x += box.Width() + wordGap
			if box.Height() > rowH {
				rowH = box.Height()
			}
		}
	}

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return "", fmt.Errorf("%w: encode wordcloud: %v", ErrRender, err)
	}
	path := filepath.Join(outDir, WordCloudFile)
	if err := writeArtifact(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}
