package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/medtextlab/corpuseda/internal/dataset"
	"github.com/medtextlab/corpuseda/internal/stats"
)

const (
	panelW = 600
	panelH = 400
)

// Charts renders the six overview panels, composites them into one
// 3x2 grid, and writes the result to outDir. Returns the written path.
// The dataset must carry derived columns (Summarize attaches them).
func Charts(ds *dataset.Dataset, sum *stats.Summary, outDir string) (string, error) {
	titleLens := make([]float64, 0, ds.Len())
	absLens := make([]float64, 0, ds.Len())
	titleWords := make([]float64, 0, ds.Len())
	absWords := make([]float64, 0, ds.Len())
	for _, r := range ds.Records {
		titleLens = append(titleLens, float64(r.TitleLength))
		absLens = append(absLens, float64(r.AbstractLength))
		titleWords = append(titleWords, float64(r.TitleWordCount))
		absWords = append(absWords, float64(r.AbstractWordCount))
	}

	panels := make([]image.Image, 0, 6)
	for _, p := range []struct {
		render func() (image.Image, error)
		name   string
	}{
		{func() (image.Image, error) { return histogram("Title Length Distribution", titleLens, 30) }, "title length"},
		{func() (image.Image, error) { return histogram("Abstract Length Distribution", absLens, 30) }, "abstract length"},
		{func() (image.Image, error) { return pie("Source Distribution", sum.Source) }, "source pie"},
		{func() (image.Image, error) { return topBar("Top 10 Groups", sum.Group, 10) }, "group bar"},
		{func() (image.Image, error) { return histogram("Title Word Count Distribution", titleWords, 20) }, "title words"},
		{func() (image.Image, error) { return histogram("Abstract Word Count Distribution", absWords, 30) }, "abstract words"},
	} {
		img, err := p.render()
		if err != nil {
			return "", fmt.Errorf("%w: %s panel: %v", ErrRender, p.name, err)
		}
		panels = append(panels, img)
	}

	grid := image.NewRGBA(image.Rect(0, 0, panelW*3, panelH*2))
	draw.Draw(grid, grid.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	for i, img := range panels {
		x := (i % 3) * panelW
		y := (i / 3) * panelH
		draw.Draw(grid, image.Rect(x, y, x+panelW, y+panelH), img, image.Point{}, draw.Over)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, grid); err != nil {
		return "", fmt.Errorf("%w: encode grid: %v", ErrRender, err)
	}
	path := filepath.Join(outDir, ChartsFile)
	if err := writeArtifact(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

// histogram bins values into a fixed number of equal-width buckets and
// renders them as a bar chart. Degenerate inputs get a placeholder panel
// instead of a chart-library error.
func histogram(title string, values []float64, bins int) (image.Image, error) {
	if len(values) == 0 {
		return placeholder(title, "no data")
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	width := (hi - lo) / float64(bins)
	counts := make([]float64, bins)
	for _, v := range values {
		b := int((v - lo) / width)
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}

	labelEvery := bins / 5
	if labelEvery < 1 {
		labelEvery = 1
	}
	bars := make([]chart.Value, bins)
	for i := range counts {
		label := ""
		if i%labelEvery == 0 {
			label = fmt.Sprintf("%.0f", lo+float64(i)*width)
		}
		bars[i] = chart.Value{Value: counts[i], Label: label}
	}

	bc := chart.BarChart{
		Title:      title,
		Width:      panelW,
		Height:     panelH,
		BarWidth:   (panelW - 120) / bins,
		BarSpacing: 4,
		Bars:       bars,
		YAxis:      barRange(bars),
	}
	return renderToImage(bc.Render)
}

// pie renders the source share panel. Empty distributions fall back to a
// placeholder because the chart library rejects zero-total pies.
func pie(title string, dist stats.Distribution) (image.Image, error) {
	if dist.Total() == 0 {
		return placeholder(title, "no data")
	}
	values := make([]chart.Value, 0, len(dist.Counts))
	total := float64(dist.Total())
	for _, c := range dist.Counts {
		pct := float64(c.Count) * 100 / total
		values = append(values, chart.Value{
			Value: float64(c.Count),
			Label: fmt.Sprintf("%s %.1f%%", truncateLabel(c.Value, 16), pct),
		})
	}
	pc := chart.PieChart{
		Title:  title,
		Width:  panelW,
		Height: panelH,
		Values: values,
	}
	return renderToImage(pc.Render)
}

// topBar renders the n largest categories of dist as a bar chart.
func topBar(title string, dist stats.Distribution, n int) (image.Image, error) {
	top := dist.Top(n)
	if len(top) == 0 {
		return placeholder(title, "no data")
	}
	bars := make([]chart.Value, 0, len(top))
	for _, c := range top {
		bars = append(bars, chart.Value{
			Value: float64(c.Count),
			Label: truncateLabel(c.Value, 12),
		})
	}
	bc := chart.BarChart{
		Title:      title,
		Width:      panelW,
		Height:     panelH,
		BarWidth:   (panelW - 160) / len(bars),
		BarSpacing: 10,
		Bars:       bars,
		YAxis:      barRange(bars),
	}
	return renderToImage(bc.Render)
}

// barRange pins an explicit y axis so uniform bar values (every count
// equal, as with tied categories or a single row) still render. The
// chart library rejects a zero-span derived range.
func barRange(bars []chart.Value) chart.YAxis {
	max := 0.0
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
	}
	if max == 0 {
		max = 1
	}
	return chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: max}}
}

// placeholder draws a titled empty panel for degenerate inputs.
func placeholder(title, note string) (image.Image, error) {
	r, err := chart.PNG(panelW, panelH)
	if err != nil {
		return nil, err
	}
	r.SetDPI(chart.DefaultDPI)
	fillBackground(r, panelW, panelH)
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}
	r.SetFont(font)
	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(14)
	r.Text(title, 20, 30)
	r.SetFontColor(drawing.Color{R: 0x99, G: 0x99, B: 0x99, A: 0xff})
	r.SetFontSize(12)
	r.Text(note, 20, panelH/2)
	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func fillBackground(r chart.Renderer, w, h int) {
	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(w, 0)
	r.LineTo(w, h)
	r.LineTo(0, h)
	r.Close()
	r.Fill()
}

func renderToImage(render func(chart.RendererProvider, io.Writer) error) (image.Image, error) {
	var buf bytes.Buffer
	if err := render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func truncateLabel(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
