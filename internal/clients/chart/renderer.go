package chart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/reports"
)

type Kind string

const (
	// KindShare is the per-category split of a single month.
	KindShare    Kind = "share"
	KindCategory Kind = "category"
	KindTrend    Kind = "trend"
	KindDaily    Kind = "daily"
)

var barWidth = vg.Points(18)

var (
	barColor   = color.RGBA{R: 0xF1, G: 0x8F, B: 0x01, A: 0xFF}
	edgeColor  = color.RGBA{R: 0xC7, G: 0x3E, B: 0x1D, A: 0xFF}
	lineColor  = color.RGBA{R: 0x2E, G: 0x86, B: 0xAB, A: 0xFF}
	pointColor = color.RGBA{R: 0xA2, G: 0x3B, B: 0x72, A: 0xFF}

	unsafeChars = regexp.MustCompile(`[^a-z0-9]+`)
)

type config interface {
	Dir() string
	WidthInches() float64
	HeightInches() float64
}

// Renderer draws grouped totals into PNG files.
type Renderer struct {
	dir    string
	width  vg.Length
	height vg.Length
}

func New(config config) *Renderer {
	return &Renderer{
		dir:    config.Dir(),
		width:  vg.Length(config.WidthInches()) * vg.Inch,
		height: vg.Length(config.HeightInches()) * vg.Inch,
	}
}

// Render writes the chart and returns the file path.
func (r *Renderer) Render(kind Kind, title string, totals []reports.Total) (string, error) {
	if len(totals) == 0 {
		return "", errors.New("nothing to draw")
	}

	var (
		p   *plot.Plot
		err error
	)
	switch kind {
	case KindShare:
		p, err = categoryPlot("Expense Distribution by Category\n"+title, totals, true)
	case KindCategory:
		p, err = categoryPlot("Expenses by Category - "+title, totals, false)
	case KindTrend:
		p, err = trendPlot(title, totals)
	case KindDaily:
		p, err = dailyPlot(title, totals)
	default:
		return "", errors.Errorf("unknown chart kind %q", kind)
	}
	if err != nil {
		return "", errors.Wrap(err, "build chart")
	}

	if err = os.MkdirAll(r.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create chart dir")
	}
	path := filepath.Join(r.dir, fileName(kind, title))
	if err = p.Save(r.width, r.height, path); err != nil {
		return "", errors.Wrap(err, "save chart")
	}

	logger.Info("chart saved", zap.String("kind", string(kind)), zap.String("path", path))
	return path, nil
}

func fileName(kind Kind, title string) string {
	slug := strings.Trim(unsafeChars.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if slug == "" {
		return string(kind) + ".png"
	}
	return fmt.Sprintf("%s-%s.png", kind, slug)
}

// categoryPlot draws horizontal bars, smallest at the bottom.
func categoryPlot(title string, totals []reports.Total, withPercent bool) (*plot.Plot, error) {
	sorted := make([]reports.Total, len(totals))
	copy(sorted, totals)
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}

	names := make([]string, len(sorted))
	values := make(plotter.Values, len(sorted))
	for i, t := range sorted {
		names[i] = t.Key
		values[i] = t.Amount
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Amount ($)"
	p.X.Min = 0

	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true
	bars.Color = lineColor
	bars.LineStyle.Width = 0
	p.Add(plotter.NewGrid(), bars)
	p.NominalY(names...)

	labels, err := valueLabels(sorted, withPercent)
	if err != nil {
		return nil, err
	}
	p.Add(labels)
	p.X.Max = maxAmount(sorted) * 1.2
	return p, nil
}

func trendPlot(title string, totals []reports.Total) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Monthly Spending Trends"
	if title != "" {
		p.Title.Text += " - " + title
	}
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Amount ($)"
	p.Y.Min = 0

	pts := make(plotter.XYs, len(totals))
	names := make([]string, len(totals))
	for i, t := range totals {
		pts[i].X = float64(i)
		pts[i].Y = t.Amount
		names[i] = reports.ShortMonthLabel(t.Key)
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.Color = lineColor
	line.Width = vg.Points(2)
	points.GlyphStyle.Color = pointColor
	points.GlyphStyle.Radius = vg.Points(4)
	p.Add(plotter.NewGrid(), line, points)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: amountTexts(totals, "%.0f")})
	if err != nil {
		return nil, err
	}
	p.Add(labels)
	p.Y.Max = maxAmount(totals) * 1.15
	return p, nil
}

func dailyPlot(title string, totals []reports.Total) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Daily Expenses - " + title
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Amount ($)"

	values := make(plotter.Values, len(totals))
	names := make([]string, len(totals))
	step := len(totals) / 10
	if step < 1 {
		step = 1
	}
	for i, t := range totals {
		values[i] = t.Amount
		// MM/DD on every step-th tick keeps the axis readable
		if i%step == 0 && len(t.Key) == len("2006-01-02") {
			names[i] = t.Key[5:7] + "/" + t.Key[8:]
		}
	}

	bars, err := plotter.NewBarChart(values, barWidth/2)
	if err != nil {
		return nil, err
	}
	bars.Color = barColor
	bars.LineStyle.Color = edgeColor
	p.Add(plotter.NewGrid(), bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.Y.Min = 0
	if top := maxAmount(totals); top > 0 {
		p.Y.Max = top * 1.1
	}
	return p, nil
}

// valueLabels places text at the end of each horizontal bar.
func valueLabels(totals []reports.Total, withPercent bool) (*plotter.Labels, error) {
	sum := reports.Sum(totals)
	pts := make(plotter.XYs, len(totals))
	texts := make([]string, len(totals))
	for i, t := range totals {
		pts[i] = plotter.XY{X: t.Amount, Y: float64(i)}
		texts[i] = fmt.Sprintf(" $%.2f", t.Amount)
		if withPercent && sum > 0 {
			texts[i] += fmt.Sprintf(" (%.1f%%)", t.Amount/sum*100)
		}
	}
	return plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: texts})
}

func amountTexts(totals []reports.Total, format string) []string {
	res := make([]string, len(totals))
	for i, t := range totals {
		res[i] = "$" + fmt.Sprintf(format, t.Amount)
	}
	return res
}

func maxAmount(totals []reports.Total) float64 {
	var res float64
	for _, t := range totals {
		if t.Amount > res {
			res = t.Amount
		}
	}
	return res
}
