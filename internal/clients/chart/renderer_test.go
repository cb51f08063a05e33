package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/model/reports"
)

type configStub struct {
	dir string
}

func (c configStub) Dir() string           { return c.dir }
func (c configStub) WidthInches() float64  { return 6 }
func (c configStub) HeightInches() float64 { return 4 }

func Test_Render_ShouldWritePNGForEveryKind(t *testing.T) {
	r := New(configStub{dir: filepath.Join(t.TempDir(), "charts")})

	categories := []reports.Total{{Key: "Food & Dining", Amount: 75}, {Key: "Transportation", Amount: 15}}
	months := []reports.Total{{Key: "2023-12", Amount: 40}, {Key: "2024-01", Amount: 45}, {Key: "2024-02", Amount: 45}}
	days := reports.Series(map[string]float64{"2024-01-15": 30},
		[]string{"2024-01-14", "2024-01-15", "2024-01-16"})

	cases := []struct {
		kind   Kind
		title  string
		totals []reports.Total
	}{
		{KindShare, "January 2024", categories},
		{KindCategory, "Last 30 Days", categories},
		{KindTrend, "Last 6 months", months},
		{KindDaily, "Last 2 Days", days},
	}
	for _, c := range cases {
		path, err := r.Render(c.kind, c.title, c.totals)
		require.NoError(t, err, c.kind)

		info, err := os.Stat(path)
		require.NoError(t, err, c.kind)
		assert.Greater(t, info.Size(), int64(0), c.kind)
		assert.Equal(t, ".png", filepath.Ext(path))
	}
}

func Test_Render_ShouldRejectEmptyAndUnknown(t *testing.T) {
	r := New(configStub{dir: t.TempDir()})

	_, err := r.Render(KindDaily, "x", nil)
	assert.Error(t, err)

	_, err = r.Render(Kind("pie"), "x", []reports.Total{{Key: "a", Amount: 1}})
	assert.Error(t, err)
}

func Test_FileName(t *testing.T) {
	assert.Equal(t, "share-january-2024.png", fileName(KindShare, "January 2024"))
	assert.Equal(t, "daily-last-30-days.png", fileName(KindDaily, "Last 30 Days"))
	assert.Equal(t, "trend.png", fileName(KindTrend, "!!!"))
}
