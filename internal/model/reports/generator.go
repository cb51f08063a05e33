package reports

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	PeriodAll   = ""
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var ErrUnknownPeriod = errors.New("unknown period")

// weeks start on Monday
var calendar = &now.Config{WeekStartDay: time.Monday}

//go:generate minimock -i expensesStorage -o ./mock/expenses_storage_mock.go -n ExpensesStorageMock
type expensesStorage interface {
	Records() []expense.Record
	ListRecent(limit int) []expense.Record
}

type MonthlyReport struct {
	Year       int
	Month      time.Month
	Stats      Stats
	Categories []Share
}

type CategoryReport struct {
	Days       int
	Total      float64
	Categories []Share
}

type TrendReport struct {
	Months int
	Points []Total
}

type DailyReport struct {
	Days   int
	Total  float64
	Points []Total
}

type PeriodReport struct {
	Period     string
	Since      time.Time
	Total      float64
	Categories []Share
}

type SearchReport struct {
	Keyword string
	Records []expense.Record
}

type RecentReport struct {
	Limit   int
	Records []expense.Record
}

// Generator builds reports over a snapshot of the store.
type Generator struct {
	storage expensesStorage
	now     func() time.Time
}

type Option func(*Generator)

func WithClock(clock func() time.Time) Option {
	return func(g *Generator) {
		g.now = clock
	}
}

func NewGenerator(storage expensesStorage, opts ...Option) *Generator {
	g := &Generator{
		storage: storage,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CurrentPeriod is the default year and month for a monthly summary.
func (g *Generator) CurrentPeriod() (int, time.Month) {
	current := g.now()
	return current.Year(), current.Month()
}

func (g *Generator) MonthlySummary(year int, month time.Month) (*MonthlyReport, error) {
	logger.Debug("MonthlySummary", zap.Int("year", year), zap.Int("month", int(month)))

	if month < time.January || month > time.December {
		return nil, errors.Errorf("month %d is out of range", month)
	}
	records := ByMonth(g.storage.Records(), year, month)
	stats, err := SummaryStats(records)
	if err != nil {
		return nil, errors.Wrap(err, "monthly summary")
	}

	return &MonthlyReport{
		Year:       year,
		Month:      month,
		Stats:      stats,
		Categories: Shares(SortByAmount(TotalsByCategory(records))),
	}, nil
}

func (g *Generator) CategorySummary(days int) (*CategoryReport, error) {
	logger.Debug("CategorySummary", zap.Int("days", days))

	records := ByRecency(g.storage.Records(), days, g.now())
	if len(records) == 0 {
		return nil, errors.Wrap(ErrNoExpenses, "category summary")
	}

	totals := SortByAmount(TotalsByCategory(records))
	return &CategoryReport{
		Days:       days,
		Total:      Sum(totals),
		Categories: Shares(totals),
	}, nil
}

// Trends covers the whole history, not a filtered subset.
func (g *Generator) Trends(months int) (*TrendReport, error) {
	logger.Debug("Trends", zap.Int("months", months))

	records := g.storage.Records()
	if len(records) == 0 {
		return nil, errors.Wrap(ErrNoExpenses, "trends")
	}
	return &TrendReport{
		Months: months,
		Points: LastMonths(TotalsByMonth(records), months),
	}, nil
}

// Daily yields one point per day from days ago through today.
func (g *Generator) Daily(days int) (*DailyReport, error) {
	logger.Debug("Daily", zap.Int("days", days))

	current := g.now()
	records := ByRecency(g.storage.Records(), days, current)
	if len(records) == 0 {
		return nil, errors.Wrap(ErrNoExpenses, "daily")
	}

	dateRange := DateRange(current.AddDate(0, 0, -days), days)
	points := Series(TotalsByDay(records, dateRange), dateRange)
	return &DailyReport{
		Days:   days,
		Total:  Sum(points),
		Points: points,
	}, nil
}

// PeriodStart is the first moment of the current calendar week, month or year.
// PeriodAll starts at the zero time.
func (g *Generator) PeriodStart(period string) (time.Time, error) {
	current := calendar.With(g.now())
	switch period {
	case PeriodAll:
		return time.Time{}, nil
	case PeriodWeek:
		return current.BeginningOfWeek(), nil
	case PeriodMonth:
		return current.BeginningOfMonth(), nil
	case PeriodYear:
		return current.BeginningOfYear(), nil
	}
	return time.Time{}, errors.Wrapf(ErrUnknownPeriod, "period %q", period)
}

// PeriodSummary groups expenses of the current calendar period by category.
func (g *Generator) PeriodSummary(period string) (*PeriodReport, error) {
	logger.Debug("PeriodSummary", zap.String("period", period))

	since, err := g.PeriodStart(period)
	if err != nil {
		return nil, err
	}
	records := Since(g.storage.Records(), since)
	if len(records) == 0 {
		return nil, errors.Wrapf(ErrNoExpenses, "period %q", period)
	}

	totals := SortByAmount(TotalsByCategory(records))
	return &PeriodReport{
		Period:     period,
		Since:      since,
		Total:      Sum(totals),
		Categories: Shares(totals),
	}, nil
}

func (g *Generator) Search(keyword string) (*SearchReport, error) {
	logger.Debug("Search", zap.String("keyword", keyword))

	records := ByKeyword(g.storage.Records(), keyword)
	if len(records) == 0 {
		return nil, errors.Wrapf(ErrNoExpenses, "search %q", keyword)
	}
	return &SearchReport{
		Keyword: keyword,
		Records: records,
	}, nil
}

func (g *Generator) Recent(limit int) (*RecentReport, error) {
	if len(g.storage.Records()) == 0 {
		return nil, errors.Wrap(ErrNoExpenses, "recent")
	}
	return &RecentReport{
		Limit:   limit,
		Records: g.storage.ListRecent(limit),
	}, nil
}
