package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/clients/chart"
	"max.ks1230/expense-tracker/internal/clients/excel"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
)

type options struct {
	report  string
	year    int
	month   int
	days    int
	months  int
	limit   int
	keyword string
	period  string
	xlsx    string
	chart   bool
}

func main() {
	configPath := flag.String("config", config.DefaultFile, "path to the YAML config")
	opts := options{}
	flag.StringVar(&opts.report, "report", "monthly", "monthly | categories | period | trends | daily | search | recent")
	flag.IntVar(&opts.year, "year", 0, "year for the monthly report, current by default")
	flag.IntVar(&opts.month, "month", 0, "month for the monthly report, current by default")
	flag.IntVar(&opts.days, "days", 0, "window for categories and daily reports")
	flag.IntVar(&opts.months, "months", 0, "number of months for trends")
	flag.IntVar(&opts.limit, "limit", 0, "number of recent expenses")
	flag.StringVar(&opts.keyword, "keyword", "", "search keyword")
	flag.StringVar(&opts.period, "period", reports.PeriodMonth, "week | month | year, empty for all time; used by the period report")
	flag.StringVar(&opts.xlsx, "xlsx", "", "also export every expense into this xlsx file")
	flag.BoolVar(&opts.chart, "chart", false, "render the report chart")
	flag.Parse()

	defer logger.Sync()
	logger.Info("Reporter init - start")

	conf, err := config.New(*configPath)
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	store, err := storage.NewFromConfig(ctx, conf.Storage())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("failed to close storage", zap.Error(closeErr))
		}
	}()

	logger.Info("Reporter init - end")

	applyDefaults(&opts, conf.App())
	generator := reports.NewGenerator(store)

	text, kind, title, totals, err := run(generator, opts)
	if errors.Is(err, reports.ErrNoExpenses) {
		fmt.Println("No expenses found.")
	} else if err != nil {
		logger.Error("report failed", zap.String("report", opts.report), zap.Error(err))
		fmt.Println(err)
		os.Exit(1)
	} else {
		fmt.Println(text)
	}

	if err == nil && opts.chart && len(totals) > 0 {
		path, chartErr := chart.New(conf.Charts()).Render(kind, title, totals)
		if chartErr != nil {
			logger.Error("chart failed", zap.Error(chartErr))
		} else {
			fmt.Printf("Chart saved to %s\n", path)
		}
	}

	if opts.xlsx != "" {
		if err = excel.Export(opts.xlsx, store.Records()); err != nil {
			logger.Fatal("export failed", zap.Error(err))
		}
		fmt.Printf("Exported %d expenses to %s\n", store.Count(), opts.xlsx)
	}
}

type appDefaults interface {
	RecentLimit() int
	CategoryDays() int
	TrendMonths() int
	DailyDays() int
}

func applyDefaults(opts *options, defaults appDefaults) {
	if opts.limit == 0 {
		opts.limit = defaults.RecentLimit()
	}
	if opts.months == 0 {
		opts.months = defaults.TrendMonths()
	}
	if opts.days == 0 {
		if opts.report == "daily" {
			opts.days = defaults.DailyDays()
		} else {
			opts.days = defaults.CategoryDays()
		}
	}
}

func run(g *reports.Generator, opts options) (text string, kind chart.Kind, title string, totals []reports.Total, err error) {
	switch opts.report {
	case "monthly":
		year, month := g.CurrentPeriod()
		if opts.year != 0 {
			year = opts.year
		}
		if opts.month != 0 {
			month = time.Month(opts.month)
		}
		r, err := g.MonthlySummary(year, month)
		if err != nil {
			return "", "", "", nil, err
		}
		return reports.FormatMonthly(r), chart.KindShare, reports.PeriodTitle(year, month), sharesToTotals(r.Categories), nil
	case "categories":
		r, err := g.CategorySummary(opts.days)
		if err != nil {
			return "", "", "", nil, err
		}
		return reports.FormatCategory(r), chart.KindCategory, fmt.Sprintf("Last %d Days", opts.days), sharesToTotals(r.Categories), nil
	case "period":
		r, err := g.PeriodSummary(opts.period)
		if err != nil {
			return "", "", "", nil, err
		}
		return reports.FormatPeriod(r), chart.KindCategory, reports.PeriodLabel(r), sharesToTotals(r.Categories), nil
	case "trends":
		r, err := g.Trends(opts.months)
		if err != nil {
			return "", "", "", nil, err
		}
		return reports.FormatTrends(r), chart.KindTrend, fmt.Sprintf("Last %d months", opts.months), r.Points, nil
	case "daily":
		r, err := g.Daily(opts.days)
		if err != nil {
			return "", "", "", nil, err
		}
		return reports.FormatDaily(r), chart.KindDaily, fmt.Sprintf("Last %d Days", opts.days), r.Points, nil
	case "search":
		if opts.keyword == "" {
			return "", "", "", nil, errors.New("search needs -keyword")
		}
		r, err := g.Search(opts.keyword)
		if err != nil {
			return "", "", "", nil, err
		}
		return reports.FormatSearch(r), "", "", nil, nil
	case "recent":
		r, err := g.Recent(opts.limit)
		if err != nil {
			return "", "", "", nil, err
		}
		return reports.FormatRecent(r), "", "", nil, nil
	}
	return "", "", "", nil, errors.Errorf("report %q is not supported", opts.report)
}

func sharesToTotals(shares []reports.Share) []reports.Total {
	res := make([]reports.Total, 0, len(shares))
	for _, s := range shares {
		res = append(res, s.Total)
	}
	return res
}
