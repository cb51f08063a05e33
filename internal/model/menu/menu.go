package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/clients/chart"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const separatorWidth = 60

//go:generate minimock -i expenseStore -o ./mock/expense_store_mock.go -n ExpenseStoreMock
type expenseStore interface {
	Add(ctx context.Context, amount float64, description, category, date string) (expense.Record, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Find(id int64) (expense.Record, bool)
}

type reportGenerator interface {
	CurrentPeriod() (int, time.Month)
	MonthlySummary(year int, month time.Month) (*reports.MonthlyReport, error)
	CategorySummary(days int) (*reports.CategoryReport, error)
	Trends(months int) (*reports.TrendReport, error)
	Daily(days int) (*reports.DailyReport, error)
	Search(keyword string) (*reports.SearchReport, error)
	Recent(limit int) (*reports.RecentReport, error)
}

//go:generate minimock -i chartRenderer -o ./mock/chart_renderer_mock.go -n ChartRendererMock
type chartRenderer interface {
	Render(kind chart.Kind, title string, totals []reports.Total) (string, error)
}

type config interface {
	RecentLimit() int
	CategoryDays() int
	TrendMonths() int
	DailyDays() int
}

// errQuit ends the loop.
var errQuit = errors.New("quit")

type handler func(ctx context.Context) error

type handlerMap map[string]handler

// Service is the interactive numbered menu over stdin/stdout.
type Service struct {
	in        *bufio.Scanner
	out       io.Writer
	store     expenseStore
	generator reportGenerator
	charts    chartRenderer
	config    config
	handlers  handlerMap
}

// New builds the menu. charts may be nil, then no chart is drawn.
func New(in io.Reader, out io.Writer, store expenseStore, generator reportGenerator,
	charts chartRenderer, config config) *Service {
	s := &Service{
		in:        bufio.NewScanner(in),
		out:       out,
		store:     store,
		generator: generator,
		charts:    charts,
		config:    config,
	}
	s.handlers = newMap(s)
	return s
}

func newMap(s *Service) handlerMap {
	m := make(handlerMap)
	m[addChoice] = s.handleAdd
	m[viewChoice] = s.handleView
	m[monthlyChoice] = s.handleMonthly
	m[categoryChoice] = s.handleCategory
	m[searchChoice] = s.handleSearch
	m[deleteChoice] = s.handleDelete
	m[trendsChoice] = s.handleTrends
	m[dailyChoice] = s.handleDaily
	m[exitChoice] = s.handleExit
	return m
}

// Run loops until the user exits, input ends or ctx is done.
func (s *Service) Run(ctx context.Context) error {
	s.println(welcomeMessage)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		s.printMenu()
		choice, ok := s.prompt("Enter your choice (1-9): ")
		if !ok {
			s.println(goodbyeMessage)
			return nil
		}

		h, found := s.handlers[choice]
		if !found {
			s.println(invalidChoiceMessage)
			continue
		}

		err := h(ctx)
		if errors.Is(err, errQuit) {
			s.println(goodbyeMessage)
			return nil
		}
		if err != nil {
			logger.Error("menu action failed", zap.String("choice", choice), zap.Error(err))
			s.printf("%s %v\n", somethingWrongMessage, err)
		}
	}
}

func (s *Service) printMenu() {
	sep := strings.Repeat("=", separatorWidth)
	s.println("\n" + sep)
	s.println("           PERSONAL EXPENSE TRACKER")
	s.println(sep)
	for _, item := range menuItems {
		s.println(item)
	}
	s.println(sep)
}

// prompt reads one trimmed line, false means input is exhausted.
func (s *Service) prompt(text string) (string, bool) {
	s.printf("%s", text)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Service) println(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}

func (s *Service) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Service) drawChart(kind chart.Kind, title string, totals []reports.Total) {
	if s.charts == nil || len(totals) == 0 {
		return
	}
	path, err := s.charts.Render(kind, title, totals)
	if err != nil {
		logger.Error("cannot draw chart", zap.String("kind", string(kind)), zap.Error(err))
		s.printf("%s %v\n", cannotDrawChartMessage, err)
		return
	}
	s.printf("Chart saved to %s\n", path)
}
