package excel

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const (
	expensesSheet   = "Expenses"
	categoriesSheet = "Categories"
	monthsSheet     = "Months"
)

// Export writes the records and their category and month breakdowns into an xlsx workbook.
func Export(path string, records []expense.Record) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close workbook")
		}
	}()

	if err = f.SetAppProps(&excelize.AppProperties{Application: "Expense Tracker"}); err != nil {
		return errors.Wrap(err, "set app properties")
	}

	if err = f.SetSheetName("Sheet1", expensesSheet); err != nil {
		return errors.Wrap(err, "rename sheet")
	}
	if err = writeExpenses(f, records); err != nil {
		return errors.Wrap(err, "write expenses")
	}

	categories := reports.Shares(reports.SortByAmount(reports.TotalsByCategory(records)))
	if err = writeShares(f, categoriesSheet, "Category", categories); err != nil {
		return errors.Wrap(err, "write categories")
	}

	months := reports.Shares(reports.LastMonths(reports.TotalsByMonth(records), len(records)))
	if err = writeShares(f, monthsSheet, "Month", months); err != nil {
		return errors.Wrap(err, "write months")
	}

	f.SetActiveSheet(0)
	if err = f.SaveAs(path); err != nil {
		return errors.Wrap(err, "save workbook")
	}

	logger.Info("workbook exported", zap.String("path", path), zap.Int("records", len(records)))
	return nil
}

func writeExpenses(f *excelize.File, records []expense.Record) error {
	header := []interface{}{"ID", "Date", "Category", "Description", "Amount", "Timestamp"}
	if err := f.SetSheetRow(expensesSheet, "A1", &header); err != nil {
		return err
	}
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{rec.ID, rec.Date, rec.Category, rec.Description, rec.Amount, rec.Timestamp}
		if err = f.SetSheetRow(expensesSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(expensesSheet, "C", "D", 24); err != nil {
		return err
	}
	return f.SetColWidth(expensesSheet, "F", "F", 22)
}

func writeShares(f *excelize.File, sheet, keyTitle string, shares []reports.Share) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{keyTitle, "Amount", "Percent"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, s := range shares {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{s.Key, s.Amount, s.Percent}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	totalCell, err := excelize.CoordinatesToCellName(1, len(shares)+3)
	if err != nil {
		return err
	}
	total := []interface{}{"Total", sumShares(shares)}
	if err = f.SetSheetRow(sheet, totalCell, &total); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "A", 22)
}

func sumShares(shares []reports.Share) float64 {
	var sum float64
	for _, s := range shares {
		sum += s.Amount
	}
	return sum
}
