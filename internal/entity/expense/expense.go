package expense

import "time"

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Record is one logged expense. Date is kept as YYYY-MM-DD text so that
// month prefixes and lexicographic comparisons work on it directly.
type Record struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Timestamp   time.Time `json:"timestamp"`
}

// Month returns the YYYY-MM part of the date.
func (r Record) Month() string {
	if len(r.Date) < len(MonthLayout) {
		return r.Date
	}
	return r.Date[:len(MonthLayout)]
}
