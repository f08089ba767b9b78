package timesheet

import "time"

// TimeEntry represents one recorded work interval for an employee,
// as returned by the remote time-tracking API.
type TimeEntry struct {
	EmployeeName string     `json:"EmployeeName"`
	StartTimeUtc time.Time  `json:"StartTimeUtc"`
	EndTimeUtc   time.Time  `json:"EndTimeUtc"`
	EntryNotes   string     `json:"EntryNotes"`
	DeletedOn    *time.Time `json:"DeletedOn"`
}

// Deleted reports whether the entry has been soft-deleted at the source.
// Deleted entries stay in the API payload but never count toward totals.
func (e TimeEntry) Deleted() bool {
	return e.DeletedOn != nil
}

// Hours returns the worked duration of the entry as a fractional number
// of hours. Malformed intervals where the end precedes the start yield a
// negative value; the pipeline keeps them as-is rather than rejecting them.
func (e TimeEntry) Hours() float64 {
	return e.EndTimeUtc.Sub(e.StartTimeUtc).Hours()
}

// EmployeeSummary represents the aggregated hours worked by one employee.
// It is the unit of ranking consumed by both the chart and the HTML report.
type EmployeeSummary struct {
	Name       string
	TotalHours float64
}
