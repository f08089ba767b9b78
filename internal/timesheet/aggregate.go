package timesheet

import "sort"

// Summarize groups time entries by employee and sums their worked hours.
//
// Soft-deleted entries are dropped first. Grouping preserves the first-seen
// order of distinct employee names, and the final sort is stable, so
// employees with equal totals keep their input order. The result is ranked
// by total hours, descending. An empty or fully deleted input produces an
// empty slice; callers treat that as nothing to render.
func Summarize(entries []TimeEntry) []EmployeeSummary {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, entry := range entries {
		if entry.Deleted() {
			continue
		}
		if _, seen := totals[entry.EmployeeName]; !seen {
			order = append(order, entry.EmployeeName)
		}
		totals[entry.EmployeeName] += entry.Hours()
	}

	summaries := make([]EmployeeSummary, 0, len(order))
	for _, name := range order {
		summaries = append(summaries, EmployeeSummary{
			Name:       name,
			TotalHours: totals[name],
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalHours > summaries[j].TotalHours
	})

	return summaries
}

// TotalHours returns the grand total across all summaries.
func TotalHours(summaries []EmployeeSummary) float64 {
	var total float64
	for _, s := range summaries {
		total += s.TotalHours
	}
	return total
}
