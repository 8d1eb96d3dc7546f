package entity

import (
	"sort"
	"time"
)

// DailyRecord is one row of a by_day.tsv summary.
type DailyRecord struct {
	Date      time.Time `json:"date"`
	BytesSent int64     `json:"bytes_sent"`
}

// DailySeries is a date-ordered sequence of daily volumes for one dataset.
type DailySeries []DailyRecord

// NormalizeDailySeries ordena por data e soma datas duplicadas.
func NormalizeDailySeries(records []DailyRecord) DailySeries {
	byDay := make(map[time.Time]int64, len(records))
	for _, r := range records {
		byDay[TruncateDay(r.Date)] += r.BytesSent
	}

	series := make(DailySeries, 0, len(byDay))
	for day, bytes := range byDay {
		series = append(series, DailyRecord{Date: day, BytesSent: bytes})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}

// TruncateDay returns midnight UTC of the calendar date of t.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Total retorna a soma de bytes da série.
func (s DailySeries) Total() int64 {
	var total int64
	for _, r := range s {
		total += r.BytesSent
	}
	return total
}

// Span returns the first and last dates of the series.
func (s DailySeries) Span() (time.Time, time.Time, bool) {
	if len(s) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return s[0].Date, s[len(s)-1].Date, true
}

// Reindex lays the series onto every day of [start, end], filling days
// without a record with zero.
func (s DailySeries) Reindex(start, end time.Time) []int64 {
	days := DateRange(start, end)
	values := make([]int64, len(days))
	if len(days) == 0 {
		return values
	}
	first := days[0]
	for _, r := range s {
		idx := int(TruncateDay(r.Date).Sub(first).Hours() / 24)
		if idx < 0 || idx >= len(values) {
			continue
		}
		values[idx] += r.BytesSent
	}
	return values
}

// DateRange returns every calendar day from start to end inclusive.
func DateRange(start, end time.Time) []time.Time {
	start, end = TruncateDay(start), TruncateDay(end)
	if end.Before(start) {
		return nil
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DatasetSeries maps a dataset identifier to its daily series.
type DatasetSeries map[string]DailySeries

// Span returns the earliest and latest dates across every series.
func (d DatasetSeries) Span() (time.Time, time.Time, bool) {
	var minDate, maxDate time.Time
	found := false
	for _, series := range d {
		first, last, ok := series.Span()
		if !ok {
			continue
		}
		if !found || first.Before(minDate) {
			minDate = first
		}
		if !found || last.After(maxDate) {
			maxDate = last
		}
		found = true
	}
	return minDate, maxDate, found
}

// Totals retorna o total por dataset, maior primeiro.
func (d DatasetSeries) Totals() []TotalEntry {
	totals := make(map[string]int64, len(d))
	for id, series := range d {
		totals[id] = series.Total()
	}
	return sortedEntries(totals)
}
