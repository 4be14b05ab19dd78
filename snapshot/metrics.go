package snapshot

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrMissingColumn    = errors.New("column not in snapshot")
	ErrNonNumericKPI    = errors.New("kpi value is not numeric")
	ErrDuplicateVersion = errors.New("duplicate snapshot id")
)

// Metric is what one snapshot says about one reporting date.
type Metric struct {
	Lines int     `json:"lines"`
	KPI   float64 `json:"kpi"`
}

// MetricDrift is the change of one date's metric between two snapshots.
type MetricDrift struct {
	Date       string  `json:"date"`
	Before     Metric  `json:"before"`
	After      Metric  `json:"after"`
	LinesDelta int     `json:"lines_delta"`
	KPIDelta   float64 `json:"kpi_delta"`
}

// Aggregate groups rows by dateColumn, counting rows and summing kpiColumn
// per date. An empty kpiColumn only counts rows. Empty KPI cells (NULL)
// add nothing to the sum but still count as a line.
func Aggregate(s *Snapshot, dateColumn, kpiColumn string) (map[string]Metric, error) {
	dateIdx := slices.Index(s.Columns, dateColumn)
	if dateIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, dateColumn)
	}
	kpiIdx := -1
	if kpiColumn != "" {
		if kpiIdx = slices.Index(s.Columns, kpiColumn); kpiIdx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, kpiColumn)
		}
	}

	metrics := make(map[string]Metric)
	for _, r := range s.Rows {
		if len(r.Values) != len(s.Columns) {
			return nil, fmt.Errorf("row %q has %d values, want %d", r.Key, len(r.Values), len(s.Columns))
		}
		m := metrics[r.Values[dateIdx]]
		m.Lines++
		if kpiIdx >= 0 {
			if raw := strings.TrimSpace(r.Values[kpiIdx]); raw != "" {
				kpi, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return nil, fmt.Errorf("row %q: %w: %q", r.Key, ErrNonNumericKPI, raw)
				}
				m.KPI += kpi
			}
		}
		metrics[r.Values[dateIdx]] = m
	}
	return metrics, nil
}

// CompareMetrics lists the dates whose metric differs between before and
// after, in date order. A date present on one side only compares against
// a zero Metric.
func CompareMetrics(before, after map[string]Metric) []MetricDrift {
	dates := make([]string, 0, len(before)+len(after))
	for d := range before {
		dates = append(dates, d)
	}
	for d := range after {
		if _, ok := before[d]; !ok {
			dates = append(dates, d)
		}
	}
	slices.Sort(dates)

	var drift []MetricDrift
	for _, d := range dates {
		b, a := before[d], after[d]
		if a == b {
			continue
		}
		drift = append(drift, MetricDrift{
			Date:       d,
			Before:     b,
			After:      a,
			LinesDelta: a.Lines - b.Lines,
			KPIDelta:   a.KPI - b.KPI,
		})
	}
	return drift
}

// History aggregates every snapshot and indexes the result by date, then by
// snapshot ID, so each date shows how its metric moved across versions.
func History(snaps []*Snapshot, dateColumn, kpiColumn string) (map[string]map[string]Metric, error) {
	history := make(map[string]map[string]Metric)
	seen := make(map[string]struct{}, len(snaps))

	for _, s := range snaps {
		version := s.ID.String()
		if _, dup := seen[version]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVersion, version)
		}
		seen[version] = struct{}{}

		metrics, err := Aggregate(s, dateColumn, kpiColumn)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s of %s: %w", version, s.Table, err)
		}
		for date, m := range metrics {
			if history[date] == nil {
				history[date] = make(map[string]Metric)
			}
			history[date][version] = m
		}
	}
	return history, nil
}
