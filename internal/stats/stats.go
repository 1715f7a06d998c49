// Package stats contains representation statistics and reporting.
package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/goldbach/internal/model"
)

const (
	exclusiveTitle = "Exclusive First-Hit Representation Table"
	totalTitle     = "Total Density Representation Table"
)

var (
	tableHeaders   = []string{"c", "Count", "Avg r_c", "Avg r_c / r_5"}
	tableMinWidths = []int{5, 6, 8, 14}
)

// Record accumulates statistics for one constant c.
type Record struct {
	Count      int
	Total      int
	RatioSum   float64
	RatioCount int
}

// AvgCount returns Total/Count, or 0 when nothing was counted.
func (r Record) AvgCount() float64 {
	if r.Count == 0 {
		return 0
	}
	return float64(r.Total) / float64(r.Count)
}

// AvgRatio returns RatioSum/RatioCount, or 0 when no ratio was recorded.
func (r Record) AvgRatio() float64 {
	if r.RatioCount == 0 {
		return 0
	}
	return r.RatioSum / float64(r.RatioCount)
}

// addRatio records rc/r5 when r5 is positive.
func (r Record) addRatio(rc, r5 int) Record {
	if r5 > 0 {
		r.RatioSum += float64(rc) / float64(r5)
		r.RatioCount++
	}
	return r
}

// Accumulator holds the exclusive and total records, indexed like model.Constants.
type Accumulator struct {
	Exclusive [4]Record
	Total     [4]Record
}

// Add folds one number's representation counts into a copy of a and returns it.
func (a Accumulator) Add(reps model.Reps) Accumulator {
	r5 := reps[model.RefIndex]

	for i, rc := range reps {
		if rc <= 0 {
			continue
		}
		rec := a.Exclusive[i]
		rec.Count++
		rec.Total += rc
		a.Exclusive[i] = rec.addRatio(rc, r5)
		break
	}

	for i, rc := range reps {
		rec := a.Total[i]
		if rc > 0 {
			rec.Count++
		}
		rec.Total += rc
		a.Total[i] = rec.addRatio(rc, r5)
	}
	return a
}

// Counter counts the representations of n - c.
type Counter interface {
	Count(n, c int) int
}

// RepsFor computes the representation counts of n for every constant.
func RepsFor(counter Counter, n int) model.Reps {
	var reps model.Reps
	for i, c := range model.Constants {
		reps[i] = counter.Count(n, c)
	}
	return reps
}

// Aggregate folds every number of the sequence into a fresh Accumulator.
func Aggregate(numbers []int, counter Counter) Accumulator {
	var acc Accumulator
	for _, n := range numbers {
		acc = acc.Add(RepsFor(counter, n))
	}
	return acc
}

// RenderTable prints one representation table.
func RenderTable(w io.Writer, title string, records [4]Record) error {
	if _, err := fmt.Fprintf(w, "\n--- %s ---\n", title); err != nil {
		return err
	}
	rows := make([][]string, 0, len(records))
	for i, rec := range records {
		rows = append(rows, []string{
			fmt.Sprintf("%d", model.Constants[i]),
			fmt.Sprintf("%d", rec.Count),
			fmt.Sprintf("%.4f", rec.AvgCount()),
			fmt.Sprintf("%.4f", rec.AvgRatio()),
		})
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true, 3: true}
	lines := formatTable(tableHeaders, rows, rightAlign, tableMinWidths)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderReport prints the exclusive and total tables of a report.
func RenderReport(w io.Writer, report Report) error {
	if err := RenderTable(w, exclusiveTitle, report.Stats.Exclusive); err != nil {
		return err
	}
	return RenderTable(w, totalTitle, report.Stats.Total)
}
