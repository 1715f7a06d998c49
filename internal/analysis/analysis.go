// Package analysis runs the representation pipeline: sieve, counting, aggregation and reporting.
package analysis

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/goldbach/internal/goldbach"
	"github.com/verte-zerg/goldbach/internal/model"
	"github.com/verte-zerg/goldbach/internal/population"
	"github.com/verte-zerg/goldbach/internal/sieve"
	"github.com/verte-zerg/goldbach/internal/stats"
)

// Run analyzes the populations selected by cfg and writes their tables to w.
func Run(w io.Writer, cfg model.Config, log logrus.FieldLogger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log = log.WithField("limit", cfg.Limit)

	started := time.Now()
	set, err := sieve.NewSet(cfg.Limit)
	if err != nil {
		return fmt.Errorf("failed to build prime set: %w", err)
	}
	log.WithFields(logrus.Fields{
		"primes":  set.Len(),
		"elapsed": time.Since(started),
	}).Debug("prime set built")

	started = time.Now()
	counter := goldbach.NewTable(set)
	log.WithField("elapsed", time.Since(started)).Debug("representation table built")

	if cfg.Mode == model.ModeSingle {
		report := analyze(cfg.Population, cfg.Limit, set, counter, log)
		return stats.RenderReport(w, report)
	}

	for _, pop := range model.Populations {
		report := analyze(pop, cfg.Limit, set, counter, log)
		if _, err := fmt.Fprintf(w, "\n=== Case: %s ===", pop.Title()); err != nil {
			return err
		}
		if err := stats.RenderReport(w, report); err != nil {
			return err
		}
	}
	return nil
}

func analyze(pop model.Population, limit int, set *sieve.Set, counter stats.Counter, log logrus.FieldLogger) stats.Report {
	started := time.Now()
	numbers := population.Select(pop, model.Start, limit, set)
	report := stats.BuildReport(pop, numbers, counter)
	log.WithFields(logrus.Fields{
		"population": pop.String(),
		"numbers":    report.Numbers,
		"elapsed":    time.Since(started),
	}).Info("population analyzed")
	return report
}
