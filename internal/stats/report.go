package stats

import "github.com/verte-zerg/goldbach/internal/model"

// Report contains aggregated statistics for one population.
type Report struct {
	Population model.Population
	Numbers    int
	Stats      Accumulator
}

// BuildReport aggregates the representation statistics of numbers.
func BuildReport(pop model.Population, numbers []int, counter Counter) Report {
	return Report{
		Population: pop,
		Numbers:    len(numbers),
		Stats:      Aggregate(numbers, counter),
	}
}
