package rejection

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/hamblin-ku/PHSX815-Week5/pkg/numeric"
)

// Summary describes an accepted sample set.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Median float64
	Q25    float64
	Q75    float64
	Min    float64
	Max    float64
}

// Summarize computes location and spread of samples. StdDev is the
// population standard deviation.
func Summarize(samples []float64) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, fmt.Errorf("summarize: no samples: %w", numeric.ErrInvalidArgument)
	}
	data := stats.Float64Data(samples)
	s := Summary{N: len(samples)}

	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, err
	}
	if s.Q25, err = stats.Percentile(data, 25); err != nil {
		return Summary{}, err
	}
	if s.Q75, err = stats.Percentile(data, 75); err != nil {
		return Summary{}, err
	}
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, err
	}
	return s, nil
}
