package stats

import (
	"errors"
	"sync"
)

var (
	// ErrInvalidSize indicates a grid dimension below 1.
	ErrInvalidSize = errors.New("stats: grid size must be at least 1")
	// ErrInvalidTrials indicates a trial count below 1.
	ErrInvalidTrials = errors.New("stats: trial count must be at least 1")
	// ErrCapacityExceeded indicates more than T results were recorded.
	ErrCapacityExceeded = errors.New("stats: all trial results already recorded")
	// ErrInvalidResult indicates a result outside [0,1].
	ErrInvalidResult = errors.New("stats: trial result must lie in [0,1]")
	// ErrNoResults indicates statistics were requested before any result was recorded.
	ErrNoResults = errors.New("stats: no trial results recorded")
	// ErrInvalidLevel indicates a confidence level outside (0,1).
	ErrInvalidLevel = errors.New("stats: confidence level must lie in (0,1)")
)

// Z95 is the two-sided 95% normal critical value used by ConfidenceLow and
// ConfidenceHigh.
const Z95 = 1.96

// Aggregator collects trial results for an N×N grid over T trials.
type Aggregator struct {
	mu      sync.Mutex
	n, t    int
	results []float64
}

// Summary is a point-in-time view of every derived statistic.
type Summary struct {
	N              int     `json:"n"`
	T              int     `json:"trials"`
	Recorded       int     `json:"recorded"`
	Mean           float64 `json:"mean"`
	StdDev         float64 `json:"stddev"`
	Variance       float64 `json:"variance"`
	ConfidenceLow  float64 `json:"confidence_low"`
	ConfidenceHigh float64 `json:"confidence_high"`
	Min            float64 `json:"min"`
	Median         float64 `json:"median"`
	Max            float64 `json:"max"`
}
