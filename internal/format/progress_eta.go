package format

import (
	"fmt"
	"strings"
	"time"
)

const (
	// etaSmoothing is the exponential smoothing factor applied to the observed
	// progress rate. Lower values favor history over the latest sample.
	etaSmoothing = 0.3
	// maxETA caps the reported estimate; anything beyond it is noise from a
	// near-zero rate sample.
	maxETA = 24 * time.Hour
)

// ProgressState tracks the individual progress of a set of concurrent workers
// and computes their average, providing a consolidated progress view when
// several verification shards run in parallel.
type ProgressState struct {
	progresses []float64
	numWorkers int
}

// NewProgressState creates a progress tracker for the given number of workers.
func NewProgressState(numWorkers int) *ProgressState {
	if numWorkers < 0 {
		numWorkers = 0
	}
	return &ProgressState{
		progresses: make([]float64, numWorkers),
		numWorkers: numWorkers,
	}
}

// Update records the progress of one worker. Values are clamped to [0, 1]
// and out-of-range worker indices are ignored.
func (ps *ProgressState) Update(worker int, value float64) {
	if worker < 0 || worker >= ps.numWorkers {
		return
	}
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	ps.progresses[worker] = value
}

// CalculateAverage returns the mean progress across all workers, in [0, 1].
// A tracker with zero workers reports zero.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numWorkers == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range ps.progresses {
		sum += p
	}
	return sum / float64(ps.numWorkers)
}

// ProgressWithETA extends ProgressState with a smoothed progress rate from
// which a remaining-time estimate is derived.
type ProgressWithETA struct {
	*ProgressState

	startTime    time.Time
	lastSample   time.Time
	lastAverage  float64
	progressRate float64 // average progress per second, exponentially smoothed
}

// NewProgressWithETA creates an ETA-capable progress tracker for the given
// number of workers.
func NewProgressWithETA(numWorkers int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(numWorkers),
		startTime:     now,
		lastSample:    now,
	}
}

// UpdateWithETA records the progress of one worker and returns the new
// average progress together with the current remaining-time estimate.
func (p *ProgressWithETA) UpdateWithETA(worker int, value float64) (avg float64, eta time.Duration) {
	p.Update(worker, value)
	avg = p.CalculateAverage()

	now := time.Now()
	elapsed := now.Sub(p.lastSample).Seconds()
	if elapsed > 0 && avg > p.lastAverage {
		sample := (avg - p.lastAverage) / elapsed
		if p.progressRate == 0 {
			p.progressRate = sample
		} else {
			p.progressRate = etaSmoothing*sample + (1-etaSmoothing)*p.progressRate
		}
		p.lastSample = now
		p.lastAverage = avg
	}

	return avg, p.GetETA()
}

// GetETA returns the estimated time remaining based on the smoothed progress
// rate. It reports zero while no rate has been observed yet, and caps the
// estimate at 24 hours.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	eta := time.Duration(remaining / p.progressRate * float64(time.Second))
	if eta > maxETA {
		return maxETA
	}
	return eta
}

// FormatETA renders a remaining-time estimate for display. Unknown estimates
// render as "calculating...", sub-second ones as "< 1s", and longer ones in
// the coarsest useful unit pair (seconds, minutes+seconds, hours+minutes).
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		s := int(eta.Seconds()) % 60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h := int(eta.Hours())
		m := int(eta.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// ProgressBar renders a textual progress bar of the given length. Progress is
// clamped to [0, 1]; filled cells use '█' and empty cells '░'.
func ProgressBar(progress float64, length int) string {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders a progress bar with percentage and ETA
// suffix, e.g. "[█████░░░░░] 50.0% | ETA: 30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %.1f%% | ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}
