package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/u128calc/internal/format"
)

// chartHistoryCap bounds the number of samples kept per series.
const chartHistoryCap = 120

// ChartModel renders the progress history chart together with CPU and
// memory sparklines.
type ChartModel struct {
	progressHistory *RingBuffer
	cpuHistory      *RingBuffer
	memHistory      *RingBuffer

	averageProgress float64
	eta             time.Duration

	done          bool
	finalDuration time.Duration

	width  int
	height int
}

// NewChartModel creates a new chart panel.
func NewChartModel() ChartModel {
	return ChartModel{
		progressHistory: NewRingBuffer(chartHistoryCap),
		cpuHistory:      NewRingBuffer(chartHistoryCap),
		memHistory:      NewRingBuffer(chartHistoryCap),
	}
}

// SetSize updates dimensions.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
}

// AddDataPoint records a progress sample.
func (c *ChartModel) AddDataPoint(value, averageProgress float64, eta time.Duration) {
	c.progressHistory.Push(averageProgress * 100)
	c.averageProgress = averageProgress
	c.eta = eta
}

// UpdateSysStats records a system CPU and memory sample.
func (c *ChartModel) UpdateSysStats(cpuPercent, memPercent float64) {
	c.cpuHistory.Push(cpuPercent)
	c.memHistory.Push(memPercent)
}

// SetDone freezes the chart at completion.
func (c *ChartModel) SetDone(duration time.Duration) {
	c.done = true
	c.finalDuration = duration
	c.averageProgress = 1.0
	c.eta = 0
}

// Reset clears all history for a restarted run.
func (c *ChartModel) Reset() {
	c.progressHistory.Reset()
	c.cpuHistory.Reset()
	c.memHistory.Reset()
	c.averageProgress = 0
	c.eta = 0
	c.done = false
	c.finalDuration = 0
}

// View renders the chart panel.
func (c ChartModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" Progress Chart"))
	b.WriteString("\n")
	b.WriteString(c.renderProgressBar())

	innerWidth := c.width - 6
	if innerWidth < 4 {
		innerWidth = 4
	}

	// Reserve rows: title, bar, ETA line, two sparklines, borders.
	brailleRows := c.height - 9
	if brailleRows > 0 {
		for _, row := range RenderBrailleChart(c.progressHistory.Slice(), innerWidth, brailleRows) {
			b.WriteString("\n  ")
			b.WriteString(chartBarStyle.Render(row))
		}
	}

	b.WriteString("\n  ")
	if c.done {
		b.WriteString(metricLabelStyle.Render("ETA: ") +
			statusDoneStyle.Render("done in "+format.FormatExecutionDuration(c.finalDuration)))
	} else {
		b.WriteString(metricLabelStyle.Render("ETA: ") +
			metricValueStyle.Render(format.FormatETA(c.eta)))
	}

	sparkWidth := min(innerWidth-8, chartHistoryCap)
	if sparkWidth > 0 {
		b.WriteString("\n  ")
		b.WriteString(metricLabelStyle.Render("CPU "))
		b.WriteString(cpuSparklineStyle.Render(RenderSparkline(tail(c.cpuHistory.Slice(), sparkWidth))))
		b.WriteString(metricValueStyle.Render(fmt.Sprintf(" %.0f%%", c.cpuHistory.Last())))

		b.WriteString("\n  ")
		b.WriteString(metricLabelStyle.Render("MEM "))
		b.WriteString(memSparklineStyle.Render(RenderSparkline(tail(c.memHistory.Slice(), sparkWidth))))
		b.WriteString(metricValueStyle.Render(fmt.Sprintf(" %.0f%%", c.memHistory.Last())))
	}

	return panelStyle.
		Width(c.width - 2).
		Height(c.height - 2).
		Render(b.String())
}

// renderProgressBar renders the average progress as a block bar with a
// percentage suffix.
func (c ChartModel) renderProgressBar() string {
	barWidth := c.width - 14
	if barWidth < 10 {
		barWidth = 10
	}

	filled := int(c.averageProgress * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := chartBarStyle.Render(strings.Repeat("█", filled)) +
		chartEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

	return fmt.Sprintf("  %s %s", bar,
		metricValueStyle.Render(fmt.Sprintf("%.1f%%", c.averageProgress*100)))
}

// tail returns at most the last n values.
func tail(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}
