package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/u128calc/internal/format"
)

// MetricsModel displays runtime memory statistics and verification
// throughput.
type MetricsModel struct {
	alloc        uint64
	heapInuse    uint64
	numGC        uint32
	pauseTotalNs uint64
	numGoroutine int

	// speed is the smoothed verification progress per second (a value
	// of 1.0 means one full corpus per second).
	speed        float64
	lastProgress float64
	lastUpdate   time.Time

	// casesTotal converts progress speed into cases per second.
	casesTotal int
	mismatches int
	hasReport  bool

	width  int
	height int
}

// NewMetricsModel creates a new metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{
		lastUpdate: time.Now(),
	}
}

// SetSize updates dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetCorpusSize records the corpus size used for throughput display.
func (m *MetricsModel) SetCorpusSize(n int) {
	m.casesTotal = n
}

// UpdateMemStats updates memory statistics.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapInuse = msg.HeapInuse
	m.numGC = msg.NumGC
	m.pauseTotalNs = msg.PauseTotalNs
	m.numGoroutine = msg.NumGoroutine
}

// UpdateProgress updates the smoothed speed metric from the average
// progress across workers. Updates closer together than 50ms are
// ignored to keep the estimate stable.
func (m *MetricsModel) UpdateProgress(progress float64) {
	now := time.Now()
	dt := now.Sub(m.lastUpdate).Seconds()
	if dt > 0.05 {
		dp := progress - m.lastProgress
		if dp > 0 {
			instantSpeed := dp / dt
			if m.speed > 0 {
				m.speed = 0.7*m.speed + 0.3*instantSpeed
			} else {
				m.speed = instantSpeed
			}
		}
		m.lastProgress = progress
		m.lastUpdate = now
	}
}

// UpdateReport records the final verification counters.
func (m *MetricsModel) UpdateReport(msg ReportMsg) {
	m.casesTotal = msg.Report.Cases
	m.mismatches = msg.Report.Failures()
	m.hasReport = true
}

// View renders the metrics panel.
func (m MetricsModel) View() string {
	var rows strings.Builder

	rows.WriteString(titleStyle.Render(" Metrics"))

	colWidth := (m.width - 6) / 2

	speedStr := "-"
	if m.speed > 0 && m.casesTotal > 0 {
		casesPerSec := m.speed * float64(m.casesTotal)
		speedStr = format.FormatNumberString(fmt.Sprintf("%.0f", casesPerSec)) + " cases/s"
	}

	leftCol := []string{
		formatMetricCol("Memory:", formatBytes(m.alloc), colWidth),
		formatMetricCol("GC Runs:", fmt.Sprintf("%d (%.1fms)", m.numGC, float64(m.pauseTotalNs)/1e6), colWidth),
		formatMetricCol("Speed:", speedStr, colWidth),
	}
	rightCol := []string{
		formatMetricCol("Heap:", formatBytes(m.heapInuse), colWidth),
		formatMetricCol("Goroutines:", fmt.Sprintf("%d", m.numGoroutine), colWidth),
		formatMetricCol("Cases:", format.FormatNumberString(fmt.Sprintf("%d", m.casesTotal)), colWidth),
	}

	if m.hasReport {
		verdict := logSuccessStyle.Render("0")
		if m.mismatches > 0 {
			verdict = logErrorStyle.Render(fmt.Sprintf("%d", m.mismatches))
		}
		leftCol = append(leftCol, formatMetricCol("Mismatches:", verdict, colWidth))
		rightCol = append(rightCol, "")
	}

	for i := range leftCol {
		rows.WriteString("\n")
		rows.WriteString(leftCol[i])
		rows.WriteString(rightCol[i])
	}

	return panelStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(rows.String())
}

func formatMetricCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", label)),
		metricValueStyle.Render(value))
	// Pad to fixed column width using lipgloss-aware width
	visible := lipgloss.Width(cell)
	if visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}

func formatBytes(b uint64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
