package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/u128calc/internal/config"
	"github.com/agbru/u128calc/internal/format"
)

// logPageSize is the number of lines scrolled per page key press.
const logPageSize = 10

// LogsModel renders the scrolling event log on the left side of the
// dashboard: run configuration, per-worker progress, and the final
// verification outcome.
type LogsModel struct {
	subject   string
	reference string
	keymap    KeyMap

	lines  []string
	offset int
	follow bool

	// lastProgress deduplicates noisy per-worker updates so the log
	// only records meaningful steps.
	lastProgress map[int]float64

	width  int
	height int
}

// NewLogsModel creates the log panel for a subject/reference pair.
func NewLogsModel(subject, reference string) LogsModel {
	return LogsModel{
		subject:      subject,
		reference:    reference,
		keymap:       DefaultKeyMap(),
		follow:       true,
		lastProgress: make(map[int]float64),
	}
}

// AddExecutionConfig records the run parameters at the top of the log.
func (l *LogsModel) AddExecutionConfig(cfg config.AppConfig) {
	l.addLine(logProgressStyle.Render(fmt.Sprintf("verify %s against %s", l.subject, l.reference)))
	l.addLine(logTimeStyle.Render(fmt.Sprintf("random cases: %s, seed: %d",
		format.FormatNumberString(fmt.Sprintf("%d", cfg.RandomCases)), cfg.Seed)))
	if cfg.Workers > 0 {
		l.addLine(logTimeStyle.Render(fmt.Sprintf("workers: %d", cfg.Workers)))
	}
}

// AddProgressEntry records a worker progress step. Updates below a 5%
// delta since the worker's last logged step are dropped.
func (l *LogsModel) AddProgressEntry(msg ProgressMsg) {
	last, seen := l.lastProgress[msg.WorkerIndex]
	if seen && msg.Value < 1.0 && msg.Value-last < 0.05 {
		return
	}
	l.lastProgress[msg.WorkerIndex] = msg.Value

	stamp := logTimeStyle.Render(time.Now().Format("15:04:05"))
	worker := logWorkerStyle.Render(fmt.Sprintf("worker %d", msg.WorkerIndex))
	pct := logProgressStyle.Render(fmt.Sprintf("%5.1f%%", msg.Value*100))
	l.addLine(fmt.Sprintf("%s %s %s", stamp, worker, pct))
}

// AddReport records the final verification outcome.
func (l *LogsModel) AddReport(msg ReportMsg) {
	cases := format.FormatNumberString(fmt.Sprintf("%d", msg.Report.Cases))
	if msg.Report.Passed() {
		l.addLine(logSuccessStyle.Render(fmt.Sprintf("PASS: %s cases verified in %s",
			cases, format.FormatExecutionDuration(msg.Duration))))
		return
	}

	l.addLine(logErrorStyle.Render(fmt.Sprintf("FAIL: %d of %s cases mismatched",
		msg.Report.Failures(), cases)))
	limit := min(len(msg.Report.Mismatches), 5)
	for _, mm := range msg.Report.Mismatches[:limit] {
		l.addLine(logErrorStyle.Render(fmt.Sprintf("  %#016x * %#016x: got %s want %s",
			mm.A, mm.B, mm.Got.Hex(), mm.Want.Hex())))
	}
	if len(msg.Report.Mismatches) > limit {
		l.addLine(logErrorStyle.Render(fmt.Sprintf("  ... and %d more",
			len(msg.Report.Mismatches)-limit)))
	}
}

// AddError records a run failure.
func (l *LogsModel) AddError(msg ErrorMsg) {
	l.addLine(logErrorStyle.Render(fmt.Sprintf("error after %s: %v",
		format.FormatExecutionDuration(msg.Duration), msg.Err)))
}

// Reset clears the log for a restarted run.
func (l *LogsModel) Reset() {
	l.lines = nil
	l.offset = 0
	l.follow = true
	l.lastProgress = make(map[int]float64)
}

// SetSize updates the panel dimensions.
func (l *LogsModel) SetSize(w, h int) {
	l.width = w
	l.height = h
}

// Update handles scroll keys. Scrolling up disables follow mode;
// scrolling to the bottom re-enables it.
func (l *LogsModel) Update(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, l.keymap.Up):
		l.scrollBy(-1)
	case key.Matches(msg, l.keymap.Down):
		l.scrollBy(1)
	case key.Matches(msg, l.keymap.PageUp):
		l.scrollBy(-logPageSize)
	case key.Matches(msg, l.keymap.PageDown):
		l.scrollBy(logPageSize)
	}
}

func (l *LogsModel) scrollBy(delta int) {
	l.offset += delta
	maxOffset := len(l.lines) - l.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.offset >= maxOffset {
		l.offset = maxOffset
		l.follow = true
		return
	}
	if l.offset < 0 {
		l.offset = 0
	}
	l.follow = false
}

func (l *LogsModel) visibleLines() int {
	// Account for the panel border.
	v := l.height - 2
	if v < 1 {
		v = 1
	}
	return v
}

func (l *LogsModel) addLine(line string) {
	l.lines = append(l.lines, line)
	if l.follow {
		maxOffset := len(l.lines) - l.visibleLines()
		if maxOffset < 0 {
			maxOffset = 0
		}
		l.offset = maxOffset
	}
}

// View renders the log panel at its configured height.
func (l LogsModel) View() string {
	return l.renderToHeight(l.height)
}

// renderToHeight renders the log panel at an explicit height so the
// root model can match it to the right column.
func (l LogsModel) renderToHeight(height int) string {
	visible := height - 2
	if visible < 1 {
		visible = 1
	}

	start := l.offset
	if start > len(l.lines) {
		start = len(l.lines)
	}
	end := start + visible
	if end > len(l.lines) {
		end = len(l.lines)
	}

	var body string
	for i := start; i < end; i++ {
		if i > start {
			body += "\n"
		}
		body += l.lines[i]
	}

	return panelStyle.
		Width(l.width - 2).
		Height(height - 2).
		Render(body)
}
