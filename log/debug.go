package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// DebugEnv turns on debug mode with frame profiling when set to 1.
const DebugEnv = "SWITCHERPANEL_DEBUG"

// Debug mode configuration
var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "switcherpanel-debug.log")

// slowFrame is the 60fps budget.
const slowFrame = 16 * time.Millisecond

// InitDebug initializes debug logging if SWITCHERPANEL_DEBUG=1 is set.
func InitDebug() {
	if os.Getenv(DebugEnv) != "1" {
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f

	DebugLog.Println("Debug mode enabled")
	DebugLog.Printf("Debug log: %s", debugLogFileName)
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile != nil {
		profiler.LogStats()
		_ = debugLogFile.Close()
		debugLogFile = nil
		fmt.Println("wrote debug logs to " + debugLogFileName)
	}
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// LayoutTrace logs geometry computations.
func LayoutTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[LAYOUT] "+format, v...)
	}
}

// InputTrace logs pointer and key handling.
func InputTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[INPUT] "+format, v...)
	}
}

// FrameTrace logs animation frames.
func FrameTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[FRAME] "+format, v...)
	}
}

// SurfaceMetrics tracks render timings of one surface.
type SurfaceMetrics struct {
	Name        string
	RenderCount int64
	TotalTime   time.Duration
	MinTime     time.Duration
	MaxTime     time.Duration
}

// FrameProfiler tracks how long surfaces take to render and how many frames
// each settle animation used.
type FrameProfiler struct {
	mu           sync.RWMutex
	surfaces     map[string]*SurfaceMetrics
	frameCount   int64
	totalTime    time.Duration
	frameTimings []time.Duration
	settles      []int
}

var profiler = newFrameProfiler()

func newFrameProfiler() *FrameProfiler {
	return &FrameProfiler{
		surfaces:     make(map[string]*SurfaceMetrics),
		frameTimings: make([]time.Duration, 0, 100),
	}
}

// GetProfiler returns the global frame profiler.
func GetProfiler() *FrameProfiler {
	return profiler
}

// StartRender begins timing a surface render. Call the returned func when the
// render completes.
func (p *FrameProfiler) StartRender(surface string) func() {
	if !DebugEnabled {
		return func() {}
	}

	start := time.Now()
	return func() {
		p.recordRender(surface, time.Since(start))
	}
}

func (p *FrameProfiler) recordRender(surface string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.surfaces[surface]
	if !ok {
		m = &SurfaceMetrics{Name: surface, MinTime: elapsed, MaxTime: elapsed}
		p.surfaces[surface] = m
	}
	m.RenderCount++
	m.TotalTime += elapsed
	if elapsed < m.MinTime {
		m.MinTime = elapsed
	}
	if elapsed > m.MaxTime {
		m.MaxTime = elapsed
	}
}

// RecordFrame records a complete frame.
func (p *FrameProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	p.totalTime += elapsed
	if len(p.frameTimings) >= 100 {
		p.frameTimings = p.frameTimings[1:]
	}
	p.frameTimings = append(p.frameTimings, elapsed)

	if elapsed > slowFrame && DebugLog != nil {
		DebugLog.Printf("SLOW FRAME: %v", elapsed)
	}
}

// RecordSettle records how many frames a settle animation took.
func (p *FrameProfiler) RecordSettle(frames int) {
	if !DebugEnabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settles = append(p.settles, frames)
}

// GetStats returns a summary of the recorded timings.
func (p *FrameProfiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("\n=== Frame Profile ===\n")
	sb.WriteString(fmt.Sprintf("Total frames: %d\n", p.frameCount))
	if p.frameCount > 0 {
		avg := p.totalTime / time.Duration(p.frameCount)
		sb.WriteString(fmt.Sprintf("Avg frame time: %v\n", avg))
	}

	if len(p.settles) > 0 {
		total := 0
		for _, n := range p.settles {
			total += n
		}
		sb.WriteString(fmt.Sprintf("Settles: %d avg frames=%.1f\n",
			len(p.settles), float64(total)/float64(len(p.settles))))
	}

	sb.WriteString("\n--- Surfaces ---\n")
	var sorted []*SurfaceMetrics
	for _, m := range p.surfaces {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TotalTime > sorted[j].TotalTime
	})
	for _, m := range sorted {
		avg := m.TotalTime / time.Duration(m.RenderCount)
		sb.WriteString(fmt.Sprintf("  %s: count=%d total=%v avg=%v min=%v max=%v\n",
			m.Name, m.RenderCount, m.TotalTime, avg, m.MinTime, m.MaxTime))
	}

	return sb.String()
}

// LogStats writes the current statistics to the debug log.
func (p *FrameProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Print(p.GetStats())
	}
}

// Reset clears all profiling data.
func (p *FrameProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.surfaces = make(map[string]*SurfaceMetrics)
	p.frameCount = 0
	p.totalTime = 0
	p.frameTimings = make([]time.Duration, 0, 100)
	p.settles = nil
}
