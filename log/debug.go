// Package log provides logging utilities including debug mode with render profiling.
// Enable debug mode by setting HOLDMENU_DEBUG=1.
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

// Debug mode configuration
var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "holdmenu-debug.log")

// DebugEnv is the environment variable that switches debug logging on.
const DebugEnv = "HOLDMENU_DEBUG"

// InitDebug initializes debug logging if HOLDMENU_DEBUG=1 is set.
func InitDebug() {
	if os.Getenv(DebugEnv) != "1" {
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true
	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f

	DebugLog.Printf("Debug log: %s", debugLogFileName)
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile != nil {
		_ = debugLogFile.Close()
		debugLogFile = nil
		fmt.Println("wrote debug logs to " + debugLogFileName)
	}
}

func tracef(tag, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("["+tag+"] "+format, v...)
	}
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// GestureTrace logs recognizer and activation events for one held item.
func GestureTrace(key, format string, v ...interface{}) {
	tracef("GESTURE:"+key, format, v...)
}

// LayoutTrace logs measurement and placement results.
func LayoutTrace(format string, v ...interface{}) {
	tracef("LAYOUT", format, v...)
}

// AnimationTrace logs animation starts and completions.
func AnimationTrace(format string, v ...interface{}) {
	tracef("ANIM", format, v...)
}

// RenderTrace logs render events.
func RenderTrace(component, format string, v ...interface{}) {
	tracef("RENDER:"+component, format, v...)
}

// RenderProfiler tracks how long each rendered component takes.
type RenderProfiler struct {
	mu         sync.RWMutex
	components map[string]*ComponentMetrics
	frameCount int64
	totalTime  time.Duration
}

// ComponentMetrics tracks metrics for a single component.
type ComponentMetrics struct {
	Name        string
	RenderCount int64
	TotalTime   time.Duration
	MaxTime     time.Duration
}

var profiler = &RenderProfiler{
	components: make(map[string]*ComponentMetrics),
}

// GetProfiler returns the global render profiler.
func GetProfiler() *RenderProfiler {
	return profiler
}

// StartRender begins timing a component render.
// Returns a function to call when render completes.
func (p *RenderProfiler) StartRender(component string) func() {
	if !DebugEnabled {
		return func() {}
	}

	start := time.Now()
	return func() {
		p.record(component, time.Since(start))
	}
}

func (p *RenderProfiler) record(component string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	metrics, ok := p.components[component]
	if !ok {
		metrics = &ComponentMetrics{Name: component}
		p.components[component] = metrics
	}
	metrics.RenderCount++
	metrics.TotalTime += elapsed
	if elapsed > metrics.MaxTime {
		metrics.MaxTime = elapsed
	}

	if component == FrameComponent {
		p.frameCount++
		p.totalTime += elapsed
		// 60fps budget
		if elapsed > 16*time.Millisecond {
			tracef("PERF WARNING", "slow frame: %v", elapsed)
		}
	}
}

// FrameComponent is the component name used for whole-frame timings.
const FrameComponent = "frame"

// GetStats returns a summary of render statistics.
func (p *RenderProfiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("\n=== Render Profile ===\n")
	sb.WriteString(fmt.Sprintf("Total frames: %d\n", p.frameCount))
	if p.frameCount > 0 {
		sb.WriteString(fmt.Sprintf("Avg frame time: %v\n", p.totalTime/time.Duration(p.frameCount)))
	}

	sorted := make([]*ComponentMetrics, 0, len(p.components))
	for _, m := range p.components {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TotalTime > sorted[j].TotalTime
	})

	sb.WriteString("\n--- Components ---\n")
	for _, m := range sorted {
		avg := m.TotalTime / time.Duration(m.RenderCount)
		sb.WriteString(fmt.Sprintf("  %s: count=%d total=%v avg=%v max=%v\n",
			m.Name, m.RenderCount, m.TotalTime, avg, m.MaxTime))
	}
	return sb.String()
}

// LogStats logs the current render statistics.
func (p *RenderProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Print(p.GetStats())
	}
}

// Reset clears all profiling data.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.components = make(map[string]*ComponentMetrics)
	p.frameCount = 0
	p.totalTime = 0
}
