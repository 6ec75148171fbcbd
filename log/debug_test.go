package log

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestDebugDisabledByDefault(t *testing.T) {
	DebugEnabled = false
	DebugLog = nil

	os.Unsetenv(DebugEnv)
	InitDebug()

	if DebugEnabled {
		t.Error("Debug should be disabled by default")
	}
	if DebugLog == nil {
		t.Error("DebugLog should be a no-op logger, not nil")
	}
}

func TestDebugEnabledWithEnvVar(t *testing.T) {
	DebugEnabled = false
	DebugLog = nil

	t.Setenv(DebugEnv, "1")

	InitDebug()
	defer func() {
		CloseDebug()
		DebugEnabled = false
	}()

	if !DebugEnabled {
		t.Error("Debug should be enabled with SWITCHERPANEL_DEBUG=1")
	}
	if DebugLog == nil {
		t.Error("DebugLog should be initialized")
	}
}

func TestTraceHelpers(t *testing.T) {
	// Disabled: nothing may panic.
	DebugEnabled = false
	DebugLog = nil
	Debug("test %s", "arg")
	LayoutTrace("test %s", "arg")
	InputTrace("test %s", "arg")
	FrameTrace("test %s", "arg")

	// Enabled but without a log.
	DebugEnabled = true
	LayoutTrace("test %s", "arg")
	InputTrace("test %s", "arg")
	FrameTrace("test %s", "arg")
	DebugEnabled = false
}

func TestFrameProfiler(t *testing.T) {
	t.Run("StartRender is a noop when disabled", func(t *testing.T) {
		DebugEnabled = false
		profiler.Reset()

		done := profiler.StartRender("content")
		done()

		if len(profiler.surfaces) != 0 {
			t.Error("Should not record when disabled")
		}
	})

	t.Run("renders accumulate per surface", func(t *testing.T) {
		DebugEnabled = true
		defer func() { DebugEnabled = false }()
		profiler.Reset()

		for i := 0; i < 3; i++ {
			done := profiler.StartRender("switcher")
			done()
		}
		done := profiler.StartRender("content")
		time.Sleep(time.Millisecond)
		done()

		if got := profiler.surfaces["switcher"].RenderCount; got != 3 {
			t.Errorf("Expected 3 switcher renders, got %d", got)
		}
		if got := profiler.surfaces["content"].TotalTime; got < time.Millisecond {
			t.Errorf("Expected content total >= 1ms, got %v", got)
		}
	})
}

func TestRecordFrameAndSettle(t *testing.T) {
	DebugEnabled = true
	defer func() { DebugEnabled = false }()
	profiler.Reset()

	profiler.RecordFrame(10 * time.Millisecond)
	profiler.RecordFrame(20 * time.Millisecond)
	profiler.RecordSettle(12)
	profiler.RecordSettle(8)

	if profiler.frameCount != 2 {
		t.Errorf("Expected frame count 2, got %d", profiler.frameCount)
	}
	if profiler.totalTime != 30*time.Millisecond {
		t.Errorf("Expected total time 30ms, got %v", profiler.totalTime)
	}

	stats := profiler.GetStats()
	if !strings.Contains(stats, "Frame Profile") {
		t.Error("Expected 'Frame Profile' in stats")
	}
	if !strings.Contains(stats, "Settles: 2 avg frames=10.0") {
		t.Errorf("Expected settle summary in stats, got:\n%s", stats)
	}
}

func TestRollingWindow(t *testing.T) {
	DebugEnabled = true
	defer func() { DebugEnabled = false }()
	profiler.Reset()

	for i := 0; i < 150; i++ {
		profiler.RecordFrame(time.Millisecond)
	}

	if len(profiler.frameTimings) != 100 {
		t.Errorf("Expected 100 frame timings (rolling window), got %d", len(profiler.frameTimings))
	}
}
