package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// readEntries decodes every JSON line in the log file.
func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open log file: %v", err)
	}
	defer f.Close()

	var entries []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e map[string]any
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("log line is not JSON: %q: %v", sc.Text(), err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("failed to scan log file: %v", err)
	}
	return entries
}

func fileOnly(t *testing.T, level string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drape.log")
	if err := InitWithFileConfig(level, FileConfig{Path: path, MaxSizeMB: 1}, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	t.Cleanup(func() {
		Sync()
		Log = zap.NewNop()
		Sugar = Log.Sugar()
	})
	return path
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
		{"fatal", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltersFileOutput(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{"error", []string{"ERROR"}},
		{"warn", []string{"WARN", "ERROR"}},
		{"info", []string{"INFO", "WARN", "ERROR"}},
		{"debug", []string{"DEBUG", "INFO", "WARN", "ERROR"}},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			path := fileOnly(t, tt.level)

			Debug("constraint relaxed")
			Info("topology loaded")
			Warn("fold seed lies on the cut line")
			Error("frame failed")
			Sync()

			entries := readEntries(t, path)
			if len(entries) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(entries), len(tt.want))
			}
			for i, e := range entries {
				if e["level"] != tt.want[i] {
					t.Errorf("entry %d level = %v, want %s", i, e["level"], tt.want[i])
				}
			}
		})
	}
}

func TestNamedLoggerWritesComponentAndFields(t *testing.T) {
	path := fileOnly(t, "debug")

	Named("sim").Named("cloth").Debug("solver ready",
		zap.Int("vertices", 25),
		zap.Float32("drag", 0.5))
	Sync()

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["logger"] != "sim.cloth" {
		t.Errorf("logger = %v, want sim.cloth", e["logger"])
	}
	if e["msg"] != "solver ready" {
		t.Errorf("msg = %v, want solver ready", e["msg"])
	}
	if e["vertices"] != float64(25) {
		t.Errorf("vertices = %v, want 25", e["vertices"])
	}
	if e["drag"] != 0.5 {
		t.Errorf("drag = %v, want 0.5", e["drag"])
	}
	if caller, _ := e["caller"].(string); !strings.HasPrefix(caller, "logger/") {
		t.Errorf("caller = %q, want a short logger/ path", caller)
	}
}

func TestSugarFollowsInit(t *testing.T) {
	path := fileOnly(t, "info")

	Sugar.Infof("frame %d settled", 100)
	Sync()

	entries := readEntries(t, path)
	if len(entries) != 1 || entries[0]["msg"] != "frame 100 settled" {
		t.Errorf("entries = %v, want one \"frame 100 settled\"", entries)
	}
}

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drape.log")

	// lumberjack sizes are whole megabytes, so push past 1MB
	cfg := FileConfig{Path: path, MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 1}
	if err := InitWithFileConfig("info", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	t.Cleanup(func() {
		Log = zap.NewNop()
		Sugar = Log.Sugar()
	})

	stretch := strings.Repeat("#", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("frame %d stretch %s", i, stretch)
	}
	Sync()

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read log dir: %v", err)
	}
	var rotated int
	for _, f := range files {
		name := f.Name()
		if name == "drape.log" {
			continue
		}
		if !strings.HasPrefix(name, "drape-20") || !strings.HasSuffix(name, ".log") {
			t.Errorf("unexpected file %s", name)
			continue
		}
		rotated++
	}
	if rotated == 0 {
		t.Errorf("no rotated files in %v", files)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/drape.log")
	want := FileConfig{Path: "/tmp/drape.log", MaxSizeMB: 20, MaxBackups: 3, MaxAgeDays: 7, Compress: true}
	if cfg != want {
		t.Errorf("DefaultFileConfig() = %+v, want %+v", cfg, want)
	}
}

func TestNewWithoutOutputs(t *testing.T) {
	l := New("debug", FileConfig{}, false)
	if l.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger without outputs should not be enabled")
	}
}
