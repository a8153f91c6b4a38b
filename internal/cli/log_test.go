package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	tmdio "github.com/matzehuels/tmd/pkg/io"
	"github.com/matzehuels/tmd/pkg/tree"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("analyzed tree") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("report from cache") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("report from cache") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("cache write failed") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Loaded y_shape.json")

	if !regexp.MustCompile(`Loaded y_shape\.json \(\d+(ms|s|µs|ns)?\)`).Match(buf.Bytes()) {
		t.Errorf("progress.done() output = %q, want message with elapsed time", buf.String())
	}
}

func TestLoadTreeLogsThroughContext(t *testing.T) {
	f := []float64{0, 1, 2}
	path := filepath.Join(t.TempDir(), "chain.json")
	if err := tmdio.ExportJSON(tree.MustNew(f, f, f, f, []int{1, 1, 1}, []int{-1, 0, 1}), path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.DebugLevel))
	tr, err := loadTree(ctx, path)
	if err != nil {
		t.Fatalf("loadTree() error = %v", err)
	}
	if tr.Size() != 3 {
		t.Errorf("loadTree().Size() = %d, want 3", tr.Size())
	}

	out := buf.String()
	for _, want := range []string{"loaded tree", "points=3", "Loaded " + path} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestLoadTreeMissingFile(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.InfoLevel))
	if _, err := loadTree(ctx, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("loadTree() should fail for a missing file")
	}
	if strings.Contains(buf.String(), "Loaded") {
		t.Errorf("loadTree() logged success for a missing file: %q", buf.String())
	}
}

func TestRootCommandAttachesLogger(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)
	root := c.RootCommand()

	var got *log.Logger
	root.AddCommand(&cobra.Command{
		Use: "whoami",
		RunE: func(cmd *cobra.Command, args []string) error {
			got = loggerFromContext(cmd.Context())
			return nil
		},
	})
	root.SetArgs([]string{"whoami"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != c.Logger {
		t.Error("subcommand context should carry the CLI logger")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
}
