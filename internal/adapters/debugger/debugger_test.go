package debugger

import (
	"bytes"
	"context"
	"os/exec"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/dbgalias/internal/core/domain/evaluation"
)

func TestBatchArgs(t *testing.T) {
	const cmd = "expression -l objc -O -- [[UIView new] _ivarDescription]"
	tests := []struct {
		name    string
		session evaluation.Session
		want    []string
	}{
		{
			name:    "no session",
			session: evaluation.Session{},
			want:    []string{"--batch", "-o", cmd},
		},
		{
			name:    "attach by pid wins over name and target",
			session: evaluation.Session{PID: 4242, ProcessName: "MyApp", Target: "/tmp/MyApp"},
			want:    []string{"--batch", "--attach-pid", "4242", "-o", cmd},
		},
		{
			name:    "attach by name",
			session: evaluation.Session{ProcessName: "MyApp"},
			want:    []string{"--batch", "--attach-name", "MyApp", "-o", cmd},
		},
		{
			name:    "target with core and frame",
			session: evaluation.Session{Target: "/tmp/MyApp", CoreFile: "/tmp/core", Frame: 3},
			want:    []string{"--batch", "/tmp/MyApp", "--core", "/tmp/core", "-o", "frame select 3", "-o", cmd},
		},
		{
			name:    "core without target is ignored",
			session: evaluation.Session{CoreFile: "/tmp/core"},
			want:    []string{"--batch", "-o", cmd},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := batchArgs(cmd, tt.session); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("batchArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLLDBEvaluator_Evaluate(t *testing.T) {
	echo, err := exec.LookPath("echo")
	if err != nil {
		t.Skip("echo not available")
	}

	ev := NewLLDBEvaluator(echo)
	res, err := ev.Evaluate(context.Background(), "frame variable", evaluation.Session{PID: 7})
	if err != nil {
		t.Fatalf("Evaluate() unexpected error = %v", err)
	}
	if want := "--batch --attach-pid 7 -o frame variable\n"; res.Output != want {
		t.Errorf("Evaluate() output = %q, want %q", res.Output, want)
	}
	if res.Command != "frame variable" {
		t.Errorf("Evaluate() command = %q", res.Command)
	}

	if _, err := ev.Evaluate(context.Background(), "   ", evaluation.Session{}); err == nil {
		t.Errorf("Evaluate() of a blank command expected an error")
	}
}

func TestLLDBEvaluator_Failure(t *testing.T) {
	ev := &LLDBEvaluator{
		lldbPath: "lldb",
		commandContext: func(ctx context.Context, _ string, _ ...string) *exec.Cmd {
			return exec.CommandContext(ctx, "/nonexistent/dbgalias-lldb")
		},
	}
	res, err := ev.Evaluate(context.Background(), "bt", evaluation.Session{})
	if err == nil {
		t.Fatalf("Evaluate() expected an error for a missing binary")
	}
	if !strings.Contains(err.Error(), "running lldb") {
		t.Errorf("Evaluate() error = %q, want it to name the binary", err.Error())
	}
	if res.Command != "bt" {
		t.Errorf("Evaluate() result command = %q, want bt", res.Command)
	}
}

func TestNewLLDBEvaluator_DefaultPath(t *testing.T) {
	ev := NewLLDBEvaluator("").(*LLDBEvaluator)
	if ev.lldbPath != DefaultLLDBPath {
		t.Errorf("lldbPath = %q, want %q", ev.lldbPath, DefaultLLDBPath)
	}
}

func TestPrintEvaluator(t *testing.T) {
	var buf bytes.Buffer
	ev := NewPrintEvaluator(&buf)
	res, err := ev.Evaluate(context.Background(), "thread backtrace all", evaluation.Session{})
	if err != nil {
		t.Fatalf("Evaluate() unexpected error = %v", err)
	}
	if buf.String() != "thread backtrace all\n" || res.Output != buf.String() {
		t.Errorf("Evaluate() wrote %q, result %q", buf.String(), res.Output)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ev.Evaluate(ctx, "bt", evaluation.Session{}); err == nil {
		t.Errorf("Evaluate() with a cancelled context expected an error")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("NewPrintEvaluator(nil) did not panic")
		}
	}()
	NewPrintEvaluator(nil)
}
