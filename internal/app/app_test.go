package app

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	apperrors "github.com/agbru/numgroup/internal/errors"
	"github.com/agbru/numgroup/internal/logging"
	"github.com/agbru/numgroup/internal/logging/mocks"
)

func TestNewDefaults(t *testing.T) {
	var errBuf bytes.Buffer
	app, err := New([]string{"numgroup", "1000"}, &errBuf)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if app.Logger == nil {
		t.Fatal("default logger not set")
	}
	if len(app.Config.Inputs) != 1 || app.Config.Inputs[0] != "1000" {
		t.Errorf("Inputs = %v", app.Config.Inputs)
	}
}

func TestNewHelp(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"numgroup", "-help"}, &errBuf)
	if !IsHelpError(err) {
		t.Fatalf("error = %v, want help error", err)
	}
}

func TestNewInvalidConfig(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"numgroup", "-workers", "-3"}, &errBuf)
	if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
		t.Fatalf("error = %v, want config error", err)
	}
}

func TestRunFormatsArguments(t *testing.T) {
	var errBuf, out bytes.Buffer
	logger := logging.NewStdLoggerAdapter(log.New(&errBuf, "", 0))
	app, err := New([]string{"numgroup", "-q", "30000000", "12500.9", "300", "0"}, &errBuf, WithLogger(logger))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	code := app.Run(context.Background(), strings.NewReader(""), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, errBuf.String())
	}
	want := "30,000,000\n12,500.9\n300\n0\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunReadsStdinInPlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Debug(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Debug(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	var errBuf, out bytes.Buffer
	app, err := New([]string{"numgroup", "-in-place"}, &errBuf, WithLogger(logger))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	code := app.Run(context.Background(), strings.NewReader("30,000,000\n30000000.02\n"), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, errBuf.String())
	}
	if out.String() != "30,000,000\n30,000,000.02\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunCanceled(t *testing.T) {
	var errBuf, out bytes.Buffer
	logger := logging.NewStdLoggerAdapter(log.New(&errBuf, "", 0))
	app, err := New([]string{"numgroup", "1000"}, &errBuf, WithLogger(logger))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if code := app.Run(ctx, strings.NewReader(""), &out); code != apperrors.ExitErrorCanceled {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
	if !strings.Contains(errBuf.String(), "Error:") {
		t.Errorf("error should be reported, got %q", errBuf.String())
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"-version"}, true},
		{[]string{"1000", "--version"}, true},
		{[]string{"-V"}, true},
		{[]string{"--", "-version"}, false},
		{[]string{"1000"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.HasPrefix(buf.String(), "numgroup "+Version) {
		t.Errorf("unexpected version output %q", buf.String())
	}
}
