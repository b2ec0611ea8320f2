package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-audiotools/dsp/core"
	"github.com/cwbudde/algo-audiotools/dsp/dynamics"
	"github.com/cwbudde/algo-audiotools/dsp/oscillator"
)

func testConfig() config {
	return config{
		sampleRate: 48000,
		freq:       1500,
		wave:       oscillator.Sine,
		blocks:     4,
		delayMs:    2,
		feedback:   0.3,
		cutoff:     8000,
		attack:     0.001,
		release:    0.005,
	}
}

func TestRunPrintsOneRowPerBlock(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), testConfig(), &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want header + 4 blocks:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "BLOCK") {
		t.Fatalf("header = %q", lines[0])
	}

	for i, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != 6 {
			t.Fatalf("row %d = %q", i, line)
		}
		wantBuf := "0"
		if i%2 == 1 {
			wantBuf = "1"
		}
		if fields[2] != wantBuf {
			t.Fatalf("row %d buffer = %s, want %s", i, fields[2], wantBuf)
		}
	}

	if fields := strings.Fields(lines[2]); fields[5] != "1500.0" {
		t.Fatalf("peak frequency = %s, want 1500.0", fields[5])
	}
}

func TestRunRejectsDelay(t *testing.T) {
	cfg := testConfig()
	cfg.delayMs = 5000
	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out); !errors.Is(err, errDelayRange) {
		t.Fatalf("run() error = %v, want errDelayRange", err)
	}
}

func TestRunRejectsBitDepth(t *testing.T) {
	cfg := testConfig()
	cfg.bits = dynamics.MaxBitReduction + 1
	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out); !errors.Is(err, dynamics.ErrOverBitReduction) {
		t.Fatalf("run() error = %v, want ErrOverBitReduction", err)
	}
}

func TestRunBitReduced(t *testing.T) {
	cfg := testConfig()
	cfg.bits = 24
	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(out.String()), "\n"); len(lines) != cfg.blocks+1 {
		t.Fatalf("got %d lines, want %d", len(lines), cfg.blocks+1)
	}
}

func TestRunRejectsSampleRate(t *testing.T) {
	cfg := testConfig()
	cfg.sampleRate = 0
	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out); !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("run() error = %v, want core.ErrInvalidConfig", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	if err := run(ctx, testConfig(), &out); err == nil {
		t.Fatal("run() with cancelled context succeeded")
	}
}
