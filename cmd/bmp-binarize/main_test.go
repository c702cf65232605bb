package main

import (
	"testing"

	"github.com/ironsheep/bmp-binarize/internal/executor"
)

func TestBuildOptionsTruncatesThreshold(t *testing.T) {
	cases := map[string]uint8{
		"0":    0,
		"128":  128,
		"255":  255,
		"300":  44,  // 300 % 256
		"-1":   255, // wraps, not rejected
		"1000": 232,
	}
	for arg, want := range cases {
		opts, err := buildOptions([]string{"in.bmp", "out.bmp", arg})
		if err != nil {
			t.Fatalf("buildOptions(%q) failed: %v", arg, err)
		}
		if opts.Cutoff != want {
			t.Errorf("threshold %q: got %d, want %d", arg, opts.Cutoff, want)
		}
		if opts.Auto {
			t.Errorf("threshold %q: Auto unexpectedly set", arg)
		}
	}
}

func TestBuildOptionsAuto(t *testing.T) {
	opts, err := buildOptions([]string{"in.bmp", "out.bmp", "auto"})
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}
	if !opts.Auto {
		t.Error("Auto not set for threshold \"auto\"")
	}
}

func TestBuildOptionsRejectsGarbageThreshold(t *testing.T) {
	if _, err := buildOptions([]string{"in.bmp", "out.bmp", "dark"}); err == nil {
		t.Error("buildOptions accepted a non-integer threshold")
	}
}

func TestBuildOptionsDefaults(t *testing.T) {
	opts, err := buildOptions([]string{"in.bmp", "out.bmp", "100"})
	if err != nil {
		t.Fatalf("buildOptions failed: %v", err)
	}
	if opts.Strategy != executor.StrategyThreads {
		t.Errorf("default strategy: got %q", opts.Strategy)
	}
	if opts.Input != "in.bmp" || opts.Output != "out.bmp" {
		t.Errorf("paths: got %q -> %q", opts.Input, opts.Output)
	}
}
