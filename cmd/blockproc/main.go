// Command blockproc runs a small synthesis chain over two statically
// allocated ping-pong buffers and prints per-block levels.
//
// A setup goroutine hands the buffers to a processing goroutine through a
// buffer.Handoff; the processor renders one block into the active buffer,
// reports it and swaps.
//
// Usage:
//
//	blockproc [flags]
//
// Examples:
//
//	blockproc
//	blockproc -wave saw -freq 220 -blocks 16
//	blockproc -delay 5 -feedback 0.7 -cutoff 2000
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/core"
	"github.com/cwbudde/algo-audiotools/dsp/delay"
	"github.com/cwbudde/algo-audiotools/dsp/dynamics"
	"github.com/cwbudde/algo-audiotools/dsp/envelope"
	"github.com/cwbudde/algo-audiotools/dsp/filter/biquad"
	"github.com/cwbudde/algo-audiotools/dsp/filter/design"
	"github.com/cwbudde/algo-audiotools/dsp/oscillator"
	"github.com/cwbudde/algo-audiotools/dsp/spectrum"
)

const (
	blockSize   = 512
	maxDelayLen = 48000
)

var (
	front    [blockSize]float64
	back     [blockSize]float64
	combLine [maxDelayLen]float64
)

var errDelayRange = errors.New("delay out of range")

type config struct {
	sampleRate float64
	freq       float64
	wave       oscillator.Waveform
	blocks     int
	delayMs    float64
	feedback   float64
	cutoff     float64
	attack     float64
	release    float64
	bits       int
}

type blockReport struct {
	block  int
	index  int
	peakDB float64
	rmsDB  float64
	peakHz float64
}

func main() {
	sampleRate := flag.Float64("sr", 48000, "sample rate in Hz")
	freq := flag.Float64("freq", 440, "oscillator frequency in Hz")
	wave := flag.String("wave", "sine", "waveform: sine, rect, saw, tri")
	blocks := flag.Int("blocks", 8, "number of blocks to render")
	delayMs := flag.Float64("delay", 3, "comb delay in milliseconds")
	feedback := flag.Float64("feedback", 0.5, "comb feedback")
	cutoff := flag.Float64("cutoff", 4000, "lowpass cutoff in Hz")
	attack := flag.Float64("attack", 0.005, "envelope attack in seconds")
	release := flag.Float64("release", 0.02, "envelope release in seconds")
	bits := flag.Int("bits", 0, "low bits dropped by the bit reducer (0 = off)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: blockproc [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders oscillator, envelope, comb, lowpass and compressor into ping-pong buffers.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	w, err := oscillator.ParseWaveform(*wave)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := config{
		sampleRate: *sampleRate,
		freq:       *freq,
		wave:       w,
		blocks:     *blocks,
		delayMs:    *delayMs,
		feedback:   *feedback,
		cutoff:     *cutoff,
		attack:     *attack,
		release:    *release,
		bits:       *bits,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, out io.Writer) error {
	pcfg := core.ProcessorConfig{SampleRate: cfg.sampleRate, BlockSize: blockSize}
	if err := pcfg.Validate(); err != nil {
		return err
	}

	handoff := buffer.NewHandoff[float64](2)
	if err := handoff.Send(ctx, buffer.FromStatic(front[:])); err != nil {
		return err
	}
	if err := handoff.Send(ctx, buffer.FromStatic(back[:])); err != nil {
		return err
	}

	reports := make(chan blockReport)
	errc := make(chan error, 1)

	go func() {
		defer close(reports)
		errc <- process(ctx, cfg, handoff, reports)
	}()

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "BLOCK\tTIME ms\tBUF\tPEAK dB\tRMS dB\tPEAK Hz\n")
	for r := range reports {
		ms := float64(r.block) * pcfg.BlockDuration() * 1000
		fmt.Fprintf(tw, "%d\t%.2f\t%d\t%.2f\t%.2f\t%.1f\n", r.block, ms, r.index, r.peakDB, r.rmsDB, r.peakHz)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return <-errc
}

func process(ctx context.Context, cfg config, handoff *buffer.Handoff[float64], reports chan<- blockReport) error {
	a, err := handoff.Receive(ctx)
	if err != nil {
		return err
	}
	b, err := handoff.Receive(ctx)
	if err != nil {
		return err
	}

	pp, err := buffer.NewPingPong(a, b)
	if err != nil {
		return err
	}

	opts := []core.ProcessorOption{core.WithSampleRate(cfg.sampleRate)}

	osc, err := oscillator.NewFunctional[float64](cfg.freq, cfg.wave, opts...)
	if err != nil {
		return fmt.Errorf("oscillator: %w", err)
	}

	env := envelope.New[float64](0, opts...)
	if err := env.SetStage(envelope.Attack, cfg.attack, 1, -2); err != nil {
		return err
	}
	if err := env.SetStage(envelope.Release, cfg.release, 0, 2); err != nil {
		return err
	}

	delayLen := int(core.MillisToSamples(cfg.delayMs, cfg.sampleRate))
	if delayLen < 1 || delayLen > maxDelayLen {
		return fmt.Errorf("%w: %d samples", errDelayRange, delayLen)
	}
	lineStatic := buffer.FromStatic(combLine[:])
	lineMut := lineStatic.Mut()
	lineMut.Zero()
	combBuf, err := lineMut.SubSliceMut(0, delayLen)
	if err != nil {
		return err
	}
	comb, err := delay.NewComb(&combBuf)
	if err != nil {
		return err
	}
	comb.SetFeedback(cfg.feedback)

	lp := biquad.NewSection[float64](design.Lowpass(cfg.cutoff, 0, cfg.sampleRate))

	comp, err := dynamics.NewCompressor[float64](opts...)
	if err != nil {
		return err
	}

	analyzer, err := spectrum.NewAnalyzer(blockSize, opts...)
	if err != nil {
		return err
	}
	mag := make([]float64, analyzer.Bins())
	magBuf := buffer.FromBufferMut(mag)

	env.Trigger()
	for i := range cfg.blocks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i == cfg.blocks/2 {
			env.Release()
		}

		active := pp.Active()
		osc.ProcessBlock(active)
		env.ProcessBlock(active)
		comb.ProcessBlock(active)
		lp.ProcessBlock(active)
		comp.ProcessBlock(active)
		dynamics.ClipBlock(active, dynamics.ClipTanh, 1)
		if err := dynamics.BitReduceBlock(active, cfg.bits); err != nil {
			return err
		}

		block := active.Slice()
		if err := analyzer.Magnitude(&magBuf, block); err != nil {
			return err
		}
		k, _ := spectrum.PeakBin(magBuf.Slice())

		r := blockReport{
			block:  i,
			index:  pp.Index(),
			peakDB: core.LinearToDB(core.Peak(block)),
			rmsDB:  core.LinearToDB(core.RMS(block)),
			peakHz: analyzer.BinFrequency(k),
		}

		select {
		case reports <- r:
		case <-ctx.Done():
			return ctx.Err()
		}

		pp.Swap()
	}

	return nil
}
