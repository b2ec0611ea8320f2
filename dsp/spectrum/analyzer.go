package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sync"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/core"
	"github.com/cwbudde/algo-audiotools/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrFrameSize is returned for frame sizes that are not a power of two >= 2.
	ErrFrameSize = errors.New("spectrum: frame size must be a power of two >= 2")
	// ErrShortOutput is returned when the destination holds fewer than Bins() values.
	ErrShortOutput = errors.New("spectrum: output shorter than bin count")
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Analyzer computes single-sided magnitude spectra of fixed-size frames.
// An Analyzer is not safe for concurrent use.
type Analyzer struct {
	size       int
	sampleRate float64
	plan       *algofft.Plan[complex128]
	win        []float64
	gain       float64
	in, out    []complex128
}

// NewAnalyzer prepares an FFT plan and Hann window for frames of size samples.
func NewAnalyzer(size int, opts ...core.ProcessorOption) (*Analyzer, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrFrameSize, size)
	}

	cfg := core.ApplyProcessorOptions(opts...)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	win := make([]float64, size)
	wm := buffer.FromBufferMut(win)
	if err := window.Fill(&wm, window.TypeHann, window.WithPeriodic()); err != nil {
		return nil, err
	}

	return &Analyzer{
		size:       size,
		sampleRate: cfg.SampleRate,
		plan:       plan,
		win:        win,
		gain:       window.CoherentGain(wm.Slice()),
		in:         make([]complex128, size),
		out:        make([]complex128, size),
	}, nil
}

// Size returns the frame size.
func (a *Analyzer) Size() int { return a.size }

// Bins returns the number of magnitude bins, Size()/2 + 1.
func (a *Analyzer) Bins() int { return a.size/2 + 1 }

// BinFrequency returns the centre frequency of bin k in Hz.
func (a *Analyzer) BinFrequency(k int) float64 {
	return float64(k) * a.sampleRate / float64(a.size)
}

// Magnitude windows src, transforms it and writes Bins() amplitude-scaled
// magnitudes into dst. A sinusoid of amplitude A centred on a bin reads A.
// src shorter than Size() is zero-padded; extra samples are ignored.
func (a *Analyzer) Magnitude(dst *buffer.MutSlice[float64], src buffer.Slice[float64]) error {
	bins := a.Bins()
	if dst.Len() < bins {
		return fmt.Errorf("%w: %d < %d", ErrShortOutput, dst.Len(), bins)
	}

	n := min(src.Len(), a.size)
	for i := range n {
		a.in[i] = complex(src.GetUnchecked(i)*a.win[i], 0)
	}
	clear(a.in[n:])

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return fmt.Errorf("spectrum: forward fft: %w", err)
	}

	re, im, scratch := getScratch(bins)
	defer putScratch(scratch)

	for k := range bins {
		re[k] = real(a.out[k])
		im[k] = imag(a.out[k])
	}

	mag := dst.AsMutSlice()[:bins]
	vecmath.Magnitude(mag, re, im)

	// Interior bins carry half the energy of a real sinusoid.
	scale := 2 / (float64(a.size) * a.gain)
	vecmath.ScaleBlockInPlace(mag, scale)
	mag[0] *= 0.5
	mag[bins-1] *= 0.5

	return nil
}

// MagnitudeDB is Magnitude followed by conversion to dB. Silent bins read
// -Inf.
func (a *Analyzer) MagnitudeDB(dst *buffer.MutSlice[float64], src buffer.Slice[float64]) error {
	if err := a.Magnitude(dst, src); err != nil {
		return err
	}

	for k := range a.Bins() {
		dst.AssignUnchecked(k, core.LinearToDB(dst.GetUnchecked(k)))
	}

	return nil
}

// PeakBin returns the index and value of the largest bin in mag, skipping
// DC. It returns (0, 0) for fewer than two bins.
func PeakBin(mag buffer.Slice[float64]) (int, float64) {
	best, peak := 0, math.Inf(-1)
	for k, v := range mag.All() {
		if k == 0 {
			continue
		}
		if v > peak {
			best, peak = k, v
		}
	}
	if best == 0 {
		return 0, 0
	}
	return best, peak
}
