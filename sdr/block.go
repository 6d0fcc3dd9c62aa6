// SPDX-License-Identifier: EPL-2.0

package sdr

// SampleFormat identifies the planar sample encoding of a stream.
type SampleFormat uint8

const (
	// FormatUnknown is the zero value; it is never accepted.
	FormatUnknown SampleFormat = iota
	// FormatFloat32 is planar 32-bit floating point.
	FormatFloat32
	// FormatFloat64 is planar 64-bit floating point.
	FormatFloat64
)

func (f SampleFormat) String() string {
	switch f {
	case FormatFloat32:
		return "fltp"
	case FormatFloat64:
		return "dblp"
	default:
		return "unknown"
	}
}

// Block is a transient planar view of audio samples: one slice per channel,
// all of equal length, tagged with the sample format and a presentation
// timestamp counted in samples. Blocks are never mutated by this package;
// the reference-side block of every aligned pair is forwarded downstream
// exactly as it came in.
type Block struct {
	format SampleFormat
	f32    [][]float32
	f64    [][]float64
	pts    int64
}

// NewFloat32Block wraps planar float32 samples. The planes are not copied.
func NewFloat32Block(planes [][]float32, pts int64) *Block {
	return &Block{format: FormatFloat32, f32: planes, pts: pts}
}

// NewFloat64Block wraps planar float64 samples. The planes are not copied.
func NewFloat64Block(planes [][]float64, pts int64) *Block {
	return &Block{format: FormatFloat64, f64: planes, pts: pts}
}

// Format reports the sample encoding of the block.
func (b *Block) Format() SampleFormat { return b.format }

// PTS is the presentation timestamp of the first sample, in samples.
func (b *Block) PTS() int64 { return b.pts }

// Channels reports the number of planes.
func (b *Block) Channels() int {
	if b.format == FormatFloat64 {
		return len(b.f64)
	}
	return len(b.f32)
}

// Samples reports the per-channel sample count.
func (b *Block) Samples() int {
	if b.format == FormatFloat64 {
		if len(b.f64) == 0 {
			return 0
		}
		return len(b.f64[0])
	}
	if len(b.f32) == 0 {
		return 0
	}
	return len(b.f32[0])
}

// Float32Planes returns the planar samples of a FormatFloat32 block, nil
// otherwise.
func (b *Block) Float32Planes() [][]float32 { return b.f32 }

// Float64Planes returns the planar samples of a FormatFloat64 block, nil
// otherwise.
func (b *Block) Float64Planes() [][]float64 { return b.f64 }
