// Package mp4sink stores encoded frames as a fragmented MP4 file. Each frame
// becomes one sample holding its c63 stream segment.
package mp4sink

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/c63/pkg/adapters/c63stream"
	"github.com/user/c63/pkg/ports"
	"github.com/user/c63/pkg/yuv"
)

// SampleEntry is the four character code of the c63 visual sample entry.
const SampleEntry = "c63v"

const trackID = 1

// Sink implements ports.FrameWriter as a fragmented MP4.
type Sink struct {
	w         *bufio.Writer
	fps       int
	timescale uint32
	enc       *c63stream.SegmentEncoder
	geom      yuv.Geometry
	sample    []byte
	frag      bytes.Buffer
}

// New creates a Sink writing to w at fps frames per second.
func New(w io.Writer, fps int) *Sink {
	if fps <= 0 {
		fps = 30
	}
	return &Sink{
		w:         bufio.NewWriter(w),
		fps:       fps,
		timescale: uint32(fps * 1000),
	}
}

// Begin writes ftyp and the moov box describing a single c63 track.
func (s *Sink) Begin(header ports.StreamHeader) error {
	if err := c63stream.CheckGeometry(header.Geometry); err != nil {
		return err
	}
	enc, err := c63stream.NewSegmentEncoder(header.Quant)
	if err != nil {
		return err
	}
	s.enc = enc
	s.geom = header.Geometry

	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(s.timescale, "video", "und")
	trak := init.Moov.Trak

	width := uint16(s.geom.PlaneWidth(yuv.ComponentY))
	height := uint16(s.geom.PlaneHeight(yuv.ComponentY))
	entry := mp4.CreateVisualSampleEntryBox(SampleEntry, width, height, &mp4.PaspBox{HSpacing: 1, VSpacing: 1})
	trak.Mdia.Minf.Stbl.Stsd.AddChild(entry)

	trak.Tkhd.Width = mp4.Fixed32(s.geom.Width << 16)
	trak.Tkhd.Height = mp4.Fixed32(s.geom.Height << 16)

	ftyp := mp4.NewFtyp("isom", 0x200, []string{"isom", "iso6", "mp41"})
	if err := ftyp.Encode(s.w); err != nil {
		return fmt.Errorf("encode ftyp: %w", err)
	}
	if err := init.Moov.Encode(s.w); err != nil {
		return fmt.Errorf("encode moov: %w", err)
	}
	return nil
}

// WriteFrame writes one moof/mdat pair carrying the frame segment.
func (s *Sink) WriteFrame(frame *yuv.Frame) (int, error) {
	if s.enc == nil {
		return 0, c63stream.ErrNotStarted
	}

	frag, err := mp4.CreateFragment(uint32(frame.Number+1), trackID)
	if err != nil {
		return 0, fmt.Errorf("create fragment: %w", err)
	}

	s.sample = s.enc.AppendSegment(s.sample[:0], frame, s.geom)
	dur := s.timescale / uint32(s.fps)

	flags := mp4.NonSyncSampleFlags
	if frame.Keyframe {
		flags = mp4.SyncSampleFlags
	}

	frag.AddFullSample(mp4.FullSample{
		Sample: mp4.Sample{
			Flags: flags,
			Size:  uint32(len(s.sample)),
			Dur:   dur,
		},
		DecodeTime: uint64(frame.Number) * uint64(dur),
		Data:       s.sample,
	})

	s.frag.Reset()
	if err := frag.Encode(&s.frag); err != nil {
		return 0, fmt.Errorf("encode fragment %d: %w", frame.Number, err)
	}
	n, err := s.w.Write(s.frag.Bytes())
	if err != nil {
		return n, fmt.Errorf("write fragment %d: %w", frame.Number, err)
	}
	return n, nil
}

// End flushes buffered fragments.
func (s *Sink) End() error {
	if s.enc == nil {
		return c63stream.ErrNotStarted
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flush mp4: %w", err)
	}
	return s.enc.Close()
}

var _ ports.FrameWriter = (*Sink)(nil)
