package yuvfile

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/user/c63/pkg/yuv"
)

// rawPicture fills each plane with a distinct ramp so rows can be told apart.
func rawPicture(g yuv.Geometry) []byte {
	var out []byte
	for _, c := range yuv.Components {
		for i := 0; i < g.RawSize(c); i++ {
			out = append(out, byte(int(c)*64+i))
		}
	}
	return out
}

func TestReader_PlacesRowsAtPaddedStride(t *testing.T) {
	g := yuv.NewGeometry(20, 12)
	data := rawPicture(g)

	r := NewReader(bytes.NewReader(data), g)
	img, err := r.ReadPicture()
	if err != nil {
		t.Fatalf("ReadPicture failed: %v", err)
	}

	y := img.Plane(yuv.ComponentY)
	if y.Width != 32 || y.Height != 16 {
		t.Fatalf("luma plane %dx%d, want 32x16", y.Width, y.Height)
	}
	// Row 1 of the raw picture starts at raw offset 20 and lands at stride 32.
	if y.Pix[32] != data[20] || y.Pix[32+19] != data[39] {
		t.Errorf("luma row 1 misplaced: got %d..%d", y.Pix[32], y.Pix[32+19])
	}
	if y.Pix[20] != 0 || y.Pix[31] != 0 {
		t.Error("luma padding columns are not zero")
	}
	for _, p := range y.Pix[12*32:] {
		if p != 0 {
			t.Fatal("luma padding rows are not zero")
		}
	}

	u := img.Plane(yuv.ComponentU)
	uStart := g.RawSize(yuv.ComponentY)
	if u.Pix[0] != data[uStart] || u.Pix[u.Width] != data[uStart+10] {
		t.Errorf("chroma rows misplaced")
	}

	if _, err := r.ReadPicture(); err != io.EOF {
		t.Errorf("expected io.EOF after last picture, got %v", err)
	}
	if r.Pictures() != 1 {
		t.Errorf("Pictures() = %d, want 1", r.Pictures())
	}
}

func TestReader_EmptyInputIsEOF(t *testing.T) {
	r := NewReader(bytes.NewReader(nil), yuv.NewGeometry(16, 16))
	img, err := r.ReadPicture()
	if err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
	if img != nil {
		t.Error("expected nil picture")
	}
}

func TestReader_ShortReadIsInvalidData(t *testing.T) {
	g := yuv.NewGeometry(16, 16)
	full := rawPicture(g)

	tests := []struct {
		name string
		size int
	}{
		{"inside luma", 100},
		{"luma only", g.RawSize(yuv.ComponentY)},
		{"missing last byte", len(full) - 1},
		{"second picture truncated", len(full) + 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append(append([]byte{}, full...), full...)[:tt.size]
			r := NewReader(bytes.NewReader(data), g)

			var err error
			for err == nil {
				_, err = r.ReadPicture()
			}
			if !errors.Is(err, ErrInvalidData) {
				t.Errorf("expected ErrInvalidData, got %v", err)
			}
		})
	}
}

func TestWriter_RoundTripsRawLayout(t *testing.T) {
	for _, dims := range [][2]int{{16, 16}, {20, 12}, {100, 50}} {
		g := yuv.NewGeometry(dims[0], dims[1])
		data := append(rawPicture(g), rawPicture(g)...)

		r := NewReader(bytes.NewReader(data), g)
		var out bytes.Buffer
		w := NewWriter(&out, g)

		for {
			img, err := r.ReadPicture()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("%v: ReadPicture failed: %v", dims, err)
			}
			if err := w.WritePicture(img); err != nil {
				t.Fatalf("%v: WritePicture failed: %v", dims, err)
			}
		}

		if diff := cmp.Diff(data, out.Bytes()); diff != "" {
			t.Errorf("%v: round trip mismatch (-want +got):\n%s", dims, diff)
		}
	}
}

func TestWriter_GeometryMismatch(t *testing.T) {
	w := NewWriter(io.Discard, yuv.NewGeometry(32, 32))
	if err := w.WritePicture(yuv.NewImage(yuv.NewGeometry(16, 16))); err == nil {
		t.Error("expected error for mismatched picture")
	}
}
