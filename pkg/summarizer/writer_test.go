package summarizer

import (
	"errors"
	"testing"

	"github.com/user/c63/pkg/mocks"
)

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(s *Summary) string { return "frames: 3" }), fs)

	if err := w.Write("out/summary.md", NewSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile("out/summary.md")
	if !ok {
		t.Fatal("summary file not written")
	}
	if string(data) != "frames: 3" {
		t.Errorf("content = %q", data)
	}
}

func TestWriter_Write_Error(t *testing.T) {
	errDisk := errors.New("disk full")
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error { return errDisk }
	w := NewWriter(NewMarkdownFormatter(), fs)

	if err := w.Write("summary.md", NewSummary()); !errors.Is(err, errDisk) {
		t.Errorf("expected wrapped disk error, got %v", err)
	}
}
