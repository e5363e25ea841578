package hexline

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteEmitsPairedASCIIAndHexLines(t *testing.T) {
	var out bytes.Buffer
	contents := bytes.NewReader([]byte("AB"))

	if err := Write(&out, contents, 0, 2); err != nil {
		t.Fatalf("Write: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected an ASCII line and a hex line, got %d: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[0], " A B") {
		t.Fatalf("ASCII line = %q, want it to contain \" A B\"", lines[0])
	}
	if !strings.Contains(lines[1], "4142") {
		t.Fatalf("hex line = %q, want it to contain 4142", lines[1])
	}
}

func TestWriteRendersUnprintableBytesAsDots(t *testing.T) {
	var out bytes.Buffer
	contents := bytes.NewReader([]byte{0x00, 0x01})

	if err := Write(&out, contents, 0, 2); err != nil {
		t.Fatalf("Write: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if !strings.Contains(lines[0], "....") {
		t.Fatalf("ASCII line = %q, want unprintable bytes rendered as dots", lines[0])
	}
}

func TestWriteHonorsByteLimit(t *testing.T) {
	var out bytes.Buffer
	contents := bytes.NewReader([]byte("ABCDEFGH"))

	if err := Write(&out, contents, 4, 8); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if !strings.Contains(out.String(), "4142 4344") && !strings.Contains(out.String(), "41424344") {
		t.Fatalf("expected only the first 4 bytes to be rendered: %q", out.String())
	}
}
