package acfconv

import (
	"strings"
	"testing"

	"github.com/adeline-acf/acf-video-tool/acf"
)

func TestCameraStringIncludesFrameIndexAndFields(t *testing.T) {
	c := acf.Camera{
		PositionX: 1, PositionY: 2, PositionZ: 3,
		TargetX: 4, TargetY: 5, TargetZ: 6,
		Roll: 7, FocalLength: 100,
	}
	s := cameraString(3, c)

	if !strings.HasPrefix(s, "frame 3 ") {
		t.Fatalf("cameraString does not lead with the frame index: %q", s)
	}
	if !strings.Contains(s, "camera 1 2 3 4 5 6 7 ") {
		t.Fatalf("cameraString missing the expected camera fields: %q", s)
	}
	if !strings.HasSuffix(s, "\r\n") {
		t.Fatalf("cameraString must end with CRLF: %q", s)
	}
}

func TestVUEBuilderConcatenatesRecordsInOrder(t *testing.T) {
	b := NewVUEBuilder()
	b.Add(0, acf.Camera{FocalLength: 100})
	b.Add(1, acf.Camera{FocalLength: 100})

	out := b.String()
	if strings.Index(out, "frame 0 ") > strings.Index(out, "frame 1 ") {
		t.Fatalf("records out of order: %q", out)
	}
	if strings.Count(out, "frame ") != 2 {
		t.Fatalf("expected exactly 2 records, got %q", out)
	}
}
