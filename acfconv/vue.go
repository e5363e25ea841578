package acfconv

import (
	"fmt"
	"math"
	"strings"

	"github.com/adeline-acf/acf-video-tool/acf"
)

// cameraFrameWidth is the fixed screen width the field-of-view formula is
// derived against; the source hard-codes it rather than taking it from
// the active Format.
const cameraFrameWidth = 320.0

// cameraString reproduces Camera::GetCameraString: a "frame N" line
// followed by a "camera ..." line carrying position, target, roll, and a
// derived field-of-view angle.
func cameraString(frameIndex int, c acf.Camera) string {
	fov := (1200.0 * math.Pi) / math.Atan((cameraFrameWidth/2)/(float64(c.FocalLength)-0.5)) / 180.0
	return fmt.Sprintf(
		"frame %d \r\ncamera %d %d %d %d %d %d %d %g\r\n",
		frameIndex,
		c.PositionX, c.PositionY, c.PositionZ,
		c.TargetX, c.TargetY, c.TargetZ,
		c.Roll, fov,
	)
}

// VUEBuilder accumulates one textual record per Camera chunk, keyed by
// the frame index active when the chunk arrived.
type VUEBuilder struct {
	records []string
}

// NewVUEBuilder returns an empty builder.
func NewVUEBuilder() *VUEBuilder {
	return &VUEBuilder{}
}

// Add appends the textual record for one Camera chunk.
func (b *VUEBuilder) Add(frameIndex int, camera acf.Camera) {
	b.records = append(b.records, cameraString(frameIndex, camera))
}

// String returns the concatenated animation-file text.
func (b *VUEBuilder) String() string {
	return strings.Join(b.records, "")
}
