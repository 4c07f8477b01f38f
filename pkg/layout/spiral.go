package layout

import (
	"math"

	"github.com/stakemap/stakemap/pkg/stakemap"
)

// Default spiral parameters for single-insert placement.
const (
	DefaultCenterX    = 400
	DefaultCenterY    = 300
	DefaultBaseRadius = 100
	radiusStep        = 30

	// goldenAngleDeg drives single-insert placement.
	goldenAngleDeg = 137.5
)

// BatchCenterX and friends are the spiral parameters used for batch
// placement of CSV imports.
const (
	BatchCenterX = 500
	BatchCenterY = 350
	BatchRadius  = 200
)

// DefaultPosition places the index-th auto-positioned stakeholder on a
// golden-angle spiral around the default canvas center. The angle grows by
// 137.5 degrees per index and the radius by a fixed step, so no two indexes
// ever coincide. Coordinates are rounded to integers.
func DefaultPosition(index int) stakemap.Position {
	return SpiralPosition(index, DefaultCenterX, DefaultCenterY, DefaultBaseRadius)
}

// SpiralPosition is DefaultPosition with explicit center and base radius.
func SpiralPosition(index int, centerX, centerY, baseRadius float64) stakemap.Position {
	radius := baseRadius + float64(index)*radiusStep
	angle := float64(index) * goldenAngleDeg * math.Pi / 180
	return stakemap.Position{
		X: math.Round(centerX + radius*math.Cos(angle)),
		Y: math.Round(centerY + radius*math.Sin(angle)),
	}
}

// Positions computes a batch spiral for count stakeholders at once, used
// when an import lays out a whole set in one pass.
//
// This formula is deliberately not the same as [DefaultPosition]: it uses
// the radians form of the golden angle and scales the radius across the
// batch instead of growing it per insert. The two layouts differ for
// logically equivalent insert sequences; both are kept because exported
// documents depend on each being reproducible.
func Positions(count int, centerX, centerY, radius float64) []stakemap.Position {
	goldenAngle := math.Pi * (3 - math.Sqrt(5))

	out := make([]stakemap.Position, count)
	for i := 0; i < count; i++ {
		angle := float64(i) * goldenAngle
		denom := float64(count - 1)
		if denom < 1 {
			denom = 1
		}
		r := radius * (0.5 + 0.5*float64(i)/denom)
		out[i] = stakemap.Position{
			X: math.Round(centerX + r*math.Cos(angle)),
			Y: math.Round(centerY + r*math.Sin(angle)),
		}
	}
	return out
}

// BatchPositions is Positions with the standard batch-import parameters.
func BatchPositions(count int) []stakemap.Position {
	return Positions(count, BatchCenterX, BatchCenterY, BatchRadius)
}
