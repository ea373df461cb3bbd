package action

import (
	"testing"

	"github.com/galago-remap/scte/internal/constants"
	"github.com/galago-remap/scte/internal/param"
)

func TestSensitivityVanishesAtCompressAndConfiguresChild(t *testing.T) {
	child := mustAxis(t, constants.AxisLX)
	a, err := New("sens", []param.Parameter{
		param.NewFloat(2.0), param.NewFloat(3.0), param.NewFloat(1.0), param.NewAction(child),
	})
	if err != nil {
		t.Fatalf("building sens(): %v", err)
	}
	compressed := a.Compress()
	if compressed != child {
		t.Fatalf("expected sens() to disappear at Compress, returning the child itself")
	}
	ax := compressed.(*axisAction)
	if ax.scale != 2.0 {
		t.Fatalf("expected SetSensitivity(2, 3, 1) to set scale=2, got %g", ax.scale)
	}
}
