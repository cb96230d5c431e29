package geom_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/bvh/pkg/geom"
)

func TestRay(t *testing.T) {
	Convey("Ray", t, func() {
		Convey("At should step along the direction from the origin", func() {
			r := geom.NewRay(geom.Vec2(1.0, 1.0), geom.Vec2(1.0, 0.0))

			So(r.At(3), ShouldResemble, geom.Vec2(4.0, 1.0))
		})

		Convey("Transform should move the origin as a point and the direction as a vector", func() {
			r := geom.NewRay(geom.Vec2(0.0, 0.0), geom.Vec2(1.0, 0.0))
			tr := geom.NewTransformation(2, []float64{1, 0, 0, 1}, []float64{5, 5})

			t := r.Transform(tr)
			So(t.Origin, ShouldResemble, geom.Vec2(5.0, 5.0))
			So(t.Direction, ShouldResemble, geom.Vec2(1.0, 0.0))
		})
	})
}
