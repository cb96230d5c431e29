package geom_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/bvh/pkg/geom"
)

func TestTransformation(t *testing.T) {
	Convey("Transformation", t, func() {
		Convey("Identity should leave points and vectors unchanged", func() {
			id := geom.Identity[float64](3)
			p := geom.Vec3(1.0, 2.0, 3.0)

			So(id.TransformPoint(p), ShouldResemble, p)
			So(id.TransformVector(p), ShouldResemble, p)
		})

		Convey("NewTransformation should panic on a shape mismatch", func() {
			So(func() {
				geom.NewTransformation(2, []float64{1, 0, 0}, []float64{0, 0})
			}, ShouldPanic)
		})

		Convey("TransformPoint should apply the linear part then translate", func() {
			scale := geom.NewTransformation(2, []float64{2, 0, 0, 2}, []float64{1, 1})
			p := geom.Vec2(3.0, 4.0)

			So(scale.TransformPoint(p), ShouldResemble, geom.Vec2(7.0, 9.0))
		})

		Convey("TransformVector should ignore translation", func() {
			scale := geom.NewTransformation(2, []float64{2, 0, 0, 2}, []float64{1, 1})
			v := geom.Vec2(3.0, 4.0)

			So(scale.TransformVector(v), ShouldResemble, geom.Vec2(6.0, 8.0))
		})

		Convey("Translation should return the translation component", func() {
			tr := geom.NewTransformation(2, []float64{1, 0, 0, 1}, []float64{5, -2})

			So(tr.Translation(), ShouldResemble, geom.Vec2(5.0, -2.0))
		})

		Convey("Compose should apply the inner transformation first", func() {
			scale := geom.NewTransformation(2, []float64{2, 0, 0, 2}, []float64{0, 0})
			translate := geom.NewTransformation(2, []float64{1, 0, 0, 1}, []float64{1, 1})

			composed := translate.Compose(scale)
			p := geom.Vec2(3.0, 4.0)

			So(composed.TransformPoint(p), ShouldResemble, scale.TransformPoint(p).Add(geom.Vec2(1, 1)))
		})

		Convey("Invert should round-trip a translation", func() {
			tr := geom.NewTransformation(2, []float64{1, 0, 0, 1}, []float64{5, -2})

			inv, err := tr.Invert()
			So(err, ShouldBeNil)

			p := geom.Vec2(1.0, 1.0)
			So(inv.TransformPoint(tr.TransformPoint(p)), ShouldResemble, p)
		})

		Convey("Invert should round-trip a scale and rotation", func() {
			tr := geom.NewTransformation(2, []float64{0, -2, 2, 0}, []float64{3, 4})

			inv, err := tr.Invert()
			So(err, ShouldBeNil)

			p := geom.Vec2(5.0, -1.0)
			result := inv.TransformPoint(tr.TransformPoint(p))

			So(result.X(), ShouldAlmostEqual, p.X(), 1e-9)
			So(result.Y(), ShouldAlmostEqual, p.Y(), 1e-9)
		})

		Convey("Invert should fail on a singular matrix", func() {
			tr := geom.NewTransformation(2, []float64{1, 1, 1, 1}, []float64{0, 0})

			_, err := tr.Invert()
			So(err, ShouldEqual, geom.ErrSingular)
		})
	})
}
