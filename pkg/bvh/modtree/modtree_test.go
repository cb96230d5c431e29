package modtree_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/bvh/pkg/bvh"
	"github.com/flier/bvh/pkg/bvh/modtree"
	"github.com/flier/bvh/pkg/bvh/partition"
	"github.com/flier/bvh/pkg/geom"
	"github.com/flier/bvh/pkg/xsync"
)

type point2D struct{ x, y float64 }

func pointAABB(p point2D) geom.AABB[float64] {
	v := geom.Vec2(p.x, p.y)
	return geom.NewAABB(v, v)
}

func makePoints(n int) []point2D {
	pts := make([]point2D, n)
	for i := 0; i < n; i++ {
		pts[i] = point2D{x: float64(i), y: float64(i % 3)}
	}
	return pts
}

func TestModTree(t *testing.T) {
	Convey("ModTree", t, func() {
		exec := xsync.NewExecutor(4)
		cfg := bvh.NewTreeConfig(bvh.WithLeafSize(2), bvh.WithParallelCutoffDepth(2))
		strat := partition.NthElement[int]{}

		Convey("Update never builds Main, so RebuildMain over a fresh ModTree leaves Main empty", func() {
			mt := modtree.New[point2D, int32, float64]()

			points := makePoints(30)
			err := mt.Update(points, idsOf(30), func(int32) bool { return true }, pointAABB, cfg, strat, exec)
			So(err, ShouldBeNil)

			mt.RebuildMain(cfg, strat, exec)
			So(mt.Main.Empty(), ShouldBeTrue)
		})

		Convey("Update should populate Delta over the new batch", func() {
			mt := modtree.New[point2D, int32, float64]()

			points := makePoints(10)
			err := mt.Update(points, idsOf(10), func(int32) bool { return true }, pointAABB, cfg, strat, exec)
			So(err, ShouldBeNil)

			So(mt.Delta.Empty(), ShouldBeFalse)
			So(len(mt.DeltaIDs), ShouldEqual, 10)
		})

		Convey("Compact should drop rejected IDs while preserving survivors", func() {
			mt := modtree.New[point2D, int32, float64]()

			points := makePoints(20)
			err := mt.Update(points, nil, func(int32) bool { return true }, pointAABB, cfg, strat, exec)
			So(err, ShouldBeNil)

			// Promote delta into main by adopting the delta tree as Main
			// as it is, with no rebuild.
			mt.Main = mt.Delta
			mt.Delta = &bvh.Tree[point2D, int32, float64]{}

			mt.Compact(func(id int32) bool { return id%2 == 0 }, exec)

			So(len(mt.Main.IDs), ShouldEqual, 10)
			for _, id := range mt.Main.IDs {
				So(id%2, ShouldEqual, 0)
			}
		})

		Convey("RebuildMain should restore a balanced topology after compaction", func() {
			mt := modtree.New[point2D, int32, float64]()

			points := makePoints(40)
			err := mt.Update(points, nil, func(int32) bool { return true }, pointAABB, cfg, strat, exec)
			So(err, ShouldBeNil)

			mt.Main = mt.Delta
			mt.Delta = &bvh.Tree[point2D, int32, float64]{}

			mt.Compact(func(id int32) bool { return id < 20 }, exec)
			mt.RebuildMain(cfg, strat, exec)

			So(len(mt.Main.IDs), ShouldEqual, 20)

			stats := mt.Main.Stats()
			So(stats.PrimitiveCount, ShouldEqual, 20)
		})
	})
}

func idsOf(n int) []int32 {
	ids := make([]int32, n)
	for i := range ids {
		ids[i] = int32(i)
	}
	return ids
}
