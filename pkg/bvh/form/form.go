// Package form binds a tree (or mod-tree) to a geom.Frame without owning
// either: a Form is the unit traversal algorithms operate on when a
// scene graph places the same tree at more than one location, since the
// tree's AABBs stay in the tree's own local space and only the frame
// moves.
package form

import (
	"github.com/flier/bvh/pkg/bvh"
	"github.com/flier/bvh/pkg/bvh/modtree"
	"github.com/flier/bvh/pkg/geom"
)

// Form is a non-owning binding of a tree to a frame.
type Form[P any, I geom.Index, R geom.Float] struct {
	Tree  *bvh.Tree[P, I, R]
	Frame *geom.Frame[R]
}

// New binds tree to frame.
func New[P any, I geom.Index, R geom.Float](tree *bvh.Tree[P, I, R], frame *geom.Frame[R]) *Form[P, I, R] {
	return &Form[P, I, R]{Tree: tree, Frame: frame}
}

// ModForm is a non-owning binding of a mod-tree to a frame; MainForm and
// DeltaForm expose its two trees as independent Forms sharing the same
// frame, so search code written against a single Form is reusable across
// both halves of a ModTree without special-casing.
type ModForm[P any, I geom.Index, R geom.Float] struct {
	ModTree *modtree.ModTree[P, I, R]
	Frame   *geom.Frame[R]
}

// NewMod binds mt to frame.
func NewMod[P any, I geom.Index, R geom.Float](mt *modtree.ModTree[P, I, R], frame *geom.Frame[R]) *ModForm[P, I, R] {
	return &ModForm[P, I, R]{ModTree: mt, Frame: frame}
}

// MainForm returns a Form over the mod-tree's main half.
func (f *ModForm[P, I, R]) MainForm() *Form[P, I, R] {
	return &Form[P, I, R]{Tree: f.ModTree.Main, Frame: f.Frame}
}

// DeltaForm returns a Form over the mod-tree's delta half.
func (f *ModForm[P, I, R]) DeltaForm() *Form[P, I, R] {
	return &Form[P, I, R]{Tree: f.ModTree.Delta, Frame: f.Frame}
}
