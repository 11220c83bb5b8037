package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"spritecam/internal/logger"
	"spritecam/internal/mathutil"
	"spritecam/internal/rig"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"go.uber.org/zap"
)

// ErrNoGeometry is returned when a model has no positioned vertices.
var ErrNoGeometry = errors.New("model: no geometry")

// Extensions lists the model file extensions LoadDimensions understands.
var Extensions = []string{".glb", ".gltf"}

// LoadDimensions opens a glTF or GLB file and returns the extents of its
// world-space bounding box.
func LoadDimensions(path string) (rig.ModelDimensions, error) {
	b, err := LoadBounds(path)
	if err != nil {
		return rig.ModelDimensions{}, err
	}
	return b.Dimensions(), nil
}

// LoadBounds opens a glTF or GLB file and returns its world-space bounding box.
func LoadBounds(path string) (Bounds, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".glb" && ext != ".gltf" {
		return Bounds{}, fmt.Errorf("model: unsupported extension %q: %s", ext, path)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		return Bounds{}, fmt.Errorf("model: open %s: %w", path, err)
	}

	b, err := DocumentBounds(doc)
	if err != nil {
		return Bounds{}, fmt.Errorf("%w: %s", err, path)
	}

	logger.Debug("model bounds",
		zap.String("path", path),
		zap.Float64s("min", b.Min[:]),
		zap.Float64s("max", b.Max[:]))
	return b, nil
}

// DocumentBounds walks the default scene (or every root node when no scene
// is set) and unions the POSITION accessor bounds of each mesh under its
// node's world transform.
func DocumentBounds(doc *gltf.Document) (Bounds, error) {
	w := &walker{doc: doc, bounds: NewBounds(), seen: make(map[int]bool)}

	for _, n := range w.roots() {
		w.visit(n, mgl64.Ident4())
	}

	// Meshes not referenced by any node still describe the model.
	if w.bounds.Empty() {
		for i := range doc.Meshes {
			w.bounds.Union(w.meshBounds(i, mgl64.Ident4()))
		}
	}

	if w.bounds.Empty() {
		return Bounds{}, ErrNoGeometry
	}
	return w.bounds, nil
}

type walker struct {
	doc    *gltf.Document
	bounds Bounds
	seen   map[int]bool
}

func (w *walker) roots() []int {
	doc := w.doc
	if len(doc.Scenes) > 0 {
		scene := 0
		if doc.Scene != nil {
			scene = int(*doc.Scene)
		}
		if scene >= 0 && scene < len(doc.Scenes) {
			var out []int
			for _, n := range doc.Scenes[scene].Nodes {
				out = append(out, int(n))
			}
			return out
		}
	}

	child := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			child[int(c)] = true
		}
	}
	var out []int
	for i := range doc.Nodes {
		if !child[i] {
			out = append(out, i)
		}
	}
	return out
}

func (w *walker) visit(idx int, parent mgl64.Mat4) {
	if idx < 0 || idx >= len(w.doc.Nodes) || w.seen[idx] {
		return
	}
	w.seen[idx] = true

	n := w.doc.Nodes[idx]
	world := parent.Mul4(localTransform(n))
	if n.Mesh != nil {
		w.bounds.Union(w.meshBounds(int(*n.Mesh), world))
	}
	for _, c := range n.Children {
		w.visit(int(c), world)
	}
}

func (w *walker) meshBounds(idx int, world mgl64.Mat4) Bounds {
	out := NewBounds()
	if idx < 0 || idx >= len(w.doc.Meshes) {
		return out
	}
	for _, prim := range w.doc.Meshes[idx].Primitives {
		pos, ok := prim.Attributes[gltf.POSITION]
		if !ok || int(pos) >= len(w.doc.Accessors) {
			continue
		}
		acc := w.doc.Accessors[pos]
		if len(acc.Min) < 3 || len(acc.Max) < 3 {
			logger.Warn("position accessor without min/max, skipped", zap.String("accessor", acc.Name))
			continue
		}
		local := Bounds{Min: toVec3(acc.Min), Max: toVec3(acc.Max)}
		for _, c := range local.Corners() {
			p := world.Mul4x1(mgl64.Vec3(c).Vec4(1))
			out.Extend(mathutil.Vec3{p[0], p[1], p[2]})
		}
	}
	return out
}

// localTransform returns the node's matrix, or T*R*S when no matrix is set.
func localTransform(n *gltf.Node) mgl64.Mat4 {
	var m mgl64.Mat4
	for i, v := range n.MatrixOrDefault() {
		m[i] = float64(v)
	}
	if m != mgl64.Ident4() {
		return m
	}

	t := n.TranslationOrDefault()
	r := n.RotationOrDefault()
	s := n.ScaleOrDefault()
	q := mgl64.Quat{W: float64(r[3]), V: mgl64.Vec3{float64(r[0]), float64(r[1]), float64(r[2])}}

	return mgl64.Translate3D(float64(t[0]), float64(t[1]), float64(t[2])).
		Mul4(q.Normalize().Mat4()).
		Mul4(mgl64.Scale3D(float64(s[0]), float64(s[1]), float64(s[2])))
}

func toVec3[T float32 | float64](v []T) mathutil.Vec3 {
	return mathutil.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
