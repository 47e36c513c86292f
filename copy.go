package sketch

import (
	"fmt"
	"math"

	"honnef.co/go/sketch/handle"
)

// CopyAs selects the transform a copied entity applies to its source.
type CopyAs uint8

const (
	// CopyNumeric makes a locked copy at the source's current position.
	CopyNumeric CopyAs = iota
	// CopyNTrans translates by Trans, TimesApplied times.
	CopyNTrans
	// CopyNRotTrans rotates by the quaternion Rot and translates by Trans.
	CopyNRotTrans
	// CopyNRotAA rotates about an axis: Trans is the center, Rot[0] the
	// angle and Rot[1:] the axis.
	CopyNRotAA
	// CopyNRotAxisTrans is CopyNRotAA followed by a displacement of Dist
	// along the axis.
	CopyNRotAxisTrans
)

func (c CopyAs) String() string {
	switch c {
	case CopyNumeric:
		return "numeric"
	case CopyNTrans:
		return "n-trans"
	case CopyNRotTrans:
		return "n-rot-trans"
	case CopyNRotAA:
		return "n-rot-aa"
	case CopyNRotAxisTrans:
		return "n-rot-axis-trans"
	default:
		return fmt.Sprintf("CopyAs(%d)", c)
	}
}

// CopyOptions describes one copy of an entity.
type CopyOptions struct {
	// Group synthesizes the copy and owns its handle.
	Group *Group
	As    CopyAs
	// TimesApplied is how often the transform is applied. It also selects
	// the copy's handle among the group's copies of the same source.
	TimesApplied int
	Trans        [3]handle.Param
	Rot          [4]handle.Param
	Dist         handle.Param
	// Scale multiplies the source's position and distances. Zero means 1.
	Scale float64
}

func (o *CopyOptions) axis() [3]handle.Param {
	return [3]handle.Param{o.Rot[1], o.Rot[2], o.Rot[3]}
}

// CopyEntity adds the transformed copy of src described by opt and returns
// it. Points, normals, distances and faces become copies based on the
// numeric state of src; structural entities refer to the copies of their
// children. Workplanes are not copied, and CopyEntity returns nil for them.
func (sk *Sketch) CopyEntity(src *Entity, opt CopyOptions) *Entity {
	if src.IsWorkplane() {
		return nil
	}
	scale := opt.Scale
	if scale == 0 {
		scale = 1
	}
	g := opt.Group
	remap := func(h handle.Entity) handle.Entity {
		if h == handle.NoEntity {
			return h
		}
		return g.Remap(h, opt.TimesApplied)
	}

	e := Entity{
		H:            remap(src.H),
		Group:        g.H,
		Workplane:    handle.FreeIn3D,
		Construction: src.Construction,
	}

	switch k := src.Kind.(type) {
	case LineSegment:
		e.Kind = LineSegment{Point: [2]handle.Entity{remap(k.Point[0]), remap(k.Point[1])}}
	case Cubic:
		e.Kind = Cubic{Point: remapAll(k.Point, remap)}
	case CubicPeriodic:
		e.Kind = CubicPeriodic{Point: remapAll(k.Point, remap)}
	case Circle:
		e.Kind = Circle{Center: remap(k.Center), Normal: remap(k.Normal), Distance: remap(k.Distance)}
	case ArcOfCircle:
		e.Kind = ArcOfCircle{
			Normal: remap(k.Normal),
			Point:  [3]handle.Entity{remap(k.Point[0]), remap(k.Point[1]), remap(k.Point[2])},
		}
	case TTFText:
		k.Normal = remap(k.Normal)
		for i, h := range k.Point {
			k.Point[i] = remap(h)
		}
		e.Kind = k
	case Image:
		k.Normal = remap(k.Normal)
		for i, h := range k.Point {
			k.Point[i] = remap(h)
		}
		e.Kind = k
	default:
		switch {
		case src.IsPoint():
			e.Kind = copyPoint(src.ActPoint.Mul(scale), &opt)
		case src.IsNormal():
			e.Kind = copyNormal(src.ActNormal, &opt)
			e.Anchor = remap(src.Anchor)
		case src.IsDistance():
			e.Kind = DistanceNCopy{Base: src.ActDistance * math.Abs(scale)}
		case src.IsFace():
			e.Kind = copyFace(src.ActPoint.Mul(scale), src.ActFaceNormal, &opt)
		default:
			violate("CopyEntity", "cannot copy %s", src)
		}
	}
	return sk.addEntity(e)
}

func remapAll(hs []handle.Entity, remap func(handle.Entity) handle.Entity) []handle.Entity {
	out := make([]handle.Entity, len(hs))
	for i, h := range hs {
		out[i] = remap(h)
	}
	return out
}

func copyPoint(base Vector, opt *CopyOptions) Kind {
	switch opt.As {
	case CopyNTrans:
		return PointNTrans{Base: base, Trans: opt.Trans, TimesApplied: opt.TimesApplied}
	case CopyNRotTrans:
		return PointNRotTrans{Base: base, Trans: opt.Trans, Rot: opt.Rot}
	case CopyNRotAA:
		return PointNRotAA{
			Base:         base,
			Center:       opt.Trans,
			Angle:        opt.Rot[0],
			Axis:         opt.axis(),
			TimesApplied: opt.TimesApplied,
		}
	case CopyNRotAxisTrans:
		return PointNRotAxisTrans{
			Base:         base,
			Center:       opt.Trans,
			Angle:        opt.Rot[0],
			Axis:         opt.axis(),
			Dist:         opt.Dist,
			TimesApplied: opt.TimesApplied,
		}
	default:
		return PointNCopy{Base: base}
	}
}

func copyNormal(base Quaternion, opt *CopyOptions) Kind {
	switch opt.As {
	case CopyNumeric, CopyNTrans:
		return NormalNCopy{Base: base}
	case CopyNRotAA, CopyNRotAxisTrans:
		return NormalNRotAA{
			Base:         base,
			Angle:        opt.Rot[0],
			Axis:         opt.axis(),
			TimesApplied: opt.TimesApplied,
		}
	default:
		return NormalNRot{Base: base, Rot: opt.Rot}
	}
}

func copyFace(base, normal Vector, opt *CopyOptions) Kind {
	switch opt.As {
	case CopyNumeric:
		// Never translated, so the parameters are never read.
		return FaceNTrans{BaseNormal: normal, Base: base}
	case CopyNTrans:
		return FaceNTrans{BaseNormal: normal, Base: base, Trans: opt.Trans, TimesApplied: opt.TimesApplied}
	case CopyNRotAA:
		return FaceNRotAA{
			BaseNormal:   normal,
			Base:         base,
			Center:       opt.Trans,
			Angle:        opt.Rot[0],
			Axis:         opt.axis(),
			TimesApplied: opt.TimesApplied,
		}
	case CopyNRotAxisTrans:
		return FaceNRotAxisTrans{
			BaseNormal:   normal,
			Base:         base,
			Center:       opt.Trans,
			Angle:        opt.Rot[0],
			Axis:         opt.axis(),
			Dist:         opt.Dist,
			TimesApplied: opt.TimesApplied,
		}
	default:
		return FaceNRotTrans{BaseNormal: normal, Base: base, Trans: opt.Trans, Rot: opt.Rot}
	}
}

// Parameters of step-and-repeat groups.
const (
	transParam  = 0 // 0..2: translation, or center of rotation
	angleParam  = 3
	axisParam   = 4 // 4..6
	helixParam  = 7
	defaultStep = 30 * math.Pi / 180
)

// generateCopies adds the parameters and copied entities of a
// step-and-repeat group. The first copy is never transformed.
func (sk *Sketch) generateCopies(g *Group) {
	var as CopyAs
	switch g.Type {
	case GroupTranslate:
		as = CopyNTrans
	case GroupRotate:
		as = CopyNRotAA
	case GroupHelix:
		as = CopyNRotAxisTrans
	default:
		return
	}

	opt := CopyOptions{Group: g, As: as}
	for i := range opt.Trans {
		opt.Trans[i] = sk.addParam(g.H.Param(transParam+i), 0)
	}
	if as != CopyNTrans {
		opt.Rot[0] = sk.addParam(g.H.Param(angleParam), defaultStep)
		for i, v := range [3]float64{0, 0, 1} {
			opt.Rot[1+i] = sk.addParam(g.H.Param(axisParam+i), v)
		}
	}
	if as == CopyNRotAxisTrans {
		opt.Dist = sk.addParam(g.H.Param(helixParam), 0)
	}

	var src []*Entity
	for _, e := range sk.Entities.All() {
		if e.Group == g.Source {
			src = append(src, e)
		}
	}
	for a := range g.Copies {
		opt.TimesApplied = a
		for _, e := range src {
			sk.CopyEntity(e, opt)
		}
	}
}
