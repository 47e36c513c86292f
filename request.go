package sketch

import (
	"fmt"

	"honnef.co/go/sketch/handle"
)

// RequestType identifies the primitive a request generates.
type RequestType uint8

const (
	RequestWorkplane RequestType = iota + 1
	RequestDatumPoint
	RequestLineSegment
	RequestCubic
	RequestCubicPeriodic
	RequestCircle
	RequestArcOfCircle
	RequestTTFText
	RequestImage
)

func (t RequestType) String() string {
	switch t {
	case RequestWorkplane:
		return "workplane"
	case RequestDatumPoint:
		return "datum-point"
	case RequestLineSegment:
		return "line-segment"
	case RequestCubic:
		return "cubic"
	case RequestCubicPeriodic:
		return "cubic-periodic"
	case RequestCircle:
		return "circle"
	case RequestArcOfCircle:
		return "arc-of-circle"
	case RequestTTFText:
		return "ttf-text"
	case RequestImage:
		return "image"
	default:
		return fmt.Sprintf("RequestType(%d)", t)
	}
}

// MaxPointsInEntity bounds the number of points a request may generate.
const MaxPointsInEntity = 12

// Local indices of the entities and parameters a request generates.
const (
	pointEntity    = 1
	pointParam     = 16
	normalEntity   = 32
	normalParam    = 32
	distanceEntity = 64
	distanceParam  = 64
)

// Request is a primitive placed by the user. Regenerating the sketch turns
// each request into its entities and parameters, with handles derived from
// the request's handle.
type Request struct {
	H     handle.Request
	Type  RequestType
	Group handle.Group
	// Workplane is the workplane the request is drawn in, or
	// [handle.FreeIn3D].
	Workplane handle.Entity
	// ExtraPoints is the number of on-curve points of a cubic beyond the
	// minimum.
	ExtraPoints  int
	Construction bool

	Str  string
	Font string
	File string
	// AspectRatio is width over height of a text or image rectangle. It
	// must be positive for those types.
	AspectRatio float64
}

// shape returns the number of points a request generates and whether it has
// a normal and a distance.
func (r *Request) shape() (points int, normal, distance bool) {
	switch r.Type {
	case RequestWorkplane:
		return 1, true, false
	case RequestDatumPoint:
		return 1, false, false
	case RequestLineSegment:
		return 2, false, false
	case RequestCubic:
		return 4 + r.ExtraPoints, false, false
	case RequestCubicPeriodic:
		return 3 + r.ExtraPoints, false, false
	case RequestCircle:
		return 1, true, true
	case RequestArcOfCircle:
		return 3, true, false
	case RequestTTFText, RequestImage:
		return 4, true, false
	default:
		violate("Request.Generate", "unknown request type %s", r.Type)
		return 0, false, false
	}
}

// Generate adds the entities and parameters of r to sk. Points come first,
// then the normal and the distance, then the primary entity.
func (r *Request) Generate(sk *Sketch) {
	n, hasNormal, hasDistance := r.shape()
	if n > MaxPointsInEntity || r.ExtraPoints < 0 {
		violate("Request.Generate", "%s: %d points out of range", r.H, n)
	}
	if (r.Type == RequestTTFText || r.Type == RequestImage) && !(r.AspectRatio > 0) {
		violate("Request.Generate", "%s: aspect ratio %g must be positive", r.H, r.AspectRatio)
	}
	wp := r.Workplane
	if r.Type == RequestWorkplane {
		// A workplane always lives in space.
		wp = handle.FreeIn3D
	}

	base := Entity{
		Group:        r.Group,
		Workplane:    wp,
		Construction: r.Construction,
	}

	points := make([]handle.Entity, n)
	for i := range points {
		e := base
		if r.Type == RequestDatumPoint {
			e.H = r.H.Entity(0)
		} else {
			e.H = r.H.Entity(pointEntity + i)
		}
		p0 := pointParam + 3*i
		if wp == handle.FreeIn3D {
			e.Kind = PointIn3D{Param: [3]handle.Param{
				sk.addParam(r.H.Param(p0), 0),
				sk.addParam(r.H.Param(p0+1), 0),
				sk.addParam(r.H.Param(p0+2), 0),
			}}
		} else {
			e.Kind = PointIn2D{Param: [2]handle.Param{
				sk.addParam(r.H.Param(p0), 0),
				sk.addParam(r.H.Param(p0+1), 0),
			}}
		}
		points[i] = sk.addEntity(e).H
	}
	if r.Type == RequestDatumPoint {
		return
	}

	var normal, distance handle.Entity
	if hasNormal {
		e := base
		e.H = r.H.Entity(normalEntity)
		e.Anchor = points[0]
		if wp == handle.FreeIn3D {
			e.Kind = NormalIn3D{Param: [4]handle.Param{
				sk.addParam(r.H.Param(normalParam), 1),
				sk.addParam(r.H.Param(normalParam+1), 0),
				sk.addParam(r.H.Param(normalParam+2), 0),
				sk.addParam(r.H.Param(normalParam+3), 0),
			}}
		} else {
			e.Kind = NormalIn2D{}
		}
		normal = sk.addEntity(e).H
	}
	if hasDistance {
		e := base
		e.H = r.H.Entity(distanceEntity)
		e.Kind = Distance{Param: sk.addParam(r.H.Param(distanceParam), 0)}
		distance = sk.addEntity(e).H
	}

	e := base
	e.H = r.H.Entity(0)
	switch r.Type {
	case RequestWorkplane:
		e.Kind = Workplane{Origin: points[0], Normal: normal}
	case RequestLineSegment:
		e.Kind = LineSegment{Point: [2]handle.Entity(points)}
	case RequestCubic:
		e.Kind = Cubic{Point: points}
	case RequestCubicPeriodic:
		e.Kind = CubicPeriodic{Point: points}
	case RequestCircle:
		e.Kind = Circle{Center: points[0], Normal: normal, Distance: distance}
	case RequestArcOfCircle:
		e.Kind = ArcOfCircle{Normal: normal, Point: [3]handle.Entity(points)}
	case RequestTTFText:
		e.Kind = TTFText{
			Normal:      normal,
			Point:       [4]handle.Entity(points),
			Str:         r.Str,
			Font:        r.Font,
			AspectRatio: r.AspectRatio,
		}
	case RequestImage:
		e.Kind = Image{
			Normal:      normal,
			Point:       [4]handle.Entity(points),
			File:        r.File,
			AspectRatio: r.AspectRatio,
		}
	}
	sk.addEntity(e)
}

// AddReferences adds the references group and its three workplanes, XY, YZ
// and ZX, all through the origin. It must be called on an empty sketch,
// before any other group is added.
func (sk *Sketch) AddReferences() {
	sk.AddGroup(Group{H: handle.ReferencesGroup, Name: "#references"})
	for _, h := range []handle.Request{handle.ReferenceXY, handle.ReferenceYZ, handle.ReferenceZX} {
		sk.AddRequest(Request{
			H:         h,
			Type:      RequestWorkplane,
			Group:     handle.ReferencesGroup,
			Workplane: handle.FreeIn3D,
		})
	}
}

// referenceNormals are the orientations of the reference workplanes.
var referenceNormals = [...]struct {
	r handle.Request
	q Quaternion
}{
	{handle.ReferenceXY, Quat(1, 0, 0, 0)},
	{handle.ReferenceYZ, Quat(0.5, 0.5, 0.5, 0.5)},
	{handle.ReferenceZX, Quat(0.5, -0.5, -0.5, -0.5)},
}

// forceReferences pins the reference workplanes to the origin and their
// fixed orientations, and marks their parameters as known.
func (sk *Sketch) forceReferences() {
	for _, ref := range referenceNormals {
		wp, ok := sk.Entities.Get(ref.r.Entity(0))
		if !ok {
			continue
		}
		w := wp.workplane("forceReferences")
		origin := sk.Entity(w.Origin)
		normal := sk.Entity(w.Normal)
		origin.PointForceTo(sk, Vector{})
		normal.NormalForceTo(sk, ref.q)
		for _, h := range append(origin.Params(), normal.Params()...) {
			sk.Param(h).Known = true
		}
	}
}

// WorkplaneXY returns the handle of the XY reference workplane.
func WorkplaneXY() handle.Entity { return handle.ReferenceXY.Entity(0) }

// WorkplaneYZ returns the handle of the YZ reference workplane.
func WorkplaneYZ() handle.Entity { return handle.ReferenceYZ.Entity(0) }

// WorkplaneZX returns the handle of the ZX reference workplane.
func WorkplaneZX() handle.Entity { return handle.ReferenceZX.Entity(0) }
