package sketch

import (
	"fmt"

	"github.com/kamstrup/intmap"

	"honnef.co/go/sketch/handle"
)

// Param is a scalar unknown.
type Param struct {
	H   handle.Param
	Val float64
	// Known marks parameters whose value is fixed outside of the solve of
	// their group, such as those of the reference workplanes.
	Known bool
	// Free is set by the solver for parameters that the equations leave
	// unconstrained.
	Free bool
}

// GroupType selects how a group generates its entities.
type GroupType uint8

const (
	// GroupDrawing generates entities from its requests only.
	GroupDrawing GroupType = iota
	// GroupTranslate repeats the entities of its source group along a
	// translation.
	GroupTranslate
	// GroupRotate repeats the entities of its source group around an axis.
	GroupRotate
	// GroupHelix repeats the entities of its source group along a screw
	// motion.
	GroupHelix
)

func (t GroupType) String() string {
	switch t {
	case GroupDrawing:
		return "drawing"
	case GroupTranslate:
		return "translate"
	case GroupRotate:
		return "rotate"
	case GroupHelix:
		return "helix"
	default:
		return fmt.Sprintf("GroupType(%d)", t)
	}
}

// Group is a unit of solving. Groups are regenerated in the order they were
// added, so later groups can copy the geometry of earlier ones.
type Group struct {
	H    handle.Group
	Name string
	Type GroupType
	// Source is the group whose entities a step-and-repeat group copies.
	Source handle.Group
	// Copies is the number of copies a step-and-repeat group makes.
	Copies int

	remap map[remapKey]int
}

type remapKey struct {
	in handle.Entity
	n  int
}

// Remap returns the handle of the n-th copy of the entity in, as synthesized
// by g. The same inputs map to the same handle for the lifetime of the
// group, across regenerations.
func (g *Group) Remap(in handle.Entity, n int) handle.Entity {
	if g.remap == nil {
		g.remap = make(map[remapKey]int)
	}
	k := remapKey{in, n}
	i, ok := g.remap[k]
	if !ok {
		i = len(g.remap)
		g.remap[k] = i
	}
	return g.H.Entity(i)
}

// ConstraintType identifies the kind of a constraint.
type ConstraintType uint8

const (
	PointsCoincident ConstraintType = iota + 1
	PointPointDistance
	Horizontal
	Vertical
	Diameter
	EqualRadius
)

func (t ConstraintType) String() string {
	switch t {
	case PointsCoincident:
		return "points-coincident"
	case PointPointDistance:
		return "pt-pt-distance"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diameter:
		return "diameter"
	case EqualRadius:
		return "equal-radius"
	default:
		return fmt.Sprintf("ConstraintType(%d)", t)
	}
}

// Constraint is a user constraint. The equations of constraints are
// generated elsewhere; the kernel only inspects them to avoid emitting
// redundant equations.
type Constraint struct {
	H         handle.Constraint
	Group     handle.Group
	Type      ConstraintType
	PtA       handle.Entity
	PtB       handle.Entity
	Entity    handle.Entity
	Workplane handle.Entity
	Val       float64
}

// Sketch owns all groups, requests, entities, parameters and constraints.
// Everything refers to everything else by handle; entities and parameters
// are rebuilt from requests and groups by [Sketch.Regenerate].
type Sketch struct {
	Groups      Table[handle.Group, Group]
	Requests    Table[handle.Request, Request]
	Entities    Table[handle.Entity, Entity]
	Params      Table[handle.Param, Param]
	Constraints Table[handle.Constraint, Constraint]

	cfg Config
}

// NewSketch returns an empty sketch using [DefaultConfig].
func NewSketch() *Sketch {
	return &Sketch{cfg: DefaultConfig()}
}

// Config returns the sketch's configuration.
func (sk *Sketch) Config() Config { return sk.cfg }

// SetConfig replaces the sketch's configuration. Cached polylines are
// regenerated on next use if the chord tolerance changed.
func (sk *Sketch) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	sk.cfg = cfg
	return nil
}

// Entity returns the entity h. It panics if h is absent.
func (sk *Sketch) Entity(h handle.Entity) *Entity {
	e, ok := sk.Entities.Get(h)
	if !ok {
		violate("Sketch.Entity", "no entity %s", h)
	}
	return e
}

// Param returns the parameter h. It panics if h is absent.
func (sk *Sketch) Param(h handle.Param) *Param {
	p, ok := sk.Params.Get(h)
	if !ok {
		violate("Sketch.Param", "no parameter %s", h)
	}
	return p
}

// Group returns the group h. It panics if h is absent.
func (sk *Sketch) Group(h handle.Group) *Group {
	g, ok := sk.Groups.Get(h)
	if !ok {
		violate("Sketch.Group", "no group %s", h)
	}
	return g
}

// Request returns the request h. It panics if h is absent.
func (sk *Sketch) Request(h handle.Request) *Request {
	r, ok := sk.Requests.Get(h)
	if !ok {
		violate("Sketch.Request", "no request %s", h)
	}
	return r
}

// Constraint returns the constraint h. It panics if h is absent.
func (sk *Sketch) Constraint(h handle.Constraint) *Constraint {
	c, ok := sk.Constraints.Get(h)
	if !ok {
		violate("Sketch.Constraint", "no constraint %s", h)
	}
	return c
}

// LookupEntity returns the entity h, or an error wrapping [ErrNotFound] if
// it does not exist, for example because regeneration pruned it.
func (sk *Sketch) LookupEntity(h handle.Entity) (*Entity, error) {
	e, ok := sk.Entities.Get(h)
	if !ok {
		return nil, fmt.Errorf("entity %s: %w", h, ErrNotFound)
	}
	return e, nil
}

// LookupParam returns the parameter h, or an error wrapping [ErrNotFound].
func (sk *Sketch) LookupParam(h handle.Param) (*Param, error) {
	p, ok := sk.Params.Get(h)
	if !ok {
		return nil, fmt.Errorf("param %s: %w", h, ErrNotFound)
	}
	return p, nil
}

// AddGroup adds a group. Groups are regenerated in the order they are added.
func (sk *Sketch) AddGroup(g Group) *Group { return sk.Groups.Add(g.H, g) }

// AddRequest adds a request. Its entities exist after the next
// [Sketch.Regenerate].
func (sk *Sketch) AddRequest(r Request) *Request { return sk.Requests.Add(r.H, r) }

// AddConstraint adds a constraint.
func (sk *Sketch) AddConstraint(c Constraint) *Constraint { return sk.Constraints.Add(c.H, c) }

func (sk *Sketch) addParam(h handle.Param, v float64) handle.Param {
	sk.Params.Add(h, Param{H: h, Val: v})
	return h
}

func (sk *Sketch) addEntity(e Entity) *Entity { return sk.Entities.Add(e.H, e) }

func (sk *Sketch) setParam(h handle.Param, v float64) { sk.Param(h).Val = v }

func (sk *Sketch) setParams(h [3]handle.Param, v Vector) {
	sk.setParam(h[0], v.X)
	sk.setParam(h[1], v.Y)
	sk.setParam(h[2], v.Z)
}

// paramGroup returns the group that solves for p.
func (sk *Sketch) paramGroup(p handle.Param) handle.Group {
	if p.IsFromRequest() {
		return sk.Request(p.Request()).Group
	}
	return p.Group()
}

// Regenerate rebuilds all entities and parameters from the requests and
// groups. Parameters that exist both before and after keep their values.
// Afterwards, the numeric state of all entities is current and references
// into the entity and parameter tables taken earlier are stale.
func (sk *Sketch) Regenerate() {
	old := intmap.New[handle.Param, float64](max(64, sk.Params.Len()))
	for h, p := range sk.Params.All() {
		old.Put(h, p.Val)
	}
	sk.Entities.Clear()
	sk.Params.Clear()

	for _, g := range sk.Groups.All() {
		np, ne := sk.Params.Len(), sk.Entities.Len()
		for _, r := range sk.Requests.All() {
			if r.Group == g.H {
				r.Generate(sk)
			}
		}
		sk.generateCopies(g)

		for _, h := range sk.Params.Handles()[np:] {
			if v, ok := old.Get(h); ok {
				sk.Param(h).Val = v
			}
		}
		if g.H == handle.ReferencesGroup {
			sk.forceReferences()
		}
		for _, h := range sk.Entities.Handles()[ne:] {
			sk.Entity(h).CalculateNumerical(sk)
		}
	}
	Logger().Debug("regenerated sketch",
		"groups", sk.Groups.Len(),
		"requests", sk.Requests.Len(),
		"entities", sk.Entities.Len(),
		"params", sk.Params.Len())
}

// CalculateNumerical refreshes the numeric state of the entities of group g.
func (sk *Sketch) CalculateNumerical(g handle.Group) {
	for _, e := range sk.Entities.All() {
		if e.Group == g {
			e.CalculateNumerical(sk)
		}
	}
}
