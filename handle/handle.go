// Package handle implements the bit-packed identifiers that sketch objects use
// to refer to each other.
//
// Handles are plain uint32 values. They are never dereferenced; every lookup
// goes through a table keyed by handle. The owner of an entity or parameter
// (the request or group that generated it) is encoded in the handle itself and
// can be recovered by shifting alone:
//
//	bit  31      generated by a group rather than by a request
//	bit  30      equation emitted by an entity
//	bits 16..29  owner index (request or group)
//	bits  0..15  local index within the owner
//
// Equations emitted by entities reuse the entity's bits, set bit 30 and store
// the equation slot in bits 14 and 15. Entities that emit equations must
// therefore have a local index below [MaxEquationLocal].
package handle

import "fmt"

const (
	fromGroup  = 0x8000_0000
	fromEntity = 0x4000_0000
	ownerShift = 16
	ownerMask  = 0x3fff
	localMask  = 0xffff
	slotShift  = 14
)

const (
	// MaxOwner is the largest request or group index.
	MaxOwner = ownerMask
	// MaxLocal is the largest local index within an owner.
	MaxLocal = localMask
	// MaxEquationLocal bounds the local index of entities that emit equations.
	MaxEquationLocal = 1<<slotShift - 1
	// MaxEquationSlot is the largest per-entity equation slot.
	MaxEquationSlot = 3
)

// Handle is satisfied by all handle types.
type Handle interface {
	~uint32
}

type (
	Group      uint32
	Request    uint32
	Entity     uint32
	Param      uint32
	Constraint uint32
	Equation   uint32
)

const (
	// NoEntity is the zero entity handle.
	NoEntity Entity = 0
	// FreeIn3D is the workplane of entities that are not in any workplane.
	FreeIn3D Entity = 0

	NoGroup Group = 0
	// ReferencesGroup owns the three reference workplanes.
	ReferencesGroup Group = 1

	NoRequest   Request = 0
	ReferenceXY Request = 1
	ReferenceYZ Request = 2
	ReferenceZX Request = 3
)

func checkOwner(kind string, v uint32) {
	if v > ownerMask {
		panic(fmt.Sprintf("handle: %s index %d out of range", kind, v))
	}
}

func checkLocal(i int) uint32 {
	if i < 0 || i > localMask {
		panic(fmt.Sprintf("handle: local index %d out of range", i))
	}
	return uint32(i)
}

// Entity returns the handle of the group's i-th synthesized entity.
func (g Group) Entity(i int) Entity {
	checkOwner("group", uint32(g))
	return Entity(fromGroup | uint32(g)<<ownerShift | checkLocal(i))
}

// Param returns the handle of the group's i-th parameter.
func (g Group) Param(i int) Param {
	checkOwner("group", uint32(g))
	return Param(fromGroup | uint32(g)<<ownerShift | checkLocal(i))
}

// Equation returns the handle of the group's i-th equation.
func (g Group) Equation(i int) Equation {
	checkOwner("group", uint32(g))
	return Equation(fromGroup | uint32(g)<<ownerShift | checkLocal(i))
}

func (g Group) String() string { return fmt.Sprintf("g%03x", uint32(g)) }

// Entity returns the handle of the request's i-th entity.
func (r Request) Entity(i int) Entity {
	checkOwner("request", uint32(r))
	return Entity(uint32(r)<<ownerShift | checkLocal(i))
}

// Param returns the handle of the request's i-th parameter.
func (r Request) Param(i int) Param {
	checkOwner("request", uint32(r))
	return Param(uint32(r)<<ownerShift | checkLocal(i))
}

// IsFromReferences reports whether r is one of the reference workplanes.
func (r Request) IsFromReferences() bool {
	return r == ReferenceXY || r == ReferenceYZ || r == ReferenceZX
}

func (r Request) String() string { return fmt.Sprintf("r%03x", uint32(r)) }

// IsFromRequest reports whether e was generated by a request.
func (e Entity) IsFromRequest() bool { return uint32(e)&fromGroup == 0 }

// Request returns the request that generated e.
// The result is meaningless unless e.IsFromRequest().
func (e Entity) Request() Request { return Request(uint32(e) >> ownerShift) }

// Group returns the owner index of e interpreted as a group.
func (e Entity) Group() Group { return Group(uint32(e) >> ownerShift & ownerMask) }

// Local returns e's index within its owner.
func (e Entity) Local() int { return int(uint32(e) & localMask) }

// Equation returns the handle of the slot-th equation emitted by e.
func (e Entity) Equation(slot int) Equation {
	if slot < 0 || slot > MaxEquationSlot {
		panic(fmt.Sprintf("handle: equation slot %d out of range", slot))
	}
	if e.Local() > MaxEquationLocal {
		panic(fmt.Sprintf("handle: entity %s cannot emit equations", e))
	}
	return Equation(uint32(e) | fromEntity | uint32(slot)<<slotShift)
}

func (e Entity) String() string {
	if e.IsFromRequest() {
		return fmt.Sprintf("e%03x.%d", uint32(e)>>ownerShift, e.Local())
	}
	return fmt.Sprintf("e%s.%d", e.Group(), e.Local())
}

// IsFromRequest reports whether p belongs to a request.
func (p Param) IsFromRequest() bool { return uint32(p)&fromGroup == 0 }

// Request returns the request that owns p.
func (p Param) Request() Request { return Request(uint32(p) >> ownerShift) }

// Group returns the owner index of p interpreted as a group.
func (p Param) Group() Group { return Group(uint32(p) >> ownerShift & ownerMask) }

// Local returns p's index within its owner.
func (p Param) Local() int { return int(uint32(p) & localMask) }

func (p Param) String() string {
	if p.IsFromRequest() {
		return fmt.Sprintf("p%03x.%d", uint32(p)>>ownerShift, p.Local())
	}
	return fmt.Sprintf("p%s.%d", p.Group(), p.Local())
}

// Equation returns the handle of the i-th equation generated by c.
func (c Constraint) Equation(i int) Equation {
	checkOwner("constraint", uint32(c))
	return Equation(uint32(c)<<ownerShift | checkLocal(i))
}

func (c Constraint) String() string { return fmt.Sprintf("c%03x", uint32(c)) }

// IsFromConstraint reports whether q was generated by a constraint.
func (q Equation) IsFromConstraint() bool { return uint32(q)&(fromGroup|fromEntity) == 0 }

// IsFromEntity reports whether q was emitted by an entity.
func (q Equation) IsFromEntity() bool { return uint32(q)&fromEntity != 0 }

// IsFromGroup reports whether q was generated directly by a group.
func (q Equation) IsFromGroup() bool {
	return uint32(q)&fromGroup != 0 && uint32(q)&fromEntity == 0
}

// Constraint returns the constraint that generated q.
func (q Equation) Constraint() Constraint { return Constraint(uint32(q) >> ownerShift) }

// Entity returns the entity that emitted q.
func (q Equation) Entity() Entity {
	return Entity(uint32(q) &^ (fromEntity | (MaxEquationSlot << slotShift)))
}

// Slot returns the per-entity slot of an entity equation.
func (q Equation) Slot() int { return int(uint32(q) >> slotShift & MaxEquationSlot) }

func (q Equation) String() string {
	switch {
	case q.IsFromEntity():
		return fmt.Sprintf("q[%s#%d]", q.Entity(), q.Slot())
	case q.IsFromGroup():
		return fmt.Sprintf("q[%s.%d]", Group(uint32(q)>>ownerShift&ownerMask), uint32(q)&localMask)
	default:
		return fmt.Sprintf("q[%s.%d]", q.Constraint(), uint32(q)&localMask)
	}
}
