package edwards

import (
	"filippo.io/edwards25519/field"
)

// Point is an element of the edwards25519 group in extended coordinates
// (X:Y:Z:T) with x = X/Z, y = Y/Z and xy = T/Z.
//
// The zero value is NOT valid; use NewIdentityPoint, NewGeneratorPoint or
// SetBytes. Methods set the receiver and return it, so a receiver may alias
// any argument.
type Point struct {
	x, y, z, t field.Element
}

var generator = mustPoint([]byte{
	0x58, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
})

func mustPoint(b []byte) *Point {
	p, err := new(Point).SetBytes(b)
	if err != nil {
		panic(err)
	}
	return p
}

// NewIdentityPoint returns a new Point set to the identity (0, 1).
func NewIdentityPoint() *Point {
	return new(Point).Identity()
}

// NewGeneratorPoint returns a new Point set to the canonical base point G.
func NewGeneratorPoint() *Point {
	return new(Point).Set(generator)
}

// Identity sets v to the identity and returns v.
func (v *Point) Identity() *Point {
	v.x.Zero()
	v.y.One()
	v.z.One()
	v.t.Zero()
	return v
}

// Set sets v = u and returns v.
func (v *Point) Set(u *Point) *Point {
	*v = *u
	return v
}

// Add sets v = p + q and returns v.
//
// This is the extended-coordinate addition of Hisil, Wong, Carter and Dawson
// for a = -1, which is complete on edwards25519.
func (v *Point) Add(p, q *Point) *Point {
	var a, b, c, d, tmp field.Element

	a.Multiply(tmp.Subtract(&p.y, &p.x), new(field.Element).Subtract(&q.y, &q.x))
	b.Multiply(tmp.Add(&p.y, &p.x), new(field.Element).Add(&q.y, &q.x))
	c.Multiply(tmp.Multiply(&p.t, feD2), &q.t)
	d.Multiply(tmp.Add(&p.z, &p.z), &q.z)

	var e, f, g, h field.Element
	e.Subtract(&b, &a)
	f.Subtract(&d, &c)
	g.Add(&d, &c)
	h.Add(&b, &a)

	v.x.Multiply(&e, &f)
	v.y.Multiply(&g, &h)
	v.t.Multiply(&e, &h)
	v.z.Multiply(&f, &g)
	return v
}

// Double sets v = p + p and returns v.
func (v *Point) Double(p *Point) *Point {
	var a, b, c, e, f, g, h field.Element

	a.Square(&p.x)
	b.Square(&p.y)
	c.Square(&p.z)
	c.Add(&c, &c)
	h.Add(&a, &b)
	e.Add(&p.x, &p.y)
	e.Square(&e)
	e.Subtract(&h, &e)
	g.Subtract(&a, &b)
	f.Add(&c, &g)

	v.x.Multiply(&e, &f)
	v.y.Multiply(&g, &h)
	v.t.Multiply(&e, &h)
	v.z.Multiply(&f, &g)
	return v
}

// Negate sets v = -p and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.x.Negate(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	v.t.Negate(&p.t)
	return v
}

// Subtract sets v = p - q and returns v.
func (v *Point) Subtract(p, q *Point) *Point {
	neg := new(Point).Negate(q)
	return v.Add(p, neg)
}

// Equal returns 1 if v and u represent the same group element, and 0 otherwise.
func (v *Point) Equal(u *Point) int {
	var l, r field.Element
	eqX := l.Multiply(&v.x, &u.z).Equal(r.Multiply(&u.x, &v.z))
	eqY := l.Multiply(&v.y, &u.z).Equal(r.Multiply(&u.y, &v.z))
	return eqX & eqY
}

// IsIdentity returns 1 if v is the identity, and 0 otherwise.
func (v *Point) IsIdentity() int {
	return v.Equal(identity)
}

var identity = NewIdentityPoint()

// Select sets v to a if cond == 1 and to b if cond == 0, in constant time.
func (v *Point) Select(a, b *Point, cond int) *Point {
	v.x.Select(&a.x, &b.x, cond)
	v.y.Select(&a.y, &b.y, cond)
	v.z.Select(&a.z, &b.z, cond)
	v.t.Select(&a.t, &b.t, cond)
	return v
}

// InPrimeOrderSubgroup returns 1 if L*v is the identity, and 0 otherwise.
func (v *Point) InPrimeOrderSubgroup() int {
	return new(Point).scalarMult(&groupOrder, v).IsIdentity()
}
