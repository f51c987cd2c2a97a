package linalg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is an n-component tuple backed by an mgl64.VecN. Components 0..3
// are read as x, y, z, w. Methods that change the receiver return it so
// calls can be chained; copy first when the original is still needed.
//
// Operands shorter than the receiver read as 0 past their end, so a 3D
// vector can be combined with a homogeneous 4D one.
type Vector struct {
	vec *mgl64.VecN
}

func NewVector(comps ...float64) *Vector {
	return &Vector{vec: mgl64.NewVecNFromData(comps)}
}

// Uniform returns a vector of dim components all set to n.
func Uniform(n float64, dim int) *Vector {
	c := make([]float64, dim)
	for i := range c {
		c[i] = n
	}
	return NewVector(c...)
}

func Zeroes(dim int) *Vector {
	return NewVector(make([]float64, dim)...)
}

// FromVecN copies an mgl64 vector.
func FromVecN(v *mgl64.VecN) *Vector {
	return NewVector(v.Raw()...)
}

// FromVec3 copies an mgl64 3-vector.
func FromVec3(v mgl64.Vec3) *Vector {
	return NewVector(v[0], v[1], v[2])
}

// VecN returns a copy of the vector as an mgl64.VecN.
func (v *Vector) VecN() *mgl64.VecN {
	return mgl64.NewVecNFromData(v.vec.Raw())
}

// Vec3 returns the first three components, zero filled.
func (v *Vector) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.at(0), v.at(1), v.at(2)}
}

func (v *Vector) at(i int) float64 {
	if i < v.vec.Size() {
		return v.vec.Get(i)
	}
	return 0
}

// sized returns v as an n-component VecN, truncated or zero padded.
func (v *Vector) sized(n int) *mgl64.VecN {
	if v.vec.Size() == n {
		return v.vec
	}
	c := make([]float64, n)
	copy(c, v.vec.Raw())
	return mgl64.NewVecNFromData(c)
}

func (v *Vector) Dim() int { return v.vec.Size() }

func (v *Vector) Get(i int) float64 { return v.vec.Get(i) }

func (v *Vector) Set(i int, val float64) { v.vec.Set(i, val) }

// Comps exposes the backing slice. Writes through it change the vector.
func (v *Vector) Comps() []float64 { return v.vec.Raw() }

func (v *Vector) X() float64 { return v.vec.Get(0) }
func (v *Vector) Y() float64 { return v.vec.Get(1) }
func (v *Vector) Z() float64 { return v.vec.Get(2) }
func (v *Vector) W() float64 { return v.vec.Get(3) }

func (v *Vector) SetX(val float64) { v.vec.Set(0, val) }
func (v *Vector) SetY(val float64) { v.vec.Set(1, val) }
func (v *Vector) SetZ(val float64) { v.vec.Set(2, val) }

func (v *Vector) Copy() *Vector {
	return NewVector(v.vec.Raw()...)
}

func (v *Vector) Add(o *Vector) *Vector {
	v.vec.Add(v.vec, o.sized(v.Dim()))
	return v
}

func (v *Vector) Sub(o *Vector) *Vector {
	v.vec.Sub(v.vec, o.sized(v.Dim()))
	return v
}

// Scale multiplies every component by lambda. Zero results are stored as
// +0 so no -0 values appear.
func (v *Vector) Scale(lambda float64) *Vector {
	v.vec.Mul(v.vec, lambda)
	raw := v.vec.Raw()
	for i, c := range raw {
		if c == 0 {
			raw[i] = 0
		}
	}
	return v
}

func (v *Vector) Div(lambda float64) *Vector {
	v.vec.Mul(v.vec, 1/lambda)
	return v
}

// Normalize scales the vector to unit length. A zero vector is returned
// unchanged.
func (v *Vector) Normalize() *Vector {
	if v.vec.Len() == 0 {
		return v
	}
	v.vec.Normalize(v.vec)
	return v
}

// Lerp sets the receiver to t*v + (1-t)*o. o is not modified.
func (v *Vector) Lerp(o *Vector, t float64) *Vector {
	return v.Scale(t).Add(Scaled(o, 1-t))
}

// Extend appends components, growing the dimension.
func (v *Vector) Extend(comps ...float64) *Vector {
	v.vec.SetBackingSlice(append(v.vec.Raw(), comps...))
	return v
}

// Max keeps the larger of each component pair.
func (v *Vector) Max(o *Vector) *Vector {
	raw := v.vec.Raw()
	for i := range raw {
		raw[i] = math.Max(raw[i], o.at(i))
	}
	return v
}

// Min keeps the smaller of each component pair.
func (v *Vector) Min(o *Vector) *Vector {
	raw := v.vec.Raw()
	for i := range raw {
		raw[i] = math.Min(raw[i], o.at(i))
	}
	return v
}

func (v *Vector) MaxComponent() float64 {
	m := math.Inf(-1)
	for _, c := range v.vec.Raw() {
		m = math.Max(m, c)
	}
	return m
}

func (v *Vector) Dot(o *Vector) float64 {
	return v.vec.Dot(o.sized(v.Dim()))
}

// Cross returns v x o. Only the first three components take part. The j
// term of the determinant expansion is negated, and a zero j stays +0.
func (v *Vector) Cross(o *Vector) *Vector {
	c := v.sized(3).Cross(nil, o.sized(3))
	if c.Get(1) == 0 {
		c.Set(1, 0)
	}
	return &Vector{vec: c}
}

func (v *Vector) Mag() float64 { return v.vec.Len() }

func (v *Vector) Sum() float64 {
	var sum float64
	for _, c := range v.vec.Raw() {
		sum += c
	}
	return sum
}

// Equal reports whether both vectors have the same dimension and every
// component differs by at most eps. The comparison is absolute, unlike
// mgl64's relative ApproxEqualThreshold.
func (v *Vector) Equal(o *Vector, eps float64) bool {
	if v.Dim() != o.Dim() {
		return false
	}
	for i, c := range v.vec.Raw() {
		if math.Abs(c-o.vec.Get(i)) > eps {
			return false
		}
	}
	return true
}

// RowMatrix returns the vector as a 1 x dim matrix.
func (v *Vector) RowMatrix() *Matrix {
	return &Matrix{mat: mgl64.NewMatrixFromData(v.vec.Raw(), 1, v.Dim())}
}

// ColumnMatrix returns the vector as a dim x 1 matrix.
func (v *Vector) ColumnMatrix() *Matrix {
	return &Matrix{mat: mgl64.NewMatrixFromData(v.vec.Raw(), v.Dim(), 1)}
}

func (v *Vector) String() string {
	raw := v.vec.Raw()
	parts := make([]string, len(raw))
	for i, c := range raw {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return fmt.Sprintf("v(%s)", strings.Join(parts, ","))
}

// Added returns v + o without touching either operand.
func Added(v, o *Vector) *Vector { return v.Copy().Add(o) }

// Subbed returns v - o without touching either operand.
func Subbed(v, o *Vector) *Vector { return v.Copy().Sub(o) }

func Scaled(v *Vector, lambda float64) *Vector { return v.Copy().Scale(lambda) }

func Divided(v *Vector, lambda float64) *Vector { return v.Copy().Div(lambda) }

func Normalized(v *Vector) *Vector { return v.Copy().Normalize() }

func Extended(v *Vector, comps ...float64) *Vector { return v.Copy().Extend(comps...) }

// Lerped returns t*v + (1-t)*o.
func Lerped(v, o *Vector, t float64) *Vector { return v.Copy().Lerp(o, t) }
