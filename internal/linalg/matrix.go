package linalg

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrDimensionMismatch = errors.New("matrix dimension mismatch")
	ErrNotVector         = errors.New("matrix is neither a row nor a column vector")
	ErrShape             = errors.New("matrix shape mismatch")
)

// Matrix is a dense rows x cols grid backed by an mgl64.MatMxN, which
// stores its elements column-major.
type Matrix struct {
	mat *mgl64.MatMxN
}

func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{mat: mgl64.NewMatrixFromData(make([]float64, rows*cols), rows, cols)}
}

// FromMat4 copies a 4x4 mgl64 matrix.
func FromMat4(m mgl64.Mat4) *Matrix {
	return &Matrix{mat: mgl64.NewMatrixFromData(m[:], 4, 4)}
}

// MatrixFromRows builds a matrix from row slices. All rows must have the
// same length.
func MatrixFromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return NewMatrix(0, 0), nil
	}
	m := NewMatrix(len(rows), len(rows[0]))
	if err := m.SetRows(rows); err != nil {
		return nil, err
	}
	return m, nil
}

// SetRows replaces the contents. The new rows must match the current shape.
func (m *Matrix) SetRows(rows [][]float64) error {
	if len(rows) != m.Rows() {
		return fmt.Errorf("%w: got %d rows, want %d", ErrShape, len(rows), m.Rows())
	}
	for i, row := range rows {
		if len(row) != m.Cols() {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(row), m.Cols())
		}
	}
	for i, row := range rows {
		for j, v := range row {
			m.mat.Set(i, j, v)
		}
	}
	return nil
}

func (m *Matrix) Rows() int { return m.mat.NumRows() }
func (m *Matrix) Cols() int { return m.mat.NumCols() }

func (m *Matrix) At(i, j int) float64 { return m.mat.At(i, j) }

func (m *Matrix) Set(i, j int, v float64) { m.mat.Set(i, j, v) }

// MatMxN returns a copy as an mgl64 matrix.
func (m *Matrix) MatMxN() *mgl64.MatMxN {
	return mgl64.NewMatrixFromData(m.mat.Raw(), m.Rows(), m.Cols())
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	mgl64.IdentN(m.mat, n)
	return m
}

// Translation returns a 4x4 matrix moving points by v.
func Translation(v *Vector) *Matrix {
	return FromMat4(mgl64.Translate3D(v.at(0), v.at(1), v.at(2)))
}

func XRotation(degrees float64) *Matrix {
	return FromMat4(mgl64.HomogRotate3DX(mgl64.DegToRad(degrees)))
}

func YRotation(degrees float64) *Matrix {
	return FromMat4(mgl64.HomogRotate3DY(mgl64.DegToRad(degrees)))
}

func ZRotation(degrees float64) *Matrix {
	return FromMat4(mgl64.HomogRotate3DZ(mgl64.DegToRad(degrees)))
}

// WorldMatrix composes T * (Rx * (Ry * Rz)). Rotation holds Euler angles in
// degrees. Nil arguments mean no rotation or no translation.
func WorldMatrix(rotation, translation *Vector) *Matrix {
	if rotation == nil {
		rotation = Zeroes(3)
	}
	if translation == nil {
		translation = Zeroes(3)
	}
	rz := ZRotation(rotation.at(2))
	ry := YRotation(rotation.at(1))
	rx := XRotation(rotation.at(0))
	// all operands are 4x4, so the products cannot fail
	yz, _ := ry.Mult(rz)
	xyz, _ := rx.Mult(yz)
	world, _ := Translation(translation).Mult(xyz)
	return world
}

// ProjectionMatrix returns the perspective matrix and the z offset that is
// subtracted from projected z before the divide.
func ProjectionMatrix(near, far, fovDegrees float64) (*Matrix, float64) {
	f := 1 / math.Tan(0.5*mgl64.DegToRad(fovDegrees))
	m := Identity(4)
	m.Set(0, 0, f)
	m.Set(1, 1, f)
	m.Set(2, 2, far/(far-near))
	return m, far * near / (far - near)
}

// Mult returns m * o.
func (m *Matrix) Mult(o *Matrix) (*Matrix, error) {
	out := NewMatrix(m.Rows(), o.Cols())
	if m.mat.MulMxN(out.mat, o.mat) == nil {
		return nil, fmt.Errorf("%w: lhs has %d columns, rhs has %d rows", ErrDimensionMismatch, m.Cols(), o.Rows())
	}
	return out, nil
}

// Transform multiplies m by v taken as a column vector.
func (m *Matrix) Transform(v *Vector) (*Vector, error) {
	out, err := m.Mult(v.ColumnMatrix())
	if err != nil {
		return nil, err
	}
	return out.Vector()
}

func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(m.Cols(), m.Rows())
	m.mat.Transpose(out.mat)
	return out
}

func (m *Matrix) IsRowVector() bool    { return m.Rows() == 1 }
func (m *Matrix) IsColumnVector() bool { return m.Cols() == 1 }

// Vector converts a row or column matrix into a Vector. Either shape holds
// its elements contiguously in column-major order.
func (m *Matrix) Vector() (*Vector, error) {
	if m.IsColumnVector() || m.IsRowVector() {
		return NewVector(m.mat.Raw()...), nil
	}
	return nil, fmt.Errorf("%w: %dx%d", ErrNotVector, m.Rows(), m.Cols())
}

// Equal compares shape and every element exactly.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.Rows() != o.Rows() || m.Cols() != o.Cols() {
		return false
	}
	a, b := m.mat.Raw(), o.mat.Raw()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ViewMatrix derives the camera basis from an eye position and a look
// direction with +y as up. cameraMatrix holds the basis as rows with the
// eye translation in the last column; viewMatrix is its inverse for row
// vectors (p.RowMatrix() * viewMatrix).
func ViewMatrix(position, direction *Vector) (cameraMatrix, viewMatrix *Matrix) {
	up := mgl64.Vec3{0, 1, 0}
	z := unit(direction.Vec3())
	x := unit(up.Cross(z))
	y := unit(z.Cross(x))

	eye := position.Vec3()
	t := mgl64.Vec3{eye.Dot(x), eye.Dot(y), eye.Dot(z)}

	cameraMatrix = FromMat4(mgl64.Mat4FromRows(
		x.Vec4(t[0]),
		y.Vec4(t[1]),
		z.Vec4(t[2]),
		mgl64.Vec4{0, 0, 0, 1},
	))
	// the inverse for column vectors, transposed to act on row vectors
	inverse := FromMat4(mgl64.Mat4FromRows(
		x.Vec4(-t[0]),
		y.Vec4(-t[1]),
		z.Vec4(-t[2]),
		mgl64.Vec4{0, 0, 0, 1},
	))
	return cameraMatrix, inverse.Transpose()
}

// unit normalizes v, leaving a zero vector as it is.
func unit(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}
