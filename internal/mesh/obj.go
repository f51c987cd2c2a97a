package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"vertex/internal/linalg"
)

var ErrMalformedFace = errors.New("malformed face record")

// FaceError reports a face line that could not be decoded.
type FaceError struct {
	Source string
	Line   int
	Err    error
}

func (e *FaceError) Error() string {
	return fmt.Sprintf("error parsing face on line %d of %s: %v", e.Line, e.Source, e.Err)
}

func (e *FaceError) Unwrap() error { return e.Err }

// DecodeOBJ reads the o, v and f records of a Wavefront OBJ stream. Vertex
// coordinates are multiplied by scale; a nil scale keeps them as is.
// Polygons with more than three corners are split into a triangle fan.
func DecodeOBJ(r io.Reader, source string, scale *linalg.Vector) (*Mesh, error) {
	if scale == nil {
		scale = linalg.Uniform(1, 3)
	}

	var (
		name      string
		vertices  []*linalg.Vector
		triangles [][3]*linalg.Vector
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "o":
			if len(fields) > 1 {
				name = fields[1]
			}
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("vertex on line %d of %s: want 3 coordinates, got %d", line, source, len(fields)-1)
			}
			v := linalg.Zeroes(3)
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("vertex on line %d of %s: %w", line, source, err)
				}
				v.Set(i, f*scale.Get(i))
			}
			vertices = append(vertices, v.Extend(1))
		case "f":
			corners := fields[1:]
			if len(corners) < 3 {
				return nil, &FaceError{Source: source, Line: line, Err: fmt.Errorf("%w: %d corners", ErrMalformedFace, len(corners))}
			}
			refs := make([]*linalg.Vector, len(corners))
			for i, c := range corners {
				v, err := resolveCorner(c, vertices)
				if err != nil {
					return nil, &FaceError{Source: source, Line: line, Err: err}
				}
				refs[i] = v
			}
			for i := 1; i+1 < len(refs); i++ {
				triangles = append(triangles, [3]*linalg.Vector{refs[0], refs[i], refs[i+1]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	return New(name, vertices, triangles), nil
}

// resolveCorner maps "7", "7/1" or "7/1/3" to its vertex. Negative indices
// count back from the last vertex read.
func resolveCorner(corner string, vertices []*linalg.Vector) (*linalg.Vector, error) {
	ref, _, _ := strings.Cut(corner, "/")
	idx, err := strconv.Atoi(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedFace, corner)
	}
	if idx < 0 {
		idx = len(vertices) + idx + 1
	}
	if idx < 1 || idx > len(vertices) {
		return nil, fmt.Errorf("%w: vertex %d out of range (have %d)", ErrMalformedFace, idx, len(vertices))
	}
	return vertices[idx-1], nil
}
