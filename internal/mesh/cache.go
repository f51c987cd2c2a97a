package mesh

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"

	"vertex/internal/linalg"
)

// Cache maps resource ids to decoded meshes. Files with identical content
// and scale decode once and share the same Mesh.
type Cache struct {
	mu     sync.Mutex
	byID   map[string]*Mesh
	byHash map[uint64]*Mesh
}

func NewCache() *Cache {
	return &Cache{
		byID:   make(map[string]*Mesh),
		byHash: make(map[uint64]*Mesh),
	}
}

func (c *Cache) Get(id string) (*Mesh, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.byID[id]
	return m, ok
}

// Put registers an already built mesh, e.g. a procedural one.
func (c *Cache) Put(id string, m *Mesh) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byID[id] = m
}

// LoadFile decodes the OBJ file at path and stores it under id.
func (c *Cache) LoadFile(id, path string, scale *linalg.Vector) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load mesh %s: %w", id, err)
	}
	return c.Load(id, path, data, scale)
}

// Load decodes OBJ data read from source and stores it under id.
func (c *Cache) Load(id, source string, data []byte, scale *linalg.Vector) (*Mesh, error) {
	key := fingerprint(data, scale)

	c.mu.Lock()
	if m, ok := c.byHash[key]; ok {
		c.byID[id] = m
		c.mu.Unlock()
		return m, nil
	}
	c.mu.Unlock()

	m, err := DecodeOBJ(bytes.NewReader(data), source, scale)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.byHash[key]; ok {
		m = existing
	}
	c.byHash[key] = m
	c.byID[id] = m
	return m, nil
}

func fingerprint(data []byte, scale *linalg.Vector) uint64 {
	d := xxhash.New()
	_, _ = d.Write(data)
	if scale != nil {
		_, _ = d.WriteString(scale.String())
	}
	return d.Sum64()
}
