package loader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/meshsplat/meshsplat/engine/mesh"
)

// LoaderBackendType identifies the mesh file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeOBJ selects the Wavefront OBJ loader backend.
	BackendTypeOBJ LoaderBackendType = iota
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	meshCache map[string]*mesh.Mesh

	backend loaderBackend
}

// Loader defines the public-facing interface for loading and caching triangle
// meshes. It abstracts the file format behind a generic backend and manages a
// cache of previously loaded meshes.
type Loader interface {
	// Load imports a mesh file and caches the result.
	// If the mesh is already cached (by file path), the cached version is
	// returned. The backend is selected based on the file extension
	// (.obj → OBJ backend).
	//
	// Parameters:
	//   - path: the file path to the mesh file
	//
	// Returns:
	//   - *mesh.Mesh: the loaded and cached mesh
	//   - error: error if loading fails
	Load(path string) (*mesh.Mesh, error)

	// LoadReader imports a mesh from a reader stream and caches it by the
	// given name, using the loader's configured backend.
	//
	// Parameters:
	//   - name: the cache key for the loaded mesh
	//   - r: the reader providing mesh data
	//
	// Returns:
	//   - *mesh.Mesh: the loaded mesh
	//   - error: error if loading fails
	LoadReader(name string, r io.Reader) (*mesh.Mesh, error)

	// Get retrieves a cached mesh by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - *mesh.Mesh: the cached mesh or nil
	Get(name string) *mesh.Mesh

	// Meshes returns the full mesh cache.
	//
	// Returns:
	//   - map[string]*mesh.Mesh: all cached meshes keyed by name
	Meshes() map[string]*mesh.Mesh
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and
// options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeOBJ)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:        sync.RWMutex{},
		meshCache: make(map[string]*mesh.Mesh),
	}

	switch backendType {
	case BackendTypeOBJ:
		l.backend = newOBJLoaderBackend()
	}

	for _, option := range options {
		option(l)
	}
	return l
}

func (l *loader) Load(path string) (*mesh.Mesh, error) {
	l.mu.RLock()
	if cached, ok := l.meshCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	m, err := backend.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	l.mu.Lock()
	l.meshCache[path] = m
	l.mu.Unlock()

	return m, nil
}

func (l *loader) LoadReader(name string, r io.Reader) (*mesh.Mesh, error) {
	l.mu.RLock()
	if cached, ok := l.meshCache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	m, err := l.backend.LoadReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}

	l.mu.Lock()
	l.meshCache[name] = m
	l.mu.Unlock()

	return m, nil
}

func (l *loader) Get(name string) *mesh.Mesh {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.meshCache[name]
}

func (l *loader) Meshes() map[string]*mesh.Mesh {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]*mesh.Mesh, len(l.meshCache))
	for k, v := range l.meshCache {
		out[k] = v
	}
	return out
}

// resolveBackend picks the backend for a file path by extension. Falls back
// to the loader's configured backend for unknown extensions.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return newOBJLoaderBackend(), nil
	default:
		if l.backend == nil {
			return nil, fmt.Errorf("no loader backend for file %s", path)
		}
		return l.backend, nil
	}
}
