package loader

import (
	"io"

	"github.com/meshsplat/meshsplat/engine/mesh"
)

// loaderBackend defines the generic interface for loading meshes from files
// or streams. Concrete implementations (e.g., objLoaderBackend) handle
// format-specific details.
type loaderBackend interface {
	// Load imports a triangle mesh from the given file path.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - *mesh.Mesh: the imported mesh
	//   - error: error if loading fails
	Load(path string) (*mesh.Mesh, error)

	// LoadReader imports a triangle mesh from a reader stream.
	//
	// Parameters:
	//   - r: the reader providing mesh data
	//
	// Returns:
	//   - *mesh.Mesh: the imported mesh
	//   - error: error if loading fails
	LoadReader(r io.Reader) (*mesh.Mesh, error)
}
