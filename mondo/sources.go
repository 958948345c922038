// mondo/sources.go
package mondo

import (
	"embed"
	"io/fs"
)

//go:embed endpoints_*.go
var endpointSources embed.FS

// Sources returns the source files that define the endpoint methods. Their doc comments describe
// each endpoint's parameters and are read by the command line to build its flags.
func Sources() fs.FS {
	return endpointSources
}
