package uploads

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

// Namer maps uploaded files to stable image references. Each name combines
// the upload timestamp with a process-wide sequence number, so concurrent
// uploads in the same millisecond still get distinct names. Names are never
// reused across requests.
type Namer struct {
	publicPrefix string
	dir          string
	seq          atomic.Uint64
}

// NewNamer creates a Namer that stores files under dir and exposes them at
// publicPrefix (e.g. "/uploads").
func NewNamer(publicPrefix, dir string) *Namer {
	return &Namer{
		publicPrefix: strings.TrimSuffix(publicPrefix, "/"),
		dir:          dir,
	}
}

// Next returns the public reference and the on-disk path for one uploaded
// file, preserving the original file extension.
func (n *Namer) Next(originalFilename string) (ref string, path string) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), n.seq.Add(1), ext)
	return n.publicPrefix + "/" + name, filepath.Join(n.dir, name)
}

// Dir returns the local directory uploads are stored in.
func (n *Namer) Dir() string {
	return n.dir
}
