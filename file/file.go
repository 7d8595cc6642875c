/*
File    : sst/file/file.go

Package file resolves the module source text a "use" statement needs
(spec §6: "Module lookup: use {name}; reads ./<name>.sst"). The
teacher's file package (_examples/akashmaji946-go-mix/file/file.go)
wraps a stateful os.File handle behind fopen/fread/fwrite/fseek/ftell
builtins; spec §1 explicitly treats file I/O as an external
collaborator and narrows it to "the read-a-file-by-name interface",
so this package keeps only that one operation.
*/
package file

import (
	"fmt"
	"os"
	"path/filepath"
)

// Reader resolves a module name to its source text.
type Reader interface {
	ReadModule(name string) (string, error)
}

// OSReader reads "<name>.sst" files relative to BaseDir from the
// local filesystem.
type OSReader struct {
	BaseDir string
}

// NewOSReader creates an OSReader rooted at baseDir.
func NewOSReader(baseDir string) *OSReader {
	return &OSReader{BaseDir: baseDir}
}

func (r *OSReader) ReadModule(name string) (string, error) {
	path := filepath.Join(r.BaseDir, name+".sst")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not open module %q: %w", name, err)
	}
	return string(data), nil
}
