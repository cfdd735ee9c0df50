// Package constants holds filesystem and input-handling defaults shared by
// the command layer.
package constants

import "io/fs"

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

// MaxConfigBytes caps how large a configuration document the plumbing will
// read before handing it to the engine. The engine itself performs no size
// validation.
const MaxConfigBytes = 4 << 20
