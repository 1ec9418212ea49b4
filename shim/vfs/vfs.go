// Package vfs re-exports typescript-go's internal virtual file system interface.
package vfs

import (
	"github.com/microsoft/typescript-go/internal/vfs"
)

type FS = vfs.FS
