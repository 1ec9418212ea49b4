// Package tspath re-exports typescript-go's internal path helpers.
package tspath

import (
	"github.com/microsoft/typescript-go/internal/tspath"
)

type Path = tspath.Path

var (
	NormalizePath             = tspath.NormalizePath
	GetNormalizedAbsolutePath = tspath.GetNormalizedAbsolutePath
	ResolvePath               = tspath.ResolvePath
	ToPath                    = tspath.ToPath
)
