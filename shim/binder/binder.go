// Package binder re-exports typescript-go's internal binder entry points.
package binder

import (
	"github.com/microsoft/typescript-go/internal/binder"
)

var BindSourceFile = binder.BindSourceFile
