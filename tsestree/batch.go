package tsestree

import (
	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/core"
)

// ConvertProgramFiles converts every given source file of a Program, fanning
// the work out over one worker per type checker. onResult is called once per
// file, from worker goroutines, so it must be safe for concurrent use.
func ConvertProgramFiles(program *compiler.Program, files []*ast.SourceFile, opts Options, singleThreaded bool, onResult func(file *ast.SourceFile, result *Result, err error)) {
	queue := make(chan *ast.SourceFile, len(files))
	for _, file := range files {
		queue <- file
	}
	close(queue)

	wg := core.NewWorkGroup(singleThreaded)
	for range program.GetTypeCheckers() {
		wg.Queue(func() {
			for file := range queue {
				result, err := convertParsed(file, file.Text, opts)
				if err == nil {
					result.Program = program
				}
				onResult(file, result, err)
			}
		})
	}
	wg.RunAndWait()
}
