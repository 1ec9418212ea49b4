// Command tsestree parses a TypeScript file and prints its ESTree
// representation as JSON.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/uniqueiniquity/typescript-estree/tsestree"
)

var (
	rangeFlag    bool
	locFlag      bool
	tokensFlag   bool
	commentsFlag bool
	jsxFlag      bool
	tolerantFlag bool
	projectFlags []string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tsestree <file>",
		Short: "Convert TypeScript source to an ESTree-shaped JSON AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolVar(&rangeFlag, "range", false, "attach byte ranges to nodes")
	cmd.Flags().BoolVar(&locFlag, "loc", false, "attach line/column locations to nodes")
	cmd.Flags().BoolVar(&tokensFlag, "tokens", false, "include the token stream")
	cmd.Flags().BoolVar(&commentsFlag, "comments", false, "include comments")
	cmd.Flags().BoolVar(&jsxFlag, "jsx", false, "parse as TSX")
	cmd.Flags().BoolVar(&tolerantFlag, "tolerant", false, "report parse errors instead of failing on the first one")
	cmd.Flags().StringArrayVar(&projectFlags, "project", nil, "tsconfig path to resolve the file against (can be repeated)")
	return cmd
}

func run(filePath string) error {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	opts := tsestree.Options{
		Range:    rangeFlag,
		Loc:      locFlag,
		Tokens:   tokensFlag,
		Comment:  commentsFlag,
		JSX:      jsxFlag,
		Tolerant: tolerantFlag,
		FilePath: filePath,
		Projects: projectFlags,
	}
	result, err := tsestree.ParseAndGenerateServices(string(source), opts)
	if err != nil {
		var syntaxErr *tsestree.SyntaxError
		if errors.As(err, &syntaxErr) {
			return fmt.Errorf("%s:%d:%d: %s", filePath, syntaxErr.Line, syntaxErr.Column, syntaxErr.Message)
		}
		return err
	}

	for _, diag := range result.Errors {
		color.New(color.FgYellow).Fprintf(os.Stderr, "%s:%d:%d: %s\n", filePath, diag.Line, diag.Column, diag.Message)
	}

	out, err := json.MarshalIndent(result.AST, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
