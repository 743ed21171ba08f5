// Command taskprep reads a grounded planning task description and
// writes its preprocessed, analysis-enriched form.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/taskprep/prepro"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: taskprep <input-file> [extra-arg-to-skip-relevance-analysis]")
		os.Exit(1)
	}

	opts := prepro.Options{Diagnostics: os.Stdout}
	if len(os.Args) > 2 {
		fmt.Println("*** do not perform relevance analysis ***")
		opts.SuppressRelevance = true
	}

	in, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer in.Close()

	prefix := outputPrefix(os.Args[1])

	var buf strings.Builder
	name, err := prepro.Run(in, &buf, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	outName := outputFilename(prefix, name)
	if err := os.WriteFile(outName, []byte(buf.String()), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// outputPrefix derives the filename prefix from the input path's final
// path segment, up to (but not including) its first underscore, unless
// that segment is literally "output".
func outputPrefix(path string) string {
	base := path
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	segment := base
	if idx := strings.IndexByte(base, '_'); idx >= 0 {
		segment = base[:idx]
	}
	if segment == "output" {
		return ""
	}
	return segment
}

// outputFilename builds "[<prefix>_]output_prepro<name>".
func outputFilename(prefix, name string) string {
	f := "output_prepro" + name
	if prefix != "" {
		f = prefix + "_" + f
	}
	return f
}
