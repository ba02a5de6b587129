// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandInputs expands globs among input paths, keeping their order. "-"
// (stdin) may appear at most once and is passed through untouched. A glob
// that matches nothing is an error.
func ExpandInputs(args []string) ([]string, error) {
	var (
		out   []string
		stdin bool
	)
	for _, a := range args {
		if a == "-" {
			if stdin {
				return nil, fmt.Errorf("stdin ('-') given more than once")
			}
			stdin = true
			out = append(out, a)
			continue
		}
		if !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		out = append(out, m...)
	}
	return out, nil
}
