package console

import (
	"sort"
	"strings"
)

// Complete returns candidate completions for a partially typed line. The
// first word completes against the command table and the argument of
// "theme" against the theme names. Each candidate is a full line.
func (in *Interpreter) Complete(input string) []string {
	lower := strings.ToLower(strings.TrimLeft(input, " "))
	fields := strings.Fields(lower)
	trailingSpace := strings.HasSuffix(lower, " ")

	switch {
	case len(fields) == 0:
		return in.Commands()
	case len(fields) == 1 && !trailingSpace:
		return completeFrom(in.Commands(), fields[0], "")
	case fields[0] == "theme" && (len(fields) == 1 || (len(fields) == 2 && !trailingSpace)):
		partial := ""
		if len(fields) == 2 {
			partial = fields[1]
		}
		names := make([]string, 0, len(in.t.themes))
		for _, n := range in.t.themes {
			names = append(names, string(n))
		}
		return completeFrom(names, partial, "theme ")
	}
	return nil
}

// completeFrom keeps the values that start with partial, exact matches
// first, then in their original order.
func completeFrom(values []string, partial, prefix string) []string {
	var out []string
	for _, v := range values {
		if strings.HasPrefix(v, partial) {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i] == partial && out[j] != partial
	})
	for i := range out {
		out[i] = prefix + out[i]
	}
	return out
}

// CommonPrefix returns the longest prefix shared by every candidate.
func CommonPrefix(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	p := candidates[0]
	for _, c := range candidates[1:] {
		for !strings.HasPrefix(c, p) {
			p = p[:len(p)-1]
		}
	}
	return p
}
