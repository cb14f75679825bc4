package extractor

import "strings"

// collapseSeparators reduces every whitespace run inside a line to one
// space, trims each line and drops empty lines.
func collapseSeparators(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			out = append(out, strings.Join(fields, " "))
		}
	}
	return strings.Join(out, "\n")
}
