package puzzle

import "strings"

// Lines splits input into lines, ignoring carriage returns and trailing
// blank lines. Empty input yields no lines.
func Lines(input string) []string {
	input = strings.TrimRight(strings.ReplaceAll(input, "\r", ""), "\n")
	if input == "" {
		return nil
	}

	return strings.Split(input, "\n")
}

// Blocks splits input into paragraphs separated by one or more blank lines.
func Blocks(input string) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, l := range Lines(input) {
		if strings.TrimSpace(l) == "" {
			if cur != nil {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if cur != nil {
		out = append(out, cur)
	}

	return out
}
