package path

import (
	"log"
	"regexp"
	"strconv"
	"strings"
)

// commandRe splits path data into command letter + parameter run pairs.
var commandRe = regexp.MustCompile(`([MmLlHhVvCcSsQqTtAaZz])([^MmLlHhVvCcSsQqTtAaZz]*)`)

// Parse tokenizes path data into an ordered command list.
//
// Each command letter from the supported set is grouped with the run of
// characters up to the next letter, and all numeric tokens in the run
// are extracted in order. A command with an unparseable parameter, or a
// parameter count that is not a multiple of the command's arity, is
// dropped whole; the rest of the path still parses. Empty or invalid
// input yields an empty path, never an error.
func Parse(d string) Path {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil
	}

	var p Path
	for _, match := range commandRe.FindAllStringSubmatch(d, -1) {
		letter := match[1][0]
		values, ok := parseValues(match[2])
		if !ok {
			log.Printf("path: dropping command %q: unparseable parameters %q", letter, strings.TrimSpace(match[2]))
			continue
		}
		if !arityOK(letter, len(values)) {
			log.Printf("path: dropping command %q: %d parameters", letter, len(values))
			continue
		}
		p = append(p, Command{Letter: letter, Values: values})
	}
	return p
}

// parseValues extracts the numeric tokens of a parameter run. Returns
// ok=false if any token fails to parse.
func parseValues(run string) ([]float64, bool) {
	fields := strings.FieldsFunc(run, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil, true
	}

	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

// arityOK checks the parameter count against the command's arity.
// Repeated parameter groups are allowed for every command except Z.
func arityOK(letter byte, n int) bool {
	want, known := arity[upper(letter)]
	if !known {
		return false
	}
	if want == 0 {
		return n == 0
	}
	return n > 0 && n%want == 0
}
