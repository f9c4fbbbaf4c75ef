// Package path parses, transforms, and serializes the vector-path
// command strings produced by the projection kernel.
package path

// Command is a single path command: a letter from the SVG path
// mini-language and its numeric parameters. Uppercase letters are
// absolute, lowercase relative.
type Command struct {
	Letter byte      `json:"command"`
	Values []float64 `json:"values"`
}

// Path is an ordered sequence of commands.
type Path []Command

// arity maps each supported command letter (uppercased) to its fixed
// parameter count. A command run may carry any positive multiple of its
// arity (implicit repeats); Z carries none.
var arity = map[byte]int{
	'M': 2, 'L': 2, 'T': 2,
	'H': 1, 'V': 1,
	'C': 6,
	'S': 4, 'Q': 4,
	'A': 7,
	'Z': 0,
}

// upper returns the uppercase form of a command letter.
func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// isAbsolute reports whether the command letter denotes absolute
// coordinates.
func isAbsolute(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// Clone returns a deep copy of the path. Translate and Scale mutate in
// place, so callers needing the original must clone first.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	for i, cmd := range p {
		vals := make([]float64, len(cmd.Values))
		copy(vals, cmd.Values)
		out[i] = Command{Letter: cmd.Letter, Values: vals}
	}
	return out
}
