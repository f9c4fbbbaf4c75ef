package path

// Translate shifts all absolute coordinates by (tx, ty) in place.
//
// Relative (lowercase) commands are deltas and are left untouched.
// H shifts only x, V only y, and arcs shift only their endpoint pair;
// radii, rotation, and flags keep their meaning under translation.
func (p Path) Translate(tx, ty float64) {
	if tx == 0 && ty == 0 {
		return
	}

	for _, cmd := range p {
		if !isAbsolute(cmd.Letter) {
			continue
		}
		switch cmd.Letter {
		case 'M', 'L', 'T', 'C', 'S', 'Q':
			for i := range cmd.Values {
				if i%2 == 0 {
					cmd.Values[i] += tx
				} else {
					cmd.Values[i] += ty
				}
			}
		case 'H':
			for i := range cmd.Values {
				cmd.Values[i] += tx
			}
		case 'V':
			for i := range cmd.Values {
				cmd.Values[i] += ty
			}
		case 'A':
			// rx ry rotation large-arc sweep x y
			for i := 0; i+6 < len(cmd.Values); i += 7 {
				cmd.Values[i+5] += tx
				cmd.Values[i+6] += ty
			}
		}
	}
}

// Scale multiplies all lengths and coordinates by factor in place.
//
// Arc rotation and flag parameters are dimensionless and stay as they
// are. Relative commands scale like absolute ones: deltas grow with the
// drawing.
func (p Path) Scale(factor float64) {
	if factor == 1 {
		return
	}

	for _, cmd := range p {
		switch upper(cmd.Letter) {
		case 'M', 'L', 'T', 'C', 'S', 'Q', 'H', 'V':
			for i := range cmd.Values {
				cmd.Values[i] *= factor
			}
		case 'A':
			for i := 0; i+6 < len(cmd.Values); i += 7 {
				cmd.Values[i] *= factor
				cmd.Values[i+1] *= factor
				cmd.Values[i+5] *= factor
				cmd.Values[i+6] *= factor
			}
		}
	}
}
