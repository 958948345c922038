// params/alias.go
package params

// Alias maps a canonical parameter name to the alternative names callers may use for it.
type Alias struct {
	Name    string
	Aliases []string
}

// Aliases is an ordered alias table. Order matters when several aliases of the same
// parameter are supplied: the first one present wins.
type Aliases []Alias

// Dealias returns a copy of p in which every alias has been folded into its canonical name.
// An alias only supplies a value when the canonical parameter is absent; alias keys are
// removed from the result either way. p is never modified.
func Dealias(p Params, aliases Aliases) Params {
	out := p.Clone()
	for _, alias := range aliases {
		for _, name := range alias.Aliases {
			if !out.Has(alias.Name) && out.Has(name) {
				out[alias.Name] = out[name]
			}
			delete(out, name)
		}
	}
	return out
}

// Canonical returns the canonical name for key, or key itself when it is not an alias.
func (a Aliases) Canonical(key string) string {
	for _, alias := range a {
		for _, name := range alias.Aliases {
			if name == key {
				return alias.Name
			}
		}
	}
	return key
}
