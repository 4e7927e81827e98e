package scanner

// Interner implements string interning for token text.
//
// Identifiers and qualified names repeat throughout a source file; by
// maintaining a pool of canonical strings the scanner reuses the same string
// instance for all occurrences.
type Interner struct {
	pool map[string]string
}

// NewInterner creates a new string interner with the given initial capacity.
func NewInterner(capacity int) *Interner {
	return &Interner{
		pool: make(map[string]string, capacity),
	}
}

// Intern returns the canonical version of the string, adding it to the pool
// on first sight.
func (i *Interner) Intern(s string) string {
	if interned, ok := i.pool[s]; ok {
		return interned
	}
	i.pool[s] = s
	return s
}

// Size returns the number of unique strings in the pool. Useful for
// diagnostics and testing.
func (i *Interner) Size() int {
	return len(i.pool)
}

// Reset clears the pool. Typically the pool is kept across files to
// maximize reuse.
func (i *Interner) Reset() {
	i.pool = make(map[string]string)
}
