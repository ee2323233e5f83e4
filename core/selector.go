package core

import "github.com/new-mentat/argen/errors"

// helpSelector is the byte getopt_long returns for the built-in help entry.
// It is never placed in the allocation pool.
const helpSelector = 'h'

// assignSelectors gives every option a unique dispatch byte, in spec order.
// Options with an explicit short name keep that byte verbatim; the rest
// draw from the unused values in 2..254, lowest first, so the same spec
// always produces the same table.
func assignSelectors(opts []Option) ([]byte, error) {
	used := make(map[byte]bool, len(opts)+1)
	used[helpSelector] = true
	for i := range opts {
		if opts[i].Short != "" {
			used[opts[i].Short[0]] = true
		}
	}

	var pool []byte
	for b := 2; b <= 254; b++ {
		if !used[byte(b)] {
			pool = append(pool, byte(b))
		}
	}

	sels := make([]byte, len(opts))
	for i := range opts {
		if opts[i].Short != "" {
			sels[i] = opts[i].Short[0]
			continue
		}
		if len(pool) == 0 {
			return nil, errors.NewSelectorPool(len(opts))
		}
		sels[i] = pool[0]
		pool = pool[1:]
	}
	return sels, nil
}
