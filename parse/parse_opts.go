package parse

// DefaultMaxDepth bounds the nesting of dictionaries and arrays.
const DefaultMaxDepth = 512

type parseOpts struct {
	maxDepth      int
	allowTrailing bool
}

type ParseOption func(*parseOpts)

// MaxDepth sets the maximum nesting of containers; n <= 0 means
// DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// AllowTrailing accepts input with content after the document, which is
// then ignored.
func AllowTrailing() ParseOption {
	return func(o *parseOpts) { o.allowTrailing = true }
}
