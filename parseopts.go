package polish

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	stripopt struct{}
	depthopt int
)

// parsectx holds general data for parsing.
type parsectx struct {
	// strip indicates that whitespace is removed before parsing.
	strip bool
	// maxdepth is the deepest tree the parser builds, or 0 for no limit.
	maxdepth int
}

// StripSpace tells the parser to remove all whitespace from the input before
// parsing it, the same as Normalize. Without it, whitespace is part of
// whichever term contains it.
func StripSpace() ParseOption {
	return stripopt{}
}

func (stripopt) parseOption(p parsectx) parsectx {
	p.strip = true
	return p
}

// MaxDepth limits how deeply parse trees may nest. Parsing an expression that
// would produce a tree with more than n levels fails with a *DepthError. A
// limit of zero or less removes the limit, which is the default.
func MaxDepth(n int) ParseOption {
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	if p.maxdepth < 0 {
		p.maxdepth = 0
	}
	return p
}
