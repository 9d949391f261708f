package infixtree

// BuildOption is an option for building trees.
type BuildOption interface {
	buildOption(buildctx) buildctx
}

type (
	strictopt struct{}
	powopt    struct{}
)

// buildctx holds settings for building. It is also a BuildOption.
type buildctx struct {
	// strict indicates that unrecognized tokens are errors instead of being
	// dropped.
	strict bool
	// rightpow indicates that chained exponentiations group from the right.
	rightpow bool
}

// Strict makes Build return a *TokenError for any token which is neither an
// unsigned integer literal nor an operator. Without Strict, such tokens are
// ignored, which means that e.g. "2 x 3" builds the same tree as "2 3".
func Strict() BuildOption {
	return strictopt{}
}

func (strictopt) buildOption(p buildctx) buildctx {
	p.strict = true
	return p
}

// RightAssocPow makes ^ right-associative, so that "2 ^ 3 ^ 2" is 2^(3^2).
// By default every operator is left-associative.
func RightAssocPow() BuildOption {
	return powopt{}
}

func (powopt) buildOption(p buildctx) buildctx {
	p.rightpow = true
	return p
}

// BuildPreset combines several options into one. A preset panics when it
// would change any option already set, but it is safe to apply other options
// after a preset.
func BuildPreset(opts ...BuildOption) BuildOption {
	var p buildctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.buildOption(p)
	}
	return &p
}

func (o *buildctx) buildOption(p buildctx) buildctx {
	if p != (buildctx{}) {
		panic("infixtree: preset applied to non-default build config")
	}
	return *o
}
