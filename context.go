package slhdsa

// Context binds a ParamSet to the concrete hash primitives its suite
// requires and exposes the derived constants the rest of the package needs
// repeatedly (WOTS+ chain count, digest-split lengths, and so on).
//
// A Context holds no secret material; it is safe to share across
// concurrently running verifications, and safe to reuse across many
// signing calls on possibly-different keys.
type Context struct {
	Params ParamSet
}

// NewContext builds a Context directly from a ParamSet.
func NewContext(p ParamSet) *Context {
	return &Context{Params: p}
}

// NewContextFromName builds a Context for one of the twelve registered
// parameter sets, e.g. "SLH-DSA-SHAKE-128s".
func NewContextFromName(name string) (*Context, Error) {
	p, err := ParamsFromName(name)
	if err != nil {
		return nil, err
	}
	return NewContext(p), nil
}

func (ctx *Context) n() int  { return ctx.Params.N }
func (ctx *Context) h() int  { return ctx.Params.H }
func (ctx *Context) d() int  { return ctx.Params.D }
func (ctx *Context) h1() int { return ctx.Params.H1 }
func (ctx *Context) a() int  { return ctx.Params.A }
func (ctx *Context) k() int  { return ctx.Params.K }
func (ctx *Context) m() int  { return ctx.Params.M }

// digestSplitLengths returns the byte lengths of the three slices a
// signing/verification digest splits into: md, idx_tree_raw, idx_leaf_raw.
func (ctx *Context) digestSplitLengths() (mdLen, idxTreeLen, idxLeafLen int) {
	p := ctx.Params
	mdLen = ceilDiv(p.K*p.A, 8)
	idxTreeLen = ceilDiv(p.H-p.H1, 8)
	idxLeafLen = ceilDiv(p.H1, 8)
	return
}
