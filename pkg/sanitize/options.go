package sanitize

const defaultMaxDepth = 0 // 0 means unlimited

// Options holds sanitizer configuration values. The zero value means no
// overrides; NewSanitizer resolves unset fields to defaults.
type Options struct {
	failFast bool
	maxDepth int

	failFastSet bool
	maxDepthSet bool
}

// JoinOptions combines multiple option sets into one in declaration order.
// Later options override earlier ones when set.
func JoinOptions(srcs ...Options) Options {
	var merged Options
	for _, src := range srcs {
		merged.merge(src)
	}
	return merged
}

func (o *Options) merge(src Options) {
	if src.failFastSet {
		o.failFast = src.failFast
		o.failFastSet = true
	}
	if src.maxDepthSet {
		o.maxDepth = src.maxDepth
		o.maxDepthSet = true
	}
}

func (o Options) resolve() resolvedOptions {
	r := resolvedOptions{maxDepth: defaultMaxDepth}
	if o.failFastSet {
		r.failFast = o.failFast
	}
	if o.maxDepthSet {
		r.maxDepth = o.maxDepth
	}
	return r
}

type resolvedOptions struct {
	failFast bool
	maxDepth int
}

// FailFast controls whether the sanitizer stops emitting events after the
// first Error, of either layer, it observes. Once stopped it discards every
// further raw event except Error events, which are still forwarded, and
// EndOfStream.
func FailFast(value bool) Options {
	return Options{failFast: value, failFastSet: true}
}

// MaxDepth caps open-element nesting depth. Zero means unlimited.
func MaxDepth(value int) Options {
	return Options{maxDepth: value, maxDepthSet: true}
}
