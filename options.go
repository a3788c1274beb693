package mzident

// Option configures identify and read dispatch.
//
// Options use the functional options pattern:
//
//	doc, err := mzident.Read("results.mzid",
//	    mzident.WithHead(head),
//	)
type Option func(*dispatchOptions)

// dispatchOptions holds configuration for one dispatch call.
type dispatchOptions struct {
	registry *Registry // registry to dispatch against
	head     []byte    // pre-read head prefix, nil to read it here
}

// defaultOptions returns the default configuration.
func defaultOptions() *dispatchOptions {
	return &dispatchOptions{
		registry: DefaultRegistry(),
	}
}

// WithRegistry dispatches against a custom registry instead of the
// default one.
//
// Use this to change reader priority, drop formats, or add readers for
// formats this module does not ship:
//
//	reg := mzident.NewRegistry(myReader)
//	for _, r := range mzident.DefaultRegistry().Readers() {
//	    reg.Register(r)
//	}
//	doc, err := mzident.Read(path, mzident.WithRegistry(reg))
func WithRegistry(reg *Registry) Option {
	return func(o *dispatchOptions) {
		o.registry = reg
	}
}

// WithHead supplies a pre-read head prefix of the file.
//
// Dispatch probes every registered reader against the same few hundred
// leading bytes. A caller that already read them (or dispatches the same
// file repeatedly) passes them here to avoid a second read:
//
//	head, _ := mzident.ReadHead(path)
//	format := mzident.Identify(path, mzident.WithHead(head))
//	doc, err := mzident.Read(path, mzident.WithHead(head))
func WithHead(head []byte) Option {
	return func(o *dispatchOptions) {
		o.head = head
	}
}
