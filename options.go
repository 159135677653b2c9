package riskgate

type authenticateOptions struct {
	traits     any
	properties any
}

type Option func(*authenticateOptions)

// WithTraits attaches opaque user traits to the authenticate payload.
func WithTraits(traits any) Option {
	return func(o *authenticateOptions) {
		o.traits = traits
	}
}

// WithProperties attaches opaque event properties to the authenticate payload.
func WithProperties(properties any) Option {
	return func(o *authenticateOptions) {
		o.properties = properties
	}
}

func newAuthenticateOptions(opts []Option) authenticateOptions {
	options := authenticateOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
