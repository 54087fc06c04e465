package paging

import "log/slog"

// Option configures Extend and NewPagedSlice.
type Option func(*options)

// options collects the construction settings. Pointer fields distinguish
// "not supplied" from a supplied zero.
type options struct {
	pageNumber    *int
	pageSize      *int
	generatorName *string
	generator     Generator
	registry      *Registry
	logger        *slog.Logger
	metrics       *Metrics
}

// WithPageNumber sets the initial page number. It must be at least 1.
func WithPageNumber(n int) Option {
	return func(o *options) {
		o.pageNumber = &n
	}
}

// WithPageSize sets the number of items per page. It must be at least 1.
func WithPageSize(n int) Option {
	return func(o *options) {
		o.pageSize = &n
	}
}

// WithGenerator selects a registered page generator by name.
func WithGenerator(name string) Option {
	return func(o *options) {
		o.generatorName = &name
	}
}

// WithGeneratorInstance uses g directly instead of looking one up. It takes
// precedence over WithGenerator.
func WithGeneratorInstance(g Generator) Option {
	return func(o *options) {
		o.generator = g
	}
}

// WithRegistry sets the registry consulted for defaults and generator
// names. Without it DefaultRegistry is used.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithLogger sets the logger for navigation and generator changes.
// If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// settings are the validated construction values.
type settings struct {
	pageNumber int
	pageSize   int
	generator  Generator
	registry   *Registry
	logger     *slog.Logger
	metrics    *Metrics
}

// resolve validates the options and fills in defaults. It has no side
// effects, so a failure leaves the target untouched.
func resolve(opts []Option) (settings, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.pageNumber != nil {
		if err := checkPositive("pageNumber", *o.pageNumber); err != nil {
			return settings{}, err
		}
	}
	if o.pageSize != nil {
		if err := checkPositive("pageSize", *o.pageSize); err != nil {
			return settings{}, err
		}
	}

	registry := o.registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	generator := o.generator
	if generator == nil {
		if o.generatorName != nil {
			g, err := registry.resolve(*o.generatorName)
			if err != nil {
				return settings{}, err
			}
			generator = g
		} else if g, ok := registry.Lookup(GeneratorDefault); ok {
			generator = g
		} else {
			generator = FullRange
		}
	}

	s := settings{
		pageNumber: registry.pageNumber(),
		pageSize:   registry.pageSize(),
		generator:  generator,
		registry:   registry,
		logger:     o.logger,
		metrics:    o.metrics,
	}
	if o.pageNumber != nil {
		s.pageNumber = *o.pageNumber
	}
	if o.pageSize != nil {
		s.pageSize = *o.pageSize
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s, nil
}
