package bookshop

// ShopOption defines a functional option for configuring a Shop.
type ShopOption func(*Shop) error

// WithShopLogger sets the logger for the Shop.
// The logger will receive catalogue admissions and rejections as well as recorded sales.
func WithShopLogger(logger Logger) ShopOption {
	return func(s *Shop) error {
		s.observers.logger = logger
		return nil
	}
}

// WithShopContextualLogger sets the contextual logger for the Shop.
// When set, it takes precedence over the basic logger and receives the caller's
// context for automatic trace/span correlation.
func WithShopContextualLogger(logger ContextualLogger) ShopOption {
	return func(s *Shop) error {
		s.observers.contextualLogger = logger
		return nil
	}
}

// WithShopMetrics sets the metrics collector for the Shop.
// The collector will receive catalogue admission counters and rejection counters.
func WithShopMetrics(collector MetricsCollector) ShopOption {
	return func(s *Shop) error {
		s.observers.metricsCollector = collector
		return nil
	}
}

// WithShopTracing sets the tracing collector for the Shop.
func WithShopTracing(collector TracingCollector) ShopOption {
	return func(s *Shop) error {
		s.observers.tracingCollector = collector
		return nil
	}
}

// CustomerOption defines a functional option for configuring a Customer.
type CustomerOption func(*Customer) error

// WithCustomerLogger sets the logger for the Customer.
// The logger will receive purchase outcomes: completed sales, insufficient
// funds rejections, and not-available rejections.
func WithCustomerLogger(logger Logger) CustomerOption {
	return func(c *Customer) error {
		c.observers.logger = logger
		return nil
	}
}

// WithCustomerContextualLogger sets the contextual logger for the Customer.
// When set, it takes precedence over the basic logger and receives the caller's
// context for automatic trace/span correlation.
func WithCustomerContextualLogger(logger ContextualLogger) CustomerOption {
	return func(c *Customer) error {
		c.observers.contextualLogger = logger
		return nil
	}
}

// WithCustomerMetrics sets the metrics collector for the Customer.
// The collector will receive purchase attempt counters labeled by outcome and
// purchase duration histograms.
func WithCustomerMetrics(collector MetricsCollector) CustomerOption {
	return func(c *Customer) error {
		c.observers.metricsCollector = collector
		return nil
	}
}

// WithCustomerTracing sets the tracing collector for the Customer.
// The collector will receive one span per purchase transaction.
func WithCustomerTracing(collector TracingCollector) CustomerOption {
	return func(c *Customer) error {
		c.observers.tracingCollector = collector
		return nil
	}
}
