package engine

// ============================================================================
// CHART OPTIONS — Functional options for BuildCharts()
// ============================================================================

// Option configures chart building via functional options.
type Option func(*chartConfig)

type chartConfig struct {
	Palette     []string
	TitlePrefix string
}

// WithPalette overrides the default color palette.
func WithPalette(colors []string) Option {
	return func(c *chartConfig) {
		if len(colors) > 0 {
			c.Palette = colors
		}
	}
}

// WithTitlePrefix prepends a prefix to every chart title.
func WithTitlePrefix(prefix string) Option {
	return func(c *chartConfig) {
		c.TitlePrefix = prefix
	}
}

func applyOptions(opts []Option) *chartConfig {
	cfg := &chartConfig{Palette: defaultColors}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
