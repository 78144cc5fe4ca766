package eszett

import (
	"github.com/npillmayer/eszett/german"
	"github.com/npillmayer/eszett/scope"
	"golang.org/x/text/language"
)

// Option configures a transformation.
type Option func(*config)

type config struct {
	restrict bool
	resolver german.Resolver
	fallback german.Decision
	lang     language.Tag
}

func newConfig(opts []Option) config {
	cfg := config{
		resolver: german.Heuristic,
		fallback: german.Literal,
		lang:     language.German,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithRestrict makes ranges mark the regions to process, instead of the
// regions to exclude from processing.
func WithRestrict() Option {
	return func(cfg *config) {
		cfg.restrict = true
	}
}

// WithResolver sets the resolver for candidate digraphs when restoring.
// The default is german.Heuristic.
func WithResolver(r german.Resolver) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.resolver = r
		}
	}
}

// WithFallback sets the decision for digraphs a resolver leaves undecided.
// The default is german.Literal.
func WithFallback(d german.Decision) Option {
	return func(cfg *config) {
		cfg.fallback = d
	}
}

// WithLanguage sets the language variant of the text. For Swiss or
// Liechtenstein German, "ss" is never restored to "ß".
func WithLanguage(tag language.Tag) Option {
	return func(cfg *config) {
		cfg.lang = tag
	}
}

var noEszettRegions = []language.Region{
	language.MustParseRegion("CH"),
	language.MustParseRegion("LI"),
}

func (cfg config) noEszett() bool {
	region, _ := cfg.lang.Region()
	for _, r := range noEszettRegions {
		if region == r {
			return true
		}
	}
	return false
}

func (cfg config) machine(dir Direction) *german.Machine {
	return &german.Machine{
		Direction: dir,
		Resolver:  cfg.resolver,
		Fallback:  cfg.fallback,
		NoEszett:  cfg.noEszett(),
	}
}

func (cfg config) scopes(text string, ranges []Range) (scope.ROScopes, error) {
	if len(ranges) == 0 {
		return scope.Whole(text), nil
	}
	scopes, err := scope.FromRawRanges(text, ranges)
	if err != nil {
		return nil, err
	}
	if cfg.restrict {
		return scopes, nil
	}
	return scopes.Invert(), nil
}
