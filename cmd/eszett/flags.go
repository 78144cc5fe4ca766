package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/eszett"
	"github.com/npillmayer/eszett/german"
	"github.com/thatisuday/commando"
	"golang.org/x/text/language"
)

// parseRanges parses ranges like "3:10,20:25". "-" and "" mean no ranges.
func parseRanges(spec string) ([]eszett.Range, error) {
	if spec == "-" || spec == "" {
		return nil, nil
	}
	var ranges []eszett.Range
	for _, item := range splitCSVSpace(spec) {
		from, to, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("invalid range %q, expected start:end", item)
		}
		start, err := strconv.Atoi(strings.TrimSpace(from))
		if err != nil {
			return nil, fmt.Errorf("invalid range start in %q: %w", item, err)
		}
		end, err := strconv.Atoi(strings.TrimSpace(to))
		if err != nil {
			return nil, fmt.Errorf("invalid range end in %q: %w", item, err)
		}
		ranges = append(ranges, eszett.Range{Start: start, End: end})
	}
	return ranges, nil
}

// transformOptions collects the options shared by all commands.
func transformOptions(flags map[string]commando.FlagValue) ([]eszett.Option, error) {
	var opts []eszett.Option
	resolver, err := parseResolver(mustFlagString(flags["resolver"], "resolver"),
		mustFlagString(flags["words"], "words"))
	if err != nil {
		return nil, err
	}
	opts = append(opts, eszett.WithResolver(resolver))
	lang, err := parseLanguage(mustFlagString(flags["lang"], "lang"))
	if err != nil {
		return nil, err
	}
	opts = append(opts, eszett.WithLanguage(lang))
	if f, ok := flags["fallback"]; ok {
		fallback, err := parseFallback(mustFlagString(f, "fallback"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, eszett.WithFallback(fallback))
	}
	return opts, nil
}

func parseResolver(name string, wordsPath string) (german.Resolver, error) {
	switch strings.ToLower(name) {
	case "", "heuristic":
		return german.Heuristic, nil
	case "native":
		return german.PreferNative, nil
	case "literal":
		return german.PreferLiteral, nil
	case "ambiguous":
		return german.Ambiguous, nil
	case "wordlist":
		if wordsPath == "" || wordsPath == "-" {
			return nil, fmt.Errorf("resolver 'wordlist' needs a word list (--words)")
		}
		f, err := os.Open(wordsPath)
		if err != nil {
			return nil, fmt.Errorf("cannot open word list: %w", err)
		}
		defer f.Close()
		wl, err := german.ReadWordList(f)
		if err != nil {
			return nil, fmt.Errorf("cannot read word list %s: %w", wordsPath, err)
		}
		tracer().Infof("loaded %d words from %s", wl.Len(), wordsPath)
		return wl, nil
	}
	return nil, fmt.Errorf("unknown resolver %q", name)
}

func parseFallback(name string) (german.Decision, error) {
	switch strings.ToLower(name) {
	case "", "literal":
		return german.Literal, nil
	case "native":
		return german.Native, nil
	}
	return german.Literal, fmt.Errorf("invalid fallback %q, expected literal or native", name)
}

func parseLanguage(s string) (language.Tag, error) {
	if s == "" {
		return language.German, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid --lang flag %q: %w", s, err)
	}
	return tag, nil
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
