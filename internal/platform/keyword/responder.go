package keyword

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/phrazzld/jobtrack-api/internal/generation"
)

// Responder implements generation.Generator with first-match keyword rules.
type Responder struct {
	rules    []Rule
	fallback string
	logger   *slog.Logger
}

// NewResponder creates a Responder with the given rules and fallback text.
// Every rule needs at least one keyword and a non-empty response, and the
// fallback must be non-empty; otherwise generation.ErrInvalidConfig is returned.
func NewResponder(rules []Rule, fallback string, logger *slog.Logger) (*Responder, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if strings.TrimSpace(fallback) == "" {
		return nil, fmt.Errorf("%w: fallback response cannot be empty", generation.ErrInvalidConfig)
	}

	normalized := make([]Rule, 0, len(rules))
	for i, rule := range rules {
		if strings.TrimSpace(rule.Response) == "" {
			return nil, fmt.Errorf("%w: rule %d (%s) has an empty response",
				generation.ErrInvalidConfig, i, rule.Name)
		}

		keywords := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}
		if len(keywords) == 0 {
			return nil, fmt.Errorf("%w: rule %d (%s) has no keywords",
				generation.ErrInvalidConfig, i, rule.Name)
		}

		normalized = append(normalized, Rule{Name: rule.Name, Keywords: keywords, Response: rule.Response})
	}

	return &Responder{
		rules:    normalized,
		fallback: fallback,
		logger:   logger.With("component", "keyword_responder"),
	}, nil
}

// NewDefaultResponder creates a Responder with DefaultRules and DefaultResponse.
func NewDefaultResponder(logger *slog.Logger) *Responder {
	r, err := NewResponder(DefaultRules(), DefaultResponse, logger)
	if err != nil {
		// the built-in rules are static
		panic(err)
	}
	return r
}

// Generate implements generation.Generator.
func (r *Responder) Generate(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rule, ok := r.Match(message)
	if !ok {
		r.logger.Debug("no rule matched, using fallback")
		return r.fallback, nil
	}

	r.logger.Debug("rule matched", "rule", rule.Name)
	return rule.Response, nil
}

// Match returns the first rule with a keyword that starts a word in message.
func (r *Responder) Match(message string) (Rule, bool) {
	lower := strings.ToLower(message)
	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if hasWordPrefix(lower, kw) {
				return rule, true
			}
		}
	}
	return Rule{}, false
}

// hasWordPrefix reports whether kw occurs in text at the start of a word.
// "test" matches "tests" and "unit test" but not "latest".
func hasWordPrefix(text, kw string) bool {
	for offset := 0; offset < len(text); {
		i := strings.Index(text[offset:], kw)
		if i < 0 {
			return false
		}
		i += offset
		if i == 0 {
			return true
		}
		prev, _ := utf8.DecodeLastRuneInString(text[:i])
		if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
			return true
		}
		offset = i + 1
	}
	return false
}

// Ensure Responder implements generation.Generator
var _ generation.Generator = (*Responder)(nil)
