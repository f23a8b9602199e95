package alibi

import (
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"strings"

	"github.com/thomas-vilte/mischief/internal/errors"
	"github.com/thomas-vilte/mischief/internal/regex"
	"gopkg.in/yaml.v3"
)

// TemplatePack holds message templates per conventional-commit type and the
// word pools their {placeholders} draw from.
type TemplatePack struct {
	Templates map[string][]string `yaml:"templates"`
	Pools     map[string][]string `yaml:"pools"`
}

func DefaultPack() TemplatePack {
	return TemplatePack{
		Templates: map[string][]string{
			"fix": {
				"resolve edge case in {module}",
				"handle empty response gracefully",
				"null check in {module}",
				"race condition in {feature}",
				"memory leak in {module}",
				"off-by-one error in pagination",
				"timezone handling in date utils",
			},
			"feat": {
				"add loading state to {feature}",
				"implement {feature} caching",
				"add retry logic for {module}",
				"implement rate limiting",
				"add health check endpoint",
			},
			"refactor": {
				"extract {thing} logic",
				"improve error handling",
				"simplify {module} initialization",
				"split monolithic {module}",
				"clean up {module}",
			},
			"docs": {
				"update README examples",
				"add JSDoc to {module}",
				"document {feature} API",
				"add architecture diagram",
				"update CONTRIBUTING guide",
			},
			"test": {
				"add unit tests for {module}",
				"integration tests for {feature}",
				"e2e tests for {flow}",
				"improve test coverage",
			},
			"chore": {
				"update dependencies",
				"clean up unused imports",
				"upgrade to Node {version}",
				"update CI pipeline",
				"bump version to {version}",
			},
			"style": {
				"fix linting errors",
				"format {module}",
				"consistent naming in {module}",
			},
			"perf": {
				"optimize {module} queries",
				"lazy load {feature}",
				"reduce bundle size",
			},
		},
		Pools: map[string][]string{
			"module":  {"auth", "api", "database", "cache", "worker", "scheduler", "validator"},
			"feature": {"dashboard", "checkout", "search", "notifications", "settings"},
			"flow":    {"login", "checkout", "onboarding", "signup"},
			"thing":   {"validation", "formatting", "parsing", "auth", "config"},
			"version": {"20", "22", "1.4.0", "2.0.0"},
		},
	}
}

// LoadTemplatePack reads a YAML pack from path. Templates in the file replace
// the defaults wholesale; pools are merged key by key.
func LoadTemplatePack(path string) (TemplatePack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TemplatePack{}, errors.ErrInvalidTemplates.WithError(err).WithContext("path", path)
	}

	var file TemplatePack
	if err := yaml.Unmarshal(data, &file); err != nil {
		return TemplatePack{}, errors.ErrInvalidTemplates.WithError(err).WithContext("path", path)
	}

	pack := DefaultPack()
	if len(file.Templates) > 0 {
		pack.Templates = file.Templates
	}
	for name, words := range file.Pools {
		pack.Pools[name] = words
	}

	if err := pack.Validate(); err != nil {
		return TemplatePack{}, errors.ErrInvalidTemplates.WithError(err).WithContext("path", path)
	}
	return pack, nil
}

// Validate checks that every category is a conventional-commit type with at
// least one non-empty template, and that every placeholder has words.
func (p TemplatePack) Validate() error {
	if len(p.Templates) == 0 {
		return fmt.Errorf("no templates")
	}
	for category, templates := range p.Templates {
		if !regex.ConventionalType.MatchString(category) {
			return fmt.Errorf("category %q is not a conventional commit type", category)
		}
		if len(templates) == 0 {
			return fmt.Errorf("category %q has no templates", category)
		}
		for _, tmpl := range templates {
			if strings.TrimSpace(tmpl) == "" {
				return fmt.Errorf("category %q has an empty template", category)
			}
			for _, m := range regex.Placeholder.FindAllStringSubmatch(tmpl, -1) {
				if len(p.Pools[m[1]]) == 0 {
					return fmt.Errorf("template %q uses {%s} but pool %q is empty", tmpl, m[1], m[1])
				}
			}
		}
	}
	return nil
}

// Synthesizer builds random conventional commit messages from a pack.
type Synthesizer struct {
	rng        *rand.Rand
	pack       TemplatePack
	categories []string
}

func NewSynthesizer(rng *rand.Rand, pack TemplatePack) *Synthesizer {
	categories := make([]string, 0, len(pack.Templates))
	for c := range pack.Templates {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return &Synthesizer{rng: rng, pack: pack, categories: categories}
}

// Message picks a category, then one of its templates, then fills each
// placeholder independently.
func (s *Synthesizer) Message() string {
	category := s.categories[s.rng.IntN(len(s.categories))]
	templates := s.pack.Templates[category]
	tmpl := templates[s.rng.IntN(len(templates))]

	text := regex.Placeholder.ReplaceAllStringFunc(tmpl, func(ph string) string {
		words := s.pack.Pools[ph[1:len(ph)-1]]
		if len(words) == 0 {
			return ph
		}
		return words[s.rng.IntN(len(words))]
	})

	return category + ": " + text
}
