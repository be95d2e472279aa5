package budget

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/career-compass/projector/pkg/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Policy decides in which categories the Military option may be chosen
// for each military service choice.
//
// Allow-list entries are glob patterns that are matched against the
// category name, ignoring case.
type Policy struct {
	Name  string                              `toml:"name"`
	Allow map[models.MilitaryService][]string `toml:"allow"`
}

// DefaultPolicy is the name of the policy used when none is configured.
const DefaultPolicy = "benefits"

var benefitCategories = []string{"Children", "Who Pays for College", "Health Insurance"}

// Policies are the built-in eligibility policies.
var Policies = map[string]Policy{
	// Only full time service members may choose Military, in every category
	"full-time-only": {
		Name: "full-time-only",
		Allow: map[models.MilitaryService][]string{
			models.ServiceFullTime: {"*"},
		},
	},
	"benefits": {
		Name: "benefits",
		Allow: map[models.MilitaryService][]string{
			models.ServicePartTime: benefitCategories,
			models.ServiceFullTime: append(slices.Clone(benefitCategories), "Housing", "Food"),
		},
	},
	"benefits-and-living": {
		Name: "benefits-and-living",
		Allow: map[models.MilitaryService][]string{
			models.ServicePartTime: append(slices.Clone(benefitCategories), "Housing", "Food"),
			models.ServiceFullTime: append(slices.Clone(benefitCategories), "Housing", "Food"),
		},
	},
}

// PolicyNames returns the names of all built-in policies, sorted.
func PolicyNames() []string {
	names := maps.Keys(Policies)
	slices.Sort(names)
	return names
}

// PolicyByName returns a built-in policy.
func PolicyByName(name string) (Policy, error) {
	p, ok := Policies[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Policy{}, fmt.Errorf("%w '%s', must be one of %s", ErrUnknownPolicy, name, strings.Join(PolicyNames(), ", "))
	}
	return p, nil
}

// LoadPolicy reads a policy from a TOML file.
//
// Keys of the allow table are military service choices as accepted
// by models.ParseMilitaryService.
func LoadPolicy(path string) (Policy, error) {
	var raw struct {
		Name  string              `toml:"name"`
		Allow map[string][]string `toml:"allow"`
	}

	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return Policy{}, fmt.Errorf("parsing policy file: %w", err)
	}

	p := Policy{
		Name:  raw.Name,
		Allow: make(map[models.MilitaryService][]string, len(raw.Allow)),
	}

	if p.Name == "" {
		p.Name = path
	}

	for key, categories := range raw.Allow {
		service, err := models.ParseMilitaryService(key)
		if err != nil {
			return Policy{}, fmt.Errorf("policy file key '%s': %w", key, err)
		}
		p.Allow[service] = categories
	}

	return p, nil
}

// Eligible reports if the Military option may be chosen in a category.
//
// Participants not serving are never eligible.
func (p Policy) Eligible(service models.MilitaryService, category string) bool {
	if service == models.ServiceNone {
		return false
	}

	name := strings.ToLower(strings.TrimSpace(category))
	for _, pattern := range p.Allow[service] {
		if glob.Glob(strings.ToLower(strings.TrimSpace(pattern)), name) {
			return true
		}
	}

	return false
}

// Filter removes the Military option from the options of a category
// unless the policy allows it.
func (p Policy) Filter(service models.MilitaryService, category string, options []models.LifestyleOption) []models.LifestyleOption {
	if p.Eligible(service, category) {
		return options
	}

	filtered := make([]models.LifestyleOption, 0, len(options))
	for _, o := range options {
		if !o.IsMilitary() {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
