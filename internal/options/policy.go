package options

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// StarterPolicy decides which investigators start with an action or slot.
// The numeric values are the option values hosts store; do not reorder.
type StarterPolicy int

const (
	PolicyNone           StarterPolicy = iota // nobody
	PolicyOneStarter                          // one random starter investigator
	PolicyOneAny                              // one random investigator, locked or not
	PolicyAllStarters                         // every starter investigator
	PolicyAllAny                              // every investigator
	PolicyRandomStarters                      // a random number of starter investigators, possibly none
	PolicyRandomAny                           // a random number of investigators, possibly none
)

var policyNames = []string{
	"zero",
	"one_starter",
	"one_any",
	"all_starter",
	"all_any",
	"random_starter",
	"random_any",
}

func (p StarterPolicy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return "StarterPolicy(" + strconv.Itoa(int(p)) + ")"
	}
	return policyNames[p]
}

// Valid reports whether p is one of the seven known policies.
func (p StarterPolicy) Valid() bool {
	return p >= PolicyNone && p <= PolicyRandomAny
}

// FromStarters reports whether the policy draws from starter investigators
// only. PolicyNone draws from nobody and reports false.
func (p StarterPolicy) FromStarters() bool {
	return p == PolicyOneStarter || p == PolicyAllStarters || p == PolicyRandomStarters
}

// ParsePolicy accepts either the numeric option value or its name.
func ParsePolicy(s string) (StarterPolicy, error) {
	if n, err := strconv.Atoi(s); err == nil {
		p := StarterPolicy(n)
		if !p.Valid() {
			return 0, fmt.Errorf("starter policy %d out of range 0-%d", n, PolicyRandomAny)
		}
		return p, nil
	}
	for i, name := range policyNames {
		if name == s {
			return StarterPolicy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown starter policy %q", s)
}

func (p *StarterPolicy) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParsePolicy(value.Value)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p StarterPolicy) MarshalYAML() (any, error) {
	return p.String(), nil
}
