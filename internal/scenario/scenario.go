// Package scenario manages named calculation scenarios: loading them
// from YAML files and holding an ordered comparison list of results.
package scenario

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/aquawatt/hydrocalc/internal/hydro"
)

// Scenario is one named set of site parameters. SiteType is descriptive
// metadata (run_of_river, diversion, impoundment) and does not enter the
// calculation.
type Scenario struct {
	ID       string           `yaml:"-"`
	Name     string           `yaml:"name"`
	SiteType string           `yaml:"site_type,omitempty"`
	Params   hydro.SiteParams `yaml:"params"`
}

// scenarioFile is the on-disk YAML layout.
type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadFile reads a YAML scenario file. Each scenario must have a unique
// non-empty name; parameters are validated so that a bad file fails at
// load time rather than mid-run. Loaded scenarios receive fresh IDs.
func LoadFile(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]Scenario, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file defines no scenarios")
	}

	names := make(map[string]bool, len(f.Scenarios))
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if s.Name == "" {
			return nil, fmt.Errorf("scenario %d: name is required", i+1)
		}
		if names[s.Name] {
			return nil, fmt.Errorf("duplicate scenario name %q", s.Name)
		}
		names[s.Name] = true

		if err := s.Params.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		s.ID = uuid.New().String()
	}
	return f.Scenarios, nil
}

// Entry pairs a scenario with its computed result.
type Entry struct {
	Scenario Scenario
	Result   hydro.Result
}

// List is an ordered, caller-owned comparison list keyed by scenario
// name. It replaces session-style global state: each caller constructs
// its own list and the calculator stays pure. List is not safe for
// concurrent use.
type List struct {
	entries []Entry
	index   map[string]int
}

// NewList returns an empty comparison list.
func NewList() *List {
	return &List{index: make(map[string]int)}
}

// Add computes the result for a scenario and appends it to the list.
// Re-adding an existing name replaces that entry in place, preserving
// its position.
func (l *List) Add(s Scenario) (hydro.Result, error) {
	res, err := hydro.Estimate(s.Params)
	if err != nil {
		return hydro.Result{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	if i, ok := l.index[s.Name]; ok {
		l.entries[i] = Entry{Scenario: s, Result: res}
		return res, nil
	}
	l.index[s.Name] = len(l.entries)
	l.entries = append(l.entries, Entry{Scenario: s, Result: res})
	return res, nil
}

// Get returns the entry for a scenario name.
func (l *List) Get(name string) (Entry, bool) {
	i, ok := l.index[name]
	if !ok {
		return Entry{}, false
	}
	return l.entries[i], true
}

// Names returns the scenario names in insertion order.
func (l *List) Names() []string {
	names := make([]string, len(l.entries))
	for i, e := range l.entries {
		names[i] = e.Scenario.Name
	}
	return names
}

// Entries returns the entries in insertion order. The returned slice is
// a copy; entries themselves are value objects.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of scenarios in the list.
func (l *List) Len() int {
	return len(l.entries)
}
