package subscription

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlCatalog mirrors the plan catalog file layout:
//
//	plans:
//	  - id: starter
//	    name: Starter
//	    limits:
//	      - key: groups
//	        value: 5
//	      - key: campaigns
//	        value: 10
type yamlCatalog struct {
	Plans []yamlPlan `yaml:"plans"`
}

type yamlPlan struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Limits []yamlLimit `yaml:"limits"`
}

type yamlLimit struct {
	Key   string `yaml:"key"`
	Value int64  `yaml:"value"`
}

// NewYAMLLimitSource loads a plan catalog from a YAML file into an
// in-memory LimitSource. Intended for seeding and for deployments that keep
// the catalog in config rather than the database.
func NewYAMLLimitSource(path string) (*MemoryLimitSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes YAML catalog bytes into a MemoryLimitSource.
func ParseCatalog(data []byte) (*MemoryLimitSource, error) {
	var catalog yamlCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}

	plans := make([]Plan, 0, len(catalog.Plans))
	for _, p := range catalog.Plans {
		if p.ID == "" {
			return nil, errors.Join(ErrFailedToLoadCatalog, errors.New("plan with empty id"))
		}
		plan := Plan{ID: p.ID, Name: p.Name}
		seen := make(map[LimitKey]struct{}, len(p.Limits))
		for _, l := range p.Limits {
			key := LimitKey(l.Key)
			if _, dup := seen[key]; dup {
				return nil, errors.Join(ErrFailedToLoadCatalog,
					fmt.Errorf("plan %s has duplicate limit key %q", p.ID, l.Key))
			}
			seen[key] = struct{}{}
			plan.Limits = append(plan.Limits, PlanLimit{Key: key, Value: l.Value})
		}
		plans = append(plans, plan)
	}

	return NewMemoryLimitSource(plans...), nil
}

// Catalog returns the plans held by a MemoryLimitSource, for /v1/plans style
// listings. Plan order is unspecified.
func (s *MemoryLimitSource) Catalog(ctx context.Context) ([]Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plans := make([]Plan, 0, len(s.plans))
	for _, p := range s.plans {
		plans = append(plans, clonePlan(p))
	}
	return plans, nil
}
