package infrastructure

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"kortyPricing/internal/modules/pricing/application/port"
	"kortyPricing/internal/modules/pricing/domain"
)

// YAMLCatalogSource reads club catalog documents from a YAML file. The same
// decoder handles payloads pushed over the broker; JSON parses as a YAML
// subset, so both feeds go through one path.
type YAMLCatalogSource struct {
	path string
}

func NewYAMLCatalogSource(path string) *YAMLCatalogSource {
	return &YAMLCatalogSource{path: path}
}

func (s *YAMLCatalogSource) Load(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}
	catalog, err := s.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", s.path, err)
	}
	return catalog, nil
}

// Decode accepts either a list of club documents or a single bare document.
func (s *YAMLCatalogSource) Decode(raw []byte) (domain.Catalog, error) {
	var catalog domain.Catalog
	listErr := yaml.Unmarshal(raw, &catalog)
	if listErr == nil {
		return catalog, nil
	}

	var single domain.ClubDocument
	if err := yaml.Unmarshal(raw, &single); err == nil && single.ID != "" {
		return domain.Catalog{single}, nil
	}
	return nil, fmt.Errorf("decode catalog: %w", listErr)
}

var _ port.CatalogSource = (*YAMLCatalogSource)(nil)
