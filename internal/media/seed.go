// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/shelfmark/internal/rating"
)

//go:embed data/catalog.yaml
var seedCatalog []byte

// SeedCatalog decodes the catalog shipped with the binary.
func SeedCatalog() ([]MediaItem, error) {
	return DecodeCatalog(seedCatalog)
}

/*
DecodeCatalog parses a YAML catalog document of the form

	items:
	  - id: m1
	    type: movies
	    ...

and checks every entry: known type, unique id, rating on the half-star grid,
and additional_info matching the type.
*/
func DecodeCatalog(raw []byte) ([]MediaItem, error) {
	var document struct {
		Items []MediaItem `yaml:"items"`
	}
	if err := yaml.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("media: decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(document.Items))
	for _, item := range document.Items {
		if item.ID == "" {
			return nil, fmt.Errorf("media: catalog entry %q has no id", item.Title)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("media: duplicate catalog id %q", item.ID)
		}
		seen[item.ID] = struct{}{}

		if !item.Type.Valid() {
			return nil, fmt.Errorf("media %q: unknown type %q", item.ID, item.Type)
		}
		if !rating.OnGrid(item.Rating) {
			return nil, fmt.Errorf("media %q: rating %v is not on the half-star grid", item.ID, item.Rating)
		}
		if err := CheckDetails(item); err != nil {
			return nil, fmt.Errorf("media %q: %w", item.ID, err)
		}
	}

	return document.Items, nil
}
