package fish

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type FishJSON struct {
	Id          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Rarity      int    `json:"rarity" yaml:"rarity"`
	Bait        string `json:"bait" yaml:"bait"`
	Environment int    `json:"environment" yaml:"environment"`
	Price       int    `json:"price" yaml:"price"`
}

type BaitJSON struct {
	Id    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Price int    `json:"price" yaml:"price"`
}

type RodJSON struct {
	Id            int    `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	MaxRarity     int    `json:"maxRarity" yaml:"maxRarity"`
	Price         int    `json:"price" yaml:"price"`
	MaxDurability int    `json:"maxDurability" yaml:"maxDurability"`
	Durability    int    `json:"durability,omitempty" yaml:"durability,omitempty"`
}

type EnvironmentJSON struct {
	Id   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Fish []int  `json:"fish" yaml:"fish"`
}

// CatalogJSON is the on-disk catalog layout, shared by the JSON and YAML
// loaders.
type CatalogJSON struct {
	Fish         []FishJSON        `json:"fish" yaml:"fish"`
	Baits        []BaitJSON        `json:"baits" yaml:"baits"`
	Rods         []RodJSON         `json:"rods" yaml:"rods"`
	Environments []EnvironmentJSON `json:"environments" yaml:"environments"`
}

// LoadCatalog reads a catalog file. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cj CatalogJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &cj)
	default:
		err = json.Unmarshal(raw, &cj)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", path, err)
	}

	cat, err := cj.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return cat, nil
}

func (cj CatalogJSON) Build() (*Catalog, error) {
	if len(cj.Fish) == 0 {
		return nil, fmt.Errorf("fish list is empty")
	}
	if len(cj.Environments) == 0 {
		return nil, fmt.Errorf("environment list is empty")
	}

	fish := make([]Fish, len(cj.Fish))
	for i, f := range cj.Fish {
		fish[i] = Fish{
			Id:          FishId(f.Id),
			Name:        f.Name,
			Rarity:      f.Rarity,
			Bait:        f.Bait,
			Environment: EnvironmentId(f.Environment),
			Price:       f.Price,
		}
	}

	baits := make([]Bait, len(cj.Baits))
	for i, b := range cj.Baits {
		baits[i] = Bait{Id: BaitId(b.Id), Name: b.Name, Price: b.Price}
	}

	rods := make([]Rod, len(cj.Rods))
	for i, r := range cj.Rods {
		rods[i] = Rod{
			Id:            RodId(r.Id),
			Name:          r.Name,
			MaxRarity:     r.MaxRarity,
			Price:         r.Price,
			MaxDurability: r.MaxDurability,
			Durability:    r.Durability,
		}
	}

	envs := make([]Environment, len(cj.Environments))
	for i, e := range cj.Environments {
		ids := make([]FishId, len(e.Fish))
		for j, id := range e.Fish {
			ids[j] = FishId(id)
		}
		envs[i] = Environment{Id: EnvironmentId(e.Id), Name: e.Name, Fish: ids}
	}

	return NewCatalog(fish, baits, rods, envs)
}
