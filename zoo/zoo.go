package zoo

import (
	_ "embed"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

// ErrorCode defines error types for zoo dataset operations
type ErrorCode string

const (
	// ErrDatasetLoad represents errors that occur while decoding the embedded dataset
	ErrDatasetLoad ErrorCode = "DatasetLoadError"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// Animal is a single animal record in the zoo guide
type Animal struct {
	Species   string `yaml:"species" json:"species"`
	Name      string `yaml:"name" json:"name"`
	Age       int    `yaml:"age" json:"age"`
	Enclosure string `yaml:"enclosure" json:"enclosure"`
	Trail     string `yaml:"trail" json:"trail"`
}

// Collection is an in-memory set of animal records.
// The dataset is small and fixed; lookups are linear scans.
type Collection struct {
	animals []Animal
}

//go:embed animals.yaml
var animalsYAML []byte

type dataset struct {
	Animals []Animal `yaml:"animals"`
}

// Load decodes the embedded animal fixture into a Collection
func Load() (*Collection, error) {
	var d dataset
	if err := yaml.Unmarshal(animalsYAML, &d); err != nil {
		return nil, failure.New(ErrDatasetLoad,
			failure.Message("Failed to decode embedded animal dataset"),
			failure.Context{
				"cause": err.Error(),
			},
		)
	}
	return &Collection{animals: d.Animals}, nil
}

// All returns every animal record in dataset order
func (c *Collection) All() []Animal {
	return c.animals
}

// Len returns the number of animal records
func (c *Collection) Len() int {
	return len(c.animals)
}

// BySpecies returns all animals of the given species.
// Matching is case-insensitive and exact. The result is never nil.
func (c *Collection) BySpecies(species string) []Animal {
	matched := lo.Filter(c.animals, func(a Animal, _ int) bool {
		return strings.EqualFold(a.Species, species)
	})
	if matched == nil {
		matched = []Animal{}
	}
	return matched
}

// ByName returns the animal with the given name.
// Matching is case-insensitive and exact.
func (c *Collection) ByName(name string) (Animal, bool) {
	return lo.Find(c.animals, func(a Animal) bool {
		return strings.EqualFold(a.Name, name)
	})
}

// Species returns the distinct species in the collection, sorted
func (c *Collection) Species() []string {
	species := lo.Uniq(lo.Map(c.animals, func(a Animal, _ int) string {
		return a.Species
	}))
	sort.Strings(species)
	return species
}
