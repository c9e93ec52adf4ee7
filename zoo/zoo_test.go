package zoo

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := c.Len(), 33; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	for _, a := range c.All() {
		if a.Species == "" || a.Name == "" || a.Enclosure == "" || a.Trail == "" {
			t.Errorf("incomplete record: %+v", a)
		}
		if a.Age <= 0 {
			t.Errorf("record %q has non-positive age %d", a.Name, a.Age)
		}
	}
}

func TestBySpecies(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name      string
		species   string
		wantCount int
	}{
		{
			name:      "exact match",
			species:   "meerkat",
			wantCount: 4,
		},
		{
			name:      "case-insensitive match",
			species:   "Meerkat",
			wantCount: 4,
		},
		{
			name:      "uppercase match",
			species:   "LION",
			wantCount: 3,
		},
		{
			name:      "two-word species",
			species:   "red panda",
			wantCount: 2,
		},
		{
			name:      "unknown species",
			species:   "unicorn",
			wantCount: 0,
		},
		{
			name:      "no substring matching",
			species:   "lio",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.BySpecies(tt.species)
			if got == nil {
				t.Fatal("BySpecies() returned nil, want empty slice")
			}
			if len(got) != tt.wantCount {
				t.Errorf("BySpecies(%q) returned %d animals, want %d", tt.species, len(got), tt.wantCount)
			}
			for _, a := range got {
				if !strings.EqualFold(a.Species, tt.species) {
					t.Errorf("BySpecies(%q) returned animal of species %q", tt.species, a.Species)
				}
			}
		})
	}
}

func TestByName(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	t.Run("found", func(t *testing.T) {
		got, ok := c.ByName("waddles")
		if !ok {
			t.Fatal("ByName(waddles) not found")
		}
		want := Animal{
			Species:   "penguin",
			Name:      "Waddles",
			Age:       6,
			Enclosure: "Ice Shelf Cove",
			Trail:     "Polar Trail",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ByName() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, ok := c.ByName("Nessie"); ok {
			t.Error("ByName(Nessie) = found, want not found")
		}
	})
}

func TestSpecies(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{
		"elephant",
		"flamingo",
		"giraffe",
		"gorilla",
		"koala",
		"lion",
		"meerkat",
		"otter",
		"penguin",
		"red panda",
		"sloth",
		"tiger",
		"zebra",
	}
	if diff := cmp.Diff(want, c.Species()); diff != "" {
		t.Errorf("Species() mismatch (-want +got):\n%s", diff)
	}
}
