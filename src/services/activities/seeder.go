package activities

import (
	"Mergington-Activities/src/models"
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed seed/activities.yaml
var seedYAML []byte

var validate = validator.New()

type seedFile struct {
	Activities []models.Activity `yaml:"activities"`
}

// LoadSeed อ่านกิจกรรมเริ่มต้นจากไฟล์ที่ฝังมากับ binary
func LoadSeed() ([]models.Activity, error) {
	return ParseSeed(seedYAML)
}

// ParseSeed decodes a seed document, keeping entries in document order.
func ParseSeed(data []byte) ([]models.Activity, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}
	if len(f.Activities) == 0 {
		return nil, fmt.Errorf("%w: no activities", ErrInvalidSeed)
	}

	for i := range f.Activities {
		a := &f.Activities[i]
		if a.Participants == nil {
			a.Participants = []string{}
		}
		if err := validate.Struct(a); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %v", ErrInvalidSeed, i, a.Name, err)
		}
	}
	return f.Activities, nil
}

// NewSeededRegistry builds the registry from the embedded seed.
func NewSeededRegistry() (*Registry, error) {
	seed, err := LoadSeed()
	if err != nil {
		return nil, err
	}
	return NewRegistry(seed)
}
