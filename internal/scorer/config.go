package scorer

import (
	"math"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Weights apportions the quality score across its four dimensions.
// The weights must sum to exactly 100.
type Weights struct {
	Email      float64 `yaml:"email" mapstructure:"email"`
	Contact    float64 `yaml:"contact" mapstructure:"contact"`
	Company    float64 `yaml:"company" mapstructure:"company"`
	Additional float64 `yaml:"additional" mapstructure:"additional"`
}

// DefaultWeights returns the documented 40/20/20/20 split.
func DefaultWeights() Weights {
	return Weights{
		Email:      40,
		Contact:    20,
		Company:    20,
		Additional: 20,
	}
}

// Validate rejects weight tables that are negative or do not sum to 100.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"email":      w.Email,
		"contact":    w.Contact,
		"company":    w.Company,
		"additional": w.Additional,
	} {
		if v < 0 {
			return eris.Errorf("scorer: weight %s is negative", name)
		}
	}

	sum := w.Email + w.Contact + w.Company + w.Additional
	if math.Abs(sum-100) > 1e-9 {
		return eris.Errorf("scorer: weights sum to %.2f, want 100", sum)
	}
	return nil
}

// LoadWeights reads a weight table from a YAML file with a top-level
// "weights" key, falling back to defaults for a missing file path.
func LoadWeights(path string) (Weights, error) {
	if path == "" {
		return DefaultWeights(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, eris.Wrapf(err, "scorer: read weights %s", path)
	}

	var wrapper struct {
		Weights Weights `yaml:"weights"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return Weights{}, eris.Wrap(err, "scorer: parse weights")
	}

	if err := wrapper.Weights.Validate(); err != nil {
		return Weights{}, err
	}
	return wrapper.Weights, nil
}
