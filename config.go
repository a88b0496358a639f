package mplc

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// shareSumTolerance absorbs floating point noise when checking that the
// partner shares sum to 1.
const shareSumTolerance = 1e-9

// ClusterSplitConfig declares the cluster demand of one partner in an
// advanced split.
type ClusterSplitConfig struct {
	// Count is the number of label clusters the partner draws from.
	Count int `yaml:"count"`

	// Kind is "specific" for exclusively owned clusters or "shared" for
	// clusters drawn from the common pool.
	Kind string `yaml:"kind"`
}

// Config is the configuration for a Scenario.
type Config struct {
	// PartnersCount is the number of partners the dataset is split across.
	PartnersCount int `yaml:"partnersCount"`

	// AmountsPerPartner lists each partner's share of the train set, in
	// partner order. The shares must sum to 1. Leave empty for an even
	// split across PartnersCount partners.
	AmountsPerPartner []float64 `yaml:"amountsPerPartner"`

	// SamplesSplitOption selects the split strategy: "random" and
	// "stratified" cut the train set at cumulative share boundaries,
	// "advanced" assigns label clusters per ClusterSplit.
	SamplesSplitOption string `yaml:"samplesSplitOption"`

	// ClusterSplit declares each partner's cluster demand, in partner
	// order. Required when SamplesSplitOption is "advanced", ignored
	// otherwise.
	ClusterSplit []ClusterSplitConfig `yaml:"clusterSplit"`

	// CorruptedDatasets lists each partner's label corruption mode
	// ("none", "shuffled" or "random"), in partner order. Leave empty for
	// no corruption.
	CorruptedDatasets []string `yaml:"corruptedDatasets"`

	// MinibatchCount is the number of mini-batches each partner's train
	// set is later cut into. Every partner must end up with at least this
	// many train samples.
	MinibatchCount int `yaml:"minibatchCount"`

	// Seed drives every random draw of the scenario. The same seed,
	// configuration and dataset always produce the same partition.
	Seed uint64 `yaml:"seed"`

	// ValidationFraction, when positive, carves that fraction of the
	// train set into a validation split before partitioning. Ignored when
	// the dataset already carries a validation split.
	ValidationFraction float64 `yaml:"validationFraction"`

	// MaxTrainSamples caps the train split before partitioning
	// (0 = no cap). Useful for quick experiment runs.
	MaxTrainSamples int `yaml:"maxTrainSamples"`

	// MaxValSamples caps the validation split before partitioning
	// (0 = no cap).
	MaxValSamples int `yaml:"maxValSamples"`

	// MaxTestSamples caps the test split before partitioning (0 = no cap).
	MaxTestSamples int `yaml:"maxTestSamples"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		PartnersCount:      3,
		SamplesSplitOption: "random",
		MinibatchCount:     20,
		Seed:               42,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.PartnersCount == 0 {
		cfg.PartnersCount = defaults.PartnersCount
	}
	if cfg.SamplesSplitOption == "" {
		cfg.SamplesSplitOption = defaults.SamplesSplitOption
	}
	if cfg.MinibatchCount == 0 {
		cfg.MinibatchCount = defaults.MinibatchCount
	}
	if cfg.Seed == 0 {
		cfg.Seed = defaults.Seed
	}
	if len(cfg.AmountsPerPartner) == 0 && cfg.PartnersCount > 0 {
		// Even split, with the rounding remainder on the last partner.
		cfg.AmountsPerPartner = make([]float64, cfg.PartnersCount)
		even := 1.0 / float64(cfg.PartnersCount)
		for i := range cfg.AmountsPerPartner {
			cfg.AmountsPerPartner[i] = even
		}
		cfg.AmountsPerPartner[cfg.PartnersCount-1] = 1 - even*float64(cfg.PartnersCount-1)
	}
}

// Validate checks configuration constraints and returns an error for
// invalid values.
//
// Hard Validation Rules:
//   - PartnersCount >= 1
//   - AmountsPerPartner has exactly PartnersCount entries in (0, 1]
//   - AmountsPerPartner sums to 1
//   - SamplesSplitOption is "random", "stratified" or "advanced"
//   - ClusterSplit has exactly PartnersCount entries with Count >= 1 and a
//     recognized Kind when the option is "advanced"
//   - CorruptedDatasets is empty or has exactly PartnersCount recognized modes
//   - MinibatchCount >= 1
//   - ValidationFraction in [0, 1)
//
// Returns:
//   - error: Wrapped sentinel with a clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.PartnersCount < 1 {
		return fmt.Errorf("partners count %d must be >= 1: %w", cfg.PartnersCount, ErrInvalidConfig)
	}

	if len(cfg.AmountsPerPartner) != cfg.PartnersCount {
		return fmt.Errorf("%d amounts for %d partners: %w",
			len(cfg.AmountsPerPartner), cfg.PartnersCount, ErrPartnerCountMismatch)
	}
	sum := 0.0
	for i, share := range cfg.AmountsPerPartner {
		if share <= 0 || share > 1 {
			return fmt.Errorf("partner %d share %g outside (0,1]: %w", i, share, ErrInvalidConfig)
		}
		sum += share
	}
	if math.Abs(sum-1) > shareSumTolerance {
		return fmt.Errorf("shares sum to %g: %w", sum, ErrShareSum)
	}

	switch cfg.SamplesSplitOption {
	case "random", "stratified":
	case "advanced":
		if len(cfg.ClusterSplit) != cfg.PartnersCount {
			return fmt.Errorf("%d cluster split entries for %d partners: %w",
				len(cfg.ClusterSplit), cfg.PartnersCount, ErrPartnerCountMismatch)
		}
		for i, cs := range cfg.ClusterSplit {
			if cs.Count < 1 {
				return fmt.Errorf("partner %d cluster count %d must be >= 1: %w", i, cs.Count, ErrInvalidConfig)
			}
			if _, err := types.ParseSplitKind(cs.Kind); err != nil {
				return fmt.Errorf("partner %d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("samples split option %q: %w", cfg.SamplesSplitOption, ErrUnknownSplitOption)
	}

	if len(cfg.CorruptedDatasets) > 0 {
		if len(cfg.CorruptedDatasets) != cfg.PartnersCount {
			return fmt.Errorf("%d corruption modes for %d partners: %w",
				len(cfg.CorruptedDatasets), cfg.PartnersCount, ErrPartnerCountMismatch)
		}
		for i, mode := range cfg.CorruptedDatasets {
			if _, err := types.ParseCorruption(mode); err != nil {
				return fmt.Errorf("partner %d: %w", i, err)
			}
		}
	}

	if cfg.MinibatchCount < 1 {
		return fmt.Errorf("minibatch count %d must be >= 1: %w", cfg.MinibatchCount, ErrInvalidConfig)
	}

	if cfg.ValidationFraction < 0 || cfg.ValidationFraction >= 1 {
		return fmt.Errorf("validation fraction %g outside [0,1): %w", cfg.ValidationFraction, ErrInvalidConfig)
	}

	return nil
}

// Descriptors converts the configuration into the ordered partner
// declarations consumed by split strategies.
//
// Returns:
//   - []types.PartnerDescriptor: One descriptor per partner, in partner order
//   - error: Validation error when the configuration is inconsistent
func (cfg *Config) Descriptors() ([]types.PartnerDescriptor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	descriptors := make([]types.PartnerDescriptor, cfg.PartnersCount)
	for i := range descriptors {
		descriptors[i].Share = cfg.AmountsPerPartner[i]
		if cfg.SamplesSplitOption == "advanced" {
			kind, err := types.ParseSplitKind(cfg.ClusterSplit[i].Kind)
			if err != nil {
				return nil, fmt.Errorf("partner %d: %w", i, err)
			}
			descriptors[i].ClusterCount = cfg.ClusterSplit[i].Count
			descriptors[i].Kind = kind
		}
		if len(cfg.CorruptedDatasets) > 0 {
			corruption, err := types.ParseCorruption(cfg.CorruptedDatasets[i])
			if err != nil {
				return nil, fmt.Errorf("partner %d: %w", i, err)
			}
			descriptors[i].Corruption = corruption
		}
	}

	return descriptors, nil
}

// ParseConfig decodes a YAML document into a Config and applies defaults.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: Decoded configuration with defaults applied
//   - error: Wrapped ErrInvalidConfig on malformed YAML
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w: %w", err, ErrInvalidConfig)
	}
	SetDefaults(&cfg)

	return cfg, nil
}

// LoadConfig reads and decodes a YAML configuration file.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - Config: Decoded configuration with defaults applied
//   - error: File system error or wrapped ErrInvalidConfig on malformed YAML
//
// Example:
//
//	cfg, err := mplc.LoadConfig("scenario.yaml")
//	if err != nil { /* handle */ }
//	scenario, err := mplc.NewScenario(&cfg, src)
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return ParseConfig(data)
}

// TestConfig returns a configuration suited to small test datasets.
//
// The minibatch constraint is relaxed so scenarios over a few hundred
// samples pass the smallest-partner check. Use DefaultConfig() for real
// experiments.
//
// Returns:
//   - Config: Configuration for tests
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.MinibatchCount = 1

	return cfg
}
