package mplc

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/mshuaic/distributed-learning-contributivity/dataset"
	"github.com/mshuaic/distributed-learning-contributivity/internal/hash"
	"github.com/mshuaic/distributed-learning-contributivity/logging"
	"github.com/mshuaic/distributed-learning-contributivity/metrics"
	"github.com/mshuaic/distributed-learning-contributivity/splitter"
	"github.com/mshuaic/distributed-learning-contributivity/types"
)

// Scenario partitions one dataset across a set of partners according to its
// configuration.
//
// A scenario is single-shot: Split runs the configured strategy exactly
// once and the populated partners are then immutable from the scenario's
// point of view. Run another scenario for another partition.
type Scenario struct {
	cfg  Config
	src  DatasetSource
	opts scenarioOptions

	mu       sync.RWMutex
	ds       *Dataset
	partners []*Partner
}

// NewScenario creates a new scenario from a configuration and a dataset
// source.
//
// Defaults are applied to the configuration before validating it, so only
// the fields that differ from the defaults need to be set.
//
// Parameters:
//   - cfg: Scenario configuration (defaults applied in place)
//   - src: Source of the dataset to partition
//   - opts: Optional logger, metrics collector and strategy override
//
// Returns:
//   - *Scenario: Initialized scenario, not yet split
//   - error: Wrapped ErrDatasetSourceRequired or a configuration error
//
// Example:
//
//	cfg := mplc.DefaultConfig()
//	cfg.PartnersCount = 3
//	cfg.AmountsPerPartner = []float64{0.5, 0.3, 0.2}
//
//	scenario, err := mplc.NewScenario(&cfg, dataset.NewInMemory(ds))
//	if err != nil { /* handle */ }
//	if err := scenario.Split(ctx); err != nil { /* handle */ }
//	partners, _ := scenario.Partners()
func NewScenario(cfg *Config, src DatasetSource, opts ...Option) (*Scenario, error) {
	if src == nil {
		return nil, ErrDatasetSourceRequired
	}

	SetDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := scenarioOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}

	o.logger.Info("scenario configured",
		"partners", cfg.PartnersCount,
		"shares", cfg.AmountsPerPartner,
		"option", cfg.SamplesSplitOption,
		"minibatchCount", cfg.MinibatchCount,
		"seed", cfg.Seed,
	)

	return &Scenario{cfg: *cfg, src: src, opts: o}, nil
}

// Split loads the dataset, prepares it and partitions it across the
// configured partners.
//
// The steps, in order:
//  1. Load the dataset from the source
//  2. Carve a validation split when ValidationFraction is set and the
//     dataset has none
//  3. Cap split sizes per the Max*Samples settings
//  4. Run the split strategy selected by SamplesSplitOption
//  5. Apply per-partner label corruption
//
// Split runs at most once per scenario; later calls return ErrAlreadySplit.
//
// Parameters:
//   - ctx: Context for cancellation of the dataset load
//
// Returns:
//   - error: Dataset, configuration, allocation or precondition error
func (s *Scenario) Split(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.partners != nil {
		return ErrAlreadySplit
	}

	start := time.Now()
	partners, ds, err := s.split(ctx)
	s.opts.metrics.RecordSplitAttempt(s.cfg.SamplesSplitOption, err == nil)
	if err != nil {
		s.opts.logger.Error("scenario split failed",
			"option", s.cfg.SamplesSplitOption,
			"error", err,
		)

		return err
	}
	s.opts.metrics.RecordSplitDuration(s.cfg.SamplesSplitOption, time.Since(start).Seconds())
	s.opts.metrics.RecordPartnerCount(len(partners))
	for _, p := range partners {
		s.opts.metrics.RecordPartnerSamples(p.ID, p.TrainSize())
	}

	s.ds = ds
	s.partners = partners

	return nil
}

func (s *Scenario) split(ctx context.Context) ([]*Partner, *Dataset, error) {
	ds, err := s.src.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: %w", err)
	}

	if s.cfg.ValidationFraction > 0 && ds.ValSize() == 0 {
		ds, err = dataset.SplitTrainVal(ds, s.cfg.ValidationFraction, s.cfg.Seed)
		if err != nil {
			return nil, nil, err
		}
	}
	if s.cfg.MaxTrainSamples > 0 || s.cfg.MaxValSamples > 0 || s.cfg.MaxTestSamples > 0 {
		ds = dataset.Truncate(ds, s.cfg.MaxTrainSamples, s.cfg.MaxValSamples, s.cfg.MaxTestSamples)
	}

	descriptors, err := s.cfg.Descriptors()
	if err != nil {
		return nil, nil, err
	}

	strategy, err := s.strategy()
	if err != nil {
		return nil, nil, err
	}

	partners, err := strategy.Split(ds, descriptors)
	if err != nil {
		return nil, nil, err
	}

	if adv, ok := strategy.(*splitter.Advanced); ok {
		if factor, done := adv.LastResizeFactor(); done {
			s.opts.metrics.RecordResizeFactor(factor)
		}
	}

	s.corrupt(partners, ds)

	s.opts.logger.Info("scenario split complete",
		"option", s.cfg.SamplesSplitOption,
		"partners", len(partners),
		"trainSamples", ds.TrainSize(),
	)

	return partners, ds, nil
}

// strategy builds the split strategy selected by the configuration, unless
// an override was injected via WithStrategy.
func (s *Scenario) strategy() (SplitStrategy, error) {
	if s.opts.strategy != nil {
		return s.opts.strategy, nil
	}

	common := []splitter.Option{
		splitter.WithSeed(s.cfg.Seed),
		splitter.WithMinibatchCount(s.cfg.MinibatchCount),
		splitter.WithLogger(s.opts.logger),
	}
	if s.cfg.SamplesSplitOption == "advanced" {
		return splitter.NewAdvanced(common...), nil
	}

	order, err := splitter.ParseOrder(s.cfg.SamplesSplitOption)
	if err != nil {
		return nil, err
	}

	return splitter.NewSimple(order, common...), nil
}

// corrupt applies each partner's configured label corruption. Every partner
// gets its own random stream derived from the scenario seed and its ID, so
// corrupting one partner never shifts another partner's draws.
func (s *Scenario) corrupt(partners []*Partner, ds *Dataset) {
	labels := ds.DistinctLabels()
	for _, p := range partners {
		if p.Descriptor.Corruption == types.CorruptionNone {
			continue
		}

		seed := hash.SeedN(s.cfg.Seed, "corruption", p.ID)
		rng := rand.New(rand.NewPCG(seed, seed))
		switch p.Descriptor.Corruption {
		case types.CorruptionShuffled:
			p.ShuffleLabels(rng)
		case types.CorruptionRandom:
			p.RandomizeLabels(rng, labels)
		}

		s.opts.logger.Warn("partner labels corrupted",
			"partner", p.ID,
			"mode", p.Descriptor.Corruption.String(),
		)
	}
}

// Partners returns the populated partners in partner order.
//
// Returns:
//   - []*Partner: Partners produced by Split
//   - error: ErrNotSplit when Split has not run successfully
func (s *Scenario) Partners() ([]*Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.partners == nil {
		return nil, ErrNotSplit
	}

	result := make([]*Partner, len(s.partners))
	copy(result, s.partners)

	return result, nil
}

// Dataset returns the prepared dataset the partition was computed from,
// including any validation split or truncation applied before splitting.
//
// Returns:
//   - *Dataset: The dataset used by Split
//   - error: ErrNotSplit when Split has not run successfully
func (s *Scenario) Dataset() (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ds == nil {
		return nil, ErrNotSplit
	}

	return s.ds, nil
}
