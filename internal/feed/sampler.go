package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/nikbrunner/feed/internal/host"
)

const bagKeyPrefix = "randomBag_"

// dateLayout is the calendar day format stored in a bag.
const dateLayout = "2006-01-02"

// Bag is the persisted random sampling state of one profile.
type Bag struct {
	Date  string   `json:"date"`
	Order []string `json:"order"`
	Index int      `json:"index"`
}

// BagKey returns the settings key holding profile's bag.
func BagKey(profile string) string {
	return bagKeyPrefix + profile
}

// Sampler hands out bookmark ids in a per-profile, per-day shuffled order so
// that every id comes up once before any repeats.
type Sampler struct {
	settings host.SettingsStore
	now      func() time.Time
	intN     func(n int) int
	log      *zap.Logger
}

// SamplerParams holds parameters for creating a Sampler.
type SamplerParams struct {
	Settings host.SettingsStore
	Now      func() time.Time // default time.Now
	Rand     *rand.Rand       // default: the global source
	Log      *zap.Logger
}

// NewSampler creates a Sampler, filling in defaults.
func NewSampler(params SamplerParams) *Sampler {
	s := &Sampler{
		settings: params.Settings,
		now:      params.Now,
		intN:     rand.IntN,
		log:      params.Log,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if params.Rand != nil {
		s.intN = params.Rand.IntN
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Today returns the calendar day (UTC) bags are stamped with.
func (s *Sampler) Today() string {
	return s.now().UTC().Format(dateLayout)
}

// NextPick returns the next id of profile's bag. The bag is redrawn from
// available when it is from another day, unreadable, or used up. Ids of the
// bag that are no longer available are skipped. Returns "" when available
// is empty.
func (s *Sampler) NextPick(ctx context.Context, profile string, available []string) (string, error) {
	if len(available) == 0 {
		s.log.Info("no bookmarks to pick from", zap.String("profile", profile))
		return "", nil
	}

	today := s.Today()
	bag, err := s.LoadBag(ctx, profile)
	if err != nil {
		return "", err
	}
	if bag == nil || bag.Date != today {
		bag = &Bag{Date: today, Order: s.Shuffle(available), Index: 0}
	}

	live := make(map[string]bool, len(available))
	for _, id := range available {
		live[id] = true
	}

	var id string
	for {
		if bag.Index >= len(bag.Order) {
			bag.Order = s.Shuffle(available)
			bag.Index = 0
		}
		id = bag.Order[bag.Index]
		bag.Index++
		if live[id] {
			break
		}
		s.log.Debug("skipping stale pick", zap.String("profile", profile), zap.String("id", id))
	}

	if err := s.saveBag(ctx, profile, bag); err != nil {
		return "", err
	}
	s.log.Debug("random pick",
		zap.String("profile", profile),
		zap.String("id", id),
		zap.Int("index", bag.Index),
		zap.Int("size", len(bag.Order)))
	return id, nil
}

// LoadBag returns profile's stored bag, or nil if there is none or it is not
// a valid bag.
func (s *Sampler) LoadBag(ctx context.Context, profile string) (*Bag, error) {
	raw, ok, err := s.settings.Get(ctx, BagKey(profile))
	if err != nil {
		return nil, fmt.Errorf("load random bag %q: %w", profile, err)
	}
	if !ok {
		return nil, nil
	}

	var bag Bag
	if err := json.Unmarshal(raw, &bag); err != nil {
		s.log.Warn("discarding unreadable random bag", zap.String("profile", profile), zap.Error(err))
		return nil, nil
	}
	if bag.Order == nil || bag.Index < 0 || bag.Index > len(bag.Order) {
		s.log.Warn("discarding invalid random bag", zap.String("profile", profile))
		return nil, nil
	}
	return &bag, nil
}

func (s *Sampler) saveBag(ctx context.Context, profile string, bag *Bag) error {
	raw, err := json.Marshal(bag)
	if err != nil {
		return err
	}
	if err := s.settings.Set(ctx, BagKey(profile), raw); err != nil {
		return fmt.Errorf("save random bag %q: %w", profile, err)
	}
	return nil
}

// Shuffle returns a uniformly random permutation of ids (Fisher–Yates).
// ids is not modified.
func (s *Sampler) Shuffle(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	for i := len(out) - 1; i > 0; i-- {
		j := s.intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
