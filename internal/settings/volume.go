package settings

import (
	"context"
	"errors"
	"math"
)

// Preference keys for the two volume levels.
const (
	KeyMasterVolume = "MasterVolume"
	KeyEffectVolume = "SoundEffectVolume"
)

// Volume holds the two persisted volume levels, each in [0, 1].
type Volume struct {
	Master  float64
	Effects float64
}

// DefaultVolume is used for keys that were never saved.
var DefaultVolume = Volume{Master: 1, Effects: 1}

// LoadVolume reads both levels. Missing or unreadable keys fall back to the
// default; the first read error is still returned so it can be logged.
func LoadVolume(ctx context.Context, p *Prefs) (Volume, error) {
	m, errM := p.Float(ctx, KeyMasterVolume, DefaultVolume.Master)
	e, errE := p.Float(ctx, KeyEffectVolume, DefaultVolume.Effects)
	v := Volume{Master: clamp01(m), Effects: clamp01(e)}
	return v, errors.Join(errM, errE)
}

// SaveVolume writes both levels.
func SaveVolume(ctx context.Context, p *Prefs, v Volume) error {
	if err := p.SetFloat(ctx, KeyMasterVolume, clamp01(v.Master)); err != nil {
		return err
	}
	return p.SetFloat(ctx, KeyEffectVolume, clamp01(v.Effects))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 1
	}
	return math.Max(0, math.Min(1, v))
}
