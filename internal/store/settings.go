package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathtravel/ent"
)

// Hint levels stored in settings.
const (
	HintMinimal  = "minimal"
	HintMedium   = "medium"
	HintDetailed = "detailed"
)

// SettingsData holds the player's preferences.
type SettingsData struct {
	AdaptiveDifficulty bool
	HintLevel          string
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() SettingsData {
	return SettingsData{
		AdaptiveDifficulty: true,
		HintLevel:          HintMedium,
	}
}

// SettingsRepo manages the single settings row.
type SettingsRepo interface {
	// Load returns the stored settings, or defaults if none exist yet.
	Load(ctx context.Context) (SettingsData, error)

	// Save upserts the settings row.
	Save(ctx context.Context, data SettingsData) error
}

type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) Load(ctx context.Context) (SettingsData, error) {
	s, err := r.client.Setting.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return DefaultSettings(), nil
		}
		return SettingsData{}, fmt.Errorf("load settings: %w", err)
	}
	return SettingsData{
		AdaptiveDifficulty: s.AdaptiveDifficulty,
		HintLevel:          s.HintLevel,
	}, nil
}

func (r *settingsRepo) Save(ctx context.Context, data SettingsData) error {
	existing, err := r.client.Setting.Query().First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query settings: %w", err)
		}
		_, err = r.client.Setting.Create().
			SetAdaptiveDifficulty(data.AdaptiveDifficulty).
			SetHintLevel(data.HintLevel).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create settings: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetAdaptiveDifficulty(data.AdaptiveDifficulty).
		SetHintLevel(data.HintLevel).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
