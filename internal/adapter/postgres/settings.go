package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
	"github.com/Temutjin2k/delivery-pricing/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
)

const serviceName = "pricing-service"

// SettingsRepo is the key/value settings store shared with the marketplace.
type SettingsRepo struct {
	db *pgxpool.Pool
}

func NewSettingsRepo(db *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{
		db: db,
	}
}

// GetSettings returns the requested keys that exist. Missing keys are simply absent from the map.
func (r *SettingsRepo) GetSettings(ctx context.Context, keys ...string) (_ map[string]models.Setting, err error) {
	const op = "SettingsRepo.GetSettings"

	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery(serviceName, "get_settings", err, time.Since(start)) }()

	const q = `
		SELECT key, value, updated_at
		FROM settings
		WHERE key = ANY($1);
	`

	rows, err := TxorDB(ctx, r.db).Query(ctx, q, keys)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}
	defer rows.Close()

	out := make(map[string]models.Setting, len(keys))
	for rows.Next() {
		var s models.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, wrap.Error(ctx, fmt.Errorf("%s: scan: %w", op, err))
		}
		out[s.Key] = s
	}
	if err := rows.Err(); err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	return out, nil
}

// UpsertSetting creates or replaces a setting value.
func (r *SettingsRepo) UpsertSetting(ctx context.Context, key, value string) (err error) {
	const op = "SettingsRepo.UpsertSetting"

	start := time.Now()
	defer func() { metrics.RecordDatabaseQuery(serviceName, "upsert_setting", err, time.Since(start)) }()

	const q = `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at;
	`

	if _, err = TxorDB(ctx, r.db).Exec(ctx, q, key, value); err != nil {
		ctx = wrap.WithAction(ctx, types.ActionDatabaseTransactionFailed)
		return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
	}

	return nil
}
