// Command seed writes the default pricing settings into the settings table.
// Existing values are kept unless -force is set.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/Temutjin2k/delivery-pricing/config"
	repo "github.com/Temutjin2k/delivery-pricing/internal/adapter/postgres"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/pkg/postgres"
)

var (
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
	force      = flag.Bool("force", false, "Overwrite existing settings")
)

func main() {
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	client, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Pool.Close()

	if err := seedSettings(repo.NewSettingsRepo(client.Pool), *force); err != nil {
		log.Fatal(err)
	}
}

func seedSettings(settings *repo.SettingsRepo, force bool) error {
	// short timeout for seed operations
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	defaults := []models.Setting{
		{Key: models.SettingBaseFee, Value: "5.00"},
		{Key: models.SettingPerKmRate, Value: "2.50"},
		{Key: models.SettingMinimumFee, Value: "7.00"},
		{Key: models.SettingMaximumFee, Value: "25.00"},
		{Key: models.SettingDefaultCity, Value: models.DefaultCity},
		{Key: models.SettingDefaultState, Value: models.DefaultState},
	}

	keys := make([]string, len(defaults))
	for i, d := range defaults {
		keys[i] = d.Key
	}

	existing, err := settings.GetSettings(ctx, keys...)
	if err != nil {
		return err
	}

	for _, d := range defaults {
		if _, ok := existing[d.Key]; ok && !force {
			log.Printf("setting %s exists, skipping", d.Key)
			continue
		}
		if err := settings.UpsertSetting(ctx, d.Key, d.Value); err != nil {
			return err
		}
		log.Printf("setting %s = %s", d.Key, d.Value)
	}

	return nil
}
