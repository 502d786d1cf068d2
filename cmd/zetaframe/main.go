package main

import (
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/zetaframe/pipeline/internal/config"
	"github.com/zetaframe/pipeline/internal/engine"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize validator
	validate := validator.New()

	// Build the engine
	eng := engine.New(cfg, validate)

	log.Printf("Zeta-frame pipeline core ready: max_profiles=%d cooldown=%ds slots_per_tier=%d",
		cfg.Engine.MaxProfiles, cfg.Engine.CooldownSeconds, cfg.Engine.JobSlotsPerTier)

	for _, tier := range eng.Tiers() {
		log.Printf("tier %2d: %5d kbps", tier.Index, tier.BitrateKbps)
	}
	for _, codec := range eng.Codecs() {
		log.Printf("codec %d: %s", codec.ID, codec.Name)
	}
}
