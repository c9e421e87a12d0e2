package config

import (
	"errors"
	"testing"
	"time"
)

// validBase returns a config that passes validation on its own.
func validBase() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey: "sign-key",
			TokenIssuer:  "go-storefront",
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost:5432/storefront"},
		},
		Server: Server{
			HTTPAddress: "localhost:8080",
		},
	}
}

func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9999"}},
		validBase(),
	)

	cfg, err := b.build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.HTTPAddress != "localhost:9999" {
		t.Errorf("expected earlier source to win, got %s", cfg.Server.HTTPAddress)
	}
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validBase())
	b.withDefaults()

	cfg, err := b.build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.BcryptCost != DefaultBcryptCost {
		t.Errorf("expected default bcrypt cost %d, got %d", DefaultBcryptCost, cfg.App.BcryptCost)
	}
	if cfg.App.PopularProductsLimit != DefaultPopularProductsLimit {
		t.Errorf("expected default popular limit %d, got %d", DefaultPopularProductsLimit, cfg.App.PopularProductsLimit)
	}
	if cfg.App.TokenDuration != DefaultTokenDuration {
		t.Errorf("expected default token duration %s, got %s", DefaultTokenDuration, cfg.App.TokenDuration)
	}
}

func TestBuild_DefaultsDoNotOverrideExplicitValues(t *testing.T) {
	base := validBase()
	base.App.BcryptCost = 14
	base.App.TokenDuration = 2 * time.Hour

	b := newConfigBuilder()
	b.configs = append(b.configs, base)
	b.withDefaults()

	cfg, err := b.build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.BcryptCost != 14 {
		t.Errorf("expected explicit bcrypt cost 14, got %d", cfg.App.BcryptCost)
	}
	if cfg.App.TokenDuration != 2*time.Hour {
		t.Errorf("expected explicit token duration 2h, got %s", cfg.App.TokenDuration)
	}
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("env parse failed")

	_, err := b.build()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			"missing DSN",
			func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			ErrInvalidStorageConfigs,
		},
		{
			"missing HTTP address",
			func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			ErrInvalidServerConfigs,
		},
		{
			"missing token sign key",
			func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			ErrInvalidAppConfigs,
		},
		{
			"missing token issuer",
			func(cfg *StructuredConfig) { cfg.App.TokenIssuer = "" },
			ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := validBase()
			tt.mutate(base)

			b := newConfigBuilder()
			b.configs = append(b.configs, base)

			_, err := b.build()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
