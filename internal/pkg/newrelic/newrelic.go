package newrelic

import (
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/gavraq/lifetrack/internal/pkg/models"
)

// InitNewRelic initializes the New Relic application from config.
// Returns nil without error when the agent is disabled or no license key is
// configured, so local environments run without it.
func InitNewRelic(cfg models.NewRelicConfig) (*newrelic.Application, error) {
	if !cfg.Enabled || cfg.LicenseKey == "" {
		return nil, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(cfg.ForwardLogs),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize new relic: %w", err)
	}

	return app, nil
}
