package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_AlignsWithYAMLKeys(t *testing.T) {
	existing := map[string]any{
		"payment": map[string]any{
			"successRate":     0.95,
			"processingDelay": "100ms",
		},
		"simulation": map[string]any{
			"jobInterval": "45s",
		},
	}

	assert.Equal(t, "payment.successRate", canonicalizeEnvKey("PAYMENT_SUCCESSRATE", existing))
	assert.Equal(t, "payment.processingDelay", canonicalizeEnvKey("PAYMENT_PROCESSINGDELAY", existing))
	assert.Equal(t, "simulation.jobInterval", canonicalizeEnvKey("SIMULATION_JOBINTERVAL", existing))
}

func TestCanonicalizeEnvKey_UnknownSegmentsLowercased(t *testing.T) {
	existing := map[string]any{}

	assert.Equal(t, "pubsub.topicid", canonicalizeEnvKey("PUBSUB_TOPICID", existing))
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, 0.95, cfg.Payment.SuccessRate)
	assert.Positive(t, cfg.Payment.ProcessingDelay)
	assert.Positive(t, cfg.Simulation.JobsPerTick)
	assert.Greater(t, cfg.Simulation.MaxResolveDelay, cfg.Simulation.MinResolveDelay)
	assert.Equal(t, 3*cfg.Revenue.MonthlyTarget, cfg.Revenue.QuarterlyTarget)
	assert.Equal(t, 12*cfg.Revenue.MonthlyTarget, cfg.Revenue.YearlyTarget)
}
