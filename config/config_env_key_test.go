package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"discovery": map[string]any{
			"utcOffsetMinutes": 300,
		},
		"orderCode": map[string]any{
			"maxAttempts": 5,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DISCOVERY_UTCOFFSETMINUTES", want: "discovery.utcOffsetMinutes"},
		{envKey: "ORDERCODE_MAXATTEMPTS", want: "orderCode.maxAttempts"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsEngineDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Discovery.UTCOffsetMinutes != defaultUTCOffsetMinutes {
		t.Fatalf("UTCOffsetMinutes = %d, want %d", cfg.Discovery.UTCOffsetMinutes, defaultUTCOffsetMinutes)
	}
	if cfg.Discovery.DefaultLimit != defaultSearchLimit {
		t.Fatalf("DefaultLimit = %d, want %d", cfg.Discovery.DefaultLimit, defaultSearchLimit)
	}
	if cfg.OrderCode.Length != defaultOrderCodeLength {
		t.Fatalf("OrderCode.Length = %d, want %d", cfg.OrderCode.Length, defaultOrderCodeLength)
	}
	if cfg.OrderCode.MaxAttempts != defaultOrderCodeMaxAttempts {
		t.Fatalf("OrderCode.MaxAttempts = %d, want %d", cfg.OrderCode.MaxAttempts, defaultOrderCodeMaxAttempts)
	}
}
