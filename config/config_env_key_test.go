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
		"identity": map[string]any{
			"jwtSecret":  "",
			"projectUrl": "",
		},
		"storefront": map[string]any{
			"currencySymbol": "₦",
		},
		"orders": map[string]any{
			"verifyBusiness": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "IDENTITY_JWTSECRET", want: "identity.jwtSecret"},
		{envKey: "IDENTITY_PROJECTURL", want: "identity.projectUrl"},
		{envKey: "STOREFRONT_CURRENCYSYMBOL", want: "storefront.currencySymbol"},
		{envKey: "ORDERS_VERIFYBUSINESS", want: "orders.verifyBusiness"},
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
