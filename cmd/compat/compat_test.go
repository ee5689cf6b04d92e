package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"saudade-match/internal/domain"
	"saudade-match/internal/service"
)

const profileYAML = `
saudade_profile:
  saudade_intensity: 8
  frequency: weekly
  triggers: [fado_music, family_voices]
  coping_mechanisms: [listen_fado]
  homeland_connection: 8
  language_emotional_attachment: 9
  cultural_support: high
  regional_identity:
    region: Porto
    connection: 9
  heritage_preservation: 8
  integration_balance: 2
family_values_importance: 9
overall_cultural_depth: 8
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScoreCommand(t *testing.T) {
	a := writeFile(t, "a.yaml", profileYAML)
	b := writeFile(t, "b.yaml", profileYAML)

	out, err := execute(t, "score", "--a", a, "--b", b, "--locale", "pt", "--format", "json")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	var res domain.SaudadeCompatibilityResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if res.CompatibilityScore != 100 {
		t.Fatalf("expected identical profiles to score 100, got %d", res.CompatibilityScore)
	}
	if res.Locale != domain.LocalePortuguese {
		t.Fatalf("expected pt locale, got %s", res.Locale)
	}

	out, err = execute(t, "score", "--a", a, "--b", b, "--locale", "en", "--format", "yaml")
	if err != nil {
		t.Fatalf("score yaml: %v", err)
	}
	if !strings.Contains(out, "compatibility_score: 100") {
		t.Fatalf("expected yaml output, got:\n%s", out)
	}
}

func TestScoreCommand_Errors(t *testing.T) {
	good := writeFile(t, "good.yaml", profileYAML)
	noRegion := writeFile(t, "bad.yaml", "saudade_profile:\n  saudade_intensity: 5\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unsupported locale", []string{"score", "--a", good, "--b", good, "--locale", "fr", "--format", "json"}, "locale"},
		{"invalid profile", []string{"score", "--a", good, "--b", noRegion, "--locale", "en", "--format", "json"}, "invalid profile"},
		{"missing file", []string{"score", "--a", good, "--b", filepath.Join(t.TempDir(), "nope.yaml"), "--locale", "en", "--format", "json"}, "failed to read"},
		{"unsupported format", []string{"score", "--a", good, "--b", good, "--locale", "en", "--format", "xml"}, "unsupported format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestDeriveCommand(t *testing.T) {
	answers := writeFile(t, "answers.json", `{"saudade_intensity": 9, "regions": ["Algarve"], "triggers": ["fado_music"], "support_needs": ["understanding_saudade"]}`)

	out, err := execute(t, "derive", "--answers", answers, "--user", "u1", "--locale", "en", "--format", "yaml")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	var profile domain.CulturalDepthProfile
	if err := yaml.Unmarshal([]byte(out), &profile); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if profile.UserID != "u1" || profile.SaudadeProfile.RegionalIdentity.Region != "algarve" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.SaudadeProfile.CulturalSupport != domain.SupportHigh {
		t.Fatalf("expected high support, got %s", profile.SaudadeProfile.CulturalSupport)
	}
}

func TestWeightsAndRegionsCommands(t *testing.T) {
	out, err := execute(t, "weights", "--format", "json")
	if err != nil {
		t.Fatalf("weights: %v", err)
	}
	var w service.CompatibilityWeights
	if err := json.Unmarshal([]byte(out), &w); err != nil {
		t.Fatalf("decode weights: %v", err)
	}
	if w != service.CanonicalWeights {
		t.Fatalf("expected canonical weights, got %+v", w)
	}

	out, err = execute(t, "regions", "--locale", "pt", "--format", "json")
	if err != nil {
		t.Fatalf("regions: %v", err)
	}
	if !strings.Contains(out, "Porto e Norte") {
		t.Fatalf("expected portuguese region names, got:\n%s", out)
	}
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("JWT_ISSUER", "saudade-match")

	out, err := execute(t, "token", "--user", "ana")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	claims, err := service.NewJWTService("cli-secret", 0, "saudade-match").ParseAccessToken(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != "ana" {
		t.Fatalf("expected user ana, got %s", claims.UserID)
	}
}
