package service

import (
	"testing"

	"saudade-match/internal/domain"
)

func TestMessageCatalog_BothLocalesForEveryKey(t *testing.T) {
	for key, texts := range messageCatalog {
		for _, locale := range []domain.Locale{domain.LocaleEnglish, domain.LocalePortuguese} {
			if texts[locale] == "" {
				t.Fatalf("key %s missing %s text", key, locale)
			}
		}
	}
	if got := render("no.such.key", domain.LocaleEnglish); got != "no.such.key" {
		t.Fatalf("unknown key should render as itself, got %q", got)
	}
}

func TestRecommendedActivities_OrderAndCap(t *testing.T) {
	a := profileFixture("a", 9, 5, "minho").SaudadeProfile
	a.Triggers = []string{"fado_music", "grandmother_recipes"}
	a.CopingMechanisms = []string{"cook_portuguese", "listen_fado", "portuguese_community"}
	b := a

	keys := activityKeys(a, b)
	want := []messageKey{msgActivityCookTogether, msgActivityFadoNights, msgActivityFadoSession, msgActivityCommunityEvents}
	if len(keys) != len(want) {
		t.Fatalf("expected %d activities, got %v", len(want), keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("activity %d = %s, want %s", i, keys[i], want[i])
		}
	}
	if got := RecommendedActivities(a, b, domain.LocalePortuguese); len(got) != maxRecommendedActivities {
		t.Fatalf("expected %d rendered activities, got %d", maxRecommendedActivities, len(got))
	}
}

func TestPotentialChallenges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a, b *domain.SaudadeProfile)
		want   messageKey
	}{
		{"intensity gap", func(a, b *domain.SaudadeProfile) { a.SaudadeIntensity, b.SaudadeIntensity = 9, 6 }, msgChallengeIntensity},
		{"integration gap", func(a, b *domain.SaudadeProfile) { a.IntegrationBalance, b.IntegrationBalance = 2, 6 }, msgChallengeIntegration},
		{"support needs either order", func(a, b *domain.SaudadeProfile) {
			a.CulturalSupport, b.CulturalSupport = domain.SupportHigh, domain.SupportIndependent
		}, msgChallengeSupportNeeds},
		{"frequency", func(a, b *domain.SaudadeProfile) { a.Frequency, b.Frequency = domain.FrequencyRare, domain.FrequencyConstant }, msgChallengeFrequency},
		{"distant dialect", func(a, b *domain.SaudadeProfile) { a.RegionalIdentity.Region, b.RegionalIdentity.Region = "minho", "algarve" }, msgChallengeDialect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := profileFixture("a", 7, 5, "minho").SaudadeProfile
			b := profileFixture("b", 7, 5, "minho").SaudadeProfile
			tt.mutate(&a, &b)
			keys := challengeKeys(a, b)
			if len(keys) != 1 || keys[0] != tt.want {
				t.Fatalf("expected only %s, got %v", tt.want, keys)
			}
		})
	}
}

func TestPotentialChallenges_UnknownRegionNoDialectChallenge(t *testing.T) {
	a := profileFixture("a", 7, 5, "atlantis").SaudadeProfile
	b := profileFixture("b", 7, 5, "algarve").SaudadeProfile
	if keys := challengeKeys(a, b); len(keys) != 0 {
		t.Fatalf("expected no challenges, got %v", keys)
	}
}

func TestSupportStrengths(t *testing.T) {
	a := profileFixture("a", 8, 9, "porto_norte").SaudadeProfile
	a.CulturalSupport = domain.SupportHigh
	a.LanguageEmotionalAttachment = 9
	b := a
	b.RegionalIdentity.Region = "minho"

	keys := strengthKeys(a, b)
	want := []messageKey{msgStrengthDeepSaudade, msgStrengthCulturalSupport, msgStrengthPreservation,
		msgStrengthLanguageBond, msgStrengthSharedTriggers, msgStrengthDialect}
	if len(keys) != len(want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("strength %d = %s, want %s", i, keys[i], want[i])
		}
	}

	weak := profileFixture("c", 3, 3, "acores").SaudadeProfile
	weak.Triggers = nil
	if got := SupportStrengths(a, weak, domain.LocaleEnglish); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil strengths, got %#v", got)
	}
}
