package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"saudade-match/internal/domain"
)

type mockProfileRepo struct {
	mu          sync.Mutex
	profiles    map[string]domain.CulturalDepthProfile
	upserted    []domain.CulturalDepthProfile
	upsertErr   error
	listErr     error
	lastLimit   int
	lastExclude string
}

func newMockProfileRepo(profiles ...domain.CulturalDepthProfile) *mockProfileRepo {
	m := &mockProfileRepo{profiles: make(map[string]domain.CulturalDepthProfile)}
	for _, p := range profiles {
		m.profiles[p.UserID] = p
	}
	return m
}

func (m *mockProfileRepo) Upsert(_ context.Context, profile domain.CulturalDepthProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, profile)
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID string) (domain.CulturalDepthProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return domain.CulturalDepthProfile{}, pgx.ErrNoRows
	}
	return p, nil
}

func (m *mockProfileRepo) ListCandidates(_ context.Context, excludeUserID string, limit int) ([]domain.CulturalDepthProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastExclude = excludeUserID
	m.lastLimit = limit
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []domain.CulturalDepthProfile
	for id, p := range m.profiles {
		if id != excludeUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

type mockMatchRepo struct {
	mu        sync.Mutex
	saved     []domain.MatchResult
	saveErr   error
	lastLimit int
}

func (m *mockMatchRepo) Save(_ context.Context, match domain.MatchResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, match)
	return nil
}

func (m *mockMatchRepo) ListByUser(_ context.Context, userID string, limit int) ([]domain.MatchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit
	var out []domain.MatchResult
	for _, r := range m.saved {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type countingObserver struct {
	mu          sync.Mutex
	comparisons int
	hits        int
	misses      int
	errors      []string
}

func (o *countingObserver) RecordComparison(domain.SaudadeCompatibilityResult, time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.comparisons++
}

func (o *countingObserver) RecordCache(hit bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if hit {
		o.hits++
		return
	}
	o.misses++
}

func (o *countingObserver) RecordError(operation string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.errors = append(o.errors, operation)
}

func TestMatchServiceCompare_UsesCache(t *testing.T) {
	obs := &countingObserver{}
	svc := NewMatchService(zap.NewNop(), nil, nil, NewMemoryResultCache(16, time.Minute), obs, MatchOptions{})
	a, b := workedPair()

	first, err := svc.Compare(context.Background(), a, b, domain.LocaleEnglish)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	second, err := svc.Compare(context.Background(), a, b, domain.LocaleEnglish)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if first.CompatibilityScore != 75 || second.CompatibilityScore != 75 {
		t.Fatalf("unexpected scores %d/%d", first.CompatibilityScore, second.CompatibilityScore)
	}
	if obs.comparisons != 1 || obs.hits != 1 || obs.misses != 1 {
		t.Fatalf("expected one computation and one cache hit, got %+v", obs)
	}

	if _, err := svc.Compare(context.Background(), a, b, domain.LocalePortuguese); err != nil {
		t.Fatalf("compare pt: %v", err)
	}
	if obs.comparisons != 2 {
		t.Fatalf("locale must be part of the cache key, comparisons=%d", obs.comparisons)
	}
}

func TestMatchServiceCompare_MatchesPureCompute(t *testing.T) {
	svc := NewMatchService(nil, nil, nil, nil, nil, MatchOptions{})
	a, b := workedPair()
	got, err := svc.Compare(context.Background(), a, b, domain.LocalePortuguese)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	want, _ := NewCompatibilityService().Compute(a, b, domain.LocalePortuguese)
	if got.CompatibilityScore != want.CompatibilityScore || got.ConnectionLabel != want.ConnectionLabel {
		t.Fatalf("service result differs from pure compute: %+v vs %+v", got, want)
	}
}

func TestMatchServiceSaveProfile(t *testing.T) {
	repo := newMockProfileRepo()
	svc := NewMatchService(zap.NewNop(), repo, nil, nil, nil, MatchOptions{})

	p := profileFixture("ignored", 12, 8, " Açores ")
	saved, err := svc.SaveProfile(context.Background(), " u1 ", p)
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if saved.UserID != "u1" || saved.UpdatedAt.IsZero() {
		t.Fatalf("expected user id and updated_at set, got %q %v", saved.UserID, saved.UpdatedAt)
	}
	if saved.SaudadeProfile.SaudadeIntensity != 10 || saved.SaudadeProfile.RegionalIdentity.Region != "acores" {
		t.Fatalf("expected normalized profile, got %+v", saved.SaudadeProfile)
	}
	if len(repo.upserted) != 1 {
		t.Fatalf("expected one upsert, got %d", len(repo.upserted))
	}

	bad := p
	bad.SaudadeProfile.RegionalIdentity.Region = ""
	if _, err := svc.SaveProfile(context.Background(), "u1", bad); !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}
	if _, err := svc.SaveProfile(context.Background(), "  ", p); !errors.Is(err, ErrMatchInvalidInput) {
		t.Fatalf("expected ErrMatchInvalidInput, got %v", err)
	}
}

func TestMatchServiceSaveAssessment(t *testing.T) {
	repo := newMockProfileRepo()
	svc := NewMatchService(zap.NewNop(), repo, nil, nil, nil, MatchOptions{})

	saved, err := svc.SaveAssessment(context.Background(), "u1", domain.AssessmentAnswers{SaudadeIntensity: intPtr(8)}, domain.LocalePortuguese)
	if err != nil {
		t.Fatalf("save assessment: %v", err)
	}
	if saved.SaudadeProfile.SaudadeIntensity != 8 || saved.SaudadeProfile.RegionalIdentity.Region != "general" {
		t.Fatalf("unexpected derived profile: %+v", saved.SaudadeProfile)
	}
	if _, err := svc.SaveAssessment(context.Background(), "u1", domain.AssessmentAnswers{}, "xx"); !errors.Is(err, domain.ErrInvalidLocale) {
		t.Fatalf("expected ErrInvalidLocale, got %v", err)
	}
}

func TestMatchServiceRankMatches(t *testing.T) {
	me := profileFixture("me", 9, 8, "porto_norte")
	twin := profileFixture("twin", 9, 8, "porto_norte")
	near := profileFixture("near", 8, 6, "minho")
	far := profileFixture("far", 1, 1, "acores")
	far.SaudadeProfile.Triggers = []string{"ocean_sounds"}
	broken := profileFixture("broken", 5, 5, "")

	profiles := newMockProfileRepo(me, twin, near, far, broken)
	matches := &mockMatchRepo{}
	svc := NewMatchService(zap.NewNop(), profiles, matches, NewMemoryResultCache(16, time.Minute), nil, MatchOptions{Workers: 2, CandidateLimit: 50})

	ranked, err := svc.RankMatches(context.Background(), "me", domain.LocaleEnglish, 2)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if profiles.lastExclude != "me" || profiles.lastLimit != 50 {
		t.Fatalf("unexpected candidate query %q/%d", profiles.lastExclude, profiles.lastLimit)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected limit 2, got %d", len(ranked))
	}
	if ranked[0].CandidateUserID != "twin" || ranked[0].Result.CompatibilityScore != 100 {
		t.Fatalf("expected twin first with 100, got %s/%d", ranked[0].CandidateUserID, ranked[0].Result.CompatibilityScore)
	}
	if ranked[1].CandidateUserID != "near" {
		t.Fatalf("expected near second, got %s", ranked[1].CandidateUserID)
	}
	for _, m := range ranked {
		if m.ID == "" || m.CreatedAt.IsZero() || m.UserID != "me" {
			t.Fatalf("expected persisted metadata, got %+v", m)
		}
	}
	if len(matches.saved) != 2 {
		t.Fatalf("expected 2 persisted results, got %d", len(matches.saved))
	}
}

func TestMatchServiceRankMatches_TiesByCandidateID(t *testing.T) {
	me := profileFixture("me", 7, 7, "minho")
	profiles := newMockProfileRepo(me, profileFixture("zeta", 7, 7, "minho"), profileFixture("alpha", 7, 7, "minho"))
	svc := NewMatchService(zap.NewNop(), profiles, &mockMatchRepo{}, nil, nil, MatchOptions{})

	ranked, err := svc.RankMatches(context.Background(), "me", domain.LocaleEnglish, 10)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(ranked) != 2 || ranked[0].CandidateUserID != "alpha" || ranked[1].CandidateUserID != "zeta" {
		t.Fatalf("expected tie broken by candidate id, got %+v", ranked)
	}
}

func TestMatchServiceRankMatches_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		svc := NewMatchService(zap.NewNop(), newMockProfileRepo(), nil, nil, nil, MatchOptions{})
		if _, err := svc.RankMatches(ctx, "ghost", domain.LocaleEnglish, 5); !errors.Is(err, pgx.ErrNoRows) {
			t.Fatalf("expected pgx.ErrNoRows, got %v", err)
		}
	})

	t.Run("candidate listing fails", func(t *testing.T) {
		repo := newMockProfileRepo(profileFixture("me", 5, 5, "minho"))
		repo.listErr = errors.New("db down")
		obs := &countingObserver{}
		svc := NewMatchService(zap.NewNop(), repo, nil, nil, obs, MatchOptions{})
		if _, err := svc.RankMatches(ctx, "me", domain.LocaleEnglish, 5); err == nil {
			t.Fatalf("expected error")
		}
		if len(obs.errors) != 1 || obs.errors[0] != "list_candidates" {
			t.Fatalf("expected list_candidates error recorded, got %v", obs.errors)
		}
	})

	t.Run("persist failure does not fail ranking", func(t *testing.T) {
		repo := newMockProfileRepo(profileFixture("me", 5, 5, "minho"), profileFixture("other", 5, 5, "minho"))
		svc := NewMatchService(zap.NewNop(), repo, &mockMatchRepo{saveErr: errors.New("disk full")}, nil, nil, MatchOptions{})
		ranked, err := svc.RankMatches(ctx, "me", domain.LocaleEnglish, 5)
		if err != nil || len(ranked) != 1 {
			t.Fatalf("expected ranking despite persist error, got %v,%v", ranked, err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		repo := newMockProfileRepo(profileFixture("me", 5, 5, "minho"), profileFixture("other", 5, 5, "minho"))
		svc := NewMatchService(zap.NewNop(), repo, nil, nil, nil, MatchOptions{})
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := svc.RankMatches(cctx, "me", domain.LocaleEnglish, 5); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestMatchServiceCompareUsers(t *testing.T) {
	a, b := workedPair()
	svc := NewMatchService(zap.NewNop(), newMockProfileRepo(a, b), nil, nil, nil, MatchOptions{})

	res, err := svc.CompareUsers(context.Background(), "ana", "bruno", domain.LocaleEnglish)
	if err != nil {
		t.Fatalf("compare users: %v", err)
	}
	if res.CompatibilityScore != 75 {
		t.Fatalf("expected 75, got %d", res.CompatibilityScore)
	}
	if _, err := svc.CompareUsers(context.Background(), "ana", "ana", domain.LocaleEnglish); !errors.Is(err, ErrSelfMatch) {
		t.Fatalf("expected ErrSelfMatch, got %v", err)
	}
}

func TestMatchService_NotConfigured(t *testing.T) {
	var svc *MatchService
	if _, err := svc.RankMatches(context.Background(), "u1", domain.LocaleEnglish, 5); !errors.Is(err, ErrMatchServiceNotConfigured) {
		t.Fatalf("expected ErrMatchServiceNotConfigured, got %v", err)
	}
	if _, err := NewMatchService(nil, nil, nil, nil, nil, MatchOptions{}).History(context.Background(), "u1", 5); !errors.Is(err, ErrMatchServiceNotConfigured) {
		t.Fatalf("expected ErrMatchServiceNotConfigured for history, got %v", err)
	}
}

func TestMatchServiceHistory_Limit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, 20},
		{"negative", -3, 20},
		{"within range", 50, 50},
		{"capped", 150, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := &mockMatchRepo{}
			svc := NewMatchService(zap.NewNop(), newMockProfileRepo(), matches, nil, nil, MatchOptions{})
			if _, err := svc.History(context.Background(), "ana", tt.limit); err != nil {
				t.Fatalf("history: %v", err)
			}
			if matches.lastLimit != tt.want {
				t.Fatalf("expected limit %d, got %d", tt.want, matches.lastLimit)
			}
		})
	}
}
