package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"saudade-match/internal/domain"
	"saudade-match/internal/repository"
)

var (
	ErrMatchServiceNotConfigured = errors.New("match service not configured")
	ErrMatchInvalidInput         = errors.New("match invalid input")
	ErrSelfMatch                 = errors.New("cannot match a user with themselves")
)

const (
	defaultMatchWorkers        = 8
	defaultMatchCandidateLimit = 200
	defaultRankLimit           = 20
	maxRankLimit               = 100
)

// MatchOptions ajusta la concurrencia y el tamaño del pool de candidatos.
type MatchOptions struct {
	Workers        int
	CandidateLimit int
}

// MatchService orquesta perfiles guardados, cache de resultados y el scoring puro.
type MatchService struct {
	logger   *zap.Logger
	profiles repository.ProfileRepository
	matches  repository.MatchRepository
	compat   CompatibilityService
	cache    ResultCache
	observer Observer
	opts     MatchOptions
}

func NewMatchService(logger *zap.Logger, profiles repository.ProfileRepository, matches repository.MatchRepository, cache ResultCache, observer Observer, opts MatchOptions) *MatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = nopResultCache{}
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultMatchWorkers
	}
	if opts.CandidateLimit <= 0 {
		opts.CandidateLimit = defaultMatchCandidateLimit
	}
	return &MatchService{
		logger:   logger,
		profiles: profiles,
		matches:  matches,
		compat:   NewCompatibilityService(),
		cache:    cache,
		observer: observer,
		opts:     opts,
	}
}

// Compare puntúa dos perfiles sueltos pasando por la cache.
func (s *MatchService) Compare(ctx context.Context, a, b domain.CulturalDepthProfile, locale domain.Locale) (domain.SaudadeCompatibilityResult, error) {
	if s == nil {
		return domain.SaudadeCompatibilityResult{}, ErrMatchServiceNotConfigured
	}
	if !locale.Valid() {
		return domain.SaudadeCompatibilityResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidLocale, locale)
	}
	if err := ValidateProfile(a); err != nil {
		return domain.SaudadeCompatibilityResult{}, fmt.Errorf("profile a: %w", err)
	}
	if err := ValidateProfile(b); err != nil {
		return domain.SaudadeCompatibilityResult{}, fmt.Errorf("profile b: %w", err)
	}

	na, nb := NormalizeProfile(a), NormalizeProfile(b)
	key := ResultCacheKey(na, nb, locale, s.compat.Weights())
	if cached, ok := s.cache.Get(ctx, key); ok {
		s.observer.RecordCache(true)
		return cached, nil
	}
	s.observer.RecordCache(false)

	start := time.Now()
	result := s.compat.score(na, nb, locale)
	s.observer.RecordComparison(result, time.Since(start))
	s.cache.Set(ctx, key, result)
	return result, nil
}

// SaveProfile valida, normaliza y guarda el perfil del usuario.
func (s *MatchService) SaveProfile(ctx context.Context, userID string, profile domain.CulturalDepthProfile) (domain.CulturalDepthProfile, error) {
	if s == nil || s.profiles == nil {
		return domain.CulturalDepthProfile{}, ErrMatchServiceNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.CulturalDepthProfile{}, ErrMatchInvalidInput
	}
	if err := ValidateProfile(profile); err != nil {
		return domain.CulturalDepthProfile{}, err
	}
	normalized := NormalizeProfile(profile)
	normalized.UserID = userID
	normalized.UpdatedAt = time.Now().UTC()
	if err := s.profiles.Upsert(ctx, normalized); err != nil {
		s.observer.RecordError("save_profile")
		return domain.CulturalDepthProfile{}, err
	}
	return normalized, nil
}

// SaveAssessment deriva el perfil desde el cuestionario y lo guarda.
func (s *MatchService) SaveAssessment(ctx context.Context, userID string, answers domain.AssessmentAnswers, locale domain.Locale) (domain.CulturalDepthProfile, error) {
	if !locale.Valid() {
		return domain.CulturalDepthProfile{}, fmt.Errorf("%w: %q", domain.ErrInvalidLocale, locale)
	}
	return s.SaveProfile(ctx, userID, DeriveProfile(userID, answers, locale))
}

func (s *MatchService) GetProfile(ctx context.Context, userID string) (domain.CulturalDepthProfile, error) {
	if s == nil || s.profiles == nil {
		return domain.CulturalDepthProfile{}, ErrMatchServiceNotConfigured
	}
	return s.profiles.GetByUserID(ctx, strings.TrimSpace(userID))
}

// CompareUsers puntúa al usuario contra otro usuario con perfil guardado.
func (s *MatchService) CompareUsers(ctx context.Context, userID, candidateID string, locale domain.Locale) (domain.SaudadeCompatibilityResult, error) {
	if s == nil || s.profiles == nil {
		return domain.SaudadeCompatibilityResult{}, ErrMatchServiceNotConfigured
	}
	userID, candidateID = strings.TrimSpace(userID), strings.TrimSpace(candidateID)
	if userID == "" || candidateID == "" {
		return domain.SaudadeCompatibilityResult{}, ErrMatchInvalidInput
	}
	if userID == candidateID {
		return domain.SaudadeCompatibilityResult{}, ErrSelfMatch
	}
	me, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return domain.SaudadeCompatibilityResult{}, err
	}
	other, err := s.profiles.GetByUserID(ctx, candidateID)
	if err != nil {
		return domain.SaudadeCompatibilityResult{}, err
	}
	return s.Compare(ctx, me, other, locale)
}

// RankMatches puntúa al usuario contra los candidatos en paralelo y devuelve los mejores.
// Orden: score descendente, desempate por id de candidato. Los candidatos inválidos se omiten.
func (s *MatchService) RankMatches(ctx context.Context, userID string, locale domain.Locale, limit int) ([]domain.MatchResult, error) {
	if s == nil || s.profiles == nil {
		return nil, ErrMatchServiceNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrMatchInvalidInput
	}
	if !locale.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidLocale, locale)
	}
	limit = clampRankLimit(limit)

	me, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.profiles.ListCandidates(ctx, userID, s.opts.CandidateLimit)
	if err != nil {
		s.observer.RecordError("list_candidates")
		return nil, err
	}

	scored := make([]*domain.MatchResult, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := s.Compare(gctx, me, candidate, locale)
			if err != nil {
				s.logger.Warn("skipping candidate", zap.String("candidate_user_id", candidate.UserID), zap.Error(err))
				return nil
			}
			scored[i] = &domain.MatchResult{
				UserID:          userID,
				CandidateUserID: candidate.UserID,
				Result:          result,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]domain.MatchResult, 0, len(scored))
	for _, m := range scored {
		if m != nil {
			ranked = append(ranked, *m)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Result.CompatibilityScore != ranked[j].Result.CompatibilityScore {
			return ranked[i].Result.CompatibilityScore > ranked[j].Result.CompatibilityScore
		}
		return ranked[i].CandidateUserID < ranked[j].CandidateUserID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	now := time.Now().UTC()
	for i := range ranked {
		ranked[i].ID = uuid.NewString()
		ranked[i].CreatedAt = now
		if s.matches == nil {
			continue
		}
		if err := s.matches.Save(ctx, ranked[i]); err != nil {
			s.observer.RecordError("persist_match")
			s.logger.Error("persist match result failed", zap.String("user_id", userID), zap.String("candidate_user_id", ranked[i].CandidateUserID), zap.Error(err))
		}
	}
	s.logger.Info("ranked matches", zap.String("user_id", userID), zap.Int("candidates", len(candidates)), zap.Int("returned", len(ranked)))
	return ranked, nil
}

// History lista los resultados guardados para el usuario.
func (s *MatchService) History(ctx context.Context, userID string, limit int) ([]domain.MatchResult, error) {
	if s == nil || s.matches == nil {
		return nil, ErrMatchServiceNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return []domain.MatchResult{}, nil
	}
	return s.matches.ListByUser(ctx, userID, clampRankLimit(limit))
}

// clampRankLimit aplica el límite por defecto y el máximo compartidos por ranking e historial.
func clampRankLimit(limit int) int {
	if limit <= 0 {
		return defaultRankLimit
	}
	return min(limit, maxRankLimit)
}
