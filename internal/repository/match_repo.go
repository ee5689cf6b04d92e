package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"saudade-match/internal/domain"
)

// MatchRepository guarda el historial de resultados de ranking.
type MatchRepository interface {
	Save(ctx context.Context, match domain.MatchResult) error
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.MatchResult, error)
}

type PgMatchRepository struct {
	pool *pgxpool.Pool
}

func NewPgMatchRepository(pool *pgxpool.Pool) *PgMatchRepository {
	return &PgMatchRepository{pool: pool}
}

func (r *PgMatchRepository) Save(ctx context.Context, match domain.MatchResult) error {
	const query = `
		INSERT INTO match_results (id, user_id, candidate_user_id, compatibility_score, connection_type, locale, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	payload, err := json.Marshal(match.Result)
	if err != nil {
		return fmt.Errorf("marshal match result: %w", err)
	}
	_, err = r.pool.Exec(ctx, query,
		match.ID,
		match.UserID,
		match.CandidateUserID,
		match.Result.CompatibilityScore,
		string(match.Result.ConnectionType),
		string(match.Result.Locale),
		payload,
		match.CreatedAt,
	)
	return err
}

func (r *PgMatchRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.MatchResult, error) {
	const query = `
		SELECT id, user_id, candidate_user_id, result, created_at
		FROM match_results
		WHERE user_id = $1
		ORDER BY created_at DESC, compatibility_score DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.MatchResult
	for rows.Next() {
		var m domain.MatchResult
		var payload []byte
		if err := rows.Scan(&m.ID, &m.UserID, &m.CandidateUserID, &payload, &m.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &m.Result); err != nil {
			return nil, fmt.Errorf("decode match result: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

type MemoryMatchRepository struct {
	mu      sync.RWMutex
	matches []domain.MatchResult
}

func NewMemoryMatchRepository() *MemoryMatchRepository {
	return &MemoryMatchRepository{}
}

func (r *MemoryMatchRepository) Save(_ context.Context, match domain.MatchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches = append(r.matches, match)
	return nil
}

func (r *MemoryMatchRepository) ListByUser(_ context.Context, userID string, limit int) ([]domain.MatchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.MatchResult
	for _, m := range r.matches {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Result.CompatibilityScore > out[j].Result.CompatibilityScore
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
