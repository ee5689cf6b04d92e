package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"saudade-match/internal/domain"
)

// ProfileRepository persiste un CulturalDepthProfile por usuario.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile domain.CulturalDepthProfile) error
	GetByUserID(ctx context.Context, userID string) (domain.CulturalDepthProfile, error)
	ListCandidates(ctx context.Context, excludeUserID string, limit int) ([]domain.CulturalDepthProfile, error)
}

type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

func (r *PgProfileRepository) Upsert(ctx context.Context, profile domain.CulturalDepthProfile) error {
	const query = `
		INSERT INTO saudade_profiles (user_id, region, profile, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET region = EXCLUDED.region, profile = EXCLUDED.profile, updated_at = EXCLUDED.updated_at
	`
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = r.pool.Exec(ctx, query,
		profile.UserID,
		profile.SaudadeProfile.RegionalIdentity.Region,
		payload,
		profile.UpdatedAt,
	)
	return err
}

func (r *PgProfileRepository) GetByUserID(ctx context.Context, userID string) (domain.CulturalDepthProfile, error) {
	const query = `
		SELECT profile
		FROM saudade_profiles
		WHERE user_id = $1
	`
	var payload []byte
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&payload); err != nil {
		return domain.CulturalDepthProfile{}, err
	}
	return decodeProfile(payload)
}

// ListCandidates devuelve los perfiles más recientes excepto el del propio usuario.
func (r *PgProfileRepository) ListCandidates(ctx context.Context, excludeUserID string, limit int) ([]domain.CulturalDepthProfile, error) {
	const query = `
		SELECT profile
		FROM saudade_profiles
		WHERE user_id <> $1
		ORDER BY updated_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, excludeUserID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.CulturalDepthProfile
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		profile, err := decodeProfile(payload)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

func decodeProfile(payload []byte) (domain.CulturalDepthProfile, error) {
	var profile domain.CulturalDepthProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return domain.CulturalDepthProfile{}, fmt.Errorf("decode profile: %w", err)
	}
	return profile, nil
}

// MemoryProfileRepository es la alternativa sin base de datos (desarrollo y tests).
type MemoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]domain.CulturalDepthProfile
}

func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{profiles: make(map[string]domain.CulturalDepthProfile)}
}

func (r *MemoryProfileRepository) Upsert(_ context.Context, profile domain.CulturalDepthProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.UserID] = profile
	return nil
}

// GetByUserID devuelve pgx.ErrNoRows si no existe, igual que la versión Postgres.
func (r *MemoryProfileRepository) GetByUserID(_ context.Context, userID string) (domain.CulturalDepthProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return domain.CulturalDepthProfile{}, pgx.ErrNoRows
	}
	return profile, nil
}

func (r *MemoryProfileRepository) ListCandidates(_ context.Context, excludeUserID string, limit int) ([]domain.CulturalDepthProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.CulturalDepthProfile, 0, len(r.profiles))
	for id, p := range r.profiles {
		if id != excludeUserID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].UserID < out[j].UserID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
