package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fitmate/internal/domain"
)

// MessageRepository es el sink append-only del log de chat. El pipeline solo
// escribe; nunca lee el historial de vuelta.
type MessageRepository interface {
	Append(ctx context.Context, message domain.StoredMessage) error
}

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) Append(ctx context.Context, message domain.StoredMessage) error {
	const query = `
		INSERT INTO messages (id, role, content, personality, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.Role,
		message.Content,
		message.Personality,
		message.CreatedAt,
	)
	return err
}

// DisabledMessageRepository descarta todo. Se usa cuando DATABASE_URL no está
// configurada: la persistencia es opcional y su ausencia no cambia el pipeline.
type DisabledMessageRepository struct{}

func NewDisabledMessageRepository() DisabledMessageRepository {
	return DisabledMessageRepository{}
}

func (DisabledMessageRepository) Append(ctx context.Context, message domain.StoredMessage) error {
	return nil
}
