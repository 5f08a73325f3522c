package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"swiftie_sanctuary/internal/common"
	"swiftie_sanctuary/internal/domain/model"
)

// pgStore keeps sessions in their own table. Expiry is enforced on read;
// the background sweeper reclaims the rows.
type pgStore struct {
	db *sql.DB
}

func NewPgStore(db *sql.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Create(ctx context.Context, sess *model.Session) error {
	query := `INSERT INTO sessions (token, user_id, username, role, created_at, expires_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := s.db.ExecContext(ctx, query,
		sess.Token, sess.UserID, sess.Username, sess.Role, sess.CreatedAt, sess.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("pgStore.Create: %w", err)
	}
	return nil
}

func (s *pgStore) Get(ctx context.Context, token string) (*model.Session, error) {
	query := `SELECT token, user_id, username, role, created_at, expires_at
	          FROM sessions WHERE token = $1 AND expires_at > now()`
	sess := &model.Session{}
	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&sess.Token, &sess.UserID, &sess.Username, &sess.Role, &sess.CreatedAt, &sess.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgStore.Get: %w", err)
	}
	return sess, nil
}

func (s *pgStore) Delete(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("pgStore.Delete: %w", err)
	}
	return nil
}

func (s *pgStore) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("pgStore.DeleteExpired: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("pgStore.DeleteExpired rows affected: %w", err)
	}
	return affected, nil
}
