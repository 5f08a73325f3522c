package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"swiftie_sanctuary/internal/common"
	"swiftie_sanctuary/internal/domain/model"
)

type MemberRepository interface {
	ListWithOwners(ctx context.Context) ([]model.MemberWithOwner, error)
	// ExistsForUser reports whether the user already submitted a story.
	ExistsForUser(ctx context.Context, userID string) (bool, error)
	Create(ctx context.Context, member *model.Member) error
	// Update replaces the four text fields of a record by id.
	Update(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, id string) error
}

type pgMemberRepository struct {
	db *sql.DB
}

func NewPgMemberRepository(db *sql.DB) MemberRepository {
	return &pgMemberRepository{db: db}
}

func (r *pgMemberRepository) ListWithOwners(ctx context.Context) ([]model.MemberWithOwner, error) {
	// Left join so records whose owner was deleted still appear, with null
	// owner fields.
	query := `SELECT m.id, m.user_id, m.first_name, m.last_name, m.favorite_song,
	                 m.story, m.created_at, u.username, u.email
	          FROM members m
	          LEFT JOIN users u ON m.user_id = u.id
	          ORDER BY m.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgMemberRepository.ListWithOwners: %w", err)
	}
	defer rows.Close()

	members := []model.MemberWithOwner{}
	for rows.Next() {
		var m model.MemberWithOwner
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.FirstName, &m.LastName, &m.FavoriteSong,
			&m.Story, &m.CreatedAt, &m.Username, &m.Email,
		); err != nil {
			return nil, fmt.Errorf("pgMemberRepository.ListWithOwners scan: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgMemberRepository.ListWithOwners rows: %w", err)
	}
	return members, nil
}

func (r *pgMemberRepository) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM members WHERE user_id = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("pgMemberRepository.ExistsForUser: %w", err)
	}
	return exists, nil
}

func (r *pgMemberRepository) Create(ctx context.Context, member *model.Member) error {
	query := `INSERT INTO members (id, user_id, first_name, last_name, favorite_song, story)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		member.ID, member.UserID, member.FirstName, member.LastName,
		member.FavoriteSong, member.Story,
	).Scan(&member.CreatedAt)
	if err != nil {
		return fmt.Errorf("pgMemberRepository.Create: %w", err)
	}
	return nil
}

func (r *pgMemberRepository) Update(ctx context.Context, member *model.Member) error {
	query := `UPDATE members
	          SET first_name = $1, last_name = $2, favorite_song = $3, story = $4
	          WHERE id = $5
	          RETURNING user_id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		member.FirstName, member.LastName, member.FavoriteSong, member.Story, member.ID,
	).Scan(&member.UserID, &member.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.NewError(common.ErrNotFound, "Member not found")
		}
		return fmt.Errorf("pgMemberRepository.Update: %w", err)
	}
	return nil
}

func (r *pgMemberRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM members WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("pgMemberRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgMemberRepository.Delete rows affected: %w", err)
	}
	if affected == 0 {
		return common.NewError(common.ErrNotFound, "Member not found")
	}
	return nil
}
