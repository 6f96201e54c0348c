package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/seywell/daypack/internal/domain/roadmap"
	"github.com/seywell/daypack/internal/domain/schedule"
	"github.com/seywell/daypack/internal/repository"
)

const startDateFormat = "2006-01-02"

// RoadmapRepository implements repository.RoadmapRepository on SQLite.
type RoadmapRepository struct {
	db *DB
}

func NewRoadmapRepository(db *DB) *RoadmapRepository {
	return &RoadmapRepository{db: db}
}

func (r *RoadmapRepository) Create(ctx context.Context, userID string, rm *roadmap.Roadmap) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var startDate sql.NullString
	if rm.StartDate != nil {
		startDate = sql.NullString{String: rm.StartDate.Format(startDateFormat), Valid: true}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO roadmaps (id, user_id, title, description, daily_limit, start_date, source_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rm.ID, userID, rm.Title, nullString(rm.Description), rm.DailyLimitMinutes,
		startDate, nullString(rm.SourceURL), rm.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("insert roadmap: %w", err)
	}

	if err := insertDays(ctx, tx, rm.ID, rm.Days); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *RoadmapRepository) Get(ctx context.Context, userID, id string) (*roadmap.Roadmap, error) {
	var (
		rm          roadmap.Roadmap
		description sql.NullString
		startDate   sql.NullString
		sourceURL   sql.NullString
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, description, daily_limit, start_date, source_url, created_at
		FROM roadmaps WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&rm.ID, &rm.UserID, &rm.Title, &description, &rm.DailyLimitMinutes, &startDate, &sourceURL, &rm.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select roadmap: %w", err)
	}

	rm.Description = description.String
	rm.SourceURL = sourceURL.String
	if startDate.Valid {
		parsed, err := time.Parse(startDateFormat, startDate.String)
		if err != nil {
			return nil, fmt.Errorf("parse start date: %w", err)
		}
		rm.StartDate = &parsed
	}

	days, err := r.loadDays(ctx, rm.ID)
	if err != nil {
		return nil, err
	}
	rm.Days = days

	return &rm, nil
}

func (r *RoadmapRepository) loadDays(ctx context.Context, roadmapID string) ([]schedule.Day, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, day_number
		FROM roadmap_days WHERE roadmap_id = ?
		ORDER BY day_number`,
		roadmapID,
	)
	if err != nil {
		return nil, fmt.Errorf("select days: %w", err)
	}
	defer rows.Close()

	var days []schedule.Day
	dayIDs := make(map[int]string)
	for rows.Next() {
		var (
			dayID string
			day   schedule.Day
		)
		if err := rows.Scan(&dayID, &day.DayNumber); err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		dayIDs[day.DayNumber] = dayID
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate days: %w", err)
	}

	// Day completion is derived from session state, never trusted
	// from the stored column.
	for i := range days {
		sessions, err := r.loadSessions(ctx, dayIDs[days[i].DayNumber])
		if err != nil {
			return nil, err
		}
		days[i].Sessions = sessions
		days[i].Completed = dayCompleted(sessions)
	}

	return days, nil
}

func (r *RoadmapRepository) loadSessions(ctx context.Context, dayID string) ([]schedule.Session, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, duration, source_video_id, order_index, is_completed
		FROM sessions WHERE day_id = ?
		ORDER BY order_index`,
		dayID,
	)
	if err != nil {
		return nil, fmt.Errorf("select sessions: %w", err)
	}
	defer rows.Close()

	var sessions []schedule.Session
	for rows.Next() {
		var (
			s       schedule.Session
			videoID sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.Title, &s.DurationMinutes, &videoID, &s.OrderIndex, &s.Completed); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.SourceVideoID = videoID.String
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

func (r *RoadmapRepository) List(ctx context.Context, userID string) ([]roadmap.Summary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.title, r.daily_limit, r.created_at,
			COUNT(DISTINCT d.id),
			COUNT(s.id),
			COALESCE(SUM(s.is_completed), 0)
		FROM roadmaps r
		LEFT JOIN roadmap_days d ON d.roadmap_id = r.id
		LEFT JOIN sessions s ON s.day_id = d.id
		WHERE r.user_id = ?
		GROUP BY r.id
		ORDER BY r.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select roadmaps: %w", err)
	}
	defer rows.Close()

	var summaries []roadmap.Summary
	for rows.Next() {
		var s roadmap.Summary
		if err := rows.Scan(&s.ID, &s.Title, &s.DailyLimitMinutes, &s.CreatedAt,
			&s.TotalDays, &s.TotalSessions, &s.CompletedSessions); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roadmaps: %w", err)
	}

	return summaries, nil
}

func (r *RoadmapRepository) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM roadmaps WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete roadmap: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Save replaces the stored day structure wholesale inside one transaction.
// Session rows keep their IDs, so identity survives moves and rebalances.
func (r *RoadmapRepository) Save(ctx context.Context, userID string, rm *roadmap.Roadmap) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var startDate sql.NullString
	if rm.StartDate != nil {
		startDate = sql.NullString{String: rm.StartDate.Format(startDateFormat), Valid: true}
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE roadmaps
		SET title = ?, description = ?, daily_limit = ?, start_date = ?, source_url = ?
		WHERE id = ? AND user_id = ?`,
		rm.Title, nullString(rm.Description), rm.DailyLimitMinutes,
		startDate, nullString(rm.SourceURL), rm.ID, userID,
	)
	if err != nil {
		return fmt.Errorf("update roadmap: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	// Cascades to sessions.
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM roadmap_days WHERE roadmap_id = ?", rm.ID); err != nil {
		return fmt.Errorf("delete days: %w", err)
	}

	if err := insertDays(ctx, tx, rm.ID, rm.Days); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func insertDays(ctx context.Context, tx *sql.Tx, roadmapID string, days []schedule.Day) error {
	for _, day := range days {
		dayID := uuid.New().String()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO roadmap_days (id, roadmap_id, day_number, is_completed)
			VALUES (?, ?, ?, ?)`,
			dayID, roadmapID, day.DayNumber, day.Completed,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return repository.ErrInvalidInput
			}
			return fmt.Errorf("insert day %d: %w", day.DayNumber, err)
		}

		for _, s := range day.Sessions {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO sessions (id, day_id, title, duration, source_video_id, order_index, is_completed)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				s.ID, dayID, s.Title, s.DurationMinutes, nullString(s.SourceVideoID), s.OrderIndex, s.Completed,
			)
			if err != nil {
				if isUniqueViolation(err) {
					return repository.ErrInvalidInput
				}
				return fmt.Errorf("insert session %s: %w", s.ID, err)
			}
		}
	}
	return nil
}

func dayCompleted(sessions []schedule.Session) bool {
	if len(sessions) == 0 {
		return false
	}
	for _, s := range sessions {
		if !s.Completed {
			return false
		}
	}
	return true
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
