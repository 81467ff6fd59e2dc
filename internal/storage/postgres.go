package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/mindhavenapp/mindhaven/backend/internal/model/bot"
	"github.com/mindhavenapp/mindhaven/backend/internal/model/chat"
	"github.com/mindhavenapp/mindhaven/backend/internal/model/journal"
)

//go:embed migrations.sql
var migrations embed.FS

// Config carries Postgres connection settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// PostgresStore persists records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects, verifies the connection, and applies the
// embedded schema.
func NewPostgresStore(cfg Config) (*PostgresStore, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initializeSchema(); err != nil {
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return store, nil
}

func (s *PostgresStore) initializeSchema() error {
	schema, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("reading migrations: %w", err)
	}
	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing migrations: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateConversation(ctx context.Context, conv *chat.Conversation) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversations (id, user_id, bot_type, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		conv.ID, conv.UserID, conv.BotType, conv.Title, conv.CreatedAt, conv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating conversation: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetConversation(ctx context.Context, id string) (*chat.Conversation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, bot_type, COALESCE(title, ''), created_at, updated_at
		FROM conversations WHERE id = $1`, id)
	return scanConversation(row)
}

func (s *PostgresStore) FindConversation(ctx context.Context, userID string, botType bot.Type) (*chat.Conversation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, bot_type, COALESCE(title, ''), created_at, updated_at
		FROM conversations
		WHERE user_id = $1 AND bot_type = $2
		ORDER BY created_at DESC
		LIMIT 1`, userID, botType)
	return scanConversation(row)
}

func scanConversation(row *sql.Row) (*chat.Conversation, error) {
	conv := &chat.Conversation{}
	err := row.Scan(&conv.ID, &conv.UserID, &conv.BotType, &conv.Title, &conv.CreatedAt, &conv.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning conversation: %w", err)
	}
	return conv, nil
}

func (s *PostgresStore) UpdateConversationTitle(ctx context.Context, id, title string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE conversations SET title = $2, updated_at = now() WHERE id = $1`, id, title)
	if err != nil {
		return fmt.Errorf("updating conversation title: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating conversation title: %w", err)
	}
	if affected == 0 {
		return ErrConversationNotFound
	}
	return nil
}

func (s *PostgresStore) AppendMessage(ctx context.Context, msg *chat.Message) error {
	metadata := msg.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (id, conversation_id, role, content, metadata, created_at)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE EXISTS (SELECT 1 FROM conversations WHERE id = $2)`,
		msg.ID, msg.ConversationID, msg.Role, msg.Content, raw, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("appending message: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("appending message: %w", err)
	}
	if affected == 0 {
		return ErrConversationNotFound
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE conversations SET updated_at = $2 WHERE id = $1`,
		msg.ConversationID, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("touching conversation: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListMessages(ctx context.Context, conversationID string) ([]chat.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, conversation_id, role, content, metadata, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY seq`, conversationID)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var msgs []chat.Message
	for rows.Next() {
		var msg chat.Message
		var raw []byte
		if err := rows.Scan(&msg.ID, &msg.ConversationID, &msg.Role, &msg.Content, &raw, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &msg.Metadata); err != nil {
				return nil, fmt.Errorf("decoding metadata: %w", err)
			}
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}

func (s *PostgresStore) CreateMoodEntry(ctx context.Context, entry *journal.MoodEntry) error {
	music, err := json.Marshal(entry.MusicRecommendation)
	if err != nil {
		return fmt.Errorf("encoding music recommendation: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO mood_entries (id, user_id, mood, intensity, music_recommendation, mindfulness_exercise, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.UserID, entry.Mood, entry.Intensity, music, entry.MindfulnessExercise, entry.Notes, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating mood entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateGratitudeEntry(ctx context.Context, entry *journal.GratitudeEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO gratitude_entries (id, user_id, gratitude_text, challenge_completed, challenge_description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.UserID, entry.GratitudeText, entry.ChallengeCompleted, entry.ChallengeDescription, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating gratitude entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListGratitudeEntries(ctx context.Context, userID string, limit int) ([]journal.GratitudeEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, gratitude_text, challenge_completed, COALESCE(challenge_description, ''), created_at
		FROM gratitude_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying gratitude entries: %w", err)
	}
	defer rows.Close()

	var entries []journal.GratitudeEntry
	for rows.Next() {
		var e journal.GratitudeEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.GratitudeText, &e.ChallengeCompleted, &e.ChallengeDescription, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning gratitude entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) CreateDistortionRecord(ctx context.Context, rec *journal.DistortionRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cognitive_distortions (id, user_id, distortion_type, original_thought, reframed_thought, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.UserID, rec.DistortionType, rec.OriginalThought, rec.ReframedThought, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating distortion record: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateVentingSession(ctx context.Context, session *journal.VentingSession) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO venting_sessions (id, user_id, content, is_shredded, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		session.ID, session.UserID, session.Content, session.IsShredded, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating venting session: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetVentingSession(ctx context.Context, id string) (*journal.VentingSession, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, content, is_shredded, shredded_at, created_at
		FROM venting_sessions WHERE id = $1`, id)

	v := &journal.VentingSession{}
	var shreddedAt sql.NullTime
	err := row.Scan(&v.ID, &v.UserID, &v.Content, &v.IsShredded, &shreddedAt, &v.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning venting session: %w", err)
	}
	if shreddedAt.Valid {
		t := shreddedAt.Time
		v.ShreddedAt = &t
	}
	return v, nil
}

func (s *PostgresStore) ShredVentingSession(ctx context.Context, id string, at time.Time) error {
	// The is_shredded guard makes the transition one-way and idempotent:
	// a second shred matches no rows and leaves the tombstone untouched.
	res, err := s.db.ExecContext(ctx, `
		UPDATE venting_sessions
		SET is_shredded = true, shredded_at = $2, content = $3
		WHERE id = $1 AND is_shredded = false`,
		id, at, journal.Tombstone)
	if err != nil {
		return fmt.Errorf("shredding venting session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("shredding venting session: %w", err)
	}
	if affected == 0 {
		// Either already shredded (fine) or missing (error).
		if _, err := s.GetVentingSession(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) CreateSleepSession(ctx context.Context, session *journal.SleepSession) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sleep_sessions (id, user_id, start_time, created_at)
		VALUES ($1, $2, $3, $4)`,
		session.ID, session.UserID, session.StartTime, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating sleep session: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
