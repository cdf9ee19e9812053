// Package sqlite provides a durable chat.Store backed by SQLite, selectable
// in place of the in-memory reference store. The persona catalog is not
// persisted; it reseeds on startup.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pastvoices/backend/internal/model/chat"
)

// Store implements chat.Store on a local SQLite file.
type Store struct {
	conn *sql.DB
}

// New opens (and if needed creates) the database at dbPath and runs the
// schema migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single writer connection.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			token TEXT NOT NULL UNIQUE,
			persona_id INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_token TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			persona_id INTEGER NOT NULL DEFAULT 0,
			timestamp DATETIME NOT NULL,
			FOREIGN KEY(session_token) REFERENCES sessions(token)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_messages_session_timestamp
			ON messages(session_token, timestamp, id)`,
	}

	for _, migration := range migrations {
		if _, err := s.conn.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// CreateSession registers a session under the given token, returning the
// existing row unchanged when the token is already known.
func (s *Store) CreateSession(ctx context.Context, token string, personaID int64) (chat.Session, error) {
	existing, err := s.GetSession(ctx, token)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, chat.ErrSessionNotFound) {
		return chat.Session{}, err
	}

	createdAt := time.Now().UTC()
	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO sessions (token, persona_id, created_at) VALUES (?, ?, ?)",
		token, personaID, createdAt,
	)
	if err != nil {
		return chat.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return chat.Session{}, fmt.Errorf("failed to get session id: %w", err)
	}

	return chat.Session{ID: id, Token: token, PersonaID: personaID, CreatedAt: createdAt}, nil
}

// GetSession retrieves a session by token.
func (s *Store) GetSession(ctx context.Context, token string) (chat.Session, error) {
	var session chat.Session
	err := s.conn.QueryRowContext(ctx,
		"SELECT id, token, persona_id, created_at FROM sessions WHERE token = ?",
		token,
	).Scan(&session.ID, &session.Token, &session.PersonaID, &session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return chat.Session{}, chat.ErrSessionNotFound
	}
	if err != nil {
		return chat.Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// SetSessionPersona overwrites the session's active persona.
func (s *Store) SetSessionPersona(ctx context.Context, token string, personaID int64) (chat.Session, error) {
	result, err := s.conn.ExecContext(ctx,
		"UPDATE sessions SET persona_id = ? WHERE token = ?",
		personaID, token,
	)
	if err != nil {
		return chat.Session{}, fmt.Errorf("failed to update session persona: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return chat.Session{}, fmt.Errorf("failed to update session persona: %w", err)
	}
	if affected == 0 {
		return chat.Session{}, chat.ErrSessionNotFound
	}
	return s.GetSession(ctx, token)
}

// AppendMessage inserts the next message for the session.
func (s *Store) AppendMessage(ctx context.Context, token, role, content string, personaID int64) (chat.Message, error) {
	if (role == chat.RoleUser || role == chat.RoleAssistant) && strings.TrimSpace(content) == "" {
		return chat.Message{}, chat.ErrEmptyContent
	}
	if _, err := s.GetSession(ctx, token); err != nil {
		return chat.Message{}, err
	}

	timestamp := time.Now().UTC()
	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO messages (session_token, role, content, persona_id, timestamp) VALUES (?, ?, ?, ?, ?)",
		token, role, content, personaID, timestamp,
	)
	if err != nil {
		return chat.Message{}, fmt.Errorf("failed to create message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return chat.Message{}, fmt.Errorf("failed to get message id: %w", err)
	}

	return chat.Message{
		ID:        id,
		SessionID: token,
		Role:      role,
		Content:   content,
		PersonaID: personaID,
		Timestamp: timestamp,
	}, nil
}

// ListMessages returns the session transcript ordered by timestamp, ties
// broken by id.
func (s *Store) ListMessages(ctx context.Context, token string) ([]chat.Message, error) {
	if _, err := s.GetSession(ctx, token); err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryContext(ctx,
		"SELECT id, session_token, role, content, persona_id, timestamp FROM messages WHERE session_token = ? ORDER BY timestamp ASC, id ASC",
		token,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]chat.Message, 0, 16)
	for rows.Next() {
		var msg chat.Message
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &msg.PersonaID, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
