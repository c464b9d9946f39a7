package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed translation cache keyed by
// (normalized source text, source language, target language).
type Store struct {
	db *sql.DB
	sq sq.StatementBuilderType
}

// Entry is one cached translation.
type Entry struct {
	SourceText  string
	SrcLang     string
	TgtLang     string
	Translation string
	Hits        int64
	CreatedAt   time.Time
	LastUsed    time.Time
}

// New opens (creating if needed) the cache database at dbPath.
func New(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("make db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection avoids SQLITE_BUSY between concurrent writers
	db.SetMaxOpenConns(1)
	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("pragma %q: %w", p, err)
		}
	}
	s := &Store{db: db, sq: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS translation_cache (
		source_text TEXT NOT NULL,
		src_lang    TEXT NOT NULL,
		tgt_lang    TEXT NOT NULL,
		translation TEXT NOT NULL,
		hits        INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		last_used   TEXT NOT NULL,
		UNIQUE(source_text, src_lang, tgt_lang)
	);
	CREATE INDEX IF NOT EXISTS idx_cache_pair ON translation_cache(src_lang, tgt_lang);
	`)
	return err
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

func normalizeText(text string) string { return norm.NFC.String(text) }

// Get returns the cached translation and bumps its hit counter.
func (s *Store) Get(ctx context.Context, text, from, to string) (string, bool, error) {
	key := sq.Eq{"source_text": normalizeText(text), "src_lang": from, "tgt_lang": to}
	sqlStr, args, err := s.sq.Select("translation").From("translation_cache").Where(key).Limit(1).ToSql()
	if err != nil {
		return "", false, err
	}
	var out string
	if err := s.db.QueryRowContext(ctx, sqlStr, args...).Scan(&out); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	upd, uargs, err := s.sq.Update("translation_cache").
		Set("hits", sq.Expr("hits + 1")).
		Set("last_used", time.Now().UTC().Format(time.RFC3339)).
		Where(key).ToSql()
	if err != nil {
		return out, true, err
	}
	_, err = s.db.ExecContext(ctx, upd, uargs...)
	return out, true, err
}

// Put stores or replaces a translation.
func (s *Store) Put(ctx context.Context, text, from, to, translation string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	sqlStr, args, err := s.sq.Insert("translation_cache").
		Columns("source_text", "src_lang", "tgt_lang", "translation", "created_at", "last_used").
		Values(normalizeText(text), from, to, translation, now, now).
		Suffix("ON CONFLICT(source_text, src_lang, tgt_lang) DO UPDATE SET translation=excluded.translation, last_used=excluded.last_used").
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, sqlStr, args...)
	return err
}

// List returns cached entries for a pair, most used first. Empty from/to match all pairs.
func (s *Store) List(ctx context.Context, from, to string, limit uint64) ([]Entry, error) {
	q := s.sq.Select("source_text", "src_lang", "tgt_lang", "translation", "hits", "created_at", "last_used").
		From("translation_cache").
		OrderBy("hits DESC", "last_used DESC")
	if from != "" {
		q = q.Where(sq.Eq{"src_lang": from})
	}
	if to != "" {
		q = q.Where(sq.Eq{"tgt_lang": to})
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		var created, used string
		if err := rows.Scan(&e.SourceText, &e.SrcLang, &e.TgtLang, &e.Translation, &e.Hits, &created, &used); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, created)
		e.LastUsed, _ = time.Parse(time.RFC3339, used)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Purge deletes cached entries for a pair (empty from/to match all) and
// returns the number removed.
func (s *Store) Purge(ctx context.Context, from, to string) (int64, error) {
	q := s.sq.Delete("translation_cache")
	if from != "" {
		q = q.Where(sq.Eq{"src_lang": from})
	}
	if to != "" {
		q = q.Where(sq.Eq{"tgt_lang": to})
	}
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
