package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/faideww/koga-fishing/internal/fish"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var _ Journal = (*SQLiteStore)(nil)

type SQLiteStore struct {
	db          *sql.DB
	insertStmt  *sql.Stmt
	topStmt     *sql.Stmt
	topFishStmt *sql.Stmt
	countStmt   *sql.Stmt
}

func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db path: %w", err)
	}

	// DSN notes:
	// - _pragma=busy_timeout sets a lock wait
	// - _pragma=journal_mode(WAL) enables the write-ahead log
	// - _pragma=synchronous(NORMAL) sets the disk synchronizing
	//	 mode to NORMAL (recommended with WAL enabled)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", filepath.Clean(dbPath))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteStore{db: db}
	// prepare stops at the first failure; Close skips nil statements
	prepare := func(dst **sql.Stmt, query string) {
		if err != nil {
			return
		}
		*dst, err = db.Prepare(query)
	}

	prepare(&s.insertStmt, `
		INSERT INTO catches (session_id, player, fish_id, fish_name, rarity, price, environment_id, caught_at)
		VALUES (?,?,?,?,?,?,?,?)
	`)
	prepare(&s.topStmt, `
		SELECT id, session_id, player, fish_id, fish_name, rarity, price, environment_id, caught_at
		FROM catches
		ORDER BY price DESC, id DESC
		LIMIT ?
	`)
	prepare(&s.topFishStmt, `
		SELECT id, session_id, player, fish_id, fish_name, rarity, price, environment_id, caught_at
		FROM catches
		WHERE fish_id = ?
		ORDER BY price DESC, id DESC
		LIMIT ?
	`)
	prepare(&s.countStmt, `SELECT COUNT(*) FROM catches WHERE session_id = ?`)

	if err != nil {
		_ = s.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	for _, st := range []*sql.Stmt{s.insertStmt, s.topStmt, s.topFishStmt, s.countStmt} {
		if st != nil {
			_ = st.Close()
		}
	}

	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS catches (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id     TEXT    NOT NULL,
			player         TEXT    NOT NULL,
			fish_id        INTEGER NOT NULL,
			fish_name      TEXT    NOT NULL,
			rarity         INTEGER NOT NULL,
			price          INTEGER NOT NULL,
			environment_id INTEGER NOT NULL,
			caught_at      INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_top_all
			ON catches (price DESC, id DESC);

		CREATE INDEX IF NOT EXISTS idx_top_fish
			ON catches (fish_id, price DESC, id DESC);

		CREATE INDEX IF NOT EXISTS idx_session
			ON catches (session_id);
	`)
	return err
}

func (s *SQLiteStore) Add(ctx context.Context, c fish.Catch) error {
	if s == nil || s.db == nil {
		return errors.New("store not initialized")
	}

	if c.CaughtAt.IsZero() {
		c.CaughtAt = time.Now()
	}

	_, err := s.insertStmt.ExecContext(ctx,
		c.SessionId.String(),
		c.Player,
		int(c.FishId),
		c.Fish,
		c.Rarity,
		c.Price,
		int(c.EnvironmentId),
		c.CaughtAt.Unix(),
	)
	return err
}

func (s *SQLiteStore) TopByPrice(ctx context.Context, limit int) ([]fish.Catch, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialized")
	}

	if limit <= 0 {
		limit = 10
	}

	rows, err := s.topStmt.QueryContext(ctx, limit)
	if err != nil {
		return nil, err
	}
	return scanCatches(rows, limit)
}

func (s *SQLiteStore) TopByPriceFish(ctx context.Context, fishId fish.FishId, limit int) ([]fish.Catch, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialized")
	}

	if limit <= 0 {
		limit = 10
	}

	rows, err := s.topFishStmt.QueryContext(ctx, int(fishId), limit)
	if err != nil {
		return nil, err
	}
	return scanCatches(rows, limit)
}

func (s *SQLiteStore) CountBySession(ctx context.Context, sessionId uuid.UUID) (int, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("store not initialized")
	}

	var n int
	if err := s.countStmt.QueryRowContext(ctx, sessionId.String()).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanCatches(rows *sql.Rows, limit int) ([]fish.Catch, error) {
	defer rows.Close()

	out := make([]fish.Catch, 0, limit)
	for rows.Next() {
		var (
			id         int64
			sid        string
			player     string
			fid        int
			name       string
			rarity     int
			price      int
			envId      int
			caughtUnix int64
		)
		if err := rows.Scan(&id, &sid, &player, &fid, &name, &rarity, &price, &envId, &caughtUnix); err != nil {
			return nil, err
		}

		sessionId, err := uuid.Parse(sid)
		if err != nil {
			return nil, fmt.Errorf("catch %d: bad session id %q: %w", id, sid, err)
		}

		out = append(out, fish.Catch{
			Id:            id,
			SessionId:     sessionId,
			Player:        player,
			FishId:        fish.FishId(fid),
			Fish:          name,
			Rarity:        rarity,
			Price:         price,
			EnvironmentId: fish.EnvironmentId(envId),
			CaughtAt:      time.Unix(caughtUnix, 0).UTC(),
		})
	}

	return out, rows.Err()
}
