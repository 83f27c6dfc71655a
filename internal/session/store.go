package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adnan116/todo-list-app-client/internal/model"

	_ "modernc.org/sqlite"
)

// Session is the client's record of an authenticated login: the opaque access
// token, the identity payload, the account type and the server-granted
// feature codes. It is a snapshot; views read it at activation and never
// mutate it in place.
type Session struct {
	Token             string
	UserInfo          model.UserInfo
	UserType          string
	PermittedFeatures []string
}

// IsAuthenticated only checks token presence. Validity is enforced by the
// backend returning 401, at which point the caller clears the session.
func (s Session) IsAuthenticated() bool {
	return strings.TrimSpace(s.Token) != ""
}

func (s Session) IsAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(s.UserType), "admin")
}

func (s Session) Permitted(feature string) bool {
	for _, f := range s.PermittedFeatures {
		if f == feature {
			return true
		}
	}
	return false
}

// Store persists the session under Dir in a small SQLite key/value table.
// The four keys mirror what the browser console kept in localStorage:
// token, userInfo (JSON), userType, permittedFeatures (JSON array).
type Store struct {
	Dir string
}

const (
	keyToken             = "token"
	keyUserInfo          = "userInfo"
	keyUserType          = "userType"
	keyPermittedFeatures = "permittedFeatures"
)

func (s Store) dbPath() string { return filepath.Join(s.Dir, "session.sqlite") }

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if strings.TrimSpace(s.Dir) == "" {
		return nil, errors.New("session store dir not set")
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.dbPath())
	if err != nil {
		return nil, err
	}
	// busy_timeout avoids "database is locked" flakiness when a TUI and a
	// scripted invocation touch the session at the same time.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS session_meta (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Save replaces all four keys atomically.
func (s Store) Save(ctx context.Context, sess Session) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	infoJSON, err := json.Marshal(sess.UserInfo)
	if err != nil {
		return err
	}
	feats := sess.PermittedFeatures
	if feats == nil {
		feats = []string{}
	}
	featsJSON, err := json.Marshal(feats)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for k, v := range map[string]string{
		keyToken:             sess.Token,
		keyUserInfo:          string(infoJSON),
		keyUserType:          sess.UserType,
		keyPermittedFeatures: string(featsJSON),
	} {
		if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO session_meta(k, v) VALUES(?, ?)`, k, v); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load reads a snapshot. A missing store or malformed JSON never errors:
// those keys fail soft to zero values so a corrupted session simply reads as
// logged-out.
func (s Store) Load(ctx context.Context) (Session, error) {
	if _, err := os.Stat(s.dbPath()); err != nil {
		return Session{}, nil
	}
	db, err := s.open(ctx)
	if err != nil {
		return Session{}, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT k, v FROM session_meta`)
	if err != nil {
		return Session{}, err
	}
	defer rows.Close()

	var sess Session
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return Session{}, err
		}
		switch k {
		case keyToken:
			sess.Token = v
		case keyUserType:
			sess.UserType = v
		case keyUserInfo:
			var info model.UserInfo
			if json.Unmarshal([]byte(v), &info) == nil {
				sess.UserInfo = info
			}
		case keyPermittedFeatures:
			var feats []string
			if json.Unmarshal([]byte(v), &feats) == nil {
				sess.PermittedFeatures = feats
			}
		}
	}
	return sess, rows.Err()
}

// Clear removes all persisted session keys. Subsequent guard checks fail and
// redirect to login.
func (s Store) Clear(ctx context.Context) error {
	if _, err := os.Stat(s.dbPath()); err != nil {
		return nil
	}
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx, `DELETE FROM session_meta`)
	return err
}
