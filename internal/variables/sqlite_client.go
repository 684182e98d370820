package variables

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"vardeck/internal/debug"
	"vardeck/internal/domain"
	appErrors "vardeck/internal/errors"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS variables (
	id      TEXT PRIMARY KEY,
	name    TEXT NOT NULL UNIQUE,
	value   TEXT NOT NULL,
	tags    TEXT NOT NULL DEFAULT '[]',
	created TEXT NOT NULL,
	updated TEXT NOT NULL
)`

// sqliteClient keeps variables in a local SQLite database. Each call opens
// its own connection so concurrent vardeck processes can share the file.
type sqliteClient struct {
	dbPath    string
	dsn       string
	listLimit int
	now       func() time.Time
	newID     func() string
	log       *zap.Logger
}

// SQLiteOption customizes the SQLite client.
type SQLiteOption func(*sqliteClient)

// WithSQLiteListLimit caps the number of variables returned by List.
func WithSQLiteListLimit(n int) SQLiteOption {
	return func(c *sqliteClient) {
		if n > 0 {
			c.listLimit = n
		}
	}
}

// withClock overrides time and ID sources (tests).
func withClock(now func() time.Time, newID func() string) SQLiteOption {
	return func(c *sqliteClient) {
		c.now = now
		c.newID = newID
	}
}

// NewSQLiteClient returns a Client backed by the database at dbPath. The
// file and its schema are created on first use.
func NewSQLiteClient(dbPath string, opts ...SQLiteOption) (Client, error) {
	trimmed := strings.TrimSpace(dbPath)
	if trimmed == "" {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "No database path configured (set database.path)", nil)
	}
	c := &sqliteClient{
		dbPath:    trimmed,
		dsn:       buildSQLiteDSN(trimmed),
		listLimit: 200,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
		log:       debug.L().Named("sqlite"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// buildSQLiteDSN creates a read-write WAL DSN for the given path.
func buildSQLiteDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(3000)")
	q.Add("_pragma", "journal_mode(WAL)")
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *sqliteClient) openDB(ctx context.Context) (*sql.DB, error) {
	if dir := filepath.Dir(c.dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, appErrors.New(appErrors.CodeStorageFailed,
				fmt.Sprintf("create database directory: %v", err), err)
		}
	}
	db, err := sql.Open("sqlite", c.dsn)
	if err != nil {
		return nil, classifySQLiteError("open database", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, classifySQLiteError("create schema", err)
	}
	return db, nil
}

func (c *sqliteClient) Create(ctx context.Context, req domain.CreateRequest) (domain.Variable, error) {
	value, err := json.Marshal(req.Value)
	if err != nil {
		return domain.Variable{}, appErrors.New(appErrors.CodeInvalidRequest, "Value cannot be stored", err)
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return domain.Variable{}, appErrors.New(appErrors.CodeInvalidRequest, "Tags cannot be stored", err)
	}

	db, err := c.openDB(ctx)
	if err != nil {
		return domain.Variable{}, err
	}
	defer func() {
		_ = db.Close()
	}()

	now := c.now().UTC()
	v := domain.Variable{
		ID:      c.newID(),
		Name:    req.Name,
		Value:   req.Value,
		Tags:    append([]string{}, tags...),
		Created: now,
		Updated: now,
	}
	stamp := now.Format(time.RFC3339Nano)
	_, err = db.ExecContext(ctx,
		`INSERT INTO variables (id, name, value, tags, created, updated) VALUES (?, ?, ?, ?, ?, ?)`,
		v.ID, v.Name, string(value), string(tagsJSON), stamp, stamp)
	if err != nil {
		c.log.Debug("insert failed", zap.String("name", req.Name), zap.Error(err))
		return domain.Variable{}, classifySQLiteError("insert variable", err)
	}
	c.log.Debug("variable created", zap.String("id", v.ID), zap.String("name", v.Name))
	return v, nil
}

func (c *sqliteClient) List(ctx context.Context) ([]domain.Variable, error) {
	db, err := c.openDB(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, `
		SELECT id, name, value, tags, created, updated
		FROM variables
		ORDER BY name
		LIMIT ?
	`, c.listLimit)
	if err != nil {
		return nil, classifySQLiteError("query variables", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	vars := []domain.Variable{}
	for rows.Next() {
		var (
			v                       domain.Variable
			value, tags             string
			createdText, updateText string
		)
		if err := rows.Scan(&v.ID, &v.Name, &value, &tags, &createdText, &updateText); err != nil {
			return nil, classifySQLiteError("scan variable", err)
		}
		if v.Value, err = domain.ParseValue(value); err != nil {
			return nil, appErrors.New(appErrors.CodeStorageFailed,
				fmt.Sprintf("variable %q has a corrupt value", v.Name), err)
		}
		if err := json.Unmarshal([]byte(tags), &v.Tags); err != nil || v.Tags == nil {
			v.Tags = []string{}
		}
		v.Created = parseTimestamp(createdText)
		v.Updated = parseTimestamp(updateText)
		vars = append(vars, v)
	}
	if err := rows.Err(); err != nil {
		return nil, classifySQLiteError("read variables", err)
	}
	return vars, nil
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
