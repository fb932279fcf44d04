package assetdb

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/substance/internal/host"
)

// querier abstracts *sql.DB and *sql.Tx for shared query logic.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// State is the registration state of a catalog entry.
type State string

const (
	StatePending State = "pending"
	StateReady   State = "ready"
)

// Record is one registered file in the catalog.
type Record struct {
	ID            int64
	GUID          string
	Path          string
	Type          host.AssetType
	TextureKind   host.TextureKind
	State         State
	SizeBytes     int64
	ModTime       int64 // unix nanoseconds
	SettingsDirty bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SubRecord is an asset embedded in a registered file.
type SubRecord struct {
	ID       int64
	AssetID  int64
	Name     string
	Type     host.AssetType
	Payload  string
	Position int
}

// Remap points an embedded sub-asset at the file it was extracted to.
type Remap struct {
	AssetID    int64
	Name       string
	Type       host.AssetType
	TargetPath string
}

// mapSQLiteError converts SQLite errors to package errors.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicate
	}
	return err
}

// Store provides access to the asset catalog.
type Store struct {
	db *sql.DB
}

// NewStore creates a new catalog store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Begin starts a transaction.
func (s *Store) Begin() (*Tx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Tx{tx: tx}, nil
}

// Tx wraps a database transaction with the same methods as Store.
type Tx struct {
	tx *sql.Tx
}

// Commit commits the transaction.
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction.
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

const recordColumns = `id, guid, path, type, texture_kind, state, size_bytes, mod_time, settings_dirty, created_at, updated_at`

func scanRecord(row interface{ Scan(...any) error }) (*Record, error) {
	r := &Record{}
	var dirty int
	err := row.Scan(&r.ID, &r.GUID, &r.Path, &r.Type, &r.TextureKind, &r.State,
		&r.SizeBytes, &r.ModTime, &dirty, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	r.SettingsDirty = dirty != 0
	return r, nil
}

func getAsset(q querier, path string) (*Record, error) {
	r, err := scanRecord(q.QueryRow(`SELECT `+recordColumns+` FROM assets WHERE path = ?`, path))
	if err != nil {
		return nil, fmt.Errorf("get asset %s: %w", path, mapSQLiteError(err))
	}
	return r, nil
}

// Get retrieves a catalog entry by virtual path.
// Returns ErrNotFound if the path was never registered.
func (s *Store) Get(path string) (*Record, error) { return getAsset(s.db, path) }

// Get retrieves a catalog entry within a transaction.
func (t *Tx) Get(path string) (*Record, error) { return getAsset(t.tx, path) }

func putAsset(q querier, r *Record) error {
	now := time.Now()
	if r.TextureKind == "" {
		r.TextureKind = host.TextureDefault
	}
	if r.ID == 0 {
		result, err := q.Exec(`
			INSERT INTO assets (guid, path, type, texture_kind, state, size_bytes, mod_time, settings_dirty, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.GUID, r.Path, r.Type, r.TextureKind, r.State, r.SizeBytes, r.ModTime, boolInt(r.SettingsDirty), now, now,
		)
		if err != nil {
			return fmt.Errorf("insert asset: %w", mapSQLiteError(err))
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get last insert id: %w", err)
		}
		r.ID = id
		r.CreatedAt = now
		r.UpdatedAt = now
		return nil
	}

	_, err := q.Exec(`
		UPDATE assets SET type = ?, texture_kind = ?, state = ?, size_bytes = ?, mod_time = ?, settings_dirty = ?, updated_at = ?
		WHERE id = ?`,
		r.Type, r.TextureKind, r.State, r.SizeBytes, r.ModTime, boolInt(r.SettingsDirty), now, r.ID,
	)
	if err != nil {
		return fmt.Errorf("update asset %d: %w", r.ID, mapSQLiteError(err))
	}
	r.UpdatedAt = now
	return nil
}

// Put inserts r when its ID is zero and updates it otherwise.
func (s *Store) Put(r *Record) error { return putAsset(s.db, r) }

// Put inserts or updates a catalog entry within a transaction.
func (t *Tx) Put(r *Record) error { return putAsset(t.tx, r) }

// Pending returns entries waiting for the next refresh, oldest first.
func (s *Store) Pending() ([]*Record, error) {
	return queryRecords(s.db, `SELECT `+recordColumns+` FROM assets WHERE state = ? ORDER BY id`, StatePending)
}

// List returns catalog entries whose path starts with prefix, sorted by path.
func (s *Store) List(prefix string) ([]*Record, error) {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)
	return queryRecords(s.db, `SELECT `+recordColumns+` FROM assets WHERE path LIKE ? ESCAPE '\' ORDER BY path`, escaped+"%")
}

func queryRecords(q querier, query string, args ...any) ([]*Record, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func replaceSubAssets(q querier, assetID int64, subs []SubRecord) error {
	if _, err := q.Exec(`DELETE FROM sub_assets WHERE asset_id = ?`, assetID); err != nil {
		return fmt.Errorf("clear sub-assets: %w", err)
	}
	for i := range subs {
		subs[i].AssetID = assetID
		subs[i].Position = i
		result, err := q.Exec(`
			INSERT INTO sub_assets (asset_id, name, type, payload, position)
			VALUES (?, ?, ?, ?, ?)`,
			assetID, subs[i].Name, subs[i].Type, subs[i].Payload, i,
		)
		if err != nil {
			return fmt.Errorf("insert sub-asset %s: %w", subs[i].Name, mapSQLiteError(err))
		}
		subs[i].ID, _ = result.LastInsertId()
	}
	return nil
}

// ReplaceSubAssets swaps the embedded entries of an asset within a transaction.
func (t *Tx) ReplaceSubAssets(assetID int64, subs []SubRecord) error {
	return replaceSubAssets(t.tx, assetID, subs)
}

// SubAssets returns the embedded entries of an asset in import order.
func (s *Store) SubAssets(assetID int64) ([]SubRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, asset_id, name, type, payload, position
		FROM sub_assets WHERE asset_id = ? ORDER BY position`, assetID)
	if err != nil {
		return nil, fmt.Errorf("query sub-assets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []SubRecord
	for rows.Next() {
		var sr SubRecord
		if err := rows.Scan(&sr.ID, &sr.AssetID, &sr.Name, &sr.Type, &sr.Payload, &sr.Position); err != nil {
			return nil, fmt.Errorf("scan sub-asset: %w", err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

// AddRemap records that a sub-asset now lives in its own file.
func (s *Store) AddRemap(m Remap) error {
	_, err := s.db.Exec(`
		INSERT INTO remaps (asset_id, name, type, target_path) VALUES (?, ?, ?, ?)
		ON CONFLICT (asset_id, type, name) DO UPDATE SET target_path = excluded.target_path`,
		m.AssetID, m.Name, m.Type, m.TargetPath,
	)
	if err != nil {
		return fmt.Errorf("add remap: %w", mapSQLiteError(err))
	}
	return nil
}

// Remaps returns the extracted sub-assets of an asset.
func (s *Store) Remaps(assetID int64) ([]Remap, error) {
	rows, err := s.db.Query(`
		SELECT asset_id, name, type, target_path FROM remaps
		WHERE asset_id = ? ORDER BY id`, assetID)
	if err != nil {
		return nil, fmt.Errorf("query remaps: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Remap
	for rows.Next() {
		var m Remap
		if err := rows.Scan(&m.AssetID, &m.Name, &m.Type, &m.TargetPath); err != nil {
			return nil, fmt.Errorf("scan remap: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
