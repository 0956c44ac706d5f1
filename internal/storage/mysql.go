package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	intdb "opentrip/internal/db"
	"opentrip/internal/domain"
)

// MySQL persists entities as id->JSON documents, one table per aggregate.
// The keyed contract stays the same as Memory; MySQL is only a durability
// upgrade, never a query layer.
type MySQL[E any] struct {
	DB       *sql.DB
	resource string
	table    string

	once    sync.Once
	onceErr error
}

func NewMySQL[E any](db *sql.DB, resource, table string) *MySQL[E] {
	return &MySQL[E]{DB: db, resource: resource, table: table}
}

func (s *MySQL[E]) ensureTable() error {
	s.once.Do(func() {
		if s.DB == nil {
			s.onceErr = fmt.Errorf("db tidak tersedia")
			return
		}
		if intdb.HasTable(s.DB, s.table) {
			return
		}
		ddl := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	id VARCHAR(64) PRIMARY KEY,
	data JSON NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`, s.table)
		if _, err := s.DB.Exec(ddl); err != nil {
			s.onceErr = err
		}
	})
	return s.onceErr
}

func (s *MySQL[E]) Save(id string, entity E) error {
	if id == "" {
		return domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}
	if err := s.ensureTable(); err != nil {
		return domain.InternalError{Err: err}
	}
	raw, err := json.Marshal(entity)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	stmt := fmt.Sprintf(`INSERT INTO %s (id, data) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE data=VALUES(data)`, s.table)
	if _, err := s.DB.Exec(stmt, id, raw); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func (s *MySQL[E]) Get(id string) (E, error) {
	var zero E
	if err := s.ensureTable(); err != nil {
		return zero, domain.InternalError{Err: err}
	}
	var raw []byte
	query := fmt.Sprintf(`SELECT data FROM %s WHERE id=? LIMIT 1`, s.table)
	if err := s.DB.QueryRow(query, id).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, domain.NotFoundError{Resource: s.resource, ID: id}
		}
		return zero, domain.InternalError{Err: err}
	}
	var entity E
	if err := json.Unmarshal(raw, &entity); err != nil {
		return zero, domain.InternalError{Err: err}
	}
	return entity, nil
}

func (s *MySQL[E]) List() ([]E, error) {
	if err := s.ensureTable(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	query := fmt.Sprintf(`SELECT data FROM %s ORDER BY updated_at`, s.table)
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []E{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		var entity E
		if err := json.Unmarshal(raw, &entity); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s *MySQL[E]) Delete(id string) error {
	if err := s.ensureTable(); err != nil {
		return domain.InternalError{Err: err}
	}
	stmt := fmt.Sprintf(`DELETE FROM %s WHERE id=?`, s.table)
	res, err := s.DB.Exec(stmt, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: s.resource, ID: id}
	}
	return nil
}
