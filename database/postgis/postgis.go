package postgis

import (
	"database/sql"
	"fmt"

	"github.com/pkg/errors"

	"github.com/omniscale/polysplit/geom"
	"github.com/omniscale/polysplit/log"
)

type SQLError struct {
	query         string
	originalError error
}

func (e *SQLError) Error() string {
	return fmt.Sprintf("SQL Error: %s in query %s", e.originalError.Error(), e.query)
}

type SQLInsertError struct {
	SQLError
	data interface{}
}

func (e *SQLInsertError) Error() string {
	return fmt.Sprintf("SQL Error: %s in query %s (%+v)", e.originalError.Error(), e.query, e.data)
}

// PostGIS writes all polygons into a new table within a single
// transaction. The table is replaced on Close.
type PostGIS struct {
	Db   *sql.DB
	Spec TableSpec

	tx      *sql.Tx
	copySQL string
	stmt    *sql.Stmt
}

// Open connects to the database and prepares the bulk import into the table.
// The connection is a postgres:// or postgis:// URL or a list of key=value
// parameters.
func Open(connection string, spec TableSpec) (*PostGIS, error) {
	params, err := connectionParams(connection)
	if err != nil {
		return nil, err
	}
	if spec.Schema == "" {
		spec.Schema = "public"
	}
	db, err := sql.Open("postgres", params)
	if err != nil {
		return nil, err
	}
	// check that the connection actually works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "connecting to PostGIS")
	}

	pg := &PostGIS{Db: db, Spec: spec}
	if err := pg.begin(); err != nil {
		pg.rollback()
		db.Close()
		return nil, err
	}
	return pg, nil
}

func (pg *PostGIS) begin() error {
	var err error
	pg.tx, err = pg.Db.Begin()
	if err != nil {
		return err
	}
	for _, sql := range []string{
		pg.Spec.CreateSchemaSQL(),
		pg.Spec.DropTableSQL(),
		pg.Spec.CreateTableSQL(),
	} {
		if _, err := pg.tx.Exec(sql); err != nil {
			return &SQLError{sql, err}
		}
	}

	pg.copySQL = pg.Spec.CopySQL()
	pg.stmt, err = pg.tx.Prepare(pg.copySQL)
	if err != nil {
		return &SQLError{pg.copySQL, err}
	}
	return nil
}

func (pg *PostGIS) Write(id int64, wkb []byte) error {
	ewkb, err := geom.EWKBHex(wkb, pg.Spec.Srid)
	if err != nil {
		return errors.Wrapf(err, "encoding polygon %d", id)
	}
	if _, err := pg.stmt.Exec(id, string(ewkb)); err != nil {
		return &SQLInsertError{SQLError{pg.copySQL, err}, id}
	}
	return nil
}

func (pg *PostGIS) Close() error {
	defer pg.Db.Close()

	// flush COPY buffer
	if _, err := pg.stmt.Exec(); err != nil {
		pg.rollback()
		return &SQLError{pg.copySQL, err}
	}
	if err := pg.stmt.Close(); err != nil {
		pg.rollback()
		return &SQLError{pg.copySQL, err}
	}
	sql := pg.Spec.CreateIndexSQL()
	if _, err := pg.tx.Exec(sql); err != nil {
		pg.rollback()
		return &SQLError{sql, err}
	}
	if err := pg.tx.Commit(); err != nil {
		return errors.Wrap(err, "committing PostGIS import")
	}
	pg.tx = nil
	return nil
}

func (pg *PostGIS) rollback() {
	if pg.tx != nil {
		if err := pg.tx.Rollback(); err != nil {
			log.Println("[error] rollback failed", err)
		}
		pg.tx = nil
	}
}
