package postgis

import (
	"fmt"

	pq "github.com/lib/pq"
)

const geometryColumn = "geometry"

// TableSpec describes the output table: an integer id and a polygon
// geometry column.
type TableSpec struct {
	Schema  string
	Name    string
	IDField string
	Srid    int
}

func (spec *TableSpec) fullName() string {
	return pq.QuoteIdentifier(spec.Schema) + "." + pq.QuoteIdentifier(spec.Name)
}

func (spec *TableSpec) CreateSchemaSQL() string {
	return fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, pq.QuoteIdentifier(spec.Schema))
}

func (spec *TableSpec) DropTableSQL() string {
	return fmt.Sprintf(`DROP TABLE IF EXISTS %s`, spec.fullName())
}

func (spec *TableSpec) CreateTableSQL() string {
	return fmt.Sprintf(`
        CREATE TABLE %s (
            %s BIGINT,
            %s GEOMETRY(Polygon, %d)
        );`,
		spec.fullName(),
		pq.QuoteIdentifier(spec.IDField),
		pq.QuoteIdentifier(geometryColumn),
		spec.Srid,
	)
}

func (spec *TableSpec) CopySQL() string {
	return fmt.Sprintf(`COPY %s (%s, %s) FROM STDIN`,
		spec.fullName(),
		pq.QuoteIdentifier(spec.IDField),
		pq.QuoteIdentifier(geometryColumn),
	)
}

func (spec *TableSpec) CreateIndexSQL() string {
	return fmt.Sprintf(`CREATE INDEX %s ON %s USING GIST (%s)`,
		pq.QuoteIdentifier(spec.Name+"_geom"),
		spec.fullName(),
		pq.QuoteIdentifier(geometryColumn),
	)
}
