package driver

const (
	// DeleteCatalogTitlesQuery clears a catalog before it is rewritten so
	// positions never collide with a previous, longer run.
	DeleteCatalogTitlesQuery = `
		MATCH (t:Title {catalog: $catalog})
		DETACH DELETE t
	`

	SaveTitlesQuery = `
		UNWIND $titles AS row
		CREATE (t:Title {catalog: $catalog, position: row.position})
		SET t.title = row.title,
			t.release_year = row.release_year,
			t.genres = row.genres,
			t.director = row.director,
			t.cast = row.cast
		RETURN count(t) AS saved
	`

	GetCatalogTitlesQuery = `
		MATCH (t:Title {catalog: $catalog})
		RETURN t.title AS title,
			t.release_year AS release_year,
			t.genres AS genres,
			t.director AS director,
			t.cast AS cast
		ORDER BY t.position ASC
	`
)

var indexQueries = []string{
	"CREATE INDEX ON :Title(catalog);",
	"CREATE INDEX ON :Title(position);",
}
