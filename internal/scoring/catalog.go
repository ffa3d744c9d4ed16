package scoring

import "strings"

// StaticCatalog is an in-memory Catalog. It backs tests and the catalog seed;
// production lookups go through the database-backed repository, which
// implements the same interface and lookup order.
type StaticCatalog struct {
	byID     map[string]CatalogEntry
	byAlias  map[string]CatalogEntry
	byCourse map[string]CatalogEntry
}

func NewStaticCatalog(entries []CatalogEntry) *StaticCatalog {
	c := &StaticCatalog{
		byID:     make(map[string]CatalogEntry, len(entries)),
		byAlias:  make(map[string]CatalogEntry),
		byCourse: make(map[string]CatalogEntry, len(entries)),
	}
	for _, e := range entries {
		if e.ID == "" {
			e.ID = CatalogID(e.University, e.Department, e.Number)
		}
		c.byID[e.ID] = e
		for _, alias := range e.Aliases {
			c.byAlias[normalizeAlias(alias)] = e
		}
		c.byCourse[e.Department+e.Number] = e
	}
	return c
}

// CatalogID builds the canonical id for a catalog entry.
func CatalogID(university, department, number string) string {
	return strings.ToLower(university) + "_" + department + number
}

func normalizeAlias(alias string) string {
	return strings.ToUpper(strings.Join(strings.Fields(alias), ""))
}

func (c *StaticCatalog) Lookup(university, department, number string) (CatalogEntry, bool) {
	if e, ok := c.byID[CatalogID(university, department, number)]; ok {
		return e, true
	}
	if e, ok := c.byAlias[normalizeAlias(department+number)]; ok {
		return e, true
	}
	if e, ok := c.byCourse[department+number]; ok {
		return e, true
	}
	return CatalogEntry{}, false
}
