package foundry

import (
	"strings"
	"sync"
)

// Catalog provides immutable access to the ISO 3166-1 country dataset.
//
// Data is built once from the embedded countryTable (see countrydata.go)
// and cached for the lifetime of the process — there is no I/O, network
// access, or filesystem dependency, so the catalog is safe to construct at
// package init or lazily via GetDefaultCatalog.
type Catalog struct {
	once             sync.Once
	byAlpha2         map[string]*Country
	byAlpha3         map[string]*Country
	byNumeric        map[string]*Country
}

// NewCatalog creates a new Catalog instance. Data is indexed lazily on
// first lookup.
func NewCatalog() *Catalog {
	return &Catalog{}
}

func (c *Catalog) ensureLoaded() {
	c.once.Do(func() {
		c.byAlpha2 = make(map[string]*Country, len(countryTable))
		c.byAlpha3 = make(map[string]*Country, len(countryTable))
		c.byNumeric = make(map[string]*Country, len(countryTable))
		for i := range countryTable {
			country := &countryTable[i]
			c.byAlpha2[country.Alpha2] = country
			c.byAlpha3[country.Alpha3] = country
			c.byNumeric[country.Numeric] = country
		}
	})
}

// GetCountry retrieves a country by its Alpha2 code. Returns (nil, nil)
// when the code is not found — absence is not an error.
func (c *Catalog) GetCountry(alpha2 string) (*Country, error) {
	if alpha2 == "" {
		return nil, nil
	}
	c.ensureLoaded()
	return c.byAlpha2[strings.ToUpper(strings.TrimSpace(alpha2))], nil
}

// GetCountryByAlpha3 retrieves a country by its Alpha3 code.
func (c *Catalog) GetCountryByAlpha3(alpha3 string) (*Country, error) {
	if alpha3 == "" {
		return nil, nil
	}
	c.ensureLoaded()
	return c.byAlpha3[strings.ToUpper(strings.TrimSpace(alpha3))], nil
}

// GetCountryByNumeric retrieves a country by its numeric ISO 3166-1 code,
// accepting codes with or without leading zeros.
func (c *Catalog) GetCountryByNumeric(numeric string) (*Country, error) {
	padded, ok := padNumericCode(numeric)
	if !ok {
		return nil, nil
	}
	c.ensureLoaded()
	return c.byNumeric[padded], nil
}

// ListCountries returns every country in the catalog, in table order.
func (c *Catalog) ListCountries() ([]*Country, error) {
	c.ensureLoaded()
	out := make([]*Country, 0, len(countryTable))
	for i := range countryTable {
		out = append(out, &countryTable[i])
	}
	return out, nil
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// GetDefaultCatalog returns a process-wide singleton Catalog.
func GetDefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = NewCatalog()
	})
	return defaultCatalog
}

// PreferredScreeningName looks up code (any case, any of alpha2/alpha3/
// common alias) in the sanctioned-screening preferred-label overrides table
// and returns (name, true) on a hit. This covers cases where the ISO long
// name diverges from what sanctions-list vendors actually print, e.g.
// "GB"/"UK" -> "United Kingdom", "KP" -> "North Korea".
func PreferredScreeningName(code string) (string, bool) {
	name, ok := countryOverrides[strings.ToUpper(strings.TrimSpace(code))]
	return name, ok
}

// padNumericCode normalizes a numeric country code string to 3 digits,
// reporting false when the input is not a valid 1-3 digit numeric code.
func padNumericCode(numeric string) (string, bool) {
	trimmed := strings.TrimSpace(numeric)
	if trimmed == "" || len(trimmed) > 3 {
		return "", false
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return strings.Repeat("0", 3-len(trimmed)) + trimmed, true
}
