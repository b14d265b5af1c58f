// Package directory holds the company records behind the dashboard's
// directory, detail, and spreadsheet views. The reference deployment
// keeps these in process memory, so the store is seeded at startup.
package directory

import (
	"sort"
	"strings"

	"github.com/meridianvc/dealscope/internal/model"
)

// Filter narrows a directory listing. Zero values match everything.
type Filter struct {
	Query    string // case-insensitive substring of name or description
	Industry string
	Stage    string
}

// Directory is an in-memory company store.
type Directory struct {
	companies []model.Company
	byID      map[string]model.Company
}

// New creates a Directory holding the given companies.
func New(companies []model.Company) *Directory {
	byID := make(map[string]model.Company, len(companies))
	for _, c := range companies {
		byID[c.ID] = c
	}
	return &Directory{companies: companies, byID: byID}
}

// Seeded creates a Directory with the built-in demo dataset.
func Seeded() *Directory {
	return New(seedCompanies)
}

// Get returns the company with the given ID.
func (d *Directory) Get(id string) (model.Company, bool) {
	c, ok := d.byID[id]
	return c, ok
}

// List returns companies matching the filter, in seed order.
func (d *Directory) List(f Filter) []model.Company {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	var out []model.Company
	for _, c := range d.companies {
		if f.Industry != "" && c.Industry != f.Industry {
			continue
		}
		if f.Stage != "" && c.Stage != f.Stage {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(strings.ToLower(c.Description), query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Industries returns the distinct industry facet values, sorted.
func (d *Directory) Industries() []string {
	return d.facet(func(c model.Company) string { return c.Industry })
}

// Stages returns the distinct stage facet values, sorted.
func (d *Directory) Stages() []string {
	return d.facet(func(c model.Company) string { return c.Stage })
}

func (d *Directory) facet(key func(model.Company) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range d.companies {
		k := key(c)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
