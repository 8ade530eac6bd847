// Package catalog holds the static report catalog: every named aggregation
// the dashboard can run, each with its query, axis labels and chart
// archetype. The catalog is built at process start and never mutated.
package catalog

import (
	"strings"

	"github.com/MartnzGO/Adattarhaz/internal/contracts"
)

// Built-in report names.
const (
	MonthlyRevenue      = "Monthly Revenue"
	TopCategories       = "Top 10 Categories by Revenue"
	OrdersByState       = "Orders Count by State"
	PaymentDistribution = "Payment Type Distribution"
)

// builtins lists the catalog in display order. Each query returns exactly
// two columns aliased to x and y; the series loader depends on those
// aliases.
var builtins = []contracts.Report{
	{
		Name:      MonthlyRevenue,
		XLabel:    "Month (YYYY-MM)",
		YLabel:    "Revenue",
		Archetype: contracts.ArchetypeTimeLine,
		Query: `
			SELECT d.year || '-' || lpad(d.month::text, 2, '0') AS x,
			       SUM(f.total_amount) AS y
			FROM Fact_Sales f
			JOIN Dim_Date d ON f.date_key = d.date_key
			GROUP BY d.year, d.month
			ORDER BY d.year, d.month`,
	},
	{
		Name:      TopCategories,
		XLabel:    "Category",
		YLabel:    "Revenue",
		Archetype: contracts.ArchetypeCategoricalBar,
		Query: `
			SELECT COALESCE(p.product_category_name, 'Unknown') AS x,
			       SUM(f.total_amount) AS y
			FROM Fact_Sales f
			JOIN Dim_Product p ON f.product_key = p.product_key
			WHERE p.product_category_name IS NOT NULL
			  AND p.product_category_name != ''
			  AND LENGTH(p.product_category_name) > 1
			GROUP BY COALESCE(p.product_category_name, 'Unknown')
			ORDER BY y DESC
			LIMIT 10`,
	},
	{
		Name:      OrdersByState,
		XLabel:    "State",
		YLabel:    "Orders",
		Archetype: contracts.ArchetypeCategoricalBar,
		Query: `
			SELECT c.state AS x,
			       COUNT(DISTINCT f.order_id) AS y
			FROM Fact_Sales f
			JOIN Dim_Customer c ON f.customer_key = c.customer_key
			GROUP BY c.state
			ORDER BY y DESC
			LIMIT 15`,
	},
	{
		Name:      PaymentDistribution,
		XLabel:    "Payment Type",
		YLabel:    "Orders",
		Archetype: contracts.ArchetypePie,
		Query: `
			SELECT p.payment_type AS x,
			       COUNT(DISTINCT f.order_id) AS y
			FROM Fact_Sales f
			JOIN Dim_Payment p ON f.payment_key = p.payment_key
			WHERE p.payment_type IS NOT NULL
			  AND p.payment_type != 'not_defined'
			GROUP BY p.payment_type
			ORDER BY y DESC`,
	},
}

// Catalog is the read-only report table.
type Catalog struct {
	byName map[string]contracts.Report
	order  []string
}

// New builds the catalog with the four built-in reports.
func New() *Catalog {
	c := &Catalog{byName: make(map[string]contracts.Report, len(builtins))}
	for _, r := range builtins {
		c.byName[r.Name] = r
		c.order = append(c.order, r.Name)
	}
	return c
}

// Lookup resolves a report by name. Unknown names return
// contracts.ErrReportNotFound.
func (c *Catalog) Lookup(name string) (contracts.Report, error) {
	r, ok := c.byName[name]
	if !ok {
		return contracts.Report{}, contracts.ErrReportNotFound
	}
	return r, nil
}

// Reports returns all catalog entries in display order.
func (c *Catalog) Reports() []contracts.Report {
	reports := make([]contracts.Report, 0, len(c.order))
	for _, name := range c.order {
		reports = append(reports, c.byName[name])
	}
	return reports
}

// Names returns the report names in display order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// DeriveArchetype maps a report name to an archetype by naming convention.
// Catalog entries carry their archetype explicitly; this derivation exists
// only for reports outside the catalog and preserves the historical
// precedence, which is a hard rule: "Distribution" is checked first, then
// "Categories"/"State", and everything else falls through to a time line.
func DeriveArchetype(name string) contracts.Archetype {
	switch {
	case strings.Contains(name, "Distribution"):
		return contracts.ArchetypePie
	case strings.Contains(name, "Categories"), strings.Contains(name, "State"):
		return contracts.ArchetypeCategoricalBar
	default:
		return contracts.ArchetypeTimeLine
	}
}
