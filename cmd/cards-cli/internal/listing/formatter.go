package listing

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nfrund/cardshow/internal/catalog"
)

// Row is one catalog entry for display purposes.
type Row struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Badge       string `json:"badge,omitempty"`
	Samples     int    `json:"samples"`
	Description string `json:"description"`
}

// Rows flattens the catalog entries in catalog order.
func Rows(c *catalog.Catalog) []Row {
	rows := make([]Row, len(c.Entries))
	for i, e := range c.Entries {
		rows[i] = Row{
			Slug:        e.Slug,
			Name:        e.Name,
			Kind:        string(e.Kind),
			Badge:       e.Badge,
			Samples:     e.SampleCount(),
			Description: e.Description,
		}
	}
	return rows
}

// WriteTable writes rows as an aligned table.
func WriteTable(out io.Writer, rows []Row) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "SLUG\tNAME\tKIND\tBADGE\tSAMPLES\tDESCRIPTION")
	fmt.Fprintln(w, "----\t----\t----\t-----\t-------\t-----------")
	for _, r := range rows {
		badge := r.Badge
		if badge == "" {
			badge = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			r.Slug, r.Name, r.Kind, badge, r.Samples, truncate(r.Description, 50))
	}
	return w.Flush()
}

// WriteJSON writes rows as an indented JSON array.
func WriteJSON(out io.Writer, rows []Row) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
