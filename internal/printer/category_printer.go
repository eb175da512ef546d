package printer

import (
	"fmt"
	"io"

	"github.com/mcp-hub/mcphub/internal/catalog"
)

// CategoryPrinter renders categories with their derived server counts.
type CategoryPrinter struct{}

// NewCategoryPrinter creates a new CategoryPrinter.
func NewCategoryPrinter() *CategoryPrinter {
	return &CategoryPrinter{}
}

// Header prints the result count line.
func (p *CategoryPrinter) Header(w io.Writer, count int) {
	_, _ = fmt.Fprintf(w, "🗂  %d categories\n\n", count)
}

// Item prints one category.
func (p *CategoryPrinter) Item(w io.Writer, c catalog.Category) error {
	if _, err := fmt.Fprintf(w, "%s (%s): %d server(s)\n", c.Name, c.ID, c.ServerCount); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "  %s\n\n", c.Description)
	return err
}

// Footer prints nothing.
func (p *CategoryPrinter) Footer(w io.Writer, count int) {}
