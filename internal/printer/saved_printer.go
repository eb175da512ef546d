package printer

import (
	"fmt"
	"io"

	"github.com/mcp-hub/mcphub/internal/saved"
)

// SavedPrinter renders bookmarked servers with the time they were saved.
type SavedPrinter struct {
	servers *ServerPrinter
}

// NewSavedPrinter creates a new SavedPrinter.
func NewSavedPrinter(options ...ServerPrinterOption) (*SavedPrinter, error) {
	sp, err := NewServerPrinter(options...)
	if err != nil {
		return nil, err
	}
	return &SavedPrinter{servers: sp}, nil
}

// Header prints the result count line.
func (p *SavedPrinter) Header(w io.Writer, count int) {
	_, _ = fmt.Fprintf(w, "🔖 %d saved server(s)\n\n", count)
}

// Item prints one saved server.
func (p *SavedPrinter) Item(w io.Writer, s saved.Server) error {
	if _, err := fmt.Fprintf(w, "Saved: %s\n", s.SavedAt.Format("2006-01-02 15:04")); err != nil {
		return err
	}
	return p.servers.Item(w, s.Server)
}

// Footer prints nothing.
func (p *SavedPrinter) Footer(w io.Writer, count int) {}

// TagPrinter renders plain tag names, one per line.
type TagPrinter struct{}

// NewTagPrinter creates a new TagPrinter.
func NewTagPrinter() *TagPrinter {
	return &TagPrinter{}
}

// Header prints the tag count.
func (p *TagPrinter) Header(w io.Writer, count int) {
	_, _ = fmt.Fprintf(w, "🏷  %d tags\n\n", count)
}

// Item prints one tag.
func (p *TagPrinter) Item(w io.Writer, tag string) error {
	_, err := fmt.Fprintln(w, tag)
	return err
}

// Footer prints nothing.
func (p *TagPrinter) Footer(w io.Writer, count int) {}
