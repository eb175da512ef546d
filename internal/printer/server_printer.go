// Package printer renders catalog entities as human readable text for the
// CLI's default output format.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/mcp-hub/mcphub/internal/catalog"
)

const separator = "────────────────────────────────────────────"

// ServerPrinter renders server listings.
// NewServerPrinter should be used to create instances of ServerPrinter.
type ServerPrinter struct {
	opts ServerPrinterOptions
}

// NewServerPrinter creates a new ServerPrinter with the provided options.
func NewServerPrinter(options ...ServerPrinterOption) (*ServerPrinter, error) {
	opts, err := NewServerPrinterOptions(options...)
	if err != nil {
		return nil, err
	}

	return &ServerPrinter{opts: opts}, nil
}

// Header prints the result count line.
func (p *ServerPrinter) Header(w io.Writer, count int) {
	_, _ = fmt.Fprintf(w, "📦 Found %d server(s)\n\n", count)
}

// Item prints one server listing.
func (p *ServerPrinter) Item(w io.Writer, s catalog.Server) error {
	badges := make([]string, 0, 2)
	if s.Verified {
		badges = append(badges, "✔ verified")
	}
	if s.Featured {
		badges = append(badges, "★ featured")
	}
	badge := ""
	if len(badges) > 0 {
		badge = "  [" + strings.Join(badges, ", ") + "]"
	}

	if _, err := fmt.Fprintf(w, "%s (%s)%s\n", s.Name, s.Slug, badge); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  %s\n", s.Description); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Type: %s | Category: %s | Source: %s\n", s.Type, s.Category, s.Source); err != nil {
		return err
	}
	if len(s.Tags) > 0 {
		if _, err := fmt.Fprintf(w, "  Tags: %s\n", strings.Join(s.Tags, ", ")); err != nil {
			return err
		}
	}
	if s.Stats != nil {
		if _, err := fmt.Fprintf(w, "  Stars: %d | Downloads: %d\n", s.Stats.Stars, s.Stats.Downloads); err != nil {
			return err
		}
	}

	if p.opts.showDetails {
		if err := p.printDetails(w, s); err != nil {
			return err
		}
	}

	if p.opts.showSeparator {
		if _, err := fmt.Fprintf(w, "\n%s\n\n", separator); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	return nil
}

// Footer prints nothing; the count already appears in the header.
func (p *ServerPrinter) Footer(w io.Writer, count int) {}

// printDetails renders the long-form sections shown by `mcphub info`.
func (p *ServerPrinter) printDetails(w io.Writer, s catalog.Server) error {
	if s.LongDescription != "" {
		if _, err := fmt.Fprintf(w, "\n  %s\n", s.LongDescription); err != nil {
			return err
		}
	}

	switch s.Type {
	case catalog.TypeStdio:
		if s.Command != "" {
			invocation := s.Command
			if len(s.Args) > 0 {
				invocation += " " + strings.Join(s.Args, " ")
			}
			if _, err := fmt.Fprintf(w, "\n  Command: %s\n", invocation); err != nil {
				return err
			}
		}
	case catalog.TypeHTTP, catalog.TypeSSE:
		if s.URL != "" {
			if _, err := fmt.Fprintf(w, "\n  URL: %s\n", s.URL); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "\n  Install:\n    npm: %s\n    npx: %s\n", s.Install.NPM, s.Install.NPX); err != nil {
		return err
	}
	if s.Install.Bunx != "" {
		if _, err := fmt.Fprintf(w, "    bunx: %s\n", s.Install.Bunx); err != nil {
			return err
		}
	}
	if s.Install.Docker != "" {
		if _, err := fmt.Fprintf(w, "    docker: %s\n", s.Install.Docker); err != nil {
			return err
		}
	}

	if len(s.Env) > 0 {
		if _, err := fmt.Fprintf(w, "\n  Environment:\n"); err != nil {
			return err
		}
		for _, env := range s.Env {
			required := "optional"
			if env.Required {
				required = "required"
			}
			if _, err := fmt.Fprintf(w, "    %s (%s): %s\n", env.Name, required, env.Description); err != nil {
				return err
			}
		}
	}

	if len(s.Tools) > 0 {
		if _, err := fmt.Fprintf(w, "\n  Tools:\n"); err != nil {
			return err
		}
		for _, tool := range s.Tools {
			if _, err := fmt.Fprintf(w, "    %s: %s\n", tool.Name, tool.Description); err != nil {
				return err
			}
		}
	}

	if s.Repository != "" {
		if _, err := fmt.Fprintf(w, "\n  Repository: %s\n", s.Repository); err != nil {
			return err
		}
	}
	if s.Documentation != "" {
		if _, err := fmt.Fprintf(w, "  Documentation: %s\n", s.Documentation); err != nil {
			return err
		}
	}

	return nil
}
