package output

import (
	"fmt"
	"io"
)

// TextHandler renders items as human readable text through a Printer.
type TextHandler[T any] struct {
	out     io.Writer
	printer Printer[T]
}

func NewTextHandler[T any](w io.Writer, p Printer[T]) *TextHandler[T] {
	return &TextHandler[T]{
		out:     w,
		printer: p,
	}
}

// Writer returns the underlying io.Writer where text will be written.
func (h *TextHandler[T]) Writer() io.Writer {
	return h.out
}

// HandleResult renders a single item without header or footer.
func (h *TextHandler[T]) HandleResult(item T) error {
	return h.printer.Item(h.out, item)
}

// HandleResults renders all items between the printer's header and footer.
func (h *TextHandler[T]) HandleResults(items ...T) error {
	if len(items) == 0 {
		_, _ = io.WriteString(h.out, "No results found\n")
		return nil
	}

	h.printer.Header(h.out, len(items))

	for _, item := range items {
		if err := h.printer.Item(h.out, item); err != nil {
			return err
		}
	}

	h.printer.Footer(h.out, len(items))

	return nil
}

// HandleError writes the error message.
func (h *TextHandler[T]) HandleError(err error) error {
	_, werr := fmt.Fprintf(h.out, "Error: %v\n", err)
	return werr
}
