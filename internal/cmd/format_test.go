package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mcp-hub/mcphub/internal/cmd/output"
)

type item struct {
	Name string `json:"name" yaml:"name"`
}

type itemPrinter struct{}

func (itemPrinter) Header(w io.Writer, count int) {
	_, _ = fmt.Fprintf(w, "Found %d item(s)\n", count)
}

func (itemPrinter) Item(w io.Writer, elem item) error {
	_, err := fmt.Fprintf(w, "- %s\n", elem.Name)
	return err
}

func (itemPrinter) Footer(io.Writer, int) {}

func TestOutputFormat_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{name: "json", input: "json", want: FormatJSON},
		{name: "yaml", input: "yaml", want: FormatYAML},
		{name: "text", input: "text", want: FormatText},
		{name: "case insensitive with spaces", input: "  JSON ", want: FormatJSON},
		{name: "unknown", input: "xml", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var f OutputFormat
			err := f.Set(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, f)
		})
	}
}

func TestNewHandler_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h, err := NewHandler[item](FormatJSON, &buf, itemPrinter{})
	require.NoError(t, err)

	require.NoError(t, h.HandleResults(item{Name: "alpha"}, item{Name: "beta"}))

	var payload output.ResultsPayload[item]
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	require.Equal(t, []item{{Name: "alpha"}, {Name: "beta"}}, payload.Results)
}

func TestNewHandler_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h, err := NewHandler[item](FormatYAML, &buf, itemPrinter{})
	require.NoError(t, err)

	require.NoError(t, h.HandleResult(item{Name: "alpha"}))

	var payload output.ResultPayload[item]
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &payload))
	require.Equal(t, item{Name: "alpha"}, payload.Result)
}

func TestNewHandler_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h, err := NewHandler[item](FormatText, &buf, itemPrinter{})
	require.NoError(t, err)

	require.NoError(t, h.HandleResults(item{Name: "alpha"}))
	require.Contains(t, buf.String(), "Found 1 item(s)")
	require.Contains(t, buf.String(), "- alpha")
}

func TestNewHandler_TextEmptyResults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h, err := NewHandler[item](FormatText, &buf, itemPrinter{})
	require.NoError(t, err)

	require.NoError(t, h.HandleResults())
	require.Equal(t, "No results found\n", buf.String())
}

func TestNewHandler_DefaultsToText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h, err := NewHandler[item]("", &buf, itemPrinter{})
	require.NoError(t, err)

	require.NoError(t, h.HandleResult(item{Name: "alpha"}))
	require.Equal(t, "- alpha\n", buf.String())
}

func TestNewHandler_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := NewHandler[item]("xml", io.Discard, itemPrinter{})
	require.Error(t, err)
}

func TestHandleError_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h, err := NewHandler[item](FormatJSON, &buf, itemPrinter{})
	require.NoError(t, err)

	require.NoError(t, h.HandleError(fmt.Errorf("boom")))

	var payload output.ErrorPayload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	require.Equal(t, "boom", payload.Error)
}
