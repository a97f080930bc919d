package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
)

// payloadFlags are the body flags shared by commands that send data.
type payloadFlags struct {
	data   string
	fields []string
	files  []string
}

func (p *payloadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.data, "data", "d", "", "JSON body, or @path to read it from a file")
	cmd.Flags().StringArrayVarP(&p.fields, "field", "f", nil, "Form field key=value (sends multipart)")
	cmd.Flags().StringArrayVar(&p.files, "file", nil, "Upload field=path (sends multipart)")
}

// build turns the flags into a request body. Form flags produce a
// *driven.FormData; --data produces raw JSON. The returned close func
// releases any opened files and is never nil.
func (p *payloadFlags) build() (any, func(), error) {
	noop := func() {}
	multipart := len(p.fields) > 0 || len(p.files) > 0

	if multipart && p.data != "" {
		return nil, noop, errors.New("--data cannot be combined with --field or --file")
	}

	if multipart {
		return buildForm(p.fields, p.files)
	}

	if p.data == "" {
		return nil, noop, nil
	}

	raw := []byte(p.data)
	if strings.HasPrefix(p.data, "@") {
		var err error
		raw, err = os.ReadFile(strings.TrimPrefix(p.data, "@"))
		if err != nil {
			return nil, noop, fmt.Errorf("reading body: %w", err)
		}
	}
	raw = bytes.TrimSpace(raw)
	if !json.Valid(raw) {
		return nil, noop, errors.New("--data is not valid JSON")
	}
	return json.RawMessage(raw), noop, nil
}

func buildForm(fields, files []string) (any, func(), error) {
	form := driven.NewFormData()
	var opened []io.Closer
	closeAll := func() {
		for _, c := range opened {
			_ = c.Close()
		}
	}

	for _, f := range fields {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			closeAll()
			return nil, func() {}, fmt.Errorf("invalid --field %q, expected key=value", f)
		}
		form.AddField(key, value)
	}

	for _, f := range files {
		field, path, ok := strings.Cut(f, "=")
		if !ok || field == "" || path == "" {
			closeAll()
			return nil, func() {}, fmt.Errorf("invalid --file %q, expected field=path", f)
		}
		file, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("opening upload: %w", err)
		}
		opened = append(opened, file)
		form.AddFile(field, filepath.Base(path), file)
	}

	return form, closeAll, nil
}

// parsePairs converts key=value arguments into a map.
func parsePairs(flag string, pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --%s %q, expected key=value", flag, p)
		}
		out[key] = value
	}
	return out, nil
}

// printJSON writes raw indented, or a placeholder when there is no body.
func printJSON(cmd *cobra.Command, raw []byte) {
	if len(bytes.TrimSpace(raw)) == 0 {
		cmd.Println("(no content)")
		return
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		cmd.Println(string(raw))
		return
	}
	cmd.Println(out.String())
}
