package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/amonks/todoboard/todo"
)

// Draft is a todo being composed in the editor. The title lives in a TOML
// header; everything after the --- separator is the description.
type Draft struct {
	Title       string `toml:"title"`
	Description string `toml:"-"`
}

var draftTemplate = template.Must(template.New("draft").Parse(`{{ .Header -}}
# Write the description below the separator. Markdown is fine.
---
{{ .Description }}
`))

// RenderDraft renders d as editable text.
func RenderDraft(d Draft) (string, error) {
	var header bytes.Buffer
	if err := toml.NewEncoder(&header).Encode(d); err != nil {
		return "", fmt.Errorf("encode TOML: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		Header      string
		Description string
	}{Header: header.String(), Description: d.Description}
	if err := draftTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParseDraft parses editor output. The title must not be blank.
func ParseDraft(content string) (Draft, error) {
	header, body := splitFrontmatter(strings.ReplaceAll(content, "\r\n", "\n"))

	var d Draft
	meta, err := toml.Decode(header, &d)
	if err != nil {
		return Draft{}, fmt.Errorf("parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Draft{}, fmt.Errorf("parse TOML: unknown key %q", undecoded[0].String())
	}
	if err := todo.ValidateTitle(d.Title); err != nil {
		return Draft{}, err
	}
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimRight(strings.TrimLeft(body, "\n"), "\n")
	return d, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return content, ""
}

// EditDraft opens the editor pre-filled with initial and returns the parsed
// result.
func EditDraft(initial Draft) (Draft, error) {
	content, err := RenderDraft(initial)
	if err != nil {
		return Draft{}, err
	}

	tmpfile, err := os.CreateTemp("", "board-todo-*.md")
	if err != nil {
		return Draft{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return Draft{}, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return Draft{}, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return Draft{}, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return Draft{}, fmt.Errorf("read edited file: %w", err)
	}

	return ParseDraft(string(edited))
}
