// Package script replays a recorded sequence of actions without a terminal.
//
// A script is a JSON or YAML document of the form
//
//	{"actions": [{"type": "ADD_ITEM", "item": "milk"}, {"type": "REMOVE_ITEM", "index": 0}]}
//
// It is validated against an embedded JSON Schema before any action runs.
package script

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/nibzard/fluxtodo/internal/action"
	"github.com/nibzard/fluxtodo/internal/logging"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "script.schema.json"

// Format is the encoding of a script.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension. Anything that is
// not .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Step is one scripted action.
type Step struct {
	Type  action.Type `json:"type"`
	Item  string      `json:"item,omitempty"`
	Index int         `json:"index,omitempty"`
}

// Action converts the step to its action.
func (s Step) Action() (action.Action, error) {
	t, err := action.ParseType(string(s.Type))
	if err != nil {
		return nil, err
	}
	if t == action.TypeRemoveItem {
		return action.RemoveItem{Index: s.Index}, nil
	}
	return action.AddItem{Item: s.Item}, nil
}

// Script is a validated list of steps.
type Script struct {
	Actions []Step `json:"actions"`
}

// ValidationError reports where a script breaks the schema.
type ValidationError struct {
	Path string // dotted path to the offending value, empty for the root
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Load reads, validates and decodes the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(data, FormatFromPath(path))
}

// Parse validates and decodes a script.
func Parse(data []byte, format Format) (*Script, error) {
	doc, err := normalize(data, format)
	if err != nil {
		return nil, err
	}

	var instance any
	if err := json.Unmarshal(doc, &instance); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := validate(instance); err != nil {
		return nil, err
	}

	var s Script
	if err := json.Unmarshal(doc, &s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return &s, nil
}

// normalize returns the script as JSON.
func normalize(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse script: %w", err)
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert yaml script: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported script format %q", format)
	}
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

func validate(instance any) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}
	err = schema.Validate(instance)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &ValidationError{Err: err}
	}
	leaf := firstLeaf(ve)
	return &ValidationError{
		Path: pointerToPath(leaf.InstanceLocation),
		Err:  errors.New(leaf.Message),
	}
}

// firstLeaf returns the first cause without causes of its own.
func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

// pointerToPath turns "/actions/1/index" into "actions[1].index".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return ""
	}
	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~")
		if _, err := strconv.Atoi(part); err == nil {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

// Apply issues every step through c, in order. It stops at the first
// failing step.
func (s *Script) Apply(c *action.Creators, logger *log.Logger) error {
	logger = logging.Component(logger, "script")
	logger.Debug("Script.apply", "steps", len(s.Actions))
	for i, step := range s.Actions {
		a, err := step.Action()
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		switch a := a.(type) {
		case action.AddItem:
			err = c.AddItem(a.Item)
		case action.RemoveItem:
			err = c.RemoveItem(a.Index)
		}
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}
