package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownField is wrapped into Load errors caused by keys the settings
// schema does not define. The message names the dotted key path.
var ErrUnknownField = errors.New("config: unknown field")

// FileNames are the settings files looked up in the working directory.
var FileNames = []string{"spritecam.yaml", "spritecam.yml", "spritecam.json"}

// Load returns Default() merged with the file at path. An empty path
// searches FindFile; no file found means defaults only.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = FindFile()
	}
	if path == "" {
		return cfg, nil
	}
	if err := loadFromFile(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindFile returns the first existing settings file from the working
// directory or the user config dir, or "".
func FindFile() string {
	candidates := append([]string{}, FileNames...)
	if dir := ConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "config.yaml"))
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate per-user config directory, or "".
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "spritecam")
}

// loadFromFile decodes YAML (or JSON) over cfg. Keys the Config schema does
// not define are rejected before anything is applied.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := checkKeys(&doc, reflect.TypeOf(cfg), ""); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := doc.Decode(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// checkKeys walks mapping nodes alongside the struct type t and reports the
// first key with no matching yaml field.
func checkKeys(n *yaml.Node, t reflect.Type, prefix string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}
		return checkKeys(n.Content[0], t, prefix)
	}
	if n.Kind != yaml.MappingNode || t.Kind() != reflect.Struct {
		return nil
	}

	fields := yamlFields(t)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		ft, ok := fields[key.Value]
		if !ok {
			return fmt.Errorf("%w %q (line %d)", ErrUnknownField, prefix+key.Value, key.Line)
		}
		if err := checkKeys(val, ft, prefix+key.Value+"."); err != nil {
			return err
		}
	}
	return nil
}

// yamlFields maps the keys yaml.v3 decodes into t to their field types,
// flattening inline structs.
func yamlFields(t reflect.Type) map[string]reflect.Type {
	out := make(map[string]reflect.Type)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("yaml")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if strings.Contains(opts, "inline") {
			ft := f.Type
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				for k, v := range yamlFields(ft) {
					out[k] = v
				}
			}
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		out[name] = f.Type
	}
	return out
}
