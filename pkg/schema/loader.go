package schema

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/akam1o/args/pkg/errors"
	"github.com/akam1o/args/pkg/logger"
)

// File is the on-disk schema layout shared by YAML and TOML files
type File struct {
	Flags []Entry `yaml:"flags" toml:"flags"`
}

// LoadFile loads a schema from a .yaml, .yml or .toml file
// Note: This function logs diagnostic information if a logger is provided
func LoadFile(path string, log *logger.Logger) (*Schema, error) {
	if log != nil {
		log.Debug("Loading schema file", slog.String("path", path))
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.SchemaNotFound(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(
			err,
			errors.ErrCodeSchemaPermission,
			fmt.Sprintf("Failed to read schema file: %s", path),
			"Permission denied or file is not readable",
			"Check file permissions with 'ls -l' and ensure the file is readable",
		)
	}

	var file File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, &file)
	case ".toml":
		err = decodeTOML(data, &file)
	default:
		err = fmt.Errorf("unsupported schema file extension %q (want .yaml, .yml or .toml)", ext)
	}
	if err != nil {
		return nil, errors.SchemaParseError(path, err)
	}

	s, err := New(file.Flags)
	if err != nil {
		return nil, err
	}

	if log != nil {
		log.Info("Schema loaded successfully", slog.Int("flag_count", s.Len()))
	}

	return s, nil
}

// decodeYAML decodes in strict mode to detect unknown fields (typo detection)
func decodeYAML(data []byte, file *File) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	return decoder.Decode(file)
}

func decodeTOML(data []byte, file *File) error {
	md, err := toml.Decode(string(data), file)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown fields: %s", strings.Join(keys, ", "))
	}
	return nil
}
