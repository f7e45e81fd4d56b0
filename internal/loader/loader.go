// Package loader turns a database configuration into a keyword/value connection string.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/GolovachevS/db-config-reader/internal/domain"
)

const (
	connStringFormat = "dbname = %s user = %s password = %s hostaddr = %s port = %s"

	passwordMarker = " password = "
	hostMarker     = " hostaddr = "
	redacted       = "********"
)

// LookupFunc resolves an environment variable name. It has the shape of os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// Loader renders configurations, optionally resolving values through the environment.
type Loader struct {
	lookup LookupFunc
}

// New returns a loader. A nil lookup reads the process environment.
func New(lookup LookupFunc) *Loader {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Loader{lookup: lookup}
}

// LoadFromFile parses the JSON document at path and renders it as-is.
func (l *Loader) LoadFromFile(path string) (string, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return "", err
	}
	return Render(cfg, false)
}

// LoadFromObject renders cfg. With useEnv every required value is treated as
// the name of an environment variable and replaced by its value first.
func (l *Loader) LoadFromObject(cfg domain.DBConfig, useEnv bool) (string, error) {
	if !useEnv {
		return Render(cfg, false)
	}

	resolved, err := l.Resolve(cfg)
	if err != nil {
		return "", err
	}
	return Render(resolved, true)
}

// Resolve returns a new configuration holding the environment values named by cfg.
// cfg itself is left untouched.
func (l *Loader) Resolve(cfg domain.DBConfig) (domain.DBConfig, error) {
	if missing := MissingKeys(cfg); len(missing) > 0 {
		return nil, domain.NewMissingFieldsError(missing)
	}

	keys := domain.RequiredKeys()
	resolved := make(domain.DBConfig, len(keys))
	for _, key := range keys {
		name := cfg[key]
		if name == nil {
			return nil, domain.NewNullFieldError(key)
		}

		value, ok := l.lookup(*name)
		if !ok {
			return nil, domain.NewMissingEnvVarError(*name, key)
		}
		resolved[key] = &value
	}

	return resolved, nil
}

// LoadFile reads and decodes the configuration stored at path.
func LoadFile(path string) (domain.DBConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewNotFoundError(path, err)
		}
		return nil, domain.NewOpenFailureError(path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewOpenFailureError(path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, domain.NewOpenFailureError(path, err)
	}

	return Decode(data, path)
}

// Decode parses a JSON object of string or null values. source names the
// input in error messages.
func Decode(data []byte, source string) (domain.DBConfig, error) {
	var cfg domain.DBConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, domain.NewParseFailureError(source, err)
	}
	if cfg == nil {
		cfg = domain.DBConfig{}
	}
	return cfg, nil
}

// Validate reports whether every required key is present. Null values count as present.
func Validate(cfg domain.DBConfig) bool {
	return len(MissingKeys(cfg)) == 0
}

// MissingKeys lists the absent required keys in rendering order.
func MissingKeys(cfg domain.DBConfig) []string {
	var missing []string
	for _, key := range domain.RequiredKeys() {
		if _, ok := cfg[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// Render formats cfg as a connection string. Unless alreadyValidated is set the
// required keys are checked first.
func Render(cfg domain.DBConfig, alreadyValidated bool) (string, error) {
	if !alreadyValidated && !Validate(cfg) {
		return "", domain.NewMissingFieldsError(MissingKeys(cfg))
	}

	keys := domain.RequiredKeys()
	values := make([]any, 0, len(keys))
	for _, key := range keys {
		value, ok := cfg[key]
		if !ok {
			return "", domain.NewMissingFieldsError(MissingKeys(cfg))
		}
		if value == nil {
			return "", domain.NewNullFieldError(key)
		}
		values = append(values, *value)
	}

	return fmt.Sprintf(connStringFormat, values...), nil
}

// Redact masks the password of a rendered connection string so it can be logged.
func Redact(connString string) string {
	start := strings.Index(connString, passwordMarker)
	end := strings.LastIndex(connString, hostMarker)
	if start < 0 || end < start+len(passwordMarker) {
		return connString
	}
	return connString[:start+len(passwordMarker)] + redacted + connString[end:]
}
