package config

import (
	"bufio"
	"fmt"
	"os"
)

// ParseEnvironment strictly parses an environment file per spec.md
// §6: each non-blank line must be `NAME=VALUE`; a line with no `=` or
// an empty value is a parse error, and the first error halts parsing
// entirely (unlike Viper's merge-and-ignore-unknown-keys model, which
// is why this isn't folded into config.go's loader).
func ParseEnvironment(r *bufio.Scanner) (map[string]string, error) {
	env := make(map[string]string)
	line := 0
	for r.Scan() {
		line++
		text := r.Text()
		if text == "" {
			continue
		}

		name, value, found := cutFirst(text, '=')
		if !found {
			return nil, fmt.Errorf("environment file line %d: missing '=' in %q", line, text)
		}
		if name == "" {
			return nil, fmt.Errorf("environment file line %d: empty name in %q", line, text)
		}
		if value == "" {
			return nil, fmt.Errorf("environment file line %d: empty value for %q", line, name)
		}
		env[name] = value
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading environment file: %w", err)
	}
	return env, nil
}

// LoadEnvironmentFile opens path and parses it with ParseEnvironment.
// A missing file is not an error; it yields an empty map, matching
// spec.md §6's "environment file is optional" note.
func LoadEnvironmentFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("opening environment file: %w", err)
	}
	defer f.Close()
	return ParseEnvironment(bufio.NewScanner(f))
}

func cutFirst(s string, sep byte) (before, after string, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
