package naming

import (
	_ "embed"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/card-forge/internal/errors"
)

//go:embed data/ability_names.yaml
var defaultPoolYAML []byte

// Pool holds pre-authored ability names keyed by cards.Ability.Key()
type Pool struct {
	names map[string][]string
}

// DefaultPool returns the embedded pool
func DefaultPool() *Pool {
	pool, err := parsePool(defaultPoolYAML)
	if err != nil {
		// the embedded file is part of the build
		panic(err)
	}
	return pool
}

// LoadPool reads a YAML document mapping ability keys to name lists
func LoadPool(r io.Reader) (*Pool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read name pool")
	}
	return parsePool(data)
}

// LoadPoolFile loads a pool from path
func LoadPoolFile(path string) (*Pool, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("name pool %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open name pool %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadPool(f)
}

func parsePool(data []byte) (*Pool, error) {
	raw := make(map[string][]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse name pool")
	}

	names := make(map[string][]string, len(raw))
	for key, list := range raw {
		cleaned := make([]string, 0, len(list))
		for _, name := range list {
			if name = strings.TrimSpace(name); name != "" {
				cleaned = append(cleaned, name)
			}
		}
		if len(cleaned) > 0 {
			names[strings.ToLower(key)] = cleaned
		}
	}

	return &Pool{names: names}, nil
}

// Names returns the names for key, nil when the key is not authored
func (p *Pool) Names(key string) []string {
	if p == nil {
		return nil
	}
	return p.names[key]
}

// Len reports the number of authored keys
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}
