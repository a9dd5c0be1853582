package registry

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	// ErrDuplicateComponentType is returned when two catalog entries share a type id.
	ErrDuplicateComponentType = errors.New("duplicate component type")
	// ErrInvalidComponentType is returned when a catalog entry is malformed.
	ErrInvalidComponentType = errors.New("invalid component type")
)

//go:embed catalog.yaml
var catalogData []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Catalog is the read side of the registry used by the page model and the resolver.
type Catalog interface {
	Lookup(typeID string) (*ComponentType, bool)
}

var _ Catalog = (*Registry)(nil)

// Registry is an immutable catalog of component types. It is built once at
// process start and is safe for concurrent readers.
type Registry struct {
	types       map[string]*ComponentType
	order       []string
	fingerprint string
}

// New builds a registry from the given component types, in the given order.
func New(types ...*ComponentType) (*Registry, error) {
	r := &Registry{
		types: make(map[string]*ComponentType, len(types)),
		order: make([]string, 0, len(types)),
	}

	for _, ct := range types {
		if ct == nil {
			continue
		}
		if _, ok := r.types[ct.TypeID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateComponentType, ct.TypeID)
		}

		normalized, err := ct.normalize()
		if err != nil {
			return nil, err
		}

		r.types[ct.TypeID] = normalized
		r.order = append(r.order, ct.TypeID)
	}

	sum, err := r.digest()
	if err != nil {
		return nil, err
	}
	r.fingerprint = sum

	return r, nil
}

// digest hashes the normalized catalog. encoding/json sorts map keys, so
// equal catalogs give equal digests.
func (r *Registry) digest() (string, error) {
	data, err := json.Marshal(r.ListAll())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidComponentType, err)
	}
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:8]), nil
}

// Fingerprint identifies the catalog content. Two registries with the same
// types, properties and defaults share a fingerprint.
func (r *Registry) Fingerprint() string {
	return r.fingerprint
}

// Load parses a YAML catalog.
func Load(data []byte) (*Registry, error) {
	var catalog struct {
		Components []*ComponentType `yaml:"components"`
	}
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse component catalog: %w", err)
	}

	return New(catalog.Components...)
}

// Default returns the registry built from the embedded catalog. The catalog
// ships with the binary, so a broken catalog is a build defect and panics.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := Load(catalogData)
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})

	return defaultRegistry
}

// Lookup returns the component type for the given id. The returned value is
// shared and must not be mutated.
func (r *Registry) Lookup(typeID string) (*ComponentType, bool) {
	ct, ok := r.types[typeID]
	return ct, ok
}

// ListAll returns every component type in catalog order.
func (r *Registry) ListAll() []*ComponentType {
	types := make([]*ComponentType, 0, len(r.order))
	for _, id := range r.order {
		types = append(types, r.types[id])
	}

	return types
}

// ListByCategory returns the component types of one category in catalog order.
// An empty category returns everything.
func (r *Registry) ListByCategory(category Category) []*ComponentType {
	if category == "" {
		return r.ListAll()
	}

	types := make([]*ComponentType, 0)
	for _, id := range r.order {
		if ct := r.types[id]; ct.Category == category {
			types = append(types, ct)
		}
	}

	return types
}

// TypeIDs returns the sorted type ids of the catalog.
func (r *Registry) TypeIDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	sort.Strings(ids)
	return ids
}

// normalize validates a definition and fills the defaults of every declared
// property, so each property name is reachable from the defaults map.
func (ct *ComponentType) normalize() (*ComponentType, error) {
	if ct.TypeID == "" {
		return nil, fmt.Errorf("%w: missing type id", ErrInvalidComponentType)
	}
	if !ct.Category.Valid() {
		return nil, fmt.Errorf("%w: %s: unknown category %q", ErrInvalidComponentType, ct.TypeID, ct.Category)
	}

	out := *ct
	if out.DisplayName == "" {
		out.DisplayName = ct.TypeID
	}

	declared := make(map[string]bool, len(ct.Properties))
	for _, def := range ct.Properties {
		if def.Name == "" {
			return nil, fmt.Errorf("%w: %s: property without name", ErrInvalidComponentType, ct.TypeID)
		}
		if declared[def.Name] {
			return nil, fmt.Errorf("%w: %s: duplicate property %s", ErrInvalidComponentType, ct.TypeID, def.Name)
		}
		if !def.Kind.Valid() {
			return nil, fmt.Errorf("%w: %s.%s: unknown kind %q", ErrInvalidComponentType, ct.TypeID, def.Name, def.Kind)
		}
		if def.Kind == KindSelect && len(def.Options) == 0 {
			return nil, fmt.Errorf("%w: %s.%s: select without options", ErrInvalidComponentType, ct.TypeID, def.Name)
		}
		declared[def.Name] = true
	}

	defaults := make(map[string]any, len(ct.Properties))
	for name, value := range ct.Defaults {
		if !declared[name] {
			return nil, fmt.Errorf("%w: %s: default for undeclared property %s", ErrInvalidComponentType, ct.TypeID, name)
		}
		defaults[name] = value
	}
	for _, def := range ct.Properties {
		if _, ok := defaults[def.Name]; ok {
			continue
		}
		if def.Default != nil {
			defaults[def.Name] = def.Default
		} else {
			defaults[def.Name] = def.Kind.ZeroValue()
		}
	}

	// round trip through json so defaults have the same shape as values read
	// back from storage (numbers as float64, objects as map[string]any)
	data, err := json.Marshal(defaults)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: defaults: %v", ErrInvalidComponentType, ct.TypeID, err)
	}
	out.Defaults = make(map[string]any, len(defaults))
	if err := json.Unmarshal(data, &out.Defaults); err != nil {
		return nil, fmt.Errorf("%w: %s: defaults: %v", ErrInvalidComponentType, ct.TypeID, err)
	}

	if err := ValidateProperties(&out, out.Defaults); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidComponentType, ct.TypeID, err)
	}

	return &out, nil
}
