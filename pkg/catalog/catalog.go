package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	_ "embed"

	"github.com/gosimple/slug"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"iqaama_backend/internal/model"
)

//go:embed data/properties.json
var propertiesJSON []byte

//go:embed data/properties.schema.json
var schemaJSON []byte

var (
	properties []model.Property
	byID       map[uint]model.Property
	bySlug     map[string]model.Property
)

// Init validates the compiled-in dataset against its schema, fills in slugs
// and builds the lookup indexes. Call once at startup.
func Init() error {
	sch, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	var raw any
	if err := json.Unmarshal(propertiesJSON, &raw); err != nil {
		return fmt.Errorf("parse catalog: %w", err)
	}
	if err := sch.Validate(raw); err != nil {
		return fmt.Errorf("catalog does not match schema: %w", err)
	}

	var loaded []model.Property
	if err := json.Unmarshal(propertiesJSON, &loaded); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}

	byID = make(map[uint]model.Property, len(loaded))
	bySlug = make(map[string]model.Property, len(loaded))
	for i := range loaded {
		p := &loaded[i]
		if _, exists := byID[p.ID]; exists {
			return fmt.Errorf("duplicate property id %d", p.ID)
		}
		if p.Slug == "" {
			p.Slug = slug.Make(p.Title)
		}
		if _, exists := bySlug[p.Slug]; exists {
			p.Slug = fmt.Sprintf("%s-%d", p.Slug, p.ID)
		}
		byID[p.ID] = *p
		bySlug[p.Slug] = *p
	}

	properties = loaded
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("properties.schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile("properties.schema.json")
}

// All returns the full catalog in its defined order. Callers must treat the
// slice as read-only.
func All() []model.Property {
	return properties
}

func Count() int {
	return len(properties)
}

func ByID(id uint) (model.Property, bool) {
	p, ok := byID[id]
	return p, ok
}

func BySlug(s string) (model.Property, bool) {
	p, ok := bySlug[s]
	return p, ok
}

// Emirates lists the distinct emirate tags present in the catalog, sorted.
func Emirates() []string {
	return distinct(func(p model.Property) string { return p.Emirate })
}

// Countries lists the distinct country tags present in the catalog, sorted.
func Countries() []string {
	return distinct(func(p model.Property) string { return p.Country })
}

func distinct(field func(model.Property) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, p := range properties {
		v := field(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
