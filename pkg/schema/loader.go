package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed metaschema.json
var metaschema string

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFile reads a node description document from disk, picking the format
// by file extension (.json, .yaml, .yml).
func LoadFile(path string) (*NodeDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(data)
	default:
		return Load(data)
	}
}

// Load parses a JSON node description document.
func Load(data []byte) (*NodeDescription, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	return fromDocument(doc)
}

// LoadYAML parses a YAML node description document.
func LoadYAML(data []byte) (*NodeDescription, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	return fromDocument(doc)
}

// fromDocument turns a decoded document into a validated NodeDescription:
// meta-schema check, typed decode, type-options binding, struct-tag
// validation, then the load-time invariants.
func fromDocument(doc map[string]any) (*NodeDescription, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(metaschema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}

		return nil, fmt.Errorf("%w: %s", ErrMalformedDocument, strings.Join(details, "; "))
	}

	desc := &NodeDescription{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           desc,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	if err := bindTypeOptions(desc.Properties, desc.Name); err != nil {
		return nil, err
	}

	if err := validate.Struct(desc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	if err := desc.Validate(); err != nil {
		return nil, err
	}

	return desc, nil
}

// bindTypeOptions materializes the TypeOptions union variant for every
// property carrying a raw type_options mapping, recursively over nested
// groups and collection sub-fields.
func bindTypeOptions(props []PropertyField, path string) error {
	for i := range props {
		p := &props[i]
		ppath := path + "." + p.Name

		if p.TypeOptionsRaw != nil && p.TypeOptions == nil {
			variant := typeOptionsFor(p.Type)
			if variant == nil {
				// Left raw; Validate reports the mismatch with full context.
				continue
			}

			decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				Result:           variant,
				TagName:          "mapstructure",
				WeaklyTypedInput: true,
			})
			if err != nil {
				return schemaErr(ppath, fmt.Errorf("%w: %w", ErrMalformedDocument, err))
			}

			if err := decoder.Decode(p.TypeOptionsRaw); err != nil {
				return schemaErr(ppath, fmt.Errorf("%w: %w", ErrMalformedDocument, err))
			}

			p.TypeOptions = variant
		}

		for gi := range p.Groups {
			group := &p.Groups[gi]
			if err := bindTypeOptions(group.Values, ppath+"."+group.Name); err != nil {
				return err
			}
		}

		if err := bindTypeOptions(p.Values, ppath); err != nil {
			return err
		}
	}

	return nil
}
