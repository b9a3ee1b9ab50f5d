package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"aivault-portal/internal/core/domain"
)

const jsonldSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["@context", "@type", "name"],
  "properties": {
    "@context": {"type": "string", "pattern": "^https?://schema\\.org/?$"},
    "@type": {"enum": ["Restaurant", "HairSalon", "MedicalClinic"]},
    "name": {"type": "string", "minLength": 1},
    "address": {"type": ["string", "object"]},
    "telephone": {"type": "string"},
    "url": {"type": "string", "format": "uri"},
    "openingHours": {"type": ["string", "array"], "items": {"type": "string"}}
  }
}`

// JSONLDValidator checks generated feeds against the subset of schema.org the portal emits.
type JSONLDValidator struct {
	schema *gojsonschema.Schema
}

func NewJSONLDValidator() (*JSONLDValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(jsonldSchema))
	if err != nil {
		return nil, fmt.Errorf("compile jsonld schema: %w", err)
	}
	return &JSONLDValidator{schema: schema}, nil
}

// Validate returns the problems found in feed's document; an empty slice means it is valid.
func (v *JSONLDValidator) Validate(feed domain.JSONLDFeed) []string {
	data := strings.TrimSpace(feed.JSONLDData)
	if data == "" {
		return []string{domain.ErrEmptyJSONLD.Error()}
	}

	res, err := v.schema.Validate(gojsonschema.NewStringLoader(data))
	if err != nil {
		return []string{fmt.Sprintf("invalid JSON: %v", err)}
	}

	problems := []string{}
	for _, e := range res.Errors() {
		problems = append(problems, e.String())
	}

	var head struct {
		Type string `json:"@type"`
	}
	if err := json.Unmarshal([]byte(data), &head); err == nil && feed.SchemaType != "" && head.Type != "" && head.Type != string(feed.SchemaType) {
		problems = append(problems, fmt.Sprintf("@type %q does not match schema_type %q", head.Type, feed.SchemaType))
	}
	return problems
}
