package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const schemaURL = "seawolf://config.schema.json"

// configSchema constrains shape and scalar bounds. Cross-field rules live in Game.Validate.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "vocabulary": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "attributes": {"$ref": "#/definitions/words"},
        "traits": {"$ref": "#/definitions/words"},
        "icons": {"$ref": "#/definitions/words"}
      }
    },
    "names": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "prefixes": {"$ref": "#/definitions/words"},
        "suffixes": {"$ref": "#/definitions/words"},
        "fallback_stem": {"type": "string"},
        "max_attempts": {"type": "integer", "minimum": 1}
      }
    },
    "sites": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "traits_per_site": {"type": "integer", "minimum": 2}
      }
    },
    "ranges": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "low_min": {"$ref": "#/definitions/domain"},
        "low_max": {"$ref": "#/definitions/domain"},
        "width_min": {"type": "integer", "minimum": 0, "maximum": 9},
        "width_max": {"type": "integer", "minimum": 0, "maximum": 9}
      }
    },
    "values": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "policy": {"enum": ["biased", "uniform"]},
        "near_range_chance": {"$ref": "#/definitions/probability"},
        "slack": {"type": "integer", "minimum": 0, "maximum": 9}
      }
    },
    "trait_bands": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "desired": {"$ref": "#/definitions/probability"},
        "undesired": {"$ref": "#/definitions/probability"}
      }
    },
    "pools": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "browse": {"type": "integer", "minimum": 1},
        "starter": {"type": "integer", "minimum": 0},
        "rounds": {"type": "integer", "minimum": 0},
        "round_size": {"type": "integer", "minimum": 1, "maximum": 9},
        "prospect_seed": {"type": "integer", "minimum": 0},
        "prospect_target": {"type": "integer", "minimum": 0, "maximum": 10}
      }
    },
    "scoring": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "penalty_per_unit": {"type": "integer", "minimum": 1, "maximum": 100}
      }
    },
    "timer": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "budget_seconds": {"type": "integer", "minimum": 1}
      }
    }
  },
  "definitions": {
    "words": {"type": "array", "items": {"type": "string", "minLength": 1}},
    "domain": {"type": "integer", "minimum": 1, "maximum": 10},
    "probability": {"type": "number", "minimum": 0, "maximum": 1}
  }
}`

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString(schemaURL, configSchema)
})

// validateSchema checks a raw YAML document against configSchema. The document
// is round-tripped through JSON so the validator sees JSON-native values.
func validateSchema(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	if err := schema.Validate(generic); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
