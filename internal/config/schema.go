/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"fmt"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// schemaJSON constrains the user config file. Unknown keys are allowed so that
// older binaries can read newer files.
const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "config_version": {"type": "integer", "minimum": 1},
    "general": {
      "type": "object",
      "properties": {
        "initial_mode": {"type": "string", "enum": ["display", "edit", "Display", "Edit"]}
      }
    },
    "canvas": {
      "type": "object",
      "properties": {
        "baseline_width":  {"type": "number", "exclusiveMinimum": 0},
        "baseline_height": {"type": "number", "exclusiveMinimum": 0},
        "element_width":   {"type": "number", "exclusiveMinimum": 0},
        "element_height":  {"type": "number", "exclusiveMinimum": 0},
        "font_size":       {"type": "number", "exclusiveMinimum": 0},
        "padding":         {"type": "number", "minimum": 0},
        "scaling":         {"type": "string", "enum": ["baseline", "cumulative"]}
      }
    },
    "window": {
      "type": "object",
      "properties": {
        "sidebar_width": {"type": "number", "minimum": 0},
        "title":         {"type": "string"}
      }
    },
    "undo": {
      "type": "object",
      "properties": {
        "max_bytes":       {"type": "integer", "minimum": 0},
        "max_per_slide":   {"type": "integer", "minimum": 0},
        "min_interval_ms": {"type": "integer", "minimum": 0}
      }
    },
    "logging": {
      "type": "object",
      "properties": {
        "level":  {"type": "string", "enum": ["debug", "info", "warn", "warning", "error"]},
        "format": {"type": "string", "enum": ["console", "json"]},
        "source": {"type": "boolean"},
        "file":   {"type": "string"}
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// Validate checks raw YAML config bytes against the config schema.
// An empty document is valid.
func Validate(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: parse yaml: %v", ErrInvalidConfig, err)
	}
	if doc == nil {
		return nil
	}
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
