package venuescript

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const capabilitySchemaDoc = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["name", "asset", "limit", "ttl_ms"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"asset": {"type": "string", "minLength": 1},
		"limit": {"type": "integer", "minimum": 0},
		"ttl_ms": {"type": "integer", "minimum": 0}
	}
}`

var (
	capabilitySchemaOnce     sync.Once
	capabilitySchemaCompiled *jsonschema.Schema
)

func compiledCapabilitySchema() *jsonschema.Schema {
	capabilitySchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		const url = "capability_schema.json"
		if err := compiler.AddResource(url, strings.NewReader(capabilitySchemaDoc)); err != nil {
			panic("venuescript: invalid embedded capability schema: " + err.Error())
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			panic("venuescript: capability schema failed to compile: " + err.Error())
		}
		capabilitySchemaCompiled = schema
	})
	return capabilitySchemaCompiled
}

// assertValidCapabilitySchema checks a CapabilitySchema the emitter is
// about to hand to a caller against capabilitySchemaDoc. A failure here
// means the emitter produced a malformed value from a validated AST,
// which is a bug in EmitManifest, not bad input.
func assertValidCapabilitySchema(cap CapabilitySchema) {
	raw, err := json.Marshal(cap)
	if err != nil {
		panic("venuescript: capability schema marshal failed: " + err.Error())
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		panic("venuescript: capability schema decode failed: " + err.Error())
	}
	if err := compiledCapabilitySchema().Validate(v); err != nil {
		panic("venuescript: emitted capability schema failed validation: " + err.Error())
	}
}
