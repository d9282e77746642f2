package catalog

// courseSchemaName identifies the compiled course schema.
const courseSchemaName = "course"

// courseSchema is the JSON schema every course file must satisfy before the
// semantic checks in Validate run.
var courseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":        "string",
			"description": "Course format version, semver with a leading v",
		},
		"title":   map[string]any{"type": "string"},
		"tagline": map[string]any{"type": "string"},
		"levels": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    levelSchema,
		},
	},
	"required":             []any{"version", "title", "levels"},
	"additionalProperties": false,
}

var levelSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":    map[string]any{"type": "integer", "minimum": 1},
		"title": map[string]any{"type": "string", "minLength": 1},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    questionSchema,
		},
	},
	"required":             []any{"id", "title", "questions"},
	"additionalProperties": false,
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"source":      map[string]any{"type": "string"},
		"hint":        map[string]any{"type": "string"},
		"explanation": map[string]any{"type": "string"},
		"solution":    map[string]any{"type": "string"},
		"words": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    wordSchema,
		},
	},
	"required":             []any{"source", "words"},
	"additionalProperties": false,
}

var wordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":       map[string]any{"type": "string", "minLength": 1},
		"position": map[string]any{"type": "integer", "minimum": 1},
		"text":     map[string]any{"type": "string", "minLength": 1},
		"type":     map[string]any{"type": "string"},
	},
	"required":             []any{"id", "position", "text"},
	"additionalProperties": false,
}
