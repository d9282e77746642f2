package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the course format major version this build understands.
const SupportedMajor = "v1"

// courseFile mirrors the on-disk YAML layout.
type courseFile struct {
	Version string      `yaml:"version"`
	Title   string      `yaml:"title"`
	Tagline string      `yaml:"tagline"`
	Levels  []levelFile `yaml:"levels"`
}

type levelFile struct {
	ID        int            `yaml:"id"`
	Title     string         `yaml:"title"`
	Questions []questionFile `yaml:"questions"`
}

type questionFile struct {
	Source      string     `yaml:"source"`
	Hint        string     `yaml:"hint"`
	Explanation string     `yaml:"explanation"`
	Solution    string     `yaml:"solution"`
	Words       []wordFile `yaml:"words"`
}

type wordFile struct {
	ID       string `yaml:"id"`
	Position int    `yaml:"position"`
	Text     string `yaml:"text"`
	Type     string `yaml:"type"`
}

// LoadFile reads and validates a course file from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open course file: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// Load decodes a YAML course, checks it against the course schema and the
// supported format version, and runs Validate.
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read course: %w", err)
	}

	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var cf courseFile
	if err := yaml.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("decode course: %w", err)
	}

	if err := checkVersion(cf.Version); err != nil {
		return nil, err
	}

	c := cf.toCatalog()
	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// checkVersion rejects course files written for another major version.
func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("course version %q is not a valid semantic version", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("course version %s not supported (want %s.x)", v, SupportedMajor)
	}
	return nil
}

// validateDocument checks the raw YAML document against courseSchema.
func validateDocument(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode course: %w", err)
	}

	// The schema validator works on JSON values; round-trip through
	// encoding/json so YAML scalars become JSON scalars.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert course to JSON: %w", err)
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("parse course JSON: %w", err)
	}

	compiled, err := compiledCourseSchema()
	if err != nil {
		return fmt.Errorf("compile course schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("course schema validation failed: %w", err)
	}
	return nil
}

var compiledCourseSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler expects a parsed JSON value, not Go maps with typed
	// slices, so marshal and re-parse the definition.
	defBytes, err := json.Marshal(courseSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	defParsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", courseSchemaName)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(url)
})

func (cf courseFile) toCatalog() *Catalog {
	c := &Catalog{
		Version: cf.Version,
		Title:   cf.Title,
		Tagline: cf.Tagline,
		Levels:  make([]Level, 0, len(cf.Levels)),
	}
	for _, lf := range cf.Levels {
		lvl := Level{
			ID:        lf.ID,
			Title:     lf.Title,
			Questions: make([]Question, 0, len(lf.Questions)),
		}
		for _, qf := range lf.Questions {
			q := Question{
				Source:       qf.Source,
				Hint:         qf.Hint,
				Explanation:  qf.Explanation,
				SolutionText: qf.Solution,
				Words:        make([]Word, 0, len(qf.Words)),
			}
			for _, wf := range qf.Words {
				q.Words = append(q.Words, Word{
					ID:       wf.ID,
					Position: wf.Position,
					Text:     wf.Text,
					Type:     ParseWordType(wf.Type),
				})
			}
			lvl.Questions = append(lvl.Questions, q)
		}
		c.Levels = append(c.Levels, lvl)
	}
	return c
}
