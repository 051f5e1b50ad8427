package file

import (
	"fmt"
	"os"

	"github.com/aretw0/onboarding/internal/dto"
	"github.com/aretw0/onboarding/internal/validator"
	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/aretw0/onboarding/pkg/transition"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.TableLoader and ports.TransitionLoader over a YAML
// or JSON file. The file is read and decoded once, at construction.
type Loader struct {
	path  string
	steps []domain.Step
	table *transition.Table
}

// New reads and decodes the table file at path.
func New(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l.path = path
	return l, nil
}

// Parse decodes a table document. JSON documents are accepted as YAML.
func Parse(data []byte) (*Loader, error) {
	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}

	steps := doc.ToSteps()
	if err := validator.ValidateTable(steps); err != nil {
		return nil, err
	}

	l := &Loader{steps: steps}
	if doc.Transitions != nil {
		table, err := doc.Transitions.ToTable()
		if err != nil {
			return nil, err
		}
		if err := table.Validate(); err != nil {
			return nil, err
		}
		l.table = &table
	}
	return l, nil
}

// Decode turns raw YAML or JSON into a table document. Unknown keys are errors.
func Decode(data []byte) (dto.TableDocument, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return dto.TableDocument{}, fmt.Errorf("failed to parse table: %w", err)
	}

	var doc dto.TableDocument
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused: true,
		Result:      &doc,
	})
	if err != nil {
		return dto.TableDocument{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return dto.TableDocument{}, fmt.Errorf("failed to decode table: %w", err)
	}
	return doc, nil
}

// Path returns the file the loader was built from, if any.
func (l *Loader) Path() string {
	return l.path
}

// LoadSteps returns a copy of the decoded table.
func (l *Loader) LoadSteps() ([]domain.Step, error) {
	return domain.CloneSteps(l.steps), nil
}

// LoadTransitions returns the decoded transitions section, if present.
func (l *Loader) LoadTransitions() (transition.Table, bool, error) {
	if l.table == nil {
		return transition.Table{}, false, nil
	}
	return l.table.Clone(), true, nil
}
