// Package templates loads reusable commit message skeletons from a YAML
// file and renders them into message text.
package templates

import (
	"os"
	"strings"

	"github.com/thomas-vilte/commitsmith/internal/conventional"
	apperrors "github.com/thomas-vilte/commitsmith/internal/errors"
	"github.com/thomas-vilte/commitsmith/internal/models"
	"gopkg.in/yaml.v3"
)

// File is the on-disk schema of a templates file.
type File struct {
	Templates []models.CommitTemplate `yaml:"templates"`
}

// Store holds the loaded templates, keyed by name.
type Store struct {
	templates []models.CommitTemplate
	index     map[string]int
}

// Load reads a templates file from disk. A missing file yields an empty
// store, not an error: templates are optional.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewStore(nil), nil
		}
		return nil, apperrors.NewAppError(apperrors.TypeTemplate, "failed to read the templates file", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, apperrors.NewAppError(apperrors.TypeTemplate, "templates file could not be parsed", err).
			WithSuggestion("Check the YAML syntax of your templates file")
	}
	return NewStore(file.Templates), nil
}

// NewStore indexes the given templates. Later duplicates replace earlier
// ones by name.
func NewStore(templates []models.CommitTemplate) *Store {
	s := &Store{index: make(map[string]int)}
	for _, tpl := range templates {
		if i, ok := s.index[tpl.Name]; ok {
			s.templates[i] = tpl
			continue
		}
		s.index[tpl.Name] = len(s.templates)
		s.templates = append(s.templates, tpl)
	}
	return s
}

// Names lists the template names in file order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.templates))
	for _, tpl := range s.templates {
		names = append(names, tpl.Name)
	}
	return names
}

// Get looks a template up by name.
func (s *Store) Get(name string) (models.CommitTemplate, error) {
	i, ok := s.index[name]
	if !ok {
		return models.CommitTemplate{}, apperrors.ErrTemplateNotFound.WithContext("template", name)
	}
	return s.templates[i], nil
}

// Render expands a template into message text. Templates with a commit type
// render through the conventional formatter; free-form ones are subject plus
// body.
func Render(tpl models.CommitTemplate) string {
	if tpl.Type != "" {
		return conventional.Format(models.ConventionalCommit{
			Type:             tpl.Type,
			Scope:            tpl.Scope,
			Description:      tpl.Subject,
			Body:             tpl.Body,
			IsBreakingChange: tpl.Breaking,
		})
	}

	var b strings.Builder
	b.WriteString(tpl.Subject)
	if tpl.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(tpl.Body)
	}
	return b.String()
}
