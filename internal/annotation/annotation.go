package annotation

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rsinukov/activityresult/internal/common"
	"github.com/rsinukov/activityresult/internal/diagnostic"
)

// Directive prefixes.
const (
	SingleDirective   = "//activityresult:result"
	RepeatedDirective = "//activityresult:results"
)

// Form distinguishes the singular directive from the repeated group.
type Form int

const (
	FormSingle Form = iota + 1
	FormRepeated
)

// Entry is one declared result field as written in a directive.
type Entry struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Required  *bool  `yaml:"required,omitempty"`
	Marshaler string `yaml:"marshaler,omitempty"`

	// Pos is the position of the directive comment.
	Pos token.Pos `yaml:"-"`
}

// IsRequired reports whether the entry is required. Entries are required
// unless they say otherwise.
func (e Entry) IsRequired() bool {
	return e.Required == nil || *e.Required
}

// Group is the parsed directive set of one declaration.
type Group struct {
	Form    Form
	Entries []Entry
}

// HasDirective reports whether doc carries any result directive.
func HasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		if _, _, ok := splitDirective(c.Text); ok {
			return true
		}
	}

	return false
}

// Parse extracts the directive group from doc. It returns nil, nil when doc
// has no directive. class attributes errors to the declaring type.
func Parse(fset *token.FileSet, doc *ast.CommentGroup, class string) (*Group, error) {
	if doc == nil {
		return nil, nil
	}

	var (
		single   []*ast.Comment
		repeated []*ast.Comment
	)

	for _, c := range doc.List {
		form, _, ok := splitDirective(c.Text)
		if !ok {
			continue
		}

		if form == FormSingle {
			single = append(single, c)
		} else {
			repeated = append(repeated, c)
		}
	}

	switch {
	case common.IsEmpty(single) && common.IsEmpty(repeated):
		return nil, nil
	case !common.IsEmpty(single) && !common.IsEmpty(repeated):
		return nil, invalid(fset, single[0].Pos(), class, "",
			"only one of %s and %s is allowed", SingleDirective, RepeatedDirective)
	case common.IsMultiple(single):
		return nil, invalid(fset, single[1].Pos(), class, "",
			"%s may appear once; use %s to declare several fields", SingleDirective, RepeatedDirective)
	case common.IsMultiple(repeated):
		return nil, invalid(fset, repeated[1].Pos(), class, "", "%s may appear once", RepeatedDirective)
	}

	if common.IsSingle(single) {
		c := single[0]
		_, payload, _ := splitDirective(c.Text)

		var e Entry
		if err := decodeStrict(payload, &e); err != nil {
			return nil, invalid(fset, c.Pos(), class, "", "malformed %s payload: %v", SingleDirective, err)
		}

		e.Pos = c.Pos()
		if err := validateEntry(fset, e, class); err != nil {
			return nil, err
		}

		return &Group{Form: FormSingle, Entries: []Entry{e}}, nil
	}

	c, _ := common.First(repeated)
	_, payload, _ := splitDirective(c.Text)

	var entries []Entry
	if err := decodeStrict(payload, &entries); err != nil {
		return nil, invalid(fset, c.Pos(), class, "", "malformed %s payload: %v", RepeatedDirective, err)
	}

	for i := range entries {
		entries[i].Pos = c.Pos()
		if err := validateEntry(fset, entries[i], class); err != nil {
			return nil, err
		}
	}

	return &Group{Form: FormRepeated, Entries: entries}, nil
}

// splitDirective recognises a directive comment and returns its payload.
func splitDirective(text string) (Form, string, bool) {
	// check the longer prefix first, it shares a prefix with the singular form
	if rest, ok := cutDirective(text, RepeatedDirective); ok {
		return FormRepeated, rest, true
	}

	if rest, ok := cutDirective(text, SingleDirective); ok {
		return FormSingle, rest, true
	}

	return 0, "", false
}

func cutDirective(text, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(text, prefix)
	if !ok {
		return "", false
	}

	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}

	return strings.TrimSpace(rest), true
}

func decodeStrict(payload string, out any) error {
	if payload == "" {
		return errors.New("empty payload")
	}

	dec := yaml.NewDecoder(bytes.NewBufferString(payload))
	dec.KnownFields(true)

	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty payload")
		}

		return err
	}

	return nil
}

func validateEntry(fset *token.FileSet, e Entry, class string) error {
	if e.Name == "" {
		return invalid(fset, e.Pos, class, "", "name must be set to a non-empty value")
	}

	if e.Name == "_" || !token.IsIdentifier(e.Name) {
		return invalid(fset, e.Pos, class, e.Name, "name %q is not a valid Go identifier", e.Name)
	}

	if strings.TrimSpace(e.Type) == "" {
		return invalid(fset, e.Pos, class, e.Name, "type must be set")
	}

	return nil
}

func invalid(fset *token.FileSet, pos token.Pos, class, field, format string, args ...any) error {
	err := diagnostic.Errorf(diagnostic.CodeInvalidAnnotation, class, field, format, args...)
	if fset != nil && pos.IsValid() {
		err.At(fset.Position(pos))
	}

	return err
}

// String renders the entry back in directive payload form.
func (e Entry) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "{name: %s, type: %q", e.Name, e.Type)

	if !e.IsRequired() {
		sb.WriteString(", required: false")
	}

	if e.Marshaler != "" {
		fmt.Fprintf(&sb, ", marshaler: %s", e.Marshaler)
	}

	sb.WriteString("}")

	return sb.String()
}
