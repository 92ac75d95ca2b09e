package plan

import (
	"gopkg.in/yaml.v3"

	"github.com/rsinukov/activityresult/internal/analyze"
)

// ClassReport is the YAML view of a resolved class.
type ClassReport struct {
	Class    string        `yaml:"class"`
	Result   string        `yaml:"result"`
	Dir      string        `yaml:"dir,omitempty"`
	Fields   []FieldReport `yaml:"fields"`
	Warnings []string      `yaml:"warnings,omitempty"`
}

// FieldReport is the YAML view of a resolved field.
type FieldReport struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Required  bool   `yaml:"required"`
	Op        string `yaml:"op,omitempty"`
	Rule      string `yaml:"rule,omitempty"`
	Strategy  string `yaml:"strategy"`
	Marshaler string `yaml:"marshaler,omitempty"`
}

// Export builds the report of rc.
func Export(rc *ResolvedClass) ClassReport {
	report := ClassReport{
		Class:  rc.Class.QualifiedName,
		Result: rc.Class.ResultName(),
		Dir:    rc.Class.Dir,
		Fields: make([]FieldReport, 0, len(rc.Fields)),
	}

	for _, f := range rc.Fields {
		fr := FieldReport{
			Name:     f.Name,
			Type:     analyze.TypeString(f.Type, rc.Class.Package),
			Required: f.Required,
			Op:       f.Op(),
			Strategy: f.Strategy.String(),
		}

		if f.Resolution.Rule != 0 {
			fr.Rule = f.Resolution.Rule.String()
		}

		if f.HasMarshaler() {
			fr.Marshaler = f.Marshaler.Name()
		}

		report.Fields = append(report.Fields, fr)
	}

	for _, w := range rc.Diagnostics.Warnings {
		report.Warnings = append(report.Warnings, w.Field+": "+w.Message)
	}

	return report
}

// ExportYAML renders the reports of every class as a YAML sequence.
func ExportYAML(classes []*ResolvedClass) ([]byte, error) {
	reports := make([]ClassReport, 0, len(classes))
	for _, rc := range classes {
		reports = append(reports, Export(rc))
	}

	return yaml.Marshal(reports)
}
