package export

import (
	"bytes"
	"text/template"
	"time"

	"github.com/stakemap/stakemap/pkg/errors"
	"github.com/stakemap/stakemap/pkg/stakemap"
)

// section order is fixed so regenerating a guide never reshuffles it.
var sectionOrder = []struct {
	Category stakemap.Category
	Title    string
}{
	{stakemap.CategoryAdvocate, "Key advocates"},
	{stakemap.CategoryAlly, "Allies"},
	{stakemap.CategoryDecisionmaker, "Decision makers"},
	{stakemap.CategoryDependency, "Dependencies"},
	{stakemap.CategoryOpportunity, "Opportunities"},
	{stakemap.CategoryObstacle, "Obstacles to navigate"},
}

type mdDoc struct {
	Name      string
	Generated string
	Sections  []mdSection
}

type mdSection struct {
	Title        string
	Stakeholders []mdStakeholder
}

type mdStakeholder struct {
	Name      string
	Headline  string
	Influence string
	Notes     string
	Tips      string
}

var mdTemplate = template.Must(template.New("markdown").Parse(`# {{.Name}}

*Stakeholder map • Generated {{.Generated}}*

---

{{range .Sections}}## {{.Title}}

{{range .Stakeholders}}### {{.Name}}

{{if .Headline}}**{{.Headline}}**

{{end}}*Influence: {{.Influence}}*

{{if .Notes}}{{.Notes}}

{{end}}{{if .Tips}}> **Tip:** {{.Tips}}

{{end}}{{end}}{{end}}`))

// Markdown renders a field-guide document for the map, grouped by category
// in a fixed section order. Notes and interaction tips of stakeholders
// marked private are left out, so the document is safe to hand around even
// when the underlying map holds sensitive annotations. Categories outside
// the known set are omitted.
func Markdown(m *stakemap.Map, generated time.Time) ([]byte, error) {
	grouped := make(map[stakemap.Category][]mdStakeholder)
	for _, sh := range m.Stakeholders {
		entry := mdStakeholder{
			Name:      sh.Name,
			Headline:  headline(sh.Role, sh.Organization),
			Influence: string(sh.Influence),
		}
		if !sh.IsPrivate {
			entry.Notes = sh.Notes
			entry.Tips = sh.InteractionTips
		}
		grouped[sh.Category] = append(grouped[sh.Category], entry)
	}

	doc := mdDoc{
		Name:      m.Name,
		Generated: generated.Format("January 2, 2006"),
	}
	for _, s := range sectionOrder {
		if len(grouped[s.Category]) == 0 {
			continue
		}
		doc.Sections = append(doc.Sections, mdSection{
			Title:        s.Title,
			Stakeholders: grouped[s.Category],
		})
	}

	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render markdown")
	}
	return buf.Bytes(), nil
}

// headline joins role and organization into the "Role at Org" byline.
// Either part may be absent.
func headline(role, organization string) string {
	switch {
	case role != "" && organization != "":
		return role + " at " + organization
	case role != "":
		return role
	default:
		return organization
	}
}
