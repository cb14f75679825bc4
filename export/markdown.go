package export

import (
	"fmt"
	"strings"

	"github.com/pivot/backend/models"
)

// renderMarkdown writes user text verbatim; no Markdown escaping is applied.
func renderMarkdown(data *models.ResumeData) ([]byte, error) {
	var md strings.Builder
	c := data.Contact

	fmt.Fprintf(&md, "# %s\n\n", c.FullName)

	parts := contactParts(c)
	if c.LinkedIn != "" {
		parts = append(parts, fmt.Sprintf("[LinkedIn](%s)", c.LinkedIn))
	}
	if c.Website != "" {
		parts = append(parts, fmt.Sprintf("[Website](%s)", c.Website))
	}
	md.WriteString(strings.Join(parts, " | "))
	md.WriteString("\n\n")

	if data.Summary != "" {
		fmt.Fprintf(&md, "## Summary\n\n%s\n\n", data.Summary)
	}

	if len(data.Experience) > 0 {
		md.WriteString("## Experience\n\n")
		for _, job := range data.Experience {
			fmt.Fprintf(&md, "### %s at %s\n", job.Position, job.Company)
			fmt.Fprintf(&md, "*%s - %s* | %s\n\n", job.StartDate, job.EndDate, job.Location)
			for _, h := range job.Highlights {
				fmt.Fprintf(&md, "- %s\n", h)
			}
			md.WriteString("\n")
		}
	}

	if len(data.Education) > 0 {
		md.WriteString("## Education\n\n")
		for _, edu := range data.Education {
			fmt.Fprintf(&md, "### %s in %s\n", edu.Degree, edu.Field)
			fmt.Fprintf(&md, "**%s** | %s", edu.Institution, edu.GraduationDate)
			if edu.GPA != "" {
				fmt.Fprintf(&md, " | GPA: %s", edu.GPA)
			}
			md.WriteString("\n")
			for _, h := range edu.Highlights {
				fmt.Fprintf(&md, "- %s\n", h)
			}
			md.WriteString("\n")
		}
	}

	if len(data.Skills) > 0 {
		fmt.Fprintf(&md, "## Skills\n\n%s\n\n", strings.Join(data.Skills, ", "))
	}

	if len(data.Certifications) > 0 {
		md.WriteString("## Certifications\n\n")
		for _, cert := range data.Certifications {
			fmt.Fprintf(&md, "- %s\n", cert)
		}
		md.WriteString("\n")
	}

	if len(data.Languages) > 0 {
		fmt.Fprintf(&md, "## Languages\n\n%s\n", strings.Join(data.Languages, ", "))
	}

	return []byte(md.String()), nil
}
