package matchmaking

import (
	"strings"
	"time"

	"github.com/devmatch/devmatch-backend/internal/db"
)

// Defaults applied when the store record is missing display fields.
const (
	defaultName = "Anonymous"
	defaultBio  = "No bio available"
	defaultRole = "Developer"
)

const year = 365 * 24 * time.Hour

// ToDeveloper normalizes a raw store profile into a Developer. Total:
// missing fields degrade to defaults, never to an error.
func ToDeveloper(p db.Profile) Developer {
	dev := Developer{
		ID:          p.UserID,
		Name:        p.Name,
		Bio:         p.Bio,
		Role:        p.Role,
		Skills:      make([]Skill, 0, len(p.Skills)),
		AvatarURL:   p.AvatarURL,
		Location:    p.Location,
		Experience:  experienceYears(p.WorkExperience, time.Now()),
		Company:     p.Company,
		Position:    p.Position,
		Education:   educationLine(p.Education),
		GithubURL:   p.GithubURL,
		LinkedinURL: p.LinkedinURL,
		WebsiteURL:  p.WebsiteURL,
		// A developer is "looking" exactly when their stated goal is
		// searching; it is never stored independently.
		Looking: Goal(p.Goal) == GoalSearching,
	}

	if strings.TrimSpace(dev.Name) == "" {
		dev.Name = defaultName
	}
	if strings.TrimSpace(dev.Bio) == "" {
		dev.Bio = defaultBio
	}
	if strings.TrimSpace(dev.Role) == "" {
		dev.Role = defaultRole
	}

	for _, s := range p.Skills {
		dev.Skills = append(dev.Skills, Skill{
			ID:    s.ID,
			Name:  s.Name,
			Level: ParseSkillLevel(s.Level),
		})
	}

	return dev
}

// experienceYears derives whole years of experience from a work-history
// record, rounding up. The end of the span defaults to now, both for a
// current position and for a record with no end date. A missing record or
// start date yields nil rather than a failure.
func experienceYears(w *db.WorkExperience, now time.Time) *int {
	if w == nil || w.StartDate == nil {
		return nil
	}

	end := now
	if !w.Current && w.EndDate != nil {
		end = *w.EndDate
	}

	elapsed := end.Sub(*w.StartDate)
	if elapsed < 0 {
		elapsed = 0
	}

	years := int(elapsed / year)
	if elapsed%year != 0 {
		years++
	}
	return &years
}

// educationLine flattens the zero-or-one education entry into a display
// string, e.g. "BSc in Computer Science, State University".
func educationLine(e *db.Education) string {
	if e == nil {
		return ""
	}

	var b strings.Builder
	if e.Degree != "" {
		b.WriteString(e.Degree)
	}
	if e.Field != "" {
		if b.Len() > 0 {
			b.WriteString(" in ")
		}
		b.WriteString(e.Field)
	}
	if e.School != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.School)
	}
	return b.String()
}
