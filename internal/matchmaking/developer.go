package matchmaking

// SkillLevel is the proficiency attached to a skill on a normalized profile.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// ParseSkillLevel normalizes a stored level string. Unknown or empty values
// default to Intermediate: the store sometimes carries only a skill name.
func ParseSkillLevel(s string) SkillLevel {
	switch SkillLevel(s) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return SkillLevel(s)
	}
	return LevelIntermediate
}

// Skill is one entry in a developer's ordered skill list.
type Skill struct {
	ID    uint64
	Name  string
	Level SkillLevel
}

// Developer is the normalized candidate profile handed to the feed.
// Skills is never nil (empty slice when the profile has none). Experience
// is nil when the work history carries no usable start date.
type Developer struct {
	ID          uint64
	Name        string
	Bio         string
	Role        string
	Skills      []Skill
	AvatarURL   string
	Location    string
	Experience  *int
	Company     string
	Position    string
	Education   string
	GithubURL   string
	LinkedinURL string
	WebsiteURL  string
	Looking     bool
}

// Filters is the optional predicate bag accepted by the feed query.
//
// Only Location is applied to the store query today. ExperienceMin/Max,
// LookingForWork and Skills are accepted through every signature but not
// yet enforced; see ProfileRepository.FindByGoals.
type Filters struct {
	Location       string
	ExperienceMin  *int
	ExperienceMax  *int
	LookingForWork *bool
	Skills         []string
}
