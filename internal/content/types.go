package content

// Model is the unified in-memory representation of all loaded portfolio
// content. A Model is built once per successful load and never mutated
// afterwards; a reload replaces it wholesale.
type Model struct {
	Achievements []Achievement `json:"achievements"`
	Skills       SkillSource   `json:"skills"`
	Projects     []Project     `json:"projects"`
}

// Achievement is a single entry of the achievement gallery.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// SkillCategory groups skills under a heading in the structured skill view.
type SkillCategory struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// Skill is one skill with a 0-5 proficiency rating.
type Skill struct {
	Name        string  `json:"name"`
	Proficiency float64 `json:"proficiency"`
	Notes       string  `json:"notes"`
}

// Project is one card of the project carousel.
type Project struct {
	Title    string `json:"title"`
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
	Outcome  string `json:"outcome"`
}

// SourceKind tags which shape a SkillSource was loaded from.
type SourceKind string

const (
	SourceNone        SourceKind = ""
	SourceFlat        SourceKind = "flat"
	SourceCategorized SourceKind = "categorized"
)

// SkillSource is the tagged variant Flat([]string) | Categorized([]SkillCategory).
// Renderers never switch on Kind; they consume Categories, which Normalize
// fills for both variants.
type SkillSource struct {
	Kind       SourceKind      `json:"kind"`
	Flat       []string        `json:"flat,omitempty"`
	Categories []SkillCategory `json:"categories"`
}

// ContentDocument is the wire shape of the achievements/projects source.
type ContentDocument struct {
	Achievements []Achievement `json:"achievements"`
	Projects     []Project     `json:"projects"`
	Skills       []string      `json:"skills"`
}

// SkillsDocument is the wire shape of the optional skills-detail source.
type SkillsDocument struct {
	SkillCategories []SkillCategory `json:"skillCategories"`
}
