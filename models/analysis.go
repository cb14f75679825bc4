package models

// Importance ranks a skill gap
type Importance string

const (
	ImportanceCritical   Importance = "critical"
	ImportanceImportant  Importance = "important"
	ImportanceNiceToHave Importance = "nice-to-have"
)

// ResourceType classifies a learning resource
type ResourceType string

const (
	ResourceCourse        ResourceType = "course"
	ResourceDocumentation ResourceType = "documentation"
	ResourceTutorial      ResourceType = "tutorial"
	ResourceBook          ResourceType = "book"
	ResourceVideo         ResourceType = "video"
)

// Level is the difficulty of a learning resource
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// SkillGap is a skill the target role needs that the résumé lacks
type SkillGap struct {
	Skill       string     `json:"skill" example:"Kubernetes"`
	Importance  Importance `json:"importance" example:"critical" enums:"critical,important,nice-to-have"`
	Description string     `json:"description"`
}

// LearningResource is a course, book or similar pointer for closing a gap
type LearningResource struct {
	Title         string       `json:"title"`
	Type          ResourceType `json:"type" example:"course" enums:"course,documentation,tutorial,book,video"`
	Provider      string       `json:"provider" example:"Coursera"`
	URL           string       `json:"url" example:"https://www.coursera.org/"`
	EstimatedTime string       `json:"estimatedTime" example:"20 hours"`
	Level         Level        `json:"level" example:"intermediate" enums:"beginner,intermediate,advanced"`
}

// Certification is a recommended credential
type Certification struct {
	Name            string `json:"name" example:"CKA"`
	Provider        string `json:"provider" example:"CNCF"`
	Relevance       string `json:"relevance"`
	URL             string `json:"url"`
	EstimatedCost   string `json:"estimatedCost" example:"$395"`
	PreparationTime string `json:"preparationTime" example:"2-3 months"`
}

// AnalysisResult represents an AI skill-gap analysis
// @Description Skill gap analysis of a résumé against a target position
type AnalysisResult struct {
	Summary           string              `json:"summary"`
	CurrentSkills     FlexibleStringSlice `json:"currentSkills" swaggertype:"array,string"`
	SkillGaps         []SkillGap          `json:"skillGaps"`
	LearningResources []LearningResource  `json:"learningResources"`
	Certifications    []Certification     `json:"certifications"`
	Roadmap           FlexibleStringSlice `json:"roadmap" swaggertype:"array,string"`
}
