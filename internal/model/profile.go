package model

// Profile is the static portfolio payload served on the home route:
// hero intro, skill groups, work experience, featured projects, and
// contact links.
type Profile struct {
	Name       string       `json:"name"`
	Headline   string       `json:"headline"`
	Summary    string       `json:"summary"`
	Skills     []SkillGroup `json:"skills"`
	Experience []Experience `json:"experience"`
	Projects   []Project    `json:"projects"`
	Contact    Contact      `json:"contact"`
}

type SkillGroup struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
}

type Contact struct {
	Email    string `json:"email"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	YouTube  string `json:"youtube,omitempty"`
}
