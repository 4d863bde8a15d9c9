package profile

// skillVocabulary is the canonical skill dictionary. Extracted skills are
// always reported with the casing given here.
var skillVocabulary = []string{
	"Python", "Java", "JavaScript", "React", "Node.js", "Flask", "Django", "C++", "C#", "Go", "Rust",
	"Machine Learning", "Deep Learning", "AI", "Data Science", "TensorFlow", "PyTorch", "Keras",
	"Scikit-learn", "SQL", "MongoDB", "PostgreSQL", "MySQL", "AWS", "Azure", "GCP", "Docker",
	"Kubernetes", "Git", "GitHub", "Linux", "Ubuntu", "HTML", "CSS", "TypeScript", "Pandas", "NumPy",
	"OpenCV", "FastAPI", "Jenkins", "CI/CD", "Agile", "Scrum", "Tableau", "PowerBI",
}

// multiWordSkills are phrases matched by substring before tokenization,
// since the tokenizer would split them apart.
var multiWordSkills = []string{
	"Machine Learning", "Deep Learning", "Data Science", "Computer Vision",
	"Natural Language Processing", "Software Engineering", "Web Development",
	"Mobile Development", "Cloud Computing", "DevOps", "Full Stack",
}

// skillStopWords are common resume words that fuzzy-match vocabulary entries
// by accident and must never reach the matcher.
var skillStopWords = map[string]bool{
	"the": true, "and": true, "or": true, "with": true, "for": true, "in": true,
	"on": true, "at": true, "to": true, "of": true, "a": true, "an": true,
	"is": true, "are": true, "was": true, "were": true, "been": true,
	"have": true, "has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "can": true,
	"may": true, "might": true, "must": true, "shall": true,
	"education": true, "experience": true, "project": true, "projects": true,
	"work": true, "worked": true, "working": true,
	"developed": true, "developing": true, "created": true, "creating": true,
	"designed": true, "designing": true, "implemented": true, "implementing": true,
	"used": true, "using": true,
	"skills": true, "technical": true, "programming": true, "languages": true,
	"technologies": true, "tools": true, "frameworks": true, "libraries": true,
	"databases": true, "platforms": true, "systems": true, "applications": true,
	"software": true, "hardware": true, "mobile": true, "web": true,
	"linkedin": true, "github": true, "leetcode": true,
	"email": true, "phone": true, "address": true,
}

// nameSkipKeywords mark header lines that are contact info, not a name.
var nameSkipKeywords = []string{
	"linkedin", "github", "mobile", "phone", "email", "portfolio", "website", "resume",
}

// sectionKeywords are headings a name line never starts with.
var sectionKeywords = []string{
	"objective", "summary", "education", "experience", "skills",
}
