package catalogfile

// File is the top-level structure of the jobs catalog YAML file.
type File struct {
	Jobs []Record `yaml:"jobs"`
}

// Record is a single posting as written in the catalog file. Validation tags
// are enforced by the mapper before a record becomes a domain job.
type Record struct {
	ID            string   `yaml:"id" validate:"required"`
	Title         string   `yaml:"title" validate:"required"`
	Company       string   `yaml:"company" validate:"required"`
	Location      string   `yaml:"location" validate:"required"`
	Mode          string   `yaml:"mode" validate:"required,oneof=Remote Hybrid Onsite"`
	Experience    string   `yaml:"experience"`
	Description   string   `yaml:"description"`
	Skills        []string `yaml:"skills"`
	SalaryRange   string   `yaml:"salaryRange"`
	Source        string   `yaml:"source"`
	PostedDaysAgo int      `yaml:"postedDaysAgo" validate:"min=0"`
	ApplyURL      string   `yaml:"applyUrl" validate:"omitempty,url"`
}
