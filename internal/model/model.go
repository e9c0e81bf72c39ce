package model

// Page is one entry in the build manifest: which template renders it,
// which output folder it lands in, and the data it carries. Folders are
// unique within a manifest; the empty folder is the site root. Every
// page writes to <folder>/index.html so static hosts resolve the clean
// URL (/about rather than /about.html) without rewrite rules.
type Page struct {
	Folder   string `yaml:"folder"`
	Template string `yaml:"template"`
	Title    string `yaml:"title"`

	// Content optionally names a markdown file (relative to the content
	// directory) whose rendered body the template receives as .Content.
	Content string `yaml:"content"`

	Params map[string]interface{} `yaml:"params"`
}

// User is the profile record shown on the profile page.
type User struct {
	Name      string   `mapstructure:"name" yaml:"name"`
	FirstName string   `mapstructure:"firstname" yaml:"firstname"`
	ID        string   `mapstructure:"id" yaml:"id"`
	Hobbies   []string `mapstructure:"hobbies" yaml:"hobbies"`
}
