package yamlroster

type yamlRoster struct {
	Name    string       `yaml:"name"`
	Members []yamlMember `yaml:"members"`
}

type yamlMember struct {
	Kind       string `yaml:"kind"`
	First      string `yaml:"first"`
	Last       string `yaml:"last"`
	Middle     string `yaml:"middle"`
	Department string `yaml:"department"`
}
