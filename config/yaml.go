package config

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Yaml is a Source parsing one YAML document.
type Yaml struct {
	r io.Reader
}

// FromYaml returns a source reading a YAML document from r.
func FromYaml(r io.Reader) Yaml {
	return Yaml{r: r}
}

// Apply implements Source.
func (src Yaml) Apply(tree Map) (err error) {
	data, err := io.ReadAll(src.r)
	if err != nil {
		return
	}

	m := map[string]any{}
	err = yaml.Unmarshal(data, &m)
	if err != nil {
		err = ErrYaml{Err: err}
		return
	}
	return Map(m).Apply(tree)
}
