package homepage

// ServicesConfig represents the top-level structure of a Homepage-style
// services.yaml. Homepage uses dynamic keys, so we parse as
// []map[group][]map[service]ServiceProps.
type ServicesConfig []map[string][]map[string]ServiceProps

// ServiceProps contains the service properties we care about when
// seeding; everything else in the file is ignored.
type ServiceProps struct {
	Href        string `yaml:"href"`
	Icon        string `yaml:"icon,omitempty"`
	Description string `yaml:"description,omitempty"`
}
