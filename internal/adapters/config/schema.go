package config

// Stitchfile represents the structure of the stitch.yaml configuration file.
type Stitchfile struct {
	Version     string                `yaml:"version"`
	Root        string                `yaml:"root"`
	Output      string                `yaml:"output"`
	Environment EnvironmentDTO        `yaml:"environment"`
	Bundles     map[string]*BundleDTO `yaml:"bundles"`
}

// EnvironmentDTO represents the target environment in the configuration.
type EnvironmentDTO struct {
	Kind       string `yaml:"kind"`
	PublicPath string `yaml:"publicPath"`
}

// BundleDTO represents a bundle definition in the configuration.
type BundleDTO struct {
	Modules   []string `yaml:"modules"`
	Assets    []string `yaml:"assets"`
	Evaluate  []string `yaml:"evaluate"`
	DependsOn []string `yaml:"dependsOn"`
}
