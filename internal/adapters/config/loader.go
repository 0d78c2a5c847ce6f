// Package config provides the configuration loader for stitch.
package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var validBundleNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	Resolver ports.InputResolver
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger, resolver ports.InputResolver) *Loader {
	return &Loader{Logger: logger, Resolver: resolver}
}

// Load finds stitch.yaml from cwd upwards and returns the validated project.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	dir, err := l.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(dir, domain.ConfigFileName)
	var file Stitchfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	env, err := l.buildEnvironment(file.Environment)
	if err != nil {
		return nil, err
	}

	root := resolveDir(dir, file.Root, ".")
	project := &domain.Project{
		Root:        root,
		OutputDir:   resolveDir(root, file.Output, domain.DefaultOutputDir),
		Environment: env,
		Graph:       domain.NewGraph(),
	}

	if err := l.addBundles(project, file.Bundles); err != nil {
		return nil, err
	}

	if err := project.Graph.Validate(); err != nil {
		return nil, err
	}

	return project, nil
}

// DiscoverRoot walks up from cwd to find the directory containing stitch.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	currentDir := filepath.Clean(cwd)
	for {
		if _, err := os.Stat(filepath.Join(currentDir, domain.ConfigFileName)); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no project configuration"), "cwd", cwd)
}

func (l *Loader) buildEnvironment(dto EnvironmentDTO) (domain.Environment, error) {
	env := domain.Environment{Kind: domain.EnvironmentKind(dto.Kind), PublicPath: dto.PublicPath}
	if env.Kind == "" {
		env.Kind = domain.EnvBrowser
	}
	if !env.Valid() {
		return domain.Environment{}, zerr.With(zerr.Wrap(domain.ErrUnknownEnvironment, "invalid environment"), "kind", dto.Kind)
	}
	if env.Kind == domain.EnvManifest && env.PublicPath != "" {
		l.Logger.Warn("'publicPath' has no effect for the manifest environment")
	}
	return env, nil
}

func (l *Loader) addBundles(project *domain.Project, bundles map[string]*BundleDTO) error {
	// Sorted names keep error reporting deterministic.
	names := make([]string, 0, len(bundles))
	for name := range bundles {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		dto := bundles[name]
		if dto == nil {
			dto = &BundleDTO{}
		}

		bundle, err := l.buildBundle(project.Root, name, dto, bundles)
		if err != nil {
			return err
		}

		if err := project.Graph.AddBundle(bundle); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) buildBundle(root, name string, dto *BundleDTO, all map[string]*BundleDTO) (*domain.Bundle, error) {
	if !validBundleNameRegex.MatchString(name) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidBundleName, "invalid bundle"), "bundle", name)
	}
	if len(dto.Evaluate) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoEntries, "invalid bundle"), "bundle", name)
	}
	for _, dep := range dto.DependsOn {
		if _, ok := all[dep]; !ok {
			err := zerr.With(zerr.Wrap(domain.ErrMissingDependency, "invalid bundle"), "bundle", name)
			return nil, zerr.With(err, "missing_dependency", dep)
		}
	}

	modules, err := l.resolve(dto.Modules, root, name)
	if err != nil {
		return nil, err
	}
	assets, err := l.resolve(dto.Assets, root, name)
	if err != nil {
		return nil, err
	}

	bundle := &domain.Bundle{
		Name:      domain.NewIdent(name),
		Modules:   domain.NewIdents(modules),
		Assets:    domain.NewIdents(assets),
		Evaluate:  domain.NewIdents(cleanPaths(dto.Evaluate)),
		DependsOn: domain.NewIdents(dto.DependsOn),
	}

	for _, entry := range bundle.Evaluate {
		if !bundle.HasModule(entry) {
			l.Logger.Warn(fmt.Sprintf("entry %s of bundle %s is not a declared module", entry, name))
		}
	}

	return bundle, nil
}

func (l *Loader) resolve(patterns []string, root, bundle string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	paths, err := l.Resolver.ResolveInputs(patterns, root)
	if err != nil {
		return nil, zerr.With(err, "bundle", bundle)
	}
	return paths, nil
}

// cleanPaths normalizes entry paths and keeps their declared order.
func cleanPaths(paths []string) []string {
	cleaned := make([]string, len(paths))
	for i, p := range paths {
		cleaned[i] = path.Clean(filepath.ToSlash(p))
	}
	return cleaned
}

func resolveDir(base, configured, fallback string) string {
	if configured == "" {
		configured = fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(base, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by walking up from cwd
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", configPath)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.With(errors.Join(domain.ErrConfigParseFailed, parseErr), "path", configPath)
	}

	return nil
}
