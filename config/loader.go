package config

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/ini.v1"
)

// RunnerConfig is the result of loading a runner config file.
type RunnerConfig struct {
	// Path is the file path or source name the config was loaded from
	Path string

	// DBs are the declared database systems in file order
	DBs []DBSystem

	// Warnings are the non-fatal problems found while loading
	Warnings []error
}

// Loader reads runner config files. The zero value is not usable; create
// one with NewLoader.
type Loader struct {
	schema   Schema
	registry Registry
	factory  DBSystemFactory
	onWarn   func(error)
	logger   *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithSchema replaces the option table.
func WithSchema(s Schema) LoaderOption {
	return func(l *Loader) {
		l.schema = s
	}
}

// WithRegistry replaces the supported database registry.
func WithRegistry(r Registry) LoaderOption {
	return func(l *Loader) {
		l.registry = r
	}
}

// WithFactory replaces the DBSystem constructor.
func WithFactory(f DBSystemFactory) LoaderOption {
	return func(l *Loader) {
		if f != nil {
			l.factory = f
		}
	}
}

// WithWarningHandler sets the function called for every non-fatal warning.
// By default warnings are logged at WARN level.
func WithWarningHandler(fn func(error)) LoaderOption {
	return func(l *Loader) {
		l.onWarn = fn
	}
}

// WithLogger sets the logger used for debug output and default warnings.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader with the default schema and registry.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		schema:   DefaultSchema(),
		registry: DefaultRegistry(),
		factory:  NewDBSystem,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.onWarn == nil {
		l.onWarn = func(err error) {
			l.logger.Warn(err.Error())
		}
	}
	return l
}

// Load reads the runner config file at path with a default Loader.
func Load(path string, opts ...LoaderOption) (*RunnerConfig, error) {
	return NewLoader(opts...).Load(path)
}

// loadOptions keeps repeated sections and keys apart so checkUnique can
// reject them.
var loadOptions = ini.LoadOptions{
	AllowNonUniqueSections:     true,
	AllowShadows:               true,
	AllowDuplicateShadowValues: true,
}

// Load reads and parses the runner config file at path.
func (l *Loader) Load(path string) (*RunnerConfig, error) {
	return l.load(path, path)
}

// Parse reads a runner config from r. name identifies the source in errors.
func (l *Loader) Parse(name string, r io.Reader) (*RunnerConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ConfigFormatError{Path: name, Err: err}
	}
	return l.load(name, data)
}

func (l *Loader) load(name string, source any) (*RunnerConfig, error) {
	f, err := ini.LoadSources(loadOptions, source)
	if err != nil {
		return nil, &ConfigFormatError{Path: name, Err: err}
	}
	if err := checkUnique(f); err != nil {
		return nil, &ConfigFormatError{Path: name, Err: err}
	}
	return l.build(name, f)
}

// checkUnique rejects a section header or a key that appears more than
// once. The parser always opens an implicit default section first, so a
// single explicit [DEFAULT] header is not a repeat.
func checkUnique(f *ini.File) error {
	sections := make(map[string]bool)
	defaults := make(map[string]bool)
	for i, sec := range f.Sections() {
		name := sec.Name()
		if i > 0 || name != ini.DefaultSection {
			if sections[name] {
				return fmt.Errorf("section [%s] already exists", name)
			}
			sections[name] = true
		}

		for _, k := range sec.Keys() {
			if len(k.ValueWithShadows()) > 1 {
				return fmt.Errorf("section [%s]: option %q already exists", name, k.Name())
			}
			if name != ini.DefaultSection {
				continue
			}
			if defaults[k.Name()] {
				return fmt.Errorf("section [%s]: option %q already exists", name, k.Name())
			}
			defaults[k.Name()] = true
		}
	}
	return nil
}

func (l *Loader) build(path string, f *ini.File) (*RunnerConfig, error) {
	cfg := &RunnerConfig{Path: path}
	warn := func(err error) {
		cfg.Warnings = append(cfg.Warnings, err)
		l.onWarn(err)
	}

	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}

		opts, err := l.resolveOptions(f, sec, warn)
		if err != nil {
			return nil, err
		}
		dbs := l.resolveDatabases(f, sec, opts, warn)

		l.logger.Debug("parsed runner config section",
			"path", path,
			"section", sec.Name(),
			"databases", len(dbs))

		cfg.DBs = append(cfg.DBs, dbs...)
	}

	return cfg, nil
}

// ResolveOptions resolves the typed option set of section.
func (l *Loader) ResolveOptions(f *ini.File, section string) (Options, error) {
	sec, err := f.GetSection(section)
	if err != nil {
		return Options{}, fmt.Errorf("resolve options: %w", err)
	}
	return l.resolveOptions(f, sec, l.onWarn)
}

func (l *Loader) resolveOptions(f *ini.File, sec *ini.Section, warn func(error)) (Options, error) {
	var opts Options
	for _, key := range l.schema.Keys {
		coerce, ok := l.schema.Coercions[key]
		if !ok || coerce == nil {
			warn(&UnknownOptionKeyWarning{Section: sec.Name(), Key: key})
			continue
		}

		k := lookupKey(f, sec, string(key))
		if k == nil {
			return Options{}, &MissingOptionError{Section: sec.Name(), Key: key}
		}
		if err := coerce(&opts, k); err != nil {
			return Options{}, &InvalidOptionTypeError{
				Section: sec.Name(),
				Key:     key,
				Value:   k.String(),
				Err:     err,
			}
		}
		opts.resolved = append(opts.resolved, key)
	}
	return opts, nil
}

// ResolveDatabases builds the DBSystems declared in the header of section,
// all sharing opts. Unsupported names are reported and skipped.
func (l *Loader) ResolveDatabases(f *ini.File, section string, opts Options) ([]DBSystem, error) {
	sec, err := f.GetSection(section)
	if err != nil {
		return nil, fmt.Errorf("resolve databases: %w", err)
	}
	return l.resolveDatabases(f, sec, opts, l.onWarn), nil
}

func (l *Loader) resolveDatabases(f *ini.File, sec *ini.Section, opts Options, warn func(error)) []DBSystem {
	var dbs []DBSystem
	for _, decl := range splitHeader(sec.Name()) {
		name, label := ParseDeclaration(decl)
		if !l.registry.IsSupported(name) {
			warn(&UnsupportedDatabaseWarning{
				Section:   sec.Name(),
				Name:      name,
				Supported: l.registry.Supported,
			})
			continue
		}
		dbs = append(dbs, l.factory(name, opts, label, l.tableName(f, sec)))
	}
	return dbs
}

// tableName resolves the benchmark table for sec, falling back to the
// registry default.
func (l *Loader) tableName(f *ini.File, sec *ini.Section) string {
	if k := lookupKey(f, sec, KeyTableName); k != nil && k.String() != "" {
		return k.String()
	}
	return l.registry.DefaultTableName
}

// lookupKey finds name in sec, then in the default section. Keys before
// the first header and an explicit [DEFAULT] both count as default.
func lookupKey(f *ini.File, sec *ini.Section, name string) *ini.Key {
	if sec.HasKey(name) {
		return sec.Key(name)
	}
	defs, _ := f.SectionsByName(ini.DefaultSection)
	for _, def := range defs {
		if def.HasKey(name) {
			return def.Key(name)
		}
	}
	return nil
}
