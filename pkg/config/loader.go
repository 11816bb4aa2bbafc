package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/arthur-debert/bmad-swarm/pkg/logging"
	"github.com/arthur-debert/bmad-swarm/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment variables that override configuration.
const EnvPrefix = "BMAD_SWARM_"

// Format of a project configuration file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func (f Format) parser() koanf.Parser {
	if f == FormatTOML {
		return toml.Parser()
	}
	return yaml.Parser()
}

// Options tune a load.
type Options struct {
	// Overrides are flat dotted keys applied last ("methodology.autonomy").
	Overrides map[string]interface{}
	// KnownAgents are the agent names accepted under "agents". Nil skips the
	// check.
	KnownAgents []string
	// SkipEnv ignores BMAD_SWARM_* variables.
	SkipEnv bool
}

// FindProjectFile returns the configuration file of a project and its
// format. swarm.yaml wins over swarm.toml.
func FindProjectFile(p *paths.ProjectPaths) (string, Format, bool) {
	if _, err := os.Stat(p.ConfigYAML()); err == nil {
		return p.ConfigYAML(), FormatYAML, true
	}
	if _, err := os.Stat(p.ConfigTOML()); err == nil {
		return p.ConfigTOML(), FormatTOML, true
	}
	return "", "", false
}

// Load reads, merges and validates the configuration of the project at p.
func Load(p *paths.ProjectPaths, opts Options) (*Config, error) {
	logger := logging.GetLogger("config")

	path, format, ok := FindProjectFile(p)
	if !ok {
		return nil, errors.Newf(errors.ErrConfigLoad, "swarm.yaml not found at %s", p.ConfigYAML()).
			WithDetail("path", p.ConfigYAML())
	}
	logger.Debug().Str("path", path).Str("format", string(format)).Msg("loading project config")

	return load(func(k *koanf.Koanf) error {
		if err := k.Load(file.Provider(path), format.parser()); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		return nil
	}, opts)
}

// Parse merges an in-memory project file over the defaults and validates
// the result.
func Parse(data []byte, format Format, opts Options) (*Config, error) {
	return load(func(k *koanf.Koanf) error {
		if err := k.Load(&rawBytesProvider{bytes: data}, format.parser()); err != nil {
			return errors.Wrap(err, errors.ErrConfigParse, "failed to parse config")
		}
		return nil
	}, opts)
}

// Default returns the built-in configuration with nothing merged on top.
func Default() *Config {
	cfg, err := load(func(*koanf.Koanf) error { return nil }, Options{SkipEnv: true})
	if err != nil {
		// The embedded defaults are part of the binary.
		panic(err)
	}
	return cfg
}

func load(project func(k *koanf.Koanf) error, opts Options) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Project file
	if err := project(k); err != nil {
		return nil, err
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Caller overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	if problems := Validate(cfg, opts.KnownAgents); len(problems) > 0 {
		return nil, errors.Newf(errors.ErrConfigValid,
			"invalid swarm configuration:\n  - %s", strings.Join(problems, "\n  - ")).
			WithDetail("problems", problems)
	}
	return cfg, nil
}

// envKey maps BMAD_SWARM_METHODOLOGY__AUTONOMY to methodology.autonomy.
// Variables without a "__" are not configuration (BMAD_SWARM_ROOT) and are
// skipped.
func envKey(s string) string {
	key := strings.TrimPrefix(s, EnvPrefix)
	if !strings.Contains(key, "__") {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(key), "__", ".")
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if cfg.Agents == nil {
		cfg.Agents = map[string]AgentConfig{}
	}
	return &cfg, nil
}
