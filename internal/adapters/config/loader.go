// Package config provides the configuration loader for crmadmin.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is used when neither the config file nor the environment sets one.
const DefaultBaseURL = "http://localhost:5000/api"

var _ ports.ConfigLoader = (*Loader)(nil)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Loader implements ports.ConfigLoader using a YAML file and environment overrides.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
	// Environ supplies environment variables. Nil means the process environment.
	Environ map[string]string
}

// NewLoader creates a new Loader reading the real filesystem and environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load resolves settings: defaults, then the nearest crmadmin.yaml, then CRMADMIN_* overrides.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	settings.BaseURL = DefaultBaseURL

	configPath, err := l.DiscoverConfigPath(cwd)
	if err != nil {
		return domain.Settings{}, err
	}

	if configPath != "" {
		var file File
		if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
			return domain.Settings{}, err
		}
		l.applyFile(&settings, &file, configPath)
	}

	if err := l.applyEnv(&settings); err != nil {
		return domain.Settings{}, err
	}

	if err := check(settings); err != nil {
		return domain.Settings{}, zerr.With(err, "config_path", configPath)
	}

	return settings, nil
}

// DiscoverConfigPath walks up from cwd to find crmadmin.yaml. It returns "" when none exists.
func (l *Loader) DiscoverConfigPath(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, statErr := l.FS.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) applyFile(s *domain.Settings, file *File, configPath string) {
	if file.API.BaseURL != "" {
		s.BaseURL = strings.TrimRight(file.API.BaseURL, "/")
	}
	if file.API.Token != "" {
		s.Token = file.API.Token
		if l.Logger != nil {
			l.Logger.Warn(fmt.Sprintf("api.token in %s is stored in plain text; prefer %sTOKEN", configPath, domain.EnvPrefix))
		}
	}
	if file.API.Timeout != 0 {
		s.Timeout = file.API.Timeout
	}
	if file.API.RateLimit != 0 {
		s.RateLimit = file.API.RateLimit
	}
	if file.List.PageSize != 0 {
		s.PageSize = file.List.PageSize
	}
	if file.Cache.StaleAfter != 0 {
		s.StaleAfter = file.Cache.StaleAfter
	}
	if file.Cache.RefetchOnInvalidate != nil {
		s.RefetchOnInvalidate = *file.Cache.RefetchOnInvalidate
	}
	if file.Log.Level != "" {
		s.LogLevel = strings.ToLower(file.Log.Level)
	}
	if file.Log.JSON {
		s.LogJSON = true
	}
	if file.Metrics.Addr != "" {
		s.MetricsAddr = file.Metrics.Addr
	}
}

func (l *Loader) applyEnv(s *domain.Settings) error {
	opts := env.Options{Prefix: domain.EnvPrefix}
	if l.Environ != nil {
		opts.Environment = l.Environ
	}

	var o envOverrides
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return zerr.Wrap(err, domain.ErrEnvParseFailed.Error())
	}

	if o.BaseURL != nil {
		s.BaseURL = strings.TrimRight(*o.BaseURL, "/")
	}
	if o.Token != nil {
		s.Token = *o.Token
	}
	if o.Timeout != nil {
		s.Timeout = *o.Timeout
	}
	if o.PageSize != nil {
		s.PageSize = *o.PageSize
	}
	if o.RateLimit != nil {
		s.RateLimit = *o.RateLimit
	}
	if o.StaleAfter != nil {
		s.StaleAfter = *o.StaleAfter
	}
	if o.RefetchOnInvalidate != nil {
		s.RefetchOnInvalidate = *o.RefetchOnInvalidate
	}
	if o.LogLevel != nil {
		s.LogLevel = strings.ToLower(*o.LogLevel)
	}
	if o.LogJSON != nil {
		s.LogJSON = *o.LogJSON
	}
	if o.MetricsAddr != nil {
		s.MetricsAddr = *o.MetricsAddr
	}
	return nil
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *File) error {
	configFile, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "config_path", configPath)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "config_path", configPath)
	}

	return nil
}

// check validates merged settings and reports every failing field.
func check(s domain.Settings) error {
	err := validate.Struct(rules{
		BaseURL:     s.BaseURL,
		Timeout:     s.Timeout,
		PageSize:    s.PageSize,
		RateLimit:   s.RateLimit,
		StaleAfter:  s.StaleAfter,
		LogLevel:    s.LogLevel,
		MetricsAddr: s.MetricsAddr,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return zerr.Wrap(zerr.New(strings.Join(msgs, "\n")), domain.ErrConfigInvalid.Error())
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "url":
		return fe.Field() + " must be an absolute URL"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "hostname_port":
		return fe.Field() + " must be host:port"
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
