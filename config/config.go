package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/blogem/adminaudit/models"
	"github.com/blogem/adminaudit/services"
)

// Config holds every runtime setting
type Config struct {
	Port         string
	DatabasePath string
	UseHTTPS     bool
	LogLevel     string
	LogFormat    string

	OIDC  OIDCConfig
	Audit AuditConfig
}

// OIDCConfig holds the admin login provider settings
type OIDCConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// AuditConfig holds the change log settings
type AuditConfig struct {
	// LogChanges is a bool, or a services.PolicyFunc built from an
	// except/only list in the config file
	LogChanges      any
	NeverAudited    []string
	SensitiveFields []string
}

var (
	ErrMissingDatabasePath = errors.New("database.path is required")
	ErrMissingOIDC         = errors.New("oidc.domain, oidc.client_id, oidc.client_secret and oidc.callback_url are required")
)

// Load reads .env (if present), then config.yaml from dir (if present), with
// ADMIN_* environment variables taking precedence
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("ADMIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("database.path", "adminaudit.db")
	v.SetDefault("use_https", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("audit.log_changes", true)
	v.SetDefault("audit.never_audited", []string{})
	v.SetDefault("audit.sensitive_fields", services.DefaultSensitiveFields)

	for _, key := range []string{
		"oidc.domain", "oidc.client_id", "oidc.client_secret", "oidc.callback_url",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v)
}

// fromViper builds and validates a Config from loaded settings
func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:         v.GetString("port"),
		DatabasePath: v.GetString("database.path"),
		UseHTTPS:     v.GetBool("use_https"),
		LogLevel:     v.GetString("log.level"),
		LogFormat:    v.GetString("log.format"),
		OIDC: OIDCConfig{
			Domain:       v.GetString("oidc.domain"),
			ClientID:     v.GetString("oidc.client_id"),
			ClientSecret: v.GetString("oidc.client_secret"),
			CallbackURL:  v.GetString("oidc.callback_url"),
		},
		Audit: AuditConfig{
			NeverAudited:    v.GetStringSlice("audit.never_audited"),
			SensitiveFields: v.GetStringSlice("audit.sensitive_fields"),
		},
	}

	logChanges, err := PolicySetting(v.Get("audit.log_changes"))
	if err != nil {
		return nil, err
	}
	cfg.Audit.LogChanges = logChanges

	if cfg.DatabasePath == "" {
		return nil, ErrMissingDatabasePath
	}

	return cfg, nil
}

// Validate checks settings that are only needed to serve traffic
func (c *Config) Validate() error {
	if c.OIDC.Domain == "" || c.OIDC.ClientID == "" || c.OIDC.ClientSecret == "" || c.OIDC.CallbackURL == "" {
		return ErrMissingOIDC
	}
	return nil
}

// AuditPolicy builds the change log policy from the audit settings
func (c *Config) AuditPolicy() (*services.AuditPolicy, error) {
	return services.NewAuditPolicy(c.Audit.LogChanges, c.Audit.NeverAudited...)
}

// PolicySetting converts a raw log_changes value from a config source into a
// value services.NewAuditPolicy accepts:
//
//	true | false | "true" | "false"
//	{except: [Type, ...]}   log everything but these entity types
//	{only: [Type, ...]}     log only these entity types
//
// Anything else is a configuration error.
func PolicySetting(raw any) (any, error) {
	switch v := raw.(type) {
	case nil, bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, &services.ConfigurationError{Setting: raw}
		}
		return b, nil
	case map[string]any:
		return typeListPolicy(v, raw)
	}
	return nil, &services.ConfigurationError{Setting: raw}
}

func typeListPolicy(m map[string]any, raw any) (any, error) {
	if len(m) != 1 {
		return nil, &services.ConfigurationError{Setting: raw}
	}

	for mode, list := range m {
		types, ok := stringSet(list)
		if !ok {
			return nil, &services.ConfigurationError{Setting: raw}
		}

		switch mode {
		case "except":
			return services.PolicyFunc(func(entity models.Entity, _ models.Action, _ *models.Admin) bool {
				return !types[entity.Type]
			}), nil
		case "only":
			return services.PolicyFunc(func(entity models.Entity, _ models.Action, _ *models.Admin) bool {
				return types[entity.Type]
			}), nil
		}
	}

	return nil, &services.ConfigurationError{Setting: raw}
}

func stringSet(list any) (map[string]bool, bool) {
	items, ok := list.([]any)
	if !ok {
		return nil, false
	}

	set := make(map[string]bool, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		set[s] = true
	}
	return set, true
}
