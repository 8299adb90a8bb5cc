// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/ini.v1"

	"github.com/ternaustralia/tern-uppy/sdk/config"
)

// Settings holds all logical keys. Tags:
// - vkey: Viper key
// - env: canonical env name (UPPER_SNAKE). If empty, derived from vkey
// - default: optional default to set if key is unset
type Settings struct {
	BaseURL            string `vkey:"asdc_base_url"         env:"ASDC_BASE_URL"`
	APIPrefix          string `vkey:"asdc_api_prefix"       env:"ASDC_API_PREFIX"       default:"api"`
	AwsAccessKeyID     string `vkey:"aws_access_key_id"     env:"AWS_ACCESS_KEY_ID"`
	AwsSecretAccessKey string `vkey:"aws_secret_access_key" env:"AWS_SECRET_ACCESS_KEY"`
	AwsSessionToken    string `vkey:"aws_session_token"     env:"AWS_SESSION_TOKEN"`
	AwsRegion          string `vkey:"aws_region"            env:"AWS_REGION"`
	AwsEndpointURL     string `vkey:"aws_endpoint_url"      env:"AWS_ENDPOINT_URL"`
	LogLevel           string `vkey:"log_level"             env:"LOG_LEVEL"             default:"info"`
	LogFormat          string `vkey:"log_format"            env:"LOG_FORMAT"            default:"json"`
}

// resolveEnvName: explicit env > "default"
func resolveEnvName(optionalEnv ...string) string {
	if len(optionalEnv) > 0 && optionalEnv[0] != "" && strings.ToLower(optionalEnv[0]) != "null" {
		return optionalEnv[0]
	}
	return "default"
}

// BindEnvFromStruct binds env for all fields of Settings using struct tags.
func BindEnvFromStruct() {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	rt := reflect.TypeOf(Settings{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)

		key := f.Tag.Get("vkey")
		if key == "" {
			continue
		}

		env := f.Tag.Get("env")
		if env == "" {
			env = strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		}
		_ = viper.BindEnv(key, env)

		if def := f.Tag.Get("default"); def != "" {
			viper.SetDefault(key, def)
		}
	}
}

func getIniPath() string {
	if p := os.Getenv(IniPathEnv); p != "" {
		return p
	}
	iniPath, err := os.UserHomeDir()
	if err != nil {
		iniPath = "."
	}
	return iniPath + string(os.PathSeparator) + IniName
}

// Load [DEFAULT] + [env] into Viper (TOML in-memory). ENV can still override on Get().
func loadIniSectionIntoViper(cfg *ini.File, env string) error {
	def := cfg.Section(ini.DefaultSection)
	selected := def
	if env != "" && cfg.HasSection(env) {
		selected = cfg.Section(env)
	}

	merged := make(map[string]string)
	for _, k := range def.Keys() {
		merged[k.Name()] = k.Value()
	}
	if selected != def {
		for _, k := range selected.Keys() {
			merged[k.Name()] = k.Value()
		}
	}

	var buf bytes.Buffer
	for k, v := range merged {
		vSafe := strings.ReplaceAll(strings.ReplaceAll(v, `\`, `\\`), `"`, `\"`)
		_, _ = fmt.Fprintf(&buf, "%s = \"%s\"\n", k, vSafe)
	}
	viper.SetConfigType("toml")
	return viper.ReadConfig(&buf)
}

// RegisterIniCfgWithViper:
// 1) bind ENV from struct
// 2) load the INI if present; a missing INI means ENV-only mode
// 3) load active section into Viper and set current_environment
//
// The INI is read only. Tokens are owned by the host and never persisted.
func RegisterIniCfgWithViper(optionalEnv ...string) error {
	BindEnvFromStruct()

	env := resolveEnvName(optionalEnv...)

	cfg, err := ini.Load(getIniPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			viper.Set(CurrentEnvironment, env)
			return nil
		}
		return fmt.Errorf("failed to read ini file: %w", err)
	}

	// active env: explicit > DEFAULT.current_environment > default
	if env == "default" {
		if v := cfg.Section(ini.DefaultSection).Key(CurrentEnvironment).String(); v != "" {
			env = v
		}
	}

	if err := loadIniSectionIntoViper(cfg, env); err != nil {
		return fmt.Errorf("failed to load INI into viper: %w", err)
	}
	viper.Set(CurrentEnvironment, env)
	return nil
}

// ConfigFromViper builds the SDK configuration from the current Viper state.
func ConfigFromViper() config.Config {
	return config.Config{
		Core: config.CoreConfig{
			BaseURL:   viper.GetString(AsdcBaseURL),
			APIPrefix: viper.GetString(AsdcAPIPrefix),
		},
		S3: config.S3Config{
			AccessKey:   viper.GetString(AwsAccessKeyID),
			SecretKey:   viper.GetString(AwsSecretAccessKey),
			AccessToken: viper.GetString(AwsSessionToken),
			Region:      viper.GetString(AwsRegion),
			EndpointURL: viper.GetString(AwsEndpointURL),
		},
		Log: config.LogConfig{
			Level:  viper.GetString(LogLevel),
			Format: viper.GetString(LogFormat),
		},
	}
}
