package main

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Settings struct {
	APIURL      string
	PodID       string
	APIID       string
	APIKey      string
	LogLevel    string
	StrictSizes bool
}

func bindSettings(v *viper.Viper, flags *pflag.FlagSet) error {
	flags.String("config", "", "path to a config file (yaml, json or toml)")
	flags.String("api-url", "", "control api url (IMGDOT_API_URL)")
	flags.String("pod-id", "", "pod identifier (IMGDOT_POD_ID)")
	flags.String("api-id", "", "api credential id (IMGDOT_API_ID)")
	flags.String("api-key", "", "api credential key (IMGDOT_API_KEY)")
	flags.String("log-level", "warn", "log level (IMGDOT_LOG_LEVEL)")
	flags.Bool("strict-sizes", false, "reject malformed size tokens instead of passing them to the proxy")

	v.SetEnvPrefix("IMGDOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v.BindPFlags(flags)
}

func loadSettings(v *viper.Viper) (Settings, error) {
	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, errors.Wrapf(err, "reading config file %s", configFile)
		}
	}

	settings := Settings{
		APIURL:      v.GetString("api-url"),
		PodID:       v.GetString("pod-id"),
		APIID:       v.GetString("api-id"),
		APIKey:      v.GetString("api-key"),
		LogLevel:    v.GetString("log-level"),
		StrictSizes: v.GetBool("strict-sizes"),
	}

	if settings.APIURL == "" {
		return Settings{}, errors.New("IMGDOT_API_URL (--api-url) is required")
	}

	if _, err := url.Parse(settings.APIURL); err != nil {
		return Settings{}, errors.Wrap(err, "parsing IMGDOT_API_URL")
	}

	if settings.PodID == "" {
		return Settings{}, errors.New("IMGDOT_POD_ID (--pod-id) is required")
	}

	return settings, nil
}
