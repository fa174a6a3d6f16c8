// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"fmt"
	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"io/fs"
	"reflect"
	"strings"
)

type Config struct {
	Port          string `mapstructure:"PORT" validate:"required,numeric"`
	SelfTLS       bool   `mapstructure:"SELF_TLS" validate:"required_without_all=TLSCert TLSKey"`
	TLSCert       string `mapstructure:"TLS_CERT" validate:"required_if=SelfTLS false,required_with=TLSKey"`
	TLSKey        string `mapstructure:"TLS_KEY" validate:"required_if=SelfTLS false,required_with=TLSCert"`
	WordListFile  string `mapstructure:"WORDLIST_FILE" validate:"omitempty,file"`
	ScenariosFile string `mapstructure:"SCENARIOS_FILE" validate:"omitempty,file"`
	Debug         bool   `mapstructure:"DEBUG"`
}

func bindEnvs(v *viper.Viper, iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		fv := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch fv.Kind() {
		case reflect.Struct:
			bindEnvs(v, fv.Interface(), append(parts, tv)...)
		default:
			_ = v.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "numeric":
		return "This field must be a number"
	case "file":
		return "This field must point to an existing file"
	case "required_without_all":
		return fmt.Sprintf("This field is required if fields [%s] are missing", util.ToScreamingSnakeCase(fe.Param()))
	case "required_if":
		return fmt.Sprintf("This field is required if %s", util.ToScreamingSnakeCase(fe.Param()))
	case "required_with":
		return fmt.Sprintf("This field requires the presence of %s", util.ToScreamingSnakeCase(fe.Param()))
	}
	return fe.Error() // default error
}

// LoadConfig reads the server configuration from the environment. A .env file
// in the working directory, if present, is loaded first without overriding
// variables that are already set. The result is not validated.
func LoadConfig() (config Config, err error) {
	if err = godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// This is to not require a config file to unmarshal Envs in a struct
	// https://github.com/spf13/viper/issues/188#issuecomment-399884438
	config = Config{}
	bindEnvs(v, config)

	err = v.Unmarshal(&config)
	return
}

// Validate checks the configuration and joins every problem in one error.
func (c Config) Validate() error {
	validate := validator.New()
	// Report the env var names, not the Go field names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})
	if err := validate.Struct(&c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			var msgs []string
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), msgForTag(fe)))
			}

			return errors.New(strings.Join(msgs, ". "))
		}
		return fmt.Errorf("error validating configuration: %w", err)
	}

	return nil
}
