package config

import (
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/hashicorp/go-multierror"
)

type (
	CarrotConfig struct {
		WebAppConfig WebAppConfig `yaml:"web_app" mapstructure:"web_app"`
		StoreConfig  Store        `yaml:"database" mapstructure:"database" validate:"required"`
		CacheConfig  Cache        `yaml:"cache" mapstructure:"cache"`
		Telemetry    Telemetry    `yaml:"telemetry" mapstructure:"telemetry"`
		HTTP         HTTP         `yaml:"http" mapstructure:"http" validate:"required"`
		Environment  Environment  `yaml:"environment" mapstructure:"environment" validate:"required,oneof=PRODUCTION STAGING LOCAL CI"`
		Debug        bool         `yaml:"debug" mapstructure:"debug"`
	}

	WebAppConfig struct {
		AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins" validate:"required"`
	}

	HTTP struct {
		Host string `yaml:"host" mapstructure:"host" validate:"required"`
		FQDN string `yaml:"fqdn" mapstructure:"fqdn" validate:"required"`
		TLS  TLS    `yaml:"tls" mapstructure:"tls" validate:"-"`
		Port uint   `yaml:"port" mapstructure:"port" validate:"required"`
	}

	TLS struct {
		PrivateKey string `yaml:"priv_key" mapstructure:"priv_key"`
		PubKey     string `yaml:"pub_key" mapstructure:"pub_key"`
		Enabled    bool   `yaml:"enabled" mapstructure:"enabled"`
	}

	Store struct {
		Kind               string `yaml:"kind" mapstructure:"kind" validate:"required,oneof=Postgres SQLite"`
		User               string `yaml:"username" mapstructure:"username"`
		Host               string `yaml:"host" mapstructure:"host"`
		Password           string `yaml:"password" mapstructure:"password"`
		Database           string `yaml:"name" mapstructure:"name"`
		Port               int    `yaml:"port" mapstructure:"port"`
		MaxOpenConnections int    `yaml:"max_open_connections" mapstructure:"max_open_connections"`
	}

	Cache struct {
		DSN     string `yaml:"dsn" mapstructure:"dsn"`
		Channel string `yaml:"channel" mapstructure:"channel"`
		Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	}

	Telemetry struct {
		Logging Logging `yaml:"logging" mapstructure:"logging"`
	}

	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Pretty bool   `yaml:"pretty" mapstructure:"pretty"`
	}
)

func (h *HTTP) Address() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

func (sc *Store) Endpoint() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		sc.User, sc.Password, sc.Host, sc.Port, sc.Database,
	)
}

func (cc *CarrotConfig) Endpoint() string {
	switch cc.Environment {
	case Local, CI:
		return fmt.Sprintf("http://%s:%d", cc.HTTP.Host, cc.HTTP.Port)
	default:
		return fmt.Sprintf("https://%s", cc.HTTP.FQDN)
	}
}

func (cc *CarrotConfig) Validate() error {
	if cc == nil {
		return fmt.Errorf("invalid config, cannot be nil")
	}
	v := validator.New()

	english := en.New()
	uni := ut.New(english, english)
	trans, ok := uni.GetTranslator("en")
	if !ok {
		return fmt.Errorf("translation not available for the given language")
	}
	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return err
	}

	var e error
	e = multierror.Append(e, translateError(v.Struct(cc), trans))

	merr := e.(*multierror.Error)
	if merr.ErrorOrNil() != nil {
		return merr
	}

	return nil
}

func translateError(err error, trans ut.Translator) error {
	if err != nil {
		var translatedErr error
		validatorErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, e := range validatorErrs {
			translatedErr = multierror.Append(translatedErr, fmt.Errorf("%s", e.Translate(trans)))
		}

		return translatedErr
	}

	return nil
}

type Environment string

const (
	Production Environment = "PRODUCTION"
	Staging    Environment = "STAGING"
	Local      Environment = "LOCAL"
	CI         Environment = "CI"
)

func (e Environment) String() string {
	return string(e)
}
