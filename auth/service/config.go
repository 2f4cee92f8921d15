package service

import (
	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Rule struct {
	Name   string   `toml:"name"`
	Path   string   `toml:"path"`
	Method []string `toml:"method"`
	Allow  []string `toml:"allow"`
	Order  int      `toml:"order"`
}

type Config struct {
	Token         string `toml:"token" env:"PADEL_AUTH_TOKEN"`
	Expiration    string `toml:"expiration" env:"PADEL_AUTH_EXPIRATION"`
	AdminTelegram string `toml:"admin_telegram" env:"PADEL_ADMIN_TELEGRAM"`
	Rules         []Rule `toml:"rules"`
}

func ReadConfig(path string) (Config, error) {
	cfg := Config{
		Expiration: "24h",
	}
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	err = env.Parse(&cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
