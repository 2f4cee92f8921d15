package config

import (
	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Server struct {
	Host         string `toml:"host" env:"PADEL_HOST"`
	Port         int    `toml:"port" env:"PADEL_PORT"`
	SqliteFile   string `toml:"sqlite_file" env:"PADEL_SQLITE_FILE"`
	Debug        bool   `toml:"debug_mode" env:"PADEL_DEBUG"`
	TgBotEnabled bool   `toml:"tg_bot_enabled" env:"PADEL_TG_BOT_ENABLED"`
	// CertFile and KeyFile switch the listener to TLS when both are
	// set; cmd/certgen produces a local pair.
	CertFile string `toml:"cert_file" env:"PADEL_CERT_FILE"`
	KeyFile  string `toml:"key_file" env:"PADEL_KEY_FILE"`
}

// Schedule drives weekly training generation. Weekdays use the
// time.Weekday numbering, 0 is Sunday.
type Schedule struct {
	FixedDays       []int    `toml:"fixed_days"`
	Times           []string `toml:"times"`
	Coach           string   `toml:"coach"`
	MaxParticipants int      `toml:"max_participants"`
	BaseCost        int      `toml:"base_cost"`
}

type TgBot struct {
	TelegramApiToken string `toml:"telegram_api_token" env:"TELEGRAM_APITOKEN"`
	SqliteFile       string `toml:"sqlite_file" env:"PADEL_BOT_SQLITE_FILE"`
}

type Config struct {
	Server   Server
	Schedule Schedule
	TgBot    TgBot
}

func New() (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile("configs/server.toml", &cfg)
	if err != nil {
		return Config{}, err
	}
	err = env.Parse(&cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Default() Config {
	return Config{
		Server: Server{
			Host:       "localhost",
			Port:       3000,
			SqliteFile: "padel.sqlite",
		},
		Schedule: Schedule{
			FixedDays:       []int{3, 5, 0},
			Times:           []string{"18:00", "19:00", "20:00"},
			Coach:           "Алексей",
			MaxParticipants: 4,
			BaseCost:        4000,
		},
		TgBot: TgBot{
			SqliteFile: "padelbot.sqlite",
		},
	}
}
