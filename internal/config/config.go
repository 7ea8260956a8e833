package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

type Config struct {
	LogLevel       string   `yaml:"log-level"       env:"LOG_LEVEL"       env-default:"info"`
	LogFile        string   `yaml:"log-file"        env:"LOG_FILE"`
	DictionaryPath string   `yaml:"dictionary-path" env:"DICTIONARY_PATH" env-default:"google-10000-english-no-swears.txt"`
	Slot           string   `yaml:"slot"            env:"HANGMAN_SLOT"`
	Snapshot       Snapshot `yaml:"snapshot"`
	Storage        Storage  `yaml:"storage"`
}

type Snapshot struct {
	Format string `yaml:"format" env:"SNAPSHOT_FORMAT" env-default:"json"`
}

type Storage struct {
	Driver     string `yaml:"driver"      env:"STORAGE_DRIVER" env-default:"file"`
	SaveDir    string `yaml:"save-dir"    env:"SAVE_DIR"       env-default:"saves"`
	SQLitePath string `yaml:"sqlite-path" env:"SQLITE_PATH"    env-default:"hangman.db"`
	Redis      Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	DB   int    `yaml:"db"   env:"REDIS_DB"   env-default:"0"`
}

// MustLoad - load all configurations from the yml file at path, or from the environment
// alone when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
