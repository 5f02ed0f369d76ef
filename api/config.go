package api

import (
	"sync"

	"github.com/linikers/rocketstar/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
}

type StorageConfig struct {
	// Driver selects the storage backend: "dynamo" (default) or "memory".
	Driver               string
	TableNameCompetitors string
	TableNameQRCodes     string
	TableNameJudges      string
}

type ServerConfig struct {
	Port int
}

var settingsOnce sync.Once

func ReadConfig() *Config {
	driver := viper.GetString("storage.Driver")
	if driver == "" {
		driver = "dynamo"
	}

	conf := &Config{
		StorageConfig: StorageConfig{
			Driver:               driver,
			TableNameCompetitors: viper.GetString("storage.TableNameCompetitors"),
			TableNameQRCodes:     viper.GetString("storage.TableNameQRCodes"),
			TableNameJudges:      viper.GetString("storage.TableNameJudges"),
		},
		ServerConfig: ServerConfig{
			Port: viper.GetInt("server.port"),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}
