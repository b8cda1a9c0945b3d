package server

import (
	"fmt"
	"time"

	"github.com/bucket-sort/ratingd/pkg/glicko2"
	"github.com/spf13/viper"
)

type Config struct {
	Port         string
	PeriodLength time.Duration
	AuthSecret   string

	// Set to deploy period application as a lambda instead of applying
	// in-process.
	RatingPeriodFunctionName string

	Glicko glicko2.Config
}

func NewConfig() Config {
	var config Config

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs/server")
	viper.AddConfigPath(".")
	viper.SetDefault("Server.Port", "8080")
	viper.SetDefault("Server.PeriodLength", "24h")
	viper.SetDefault("Glicko.Tau", 0.75)
	viper.SetDefault("Glicko.InitialRating", 1500.0)
	viper.SetDefault("Glicko.InitialDeviation", 350.0)
	viper.SetDefault("Glicko.InitialVolatility", 0.06)
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			panic(fmt.Errorf("fatal error config file: %s", err))
		}
	}

	config.Port = viper.GetString("Server.Port")
	periodLength, err := time.ParseDuration(viper.GetString("Server.PeriodLength"))
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}
	config.PeriodLength = periodLength
	config.AuthSecret = viper.GetString("AUTH_SECRET")
	config.RatingPeriodFunctionName = viper.GetString("RATING_PERIOD_FUNCTION_NAME")
	config.Glicko = glicko2.Config{
		Tau:               viper.GetFloat64("Glicko.Tau"),
		InitialRating:     viper.GetFloat64("Glicko.InitialRating"),
		InitialDeviation:  viper.GetFloat64("Glicko.InitialDeviation"),
		InitialVolatility: viper.GetFloat64("Glicko.InitialVolatility"),
	}

	return config
}
