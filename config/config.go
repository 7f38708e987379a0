package config

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                                     int
	LogLevel                                 string
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig reads config.yaml from the working directory once.
// A missing file falls back to the defaults so the binary runs out of
// the box.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		viper.SetDefault("port", 9095)
		viper.SetDefault("log_level", "info")
		viper.SetDefault("scheduler.round_robin.time_quantum", 2)
		viper.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{5, 8})
		if err := viper.ReadInConfig(); err != nil {
			logrus.WithError(err).Warn("config.yaml not read, using defaults")
		}
		config = &SchedulerConfig{
			Port:                  viper.GetInt("port"),
			LogLevel:              viper.GetString("log_level"),
			RoundRobinTimeQuantum: viper.GetInt("scheduler.round_robin.time_quantum"),
			MultilevelFeedbackQueueLevelsTimeQuantum: viper.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum"),
		}
	})

	return config
}
