package main

import (
	"fmt"
	"log"

	corecmd "github.com/m3rciful/volunteerbot/core/cmd"
	"github.com/m3rciful/volunteerbot/taskbot"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "configs/taskbot.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return taskbot.LoadConfig(path)
		},
		Bootstrap: func(cfg corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			botCfg, ok := cfg.(*taskbot.Config)
			if !ok {
				return nil, fmt.Errorf("unexpected config type %T", cfg)
			}
			return taskbot.Bootstrap(botCfg)
		},
	})
	if err != nil {
		log.Fatalf("taskbot: %v", err)
	}
}
