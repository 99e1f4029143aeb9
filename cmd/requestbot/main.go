package main

import (
	"fmt"
	"log"

	corecmd "github.com/m3rciful/volunteerbot/core/cmd"
	"github.com/m3rciful/volunteerbot/requestbot"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "configs/requestbot.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return requestbot.LoadConfig(path)
		},
		Bootstrap: func(cfg corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			botCfg, ok := cfg.(*requestbot.Config)
			if !ok {
				return nil, fmt.Errorf("unexpected config type %T", cfg)
			}
			return requestbot.Bootstrap(botCfg)
		},
	})
	if err != nil {
		log.Fatalf("requestbot: %v", err)
	}
}
