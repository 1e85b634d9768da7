package main

import (
	"frontdesk/config"
	"frontdesk/helper"
	"frontdesk/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down/step-up/drop) is required")
	}

	action, err := helper.ParseAction(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid migration direction")
	}

	if err := helper.Runner(config.Get(), action); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
