package logger

import (
	"go.uber.org/zap"
)

// Init builds a zap logger for the given environment and installs it
// as the process-wide logger, so call sites can use zap.L().
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	if environment == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(l)

	return nil
}
