package logger_test

import (
	"os"

	"github.com/philipp01105/elfnlog/formatter"
	"github.com/philipp01105/elfnlog/handler/consolehandler"
	"github.com/philipp01105/elfnlog/logger"
)

// Use the package-level functions to log through the root logger.
func Example() {
	logger.Info("Application started")
	logger.Warning("Disk usage at {0}%", 91)
}

// Configure a named logger with the Builder pattern.
func ExampleNewBuilder() {
	ch := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: os.Stdout,
		Formatter: formatter.NewTextFormatter(formatter.Config{
			OmitLoggerName:  false,
			TimestampFormat: "15:04",
		}),
	})

	log := logger.NewBuilder("example.com/app/api").
		WithHandler(ch).
		WithLevel(logger.FineLevel).
		WithUseParentHandlers(false).
		Build()
	defer log.Close()

	log.Fine("listening on port {0}", 8080)
}

// Child loggers inherit the level of their nearest configured ancestor.
func ExampleLogger_EffectiveLevel() {
	logger.Get("example.com/shop").SetLevel(logger.WarningLevel)
	cart := logger.Get("example.com/shop/cart")

	_ = cart.IsLoggable(logger.InfoLevel) // false
	_ = cart.EffectiveLevel()             // WARNING
}
