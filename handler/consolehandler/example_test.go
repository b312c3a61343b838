package consolehandler_test

import (
	"os"

	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/formatter"
	"github.com/philipp01105/elfnlog/handler/consolehandler"
)

// Create a synchronous console handler writing to stdout.
func ExampleNewConsoleHandler() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: os.Stdout,
		Formatter: formatter.NewTextFormatter(formatter.Config{
			TimestampFormat: "-",
		}),
	})
	defer h.Close()

	r := core.NewLogRecord(core.InfoLevel, "hello {0}")
	r.SetLoggerName("app")
	r.SetParameters([]any{"world"})
	h.Handle(r)
}

// Create an async console handler with a custom buffer size.
func ExampleNewConsoleHandler_async() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Async:      true,
		BufferSize: 4096,
		Level:      core.WarningLevel,
		Formatter:  formatter.NewJSONFormatter(formatter.Config{}),
	})
	defer h.Close()
}
