// Command habitctl is the operator tool of the habit tracker. It applies
// migrations, runs a single reminder scan and links users to Telegram chats.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/MKhiriev/go-habit-tracker/internal/config"
	"github.com/MKhiriev/go-habit-tracker/internal/logger"
)

var buildVersion string

type CLI struct {
	Version kong.VersionFlag
	Config  string `help:"JSON config file path." type:"path"`

	Migrate   MigrateCmd   `cmd:"" help:"Apply pending database migrations."`
	Remind    RemindCmd    `cmd:"" help:"Run one reminder scan."`
	SetChatID SetChatIDCmd `cmd:"" name:"set-chat-id" help:"Link a user to a Telegram chat."`
}

// appContext is passed to every command's Run method.
type appContext struct {
	cfg *config.StructuredConfig
	log *logger.Logger
	out io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	version := buildVersion
	if version == "" {
		version = "dev"
	}

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("habitctl"),
		kong.Description("Operator tool of the habit tracker."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": version},
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("error loading configs: %w", err)
	}

	return kctx.Run(&appContext{
		cfg: cfg,
		log: logger.NewLoggerWithConfig("habitctl", cfg.Log),
		out: stdout,
	})
}
