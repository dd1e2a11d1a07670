package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/jedib0t/go-pretty/text"
	"github.com/mrnavastar/server-launcher/api"
	"github.com/mrnavastar/server-launcher/services"
	"github.com/mrnavastar/server-launcher/util"
	"github.com/mrnavastar/server-launcher/util/fileutils"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

func newLauncher(c *cli.Context) (*services.Launcher, error) {
	dir, err := filepath.Abs(c.String("dir"))
	if err != nil {
		return nil, err
	}

	log := util.NewConsoleLogger()
	log.Verbose = c.Bool("verbose")

	return &services.Launcher{
		Fs:         afero.NewOsFs(),
		Client:     api.NewClient(api.DefaultEndpoints()),
		Log:        log,
		Dir:        dir,
		ConfigFile: c.String("config"),
		JavaHome:   os.Getenv("JAVA_HOME"),
		Windows:    runtime.GOOS == "windows",
	}, nil
}

// A signal cancels pending HTTP requests. Once java runs, services.Java relays
// it to the child and the launcher exits with the child's status.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func main() {
	app := &cli.App{
		Name:      "server-launcher",
		Usage:     "Install and run a Fabric, Forge, NeoForge or Quilt Minecraft server",
		ArgsUsage: "[-- server arguments...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   fileutils.DefaultConfigFile,
				Usage:   "config file name, relative to --dir",
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Value:   ".",
				Usage:   "server working directory",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "show where every version came from",
			},
		},
		Action: func(c *cli.Context) error {
			launcher, err := newLauncher(c)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			status := launcher.Run(ctx, c.Args().Slice())
			if status != 0 {
				return cli.Exit("", status)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "versions",
				Usage: "Resolve versions without downloading or starting anything",
				Action: func(c *cli.Context) error {
					launcher, err := newLauncher(c)
					if err != nil {
						return err
					}

					ctx, cancel := signalContext()
					defer cancel()

					settings, resolved, err := launcher.Resolve(ctx)
					if err != nil {
						launcher.Log.Error(err)
						return cli.Exit("", util.ExitConfigError)
					}

					fields := resolved.Fields()
					lname := len("FIELD:")
					lversion := len("VERSION:")
					for _, field := range fields {
						if len(field.Name) > lname {
							lname = len(field.Name)
						}
						if len(field.Value) > lversion {
							lversion = len(field.Value)
						}
					}

					fmt.Println()
					fmt.Println(text.Bold.Sprint(settings.Type.String() + " server"))
					fmt.Println(text.AlignDefault.Apply("FIELD:", lname+2) + text.AlignDefault.Apply("VERSION:", lversion+2) + "SOURCE:")
					for _, field := range fields {
						source := field.Source.String()
						if field.Err != nil {
							source += " (" + field.Err.Error() + ")"
						}
						fmt.Println(text.Bold.Sprint(text.AlignDefault.Apply(field.Name, lname+2)) + text.AlignDefault.Apply(field.Value, lversion+2) + source)
					}
					fmt.Println()
					return nil
				},
			},
		},
	}

	err := app.Run(os.Args)
	util.Fatal(err)
}
