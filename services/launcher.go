package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mrnavastar/server-launcher/api"
	"github.com/mrnavastar/server-launcher/util"
	"github.com/mrnavastar/server-launcher/util/fileutils"
	"github.com/spf13/afero"
)

const eulaFile = "eula.txt"

// Launcher runs the whole startup sequence in Dir: configuration, modpack
// sync, EULA, artifact download, loader install and finally the server.
type Launcher struct {
	Fs         afero.Fs
	Client     *api.Client
	Log        *util.Logger
	Dir        string
	ConfigFile string

	// JavaHome is used when java.home is not configured.
	JavaHome string
	Windows  bool

	// NewRunner defaults to a Java runner for cfg.
	NewRunner func(cfg *util.LauncherConfig) Runner
}

func (l *Launcher) configPath() string {
	return filepath.Join(l.Dir, l.ConfigFile)
}

// Resolve loads the configuration and resolves versions. Nothing is written.
func (l *Launcher) Resolve(ctx context.Context) (*fileutils.Settings, ResolvedVersions, error) {
	settings, err := fileutils.LoadSettings(l.Fs, l.configPath())
	if err != nil {
		return nil, ResolvedVersions{}, err
	}
	resolved := Resolve(ctx, l.Client, settings.Type, settings.Minecraft.For(settings.Type))
	return settings, resolved, nil
}

// Configure resolves the configuration and writes the merged values back to
// the config file.
func (l *Launcher) Configure(ctx context.Context) (*util.LauncherConfig, error) {
	settings, resolved, err := l.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	for _, field := range resolved.Fields() {
		l.Log.Debug("%s %s version %s (%s)", settings.Type, field.Name, field.Value, field.Source)
		if field.Err != nil {
			l.Log.Debug("  remote lookup failed: %v", field.Err)
		}
	}

	settings.Minecraft.Set(settings.Type, resolved.Values())
	if err := fileutils.SaveSettings(l.Fs, l.configPath(), settings); err != nil {
		return nil, fmt.Errorf("writing %s: %w", l.configPath(), err)
	}

	javaHome := settings.JavaHome
	if javaHome == "" {
		javaHome = l.JavaHome
	}
	return &util.LauncherConfig{
		Kind:     settings.Type,
		Versions: resolved.Values(),
		GUI:      settings.GUI,
		Packwiz:  settings.Packwiz,
		Dir:      l.Dir,
		Java:     util.JavaCommand(javaHome, l.Windows),
		Windows:  l.Windows,
	}, nil
}

func (l *Launcher) runner(cfg *util.LauncherConfig) Runner {
	if l.NewRunner != nil {
		return l.NewRunner(cfg)
	}
	return NewJava(cfg.Java, cfg.Dir)
}

// Run executes every stage in order and returns the process exit code: the
// server's status, packwiz's status if it failed, or a fixed failure code.
func (l *Launcher) Run(ctx context.Context, args []string) int {
	cfg, err := l.Configure(ctx)
	if err != nil {
		l.Log.Error(err)
		return util.ExitConfigError
	}

	runner := l.runner(cfg)
	acquirer := &Acquirer{Fs: l.Fs, Client: l.Client, Log: l.Log}

	status, err := SyncModpack(ctx, acquirer, runner, cfg)
	if err != nil {
		l.Log.Error(err)
		return util.ExitFailure
	}
	if status != 0 {
		l.Log.Warn("packwiz installer returned status %d", status)
		return status
	}

	if err := fileutils.WriteEula(l.Fs, filepath.Join(cfg.Dir, eulaFile)); err != nil {
		l.Log.Error(fmt.Errorf("accepting EULA: %w", err))
		return util.ExitFailure
	}

	artifact, err := acquirer.Ensure(ctx, cfg)
	if err != nil {
		l.Log.Error(err)
		return util.ExitFailure
	}

	installer := &Installer{Fs: l.Fs, Runner: runner, Log: l.Log}
	if _, err := installer.EnsureInstalled(cfg, artifact); err != nil {
		l.Log.Error(fmt.Errorf("installing %s: %w", cfg.Kind, err))
		return util.ExitFailure
	}

	return l.launch(cfg, runner, artifact, args)
}

func (l *Launcher) launch(cfg *util.LauncherConfig, runner Runner, artifact string, args []string) int {
	spec := specFor(cfg.Kind).launch(cfg, artifact)
	serverArgs := append(spec.Args, ServerArgs(cfg, args)...)

	l.Log.Info("Starting %s server", cfg.Kind)
	var status int
	var err error
	if spec.Jar != "" {
		status, err = runner.RunJar(spec.Jar, serverArgs)
	} else {
		status, err = runner.Run(serverArgs)
	}
	if err != nil {
		l.Log.Error(err)
		return util.ExitFailure
	}

	if status == 0 {
		l.Log.Info("%s server exited successfully", cfg.Kind)
	} else {
		l.Log.Warn("%s server returned status %d", cfg.Kind, status)
	}
	return status
}
