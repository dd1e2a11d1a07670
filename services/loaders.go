package services

import (
	"context"
	"path/filepath"

	"github.com/mrnavastar/server-launcher/api"
	"github.com/mrnavastar/server-launcher/util"
)

const (
	librariesDir    = "libraries"
	quiltServerJar  = "quilt-server-launch.jar"
	userJvmArgsFile = "@user_jvm_args.txt"
)

// launchSpec is a java command line. With Jar set it runs as `-jar Jar Args...`.
type launchSpec struct {
	Jar  string
	Args []string
}

type loaderSpec struct {
	// fallback fields are used one by one, so a configured game version may
	// be paired with a fallback loader built for another game version.
	fallback util.Versions

	game      func(c *api.Client, ctx context.Context) (string, error)
	loader    func(c *api.Client, ctx context.Context, game string) (string, error)
	installer func(c *api.Client, ctx context.Context) (string, error)

	artifact func(c *api.Client, v util.Versions) (fileName, url string)

	// installArgs is nil for loaders whose artifact is the server itself.
	installArgs func(v util.Versions) []string
	byproducts  func(artifactName string) []string
	launch      func(cfg *util.LauncherConfig, artifactPath string) launchSpec
}

var loaders = map[util.LoaderKind]loaderSpec{
	util.Fabric: {
		fallback:  util.Versions{Game: "1.21.1", Loader: "0.16.5", Installer: "1.0.1"},
		game:      (*api.Client).GetLatestFabricGameVersion,
		loader:    (*api.Client).GetLatestFabricLoaderVersion,
		installer: (*api.Client).GetLatestFabricInstallerVersion,
		artifact: func(c *api.Client, v util.Versions) (string, string) {
			name := "fabric-server-mc." + v.Game + "-loader." + v.Loader + "-launcher." + v.Installer + ".jar"
			return name, c.FabricServerJarURL(v.Game, v.Loader, v.Installer)
		},
		launch: func(cfg *util.LauncherConfig, artifactPath string) launchSpec {
			return launchSpec{Jar: artifactPath}
		},
	},
	util.Forge: {
		fallback: util.Versions{Game: "1.20.1", Loader: "47.2.0"},
		game:     (*api.Client).GetLatestForgeGameVersion,
		loader:   (*api.Client).GetRecommendedForgeVersion,
		artifact: func(c *api.Client, v util.Versions) (string, string) {
			name := "forge-" + v.Game + "-" + v.Loader + "-installer.jar"
			return name, c.ForgeInstallerURL(v.Game, v.Loader, name)
		},
		installArgs: forgeInstallArgs,
		byproducts:  forgeByproducts,
		launch: func(cfg *util.LauncherConfig, artifactPath string) launchSpec {
			return launchSpec{Args: []string{
				userJvmArgsFile,
				"@libraries/net/minecraftforge/forge/" + cfg.Versions.Game + "-" + cfg.Versions.Loader + "/" + argsFile(cfg.Windows),
			}}
		},
	},
	util.NeoForge: {
		fallback: util.Versions{Game: "1.21.1", Loader: "21.1.77"},
		game:     (*api.Client).GetLatestMcVersion,
		loader:   (*api.Client).GetLatestNeoForgeVersion,
		artifact: func(c *api.Client, v util.Versions) (string, string) {
			name := "neoforge-" + v.Loader + "-installer.jar"
			return name, c.NeoForgeInstallerURL(v.Loader, name)
		},
		installArgs: forgeInstallArgs,
		byproducts:  forgeByproducts,
		launch: func(cfg *util.LauncherConfig, artifactPath string) launchSpec {
			return launchSpec{Args: []string{
				userJvmArgsFile,
				"@libraries/net/neoforged/neoforge/" + cfg.Versions.Loader + "/" + argsFile(cfg.Windows),
			}}
		},
	},
	util.Quilt: {
		fallback:  util.Versions{Game: "1.21.1", Loader: "0.26.4", Installer: "0.9.2"},
		game:      (*api.Client).GetLatestQuiltGameVersion,
		loader:    (*api.Client).GetLatestQuiltLoaderVersion,
		installer: (*api.Client).GetLatestQuiltInstallerVersion,
		artifact: func(c *api.Client, v util.Versions) (string, string) {
			return "quilt-installer-" + v.Installer + ".jar", c.QuiltInstallerURL(v.Installer)
		},
		installArgs: func(v util.Versions) []string {
			return []string{"install", "server", v.Game, v.Loader, "--install-dir=.", "--download-server"}
		},
		byproducts: func(string) []string { return nil },
		launch: func(cfg *util.LauncherConfig, artifactPath string) launchSpec {
			return launchSpec{Jar: filepath.Join(cfg.Dir, quiltServerJar)}
		},
	},
}

func forgeInstallArgs(util.Versions) []string {
	return []string{"--installServer"}
}

func forgeByproducts(artifactName string) []string {
	return []string{artifactName + ".log", "run.bat", "run.sh"}
}

func argsFile(windows bool) string {
	return util.IfWindowsElse(windows, "win", "unix") + "_args.txt"
}

func specFor(kind util.LoaderKind) loaderSpec {
	spec, ok := loaders[kind]
	if !ok {
		panic("no loader table entry for " + kind.String())
	}
	return spec
}

// ServerArgs is the argument list handed to the server after the loader's own
// arguments.
func ServerArgs(cfg *util.LauncherConfig, extra []string) []string {
	args := []string{}
	if !cfg.GUI {
		args = append(args, "--nogui")
	}
	return append(args, extra...)
}
