package services

import (
	"path/filepath"

	"github.com/mrnavastar/server-launcher/util"
	"github.com/mrnavastar/server-launcher/util/fileutils"
	"github.com/spf13/afero"
)

type Installer struct {
	Fs     afero.Fs
	Runner Runner
	Log    *util.Logger
}

// NeedsInstall reports whether kind has a separate install step.
func NeedsInstall(kind util.LoaderKind) bool {
	return specFor(kind).installArgs != nil
}

// Installed treats an existing libraries directory as a completed install.
// It is not invalidated by version changes.
func (i *Installer) Installed(cfg *util.LauncherConfig) bool {
	return fileutils.IsDir(i.Fs, filepath.Join(cfg.Dir, librariesDir))
}

// EnsureInstalled runs the loader installer once per working directory and
// cleans up the files it leaves behind. It reports whether anything ran. The
// installer's exit status is logged but not acted on.
func (i *Installer) EnsureInstalled(cfg *util.LauncherConfig, installerPath string) (bool, error) {
	spec := specFor(cfg.Kind)
	if spec.installArgs == nil || i.Installed(cfg) {
		return false, nil
	}

	i.Log.Info("Running %s installer", cfg.Kind)
	status, err := i.Runner.RunJar(installerPath, spec.installArgs(cfg.Versions))
	if err != nil {
		return true, err
	}
	if status != 0 {
		i.Log.Warn("%s installer returned status %d", cfg.Kind, status)
	}

	files := spec.byproducts(filepath.Base(installerPath))
	if len(files) == 0 {
		return true, nil
	}
	i.Log.Info("Cleaning up after %s installer", cfg.Kind)
	for _, name := range files {
		removed, err := fileutils.RemoveIfExists(i.Fs, filepath.Join(cfg.Dir, name))
		if err != nil {
			return true, err
		}
		if removed {
			i.Log.Detail("Removed %s", name)
		}
	}
	return true, nil
}
