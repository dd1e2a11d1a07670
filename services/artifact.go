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

// Artifact is a jar on disk and where to get it from.
type Artifact struct {
	Path string
	URL  string
}

// ArtifactFor computes the installer or server jar for cfg. File names embed
// every version involved so different configurations never share a file.
func ArtifactFor(c *api.Client, cfg *util.LauncherConfig) Artifact {
	name, url := specFor(cfg.Kind).artifact(c, cfg.Versions)
	return Artifact{Path: filepath.Join(cfg.Dir, name), URL: url}
}

type Acquirer struct {
	Fs     afero.Fs
	Client *api.Client
	Log    *util.Logger
}

// Ensure downloads the artifact for cfg unless a file with its name already
// exists. Existing files are trusted as is.
func (a *Acquirer) Ensure(ctx context.Context, cfg *util.LauncherConfig) (string, error) {
	artifact := ArtifactFor(a.Client, cfg)
	if err := a.fetch(ctx, artifact, cfg.Kind.String()+" installer"); err != nil {
		return "", err
	}
	return artifact.Path, nil
}

func (a *Acquirer) fetch(ctx context.Context, artifact Artifact, label string) error {
	if fileutils.Exists(a.Fs, artifact.Path) {
		a.Log.Debug("Using existing %s", artifact.Path)
		return nil
	}

	a.Log.Info("Downloading %s", label)
	a.Log.Debug("GET %s", artifact.URL)
	if err := a.Client.DownloadFile(ctx, a.Fs, artifact.URL, artifact.Path); err != nil {
		return fmt.Errorf("downloading %s: %w", label, err)
	}
	return nil
}
