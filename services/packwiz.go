package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mrnavastar/server-launcher/util"
	"github.com/mrnavastar/server-launcher/util/fileutils"
)

const (
	packwizRepo = "packwiz/packwiz-installer-bootstrap"
	packwizJar  = "packwiz-installer-bootstrap.jar"
)

// SyncModpack runs packwiz-installer against the configured pack, downloading
// the bootstrap jar from its latest GitHub release the first time. It returns
// 0 without doing anything when packwiz is disabled.
func SyncModpack(ctx context.Context, a *Acquirer, runner Runner, cfg *util.LauncherConfig) (int, error) {
	if !cfg.Packwiz.Enable {
		return 0, nil
	}

	path := filepath.Join(cfg.Dir, packwizJar)
	if !fileutils.Exists(a.Fs, path) {
		url, err := a.Client.GetLatestReleaseAssetURL(ctx, packwizRepo, packwizJar)
		if err != nil {
			return util.ExitFailure, fmt.Errorf("locating packwiz installer: %w", err)
		}
		if err := a.fetch(ctx, Artifact{Path: path, URL: url}, "packwiz installer"); err != nil {
			return util.ExitFailure, err
		}
	}

	a.Log.Info("Running packwiz installer")
	return runner.RunJar(path, []string{"--no-gui", "--side", "server", cfg.Packwiz.Source})
}
