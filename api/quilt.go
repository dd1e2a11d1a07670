package api

import (
	"context"
	"errors"

	"golang.org/x/mod/semver"
)

type quiltLoaderEntry struct {
	Loader Version
}

// firstRelease skips betas and release candidates; Quilt does not flag them.
func firstRelease(versions []Version) (string, error) {
	for _, v := range versions {
		if v.Version != "" && semver.Prerelease("v"+v.Version) == "" {
			return v.Version, nil
		}
	}
	return "", errors.New("failed to find a release version")
}

func (c *Client) GetLatestQuiltGameVersion(ctx context.Context) (string, error) {
	var versions []Version
	if err := c.getJSON(ctx, c.Endpoints.QuiltMeta+"/v3/versions/game", &versions); err != nil {
		return "", err
	}
	return firstStable(versions)
}

func (c *Client) GetLatestQuiltLoaderVersion(ctx context.Context, gameVersion string) (string, error) {
	var entries []quiltLoaderEntry
	if err := c.getJSON(ctx, c.Endpoints.QuiltMeta+"/v3/versions/loader/"+gameVersion, &entries); err != nil {
		return "", err
	}

	loaders := make([]Version, 0, len(entries))
	for _, entry := range entries {
		loaders = append(loaders, entry.Loader)
	}
	return firstRelease(loaders)
}

func (c *Client) GetLatestQuiltInstallerVersion(ctx context.Context) (string, error) {
	var versions []Version
	if err := c.getJSON(ctx, c.Endpoints.QuiltMeta+"/v3/versions/installer", &versions); err != nil {
		return "", err
	}
	return firstRelease(versions)
}

func (c *Client) QuiltInstallerURL(installerVersion string) string {
	return c.Endpoints.QuiltMaven + "/org/quiltmc/quilt-installer/" + installerVersion + "/quilt-installer-" + installerVersion + ".jar"
}
