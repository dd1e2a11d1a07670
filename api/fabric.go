package api

import (
	"context"
	"errors"
)

type fabricLoaderEntry struct {
	Loader Version
}

func firstStable(versions []Version) (string, error) {
	for _, v := range versions {
		if v.Stable && v.Version != "" {
			return v.Version, nil
		}
	}
	return "", errors.New("failed to find a stable version")
}

func (c *Client) GetLatestFabricGameVersion(ctx context.Context) (string, error) {
	var versions []Version
	if err := c.getJSON(ctx, c.Endpoints.FabricMeta+"/v2/versions/game", &versions); err != nil {
		return "", err
	}
	return firstStable(versions)
}

// GetLatestFabricLoaderVersion returns the newest stable loader that supports
// gameVersion.
func (c *Client) GetLatestFabricLoaderVersion(ctx context.Context, gameVersion string) (string, error) {
	var entries []fabricLoaderEntry
	if err := c.getJSON(ctx, c.Endpoints.FabricMeta+"/v2/versions/loader/"+gameVersion, &entries); err != nil {
		return "", err
	}

	loaders := make([]Version, 0, len(entries))
	for _, entry := range entries {
		loaders = append(loaders, entry.Loader)
	}
	return firstStable(loaders)
}

func (c *Client) GetLatestFabricInstallerVersion(ctx context.Context) (string, error) {
	var versions []Version
	if err := c.getJSON(ctx, c.Endpoints.FabricMeta+"/v2/versions/installer", &versions); err != nil {
		return "", err
	}
	return firstStable(versions)
}

func (c *Client) FabricServerJarURL(gameVersion, loaderVersion, installerVersion string) string {
	return c.Endpoints.FabricMeta + "/v2/versions/loader/" + gameVersion + "/" + loaderVersion + "/" + installerVersion + "/server/jar"
}
