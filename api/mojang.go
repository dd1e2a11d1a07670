package api

import (
	"context"
	"errors"
)

type versions struct {
	Latest struct {
		Release string
	}
}

func (c *Client) GetLatestMcVersion(ctx context.Context) (string, error) {
	var versions versions
	if err := c.getJSON(ctx, c.Endpoints.MojangMeta+"/mc/game/version_manifest_v2.json", &versions); err != nil {
		return "", err
	}
	if versions.Latest.Release == "" {
		return "", errors.New("version manifest has no latest release")
	}
	return versions.Latest.Release, nil
}
