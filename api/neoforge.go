package api

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

type neoForgeVersions struct {
	IsSnapshot bool
	Versions   []string
}

// NeoForgePrefix maps a game version to the NeoForge version prefix for it:
// 1.21.1 -> "21.1.", 1.21 -> "21.0.".
func NeoForgePrefix(gameVersion string) (string, error) {
	parts := strings.Split(gameVersion, ".")
	if len(parts) < 2 || len(parts) > 3 || parts[0] != "1" {
		return "", fmt.Errorf("no neoforge versioning for game version %q", gameVersion)
	}
	patch := "0"
	if len(parts) == 3 {
		patch = parts[2]
	}
	return parts[1] + "." + patch + ".", nil
}

// GetLatestNeoForgeVersion returns the newest non-beta NeoForge release for
// gameVersion.
func (c *Client) GetLatestNeoForgeVersion(ctx context.Context, gameVersion string) (string, error) {
	prefix, err := NeoForgePrefix(gameVersion)
	if err != nil {
		return "", err
	}

	var versions neoForgeVersions
	if err := c.getJSON(ctx, c.Endpoints.NeoForgeMaven+"/api/maven/versions/releases/net/neoforged/neoforge", &versions); err != nil {
		return "", err
	}

	latest := ""
	for _, v := range versions.Versions {
		sv := "v" + v
		if !strings.HasPrefix(v, prefix) || !semver.IsValid(sv) || semver.Prerelease(sv) != "" {
			continue
		}
		if latest == "" || semver.Compare(sv, "v"+latest) > 0 {
			latest = v
		}
	}

	if latest == "" {
		return "", fmt.Errorf("no stable neoforge release for %s", gameVersion)
	}
	return latest, nil
}

func (c *Client) NeoForgeInstallerURL(neoForgeVersion, fileName string) string {
	return c.Endpoints.NeoForgeMaven + "/releases/net/neoforged/neoforge/" + neoForgeVersion + "/" + fileName
}
