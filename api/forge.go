package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/mod/semver"
)

const recommendedSuffix = "-recommended"

func (c *Client) forgePromotions(ctx context.Context) (gjson.Result, error) {
	body, err := c.getBytes(ctx, c.Endpoints.ForgeFiles+"/net/minecraftforge/forge/promotions_slim.json")
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, errors.New("promotions_slim.json is not valid JSON")
	}
	promos := gjson.GetBytes(body, "promos")
	if !promos.IsObject() {
		return gjson.Result{}, errors.New("promotions_slim.json has no promos")
	}
	return promos, nil
}

// GetLatestForgeGameVersion returns the newest game version that has a
// recommended Forge build.
func (c *Client) GetLatestForgeGameVersion(ctx context.Context) (string, error) {
	promos, err := c.forgePromotions(ctx)
	if err != nil {
		return "", err
	}

	latest := ""
	promos.ForEach(func(key, _ gjson.Result) bool {
		game := strings.TrimSuffix(key.String(), recommendedSuffix)
		if game == key.String() || !semver.IsValid("v"+game) {
			return true
		}
		if latest == "" || semver.Compare("v"+game, "v"+latest) > 0 {
			latest = game
		}
		return true
	})

	if latest == "" {
		return "", errors.New("no recommended forge builds")
	}
	return latest, nil
}

// GetRecommendedForgeVersion returns the recommended Forge build for gameVersion.
func (c *Client) GetRecommendedForgeVersion(ctx context.Context, gameVersion string) (string, error) {
	promos, err := c.forgePromotions(ctx)
	if err != nil {
		return "", err
	}

	version := ""
	promos.ForEach(func(key, value gjson.Result) bool {
		if key.String() == gameVersion+recommendedSuffix {
			version = value.String()
			return false
		}
		return true
	})

	if version == "" {
		return "", fmt.Errorf("no recommended forge build for %s", gameVersion)
	}
	return version, nil
}

func (c *Client) ForgeInstallerURL(gameVersion, forgeVersion, fileName string) string {
	return c.Endpoints.ForgeMaven + "/net/minecraftforge/forge/" + gameVersion + "-" + forgeVersion + "/" + fileName
}
