package api

import (
	"context"
	"fmt"

	"github.com/buger/jsonparser"
)

// GetLatestReleaseAssetURL finds the download URL of the asset called name in
// the latest release of repo ("owner/name").
func (c *Client) GetLatestReleaseAssetURL(ctx context.Context, repo string, name string) (string, error) {
	body, err := c.getBytes(ctx, c.Endpoints.GitHub+"/repos/"+repo+"/releases/latest")
	if err != nil {
		return "", err
	}

	url := ""
	_, err = jsonparser.ArrayEach(body, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if url != "" || err != nil {
			return
		}
		assetName, _ := jsonparser.GetString(value, "name")
		if assetName == name {
			url, _ = jsonparser.GetString(value, "browser_download_url")
		}
	}, "assets")
	if err != nil {
		return "", fmt.Errorf("reading %s release: %w", repo, err)
	}

	if url == "" {
		return "", fmt.Errorf("latest %s release has no asset %s", repo, name)
	}
	return url, nil
}
