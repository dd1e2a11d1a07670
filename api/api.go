package api

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
)

const userAgent = "server-launcher (+https://github.com/mrnavastar/server-launcher)"

// Endpoints holds the base URL of every remote service the launcher talks to.
type Endpoints struct {
	FabricMeta    string
	QuiltMeta     string
	QuiltMaven    string
	ForgeFiles    string
	ForgeMaven    string
	NeoForgeMaven string
	MojangMeta    string
	GitHub        string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		FabricMeta:    "https://meta.fabricmc.net",
		QuiltMeta:     "https://meta.quiltmc.org",
		QuiltMaven:    "https://maven.quiltmc.org/repository/release",
		ForgeFiles:    "https://files.minecraftforge.net",
		ForgeMaven:    "https://maven.minecraftforge.net",
		NeoForgeMaven: "https://maven.neoforged.net",
		MojangMeta:    "https://launchermeta.mojang.com",
		GitHub:        "https://api.github.com",
	}
}

// Client is a thin wrapper around a resty client. Redirects are followed.
type Client struct {
	Endpoints Endpoints
	client    *resty.Client
}

func NewClient(endpoints Endpoints) *Client {
	return &Client{
		Endpoints: endpoints,
		client:    resty.New().SetHeader("User-Agent", userAgent),
	}
}

type Version struct {
	Version string
	Stable  bool
	Url     string
}

func (c *Client) getBytes(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status())
	}
	return resp.Body(), nil
}

// getJSON decodes the body into v regardless of the content type the server
// reports.
func (c *Client) getJSON(ctx context.Context, url string, v interface{}) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(v).
		ForceContentType("application/json").
		Get(url)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	if resp.IsError() {
		return fmt.Errorf("GET %s: %s", url, resp.Status())
	}
	return nil
}

// DownloadFile streams url into path. The body goes to path+".download" first
// and is renamed into place only once fully written.
func (c *Client) DownloadFile(ctx context.Context, fs afero.Fs, url string, path string) error {
	resp, err := c.client.R().SetContext(ctx).SetDoNotParseResponse(true).Get(url)
	if err != nil {
		return err
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		return fmt.Errorf("GET %s: %s", url, resp.Status())
	}

	tmp := path + ".download"
	file, err := fs.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	_, err = io.Copy(file, body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fs.Remove(tmp)
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	return fs.Rename(tmp, path)
}
