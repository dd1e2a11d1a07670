package fileutils

import (
	"strings"
	"testing"

	"github.com/mrnavastar/server-launcher/util"
	"github.com/spf13/afero"
)

const configPath = "/srv/server-launcher.properties"

func writeConfig(t *testing.T, fs afero.Fs, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, configPath, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(afero.NewMemMapFs(), configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Type != util.Fabric {
		t.Errorf("type = %v, want Fabric", s.Type)
	}
	if s.GUI || s.Packwiz.Enable {
		t.Errorf("gui and packwiz should default to false: %+v", s)
	}
	if s.Minecraft != (MinecraftSettings{}) {
		t.Errorf("versions should be unset: %+v", s.Minecraft)
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, `#Sat Jun 01 12:00:00 UTC 2024
minecraft.forge.version=47.2.0
minecraft.version=1.20.1
packwiz.enable=true
packwiz.source=https\://example.com/pack/pack.toml
server.gui=TRUE
server.type=Forge
`)

	s, err := LoadSettings(fs, configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Type != util.Forge {
		t.Errorf("type = %v, want Forge", s.Type)
	}
	if !s.GUI {
		t.Error("gui should be true")
	}
	if !s.Packwiz.Enable || s.Packwiz.Source != "https://example.com/pack/pack.toml" {
		t.Errorf("packwiz = %+v", s.Packwiz)
	}
	want := util.Versions{Game: "1.20.1", Loader: "47.2.0"}
	if got := s.Minecraft.For(util.Forge); got != want {
		t.Errorf("forge versions = %+v, want %+v", got, want)
	}
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "server.type=fabric\nminecraft.version=1.20.4\n")
	t.Setenv("MSL_SERVER_TYPE", "quilt")
	t.Setenv("MSL_MINECRAFT_QUILT_LOADER_VERSION", "0.26.4")

	s, err := LoadSettings(fs, configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Type != util.Quilt {
		t.Errorf("type = %v, want Quilt", s.Type)
	}
	if s.Minecraft.Version != "1.20.4" || s.Minecraft.QuiltLoader != "0.26.4" {
		t.Errorf("minecraft = %+v", s.Minecraft)
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "unknown server type",
			content: "server.type=paper\n",
			want:    KeyServerType,
		},
		{
			name:    "bad boolean",
			content: "server.gui=sometimes\n",
			want:    KeyServerGUI,
		},
		{
			name:    "packwiz without source",
			content: "packwiz.enable=true\n",
			want:    KeyPackwizSource,
		},
		{
			name:    "packwiz with relative source",
			content: "packwiz.enable=true\npackwiz.source=pack/pack.toml\n",
			want:    KeyPackwizSource,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeConfig(t, fs, tt.content)
			_, err := LoadSettings(fs, configPath)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %s", err, tt.want)
			}
		})
	}
}

func TestLoadSettingsReportsEveryError(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "server.type=paper\nserver.gui=maybe\n")
	_, err := LoadSettings(fs, configPath)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, key := range []string{KeyServerType, KeyServerGUI} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention %s", err, key)
		}
	}
}

func TestSaveSettingsWritesEveryKey(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := &Settings{Type: util.NeoForge}
	s.Minecraft.Set(util.NeoForge, util.Versions{Game: "1.21.1", Loader: "21.1.77"})

	if err := SaveSettings(fs, configPath, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	content := string(data)
	for _, key := range Keys {
		if !strings.Contains(content, key+" =") && !strings.Contains(content, key+"=") {
			t.Errorf("%s missing from:\n%s", key, content)
		}
	}

	loaded, err := LoadSettings(fs, configPath)
	if err != nil {
		t.Fatalf("reloading: %v", err)
	}
	if loaded.Type != util.NeoForge || loaded.Minecraft.NeoForge != "21.1.77" || loaded.Minecraft.Version != "1.21.1" {
		t.Errorf("reloaded settings = %+v", loaded)
	}
}

func TestMinecraftSettingsSetKeepsOtherLoaders(t *testing.T) {
	m := MinecraftSettings{Forge: "47.2.0", FabricLoader: "0.15.0"}
	m.Set(util.Fabric, util.Versions{Game: "1.21.1", Loader: "0.16.5", Installer: "1.0.1"})

	if m.Forge != "47.2.0" {
		t.Errorf("forge version changed to %q", m.Forge)
	}
	want := util.Versions{Game: "1.21.1", Loader: "0.16.5", Installer: "1.0.1"}
	if got := m.For(util.Fabric); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
