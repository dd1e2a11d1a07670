package fileutils

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/magiconair/properties"
	"github.com/mrnavastar/server-launcher/util"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	DefaultConfigFile = "server-launcher.properties"
	EnvPrefix         = "MSL"
)

const (
	KeyServerType       = "server.type"
	KeyServerGUI        = "server.gui"
	KeyMinecraftVersion = "minecraft.version"
	KeyFabricInstaller  = "minecraft.fabric.installer.version"
	KeyFabricLoader     = "minecraft.fabric.loader.version"
	KeyForge            = "minecraft.forge.version"
	KeyNeoForge         = "minecraft.neoforge.version"
	KeyQuiltInstaller   = "minecraft.quilt.installer.version"
	KeyQuiltLoader      = "minecraft.quilt.loader.version"
	KeyPackwizEnable    = "packwiz.enable"
	KeyPackwizSource    = "packwiz.source"
	KeyJavaHome         = "java.home"
)

// Keys in the order they are written back.
var Keys = []string{
	KeyJavaHome,
	KeyMinecraftVersion,
	KeyFabricInstaller,
	KeyFabricLoader,
	KeyForge,
	KeyNeoForge,
	KeyQuiltInstaller,
	KeyQuiltLoader,
	KeyPackwizEnable,
	KeyPackwizSource,
	KeyServerGUI,
	KeyServerType,
}

type MinecraftSettings struct {
	Version         string
	FabricInstaller string
	FabricLoader    string
	Forge           string
	NeoForge        string
	QuiltInstaller  string
	QuiltLoader     string
}

// For returns the versions relevant to kind. Empty fields were not configured.
func (m MinecraftSettings) For(kind util.LoaderKind) util.Versions {
	switch kind {
	case util.Fabric:
		return util.Versions{Game: m.Version, Loader: m.FabricLoader, Installer: m.FabricInstaller}
	case util.Forge:
		return util.Versions{Game: m.Version, Loader: m.Forge}
	case util.NeoForge:
		return util.Versions{Game: m.Version, Loader: m.NeoForge}
	case util.Quilt:
		return util.Versions{Game: m.Version, Loader: m.QuiltLoader, Installer: m.QuiltInstaller}
	}
	return util.Versions{Game: m.Version}
}

func (m *MinecraftSettings) Set(kind util.LoaderKind, v util.Versions) {
	m.Version = v.Game
	switch kind {
	case util.Fabric:
		m.FabricLoader, m.FabricInstaller = v.Loader, v.Installer
	case util.Forge:
		m.Forge = v.Loader
	case util.NeoForge:
		m.NeoForge = v.Loader
	case util.Quilt:
		m.QuiltLoader, m.QuiltInstaller = v.Loader, v.Installer
	}
}

type Settings struct {
	Type      util.LoaderKind
	GUI       bool
	JavaHome  string
	Minecraft MinecraftSettings
	Packwiz   util.PackwizConfig
}

func (s *Settings) values() map[string]string {
	return map[string]string{
		KeyJavaHome:         s.JavaHome,
		KeyMinecraftVersion: s.Minecraft.Version,
		KeyFabricInstaller:  s.Minecraft.FabricInstaller,
		KeyFabricLoader:     s.Minecraft.FabricLoader,
		KeyForge:            s.Minecraft.Forge,
		KeyNeoForge:         s.Minecraft.NeoForge,
		KeyQuiltInstaller:   s.Minecraft.QuiltInstaller,
		KeyQuiltLoader:      s.Minecraft.QuiltLoader,
		KeyPackwizEnable:    cast.ToString(s.Packwiz.Enable),
		KeyPackwizSource:    s.Packwiz.Source,
		KeyServerGUI:        cast.ToString(s.GUI),
		KeyServerType:       strings.ToLower(s.Type.String()),
	}
}

// LoadSettings layers built-in defaults, the properties file at path (if it
// exists) and MSL_* environment variables. Every invalid value is reported.
func LoadSettings(fs afero.Fs, path string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyServerType, "fabric")
	v.SetDefault(KeyServerGUI, false)
	v.SetDefault(KeyPackwizEnable, false)

	if Exists(fs, path) {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
		p, err := loader.LoadBytes(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if err := v.MergeConfigMap(nest(p)); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	var errs []error
	s := &Settings{
		JavaHome: stringSetting(v, KeyJavaHome),
		Minecraft: MinecraftSettings{
			Version:         stringSetting(v, KeyMinecraftVersion),
			FabricInstaller: stringSetting(v, KeyFabricInstaller),
			FabricLoader:    stringSetting(v, KeyFabricLoader),
			Forge:           stringSetting(v, KeyForge),
			NeoForge:        stringSetting(v, KeyNeoForge),
			QuiltInstaller:  stringSetting(v, KeyQuiltInstaller),
			QuiltLoader:     stringSetting(v, KeyQuiltLoader),
		},
		Packwiz: util.PackwizConfig{Source: stringSetting(v, KeyPackwizSource)},
	}

	typeName := stringSetting(v, KeyServerType)
	if typeName == "" {
		typeName = util.Fabric.String()
	}
	kind, err := util.ParseLoaderKind(typeName)
	if err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", KeyServerType, err))
	}
	s.Type = kind

	if s.GUI, err = boolSetting(v, KeyServerGUI); err != nil {
		errs = append(errs, err)
	}
	if s.Packwiz.Enable, err = boolSetting(v, KeyPackwizEnable); err != nil {
		errs = append(errs, err)
	}
	if s.Packwiz.Enable {
		if err := validateSource(s.Packwiz.Source); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", KeyPackwizSource, err))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration in %s:\n%w", path, errors.Join(errs...))
	}
	return s, nil
}

// SaveSettings writes every key of s to path, replacing its previous contents.
func SaveSettings(fs afero.Fs, path string, s *Settings) error {
	p := properties.NewProperties()
	p.DisableExpansion = true
	values := s.values()
	for _, key := range Keys {
		if _, _, err := p.Set(key, values[key]); err != nil {
			return fmt.Errorf("writing %s: %w", key, err)
		}
	}

	var buf bytes.Buffer
	if _, err := p.Write(&buf, properties.UTF8); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, buf.Bytes(), 0644)
}

func stringSetting(v *viper.Viper, key string) string {
	return strings.TrimSpace(v.GetString(key))
}

// boolSetting treats a blank value as false and anything strconv cannot parse
// as an error.
func boolSetting(v *viper.Viper, key string) (bool, error) {
	raw := v.Get(key)
	if s, ok := raw.(string); ok {
		if strings.TrimSpace(s) == "" {
			return false, nil
		}
		raw = strings.TrimSpace(s)
	}
	b, err := cast.ToBoolE(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %q is not a boolean", key, cast.ToString(raw))
	}
	return b, nil
}

func validateSource(source string) error {
	if source == "" {
		return errors.New("required when packwiz is enabled")
	}
	u, err := url.Parse(source)
	if err != nil {
		return err
	}
	if !u.IsAbs() {
		return fmt.Errorf("%q is not an absolute URI", source)
	}
	return nil
}

// nest turns dotted property keys into the nested maps viper stores.
func nest(p *properties.Properties) map[string]interface{} {
	root := map[string]interface{}{}
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		parts := strings.Split(strings.ToLower(key), ".")
		m := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := m[part].(map[string]interface{})
			if !ok {
				child = map[string]interface{}{}
				m[part] = child
			}
			m = child
		}
		m[parts[len(parts)-1]] = value
	}
	return root
}
