package util

import (
	"fmt"
	"strings"
)

type LoaderKind int

const (
	Fabric LoaderKind = iota
	Forge
	NeoForge
	Quilt
)

var LoaderKinds = []LoaderKind{Fabric, Forge, NeoForge, Quilt}

var loaderNames = map[LoaderKind]string{
	Fabric:   "Fabric",
	Forge:    "Forge",
	NeoForge: "NeoForge",
	Quilt:    "Quilt",
}

func (k LoaderKind) String() string {
	if name, ok := loaderNames[k]; ok {
		return name
	}
	return fmt.Sprintf("LoaderKind(%d)", int(k))
}

// ParseLoaderKind accepts any casing of a loader name.
func ParseLoaderKind(s string) (LoaderKind, error) {
	for _, kind := range LoaderKinds {
		if strings.EqualFold(strings.TrimSpace(s), kind.String()) {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown server type %q (expected one of fabric, forge, neoforge, quilt)", s)
}

// Versions is the set of version strings a loader needs. Fields a loader does
// not use stay empty.
type Versions struct {
	Game      string
	Loader    string
	Installer string
}

type PackwizConfig struct {
	Enable bool
	Source string
}

type LauncherConfig struct {
	Kind     LoaderKind
	Versions Versions
	GUI      bool
	Packwiz  PackwizConfig
	Dir      string
	Java     string
	Windows  bool
}
