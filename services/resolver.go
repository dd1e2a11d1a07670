package services

import (
	"context"
	"errors"

	"github.com/mrnavastar/server-launcher/api"
	"github.com/mrnavastar/server-launcher/util"
)

// Source tells where a resolved version came from.
type Source int

const (
	SourceConfig Source = iota
	SourceRemote
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceConfig:
		return "config"
	case SourceRemote:
		return "remote"
	case SourceFallback:
		return "fallback"
	}
	return "unknown"
}

// Resolution is one resolved version. Err is the reason the fallback was used.
type Resolution struct {
	Value  string
	Source Source
	Err    error
}

type ResolvedVersions struct {
	Kind      util.LoaderKind
	Game      Resolution
	Loader    Resolution
	Installer Resolution
}

func (r ResolvedVersions) Values() util.Versions {
	return util.Versions{Game: r.Game.Value, Loader: r.Loader.Value, Installer: r.Installer.Value}
}

// Field is a named resolution, used for display.
type Field struct {
	Name string
	Resolution
}

// Fields lists the resolutions r.Kind actually uses.
func (r ResolvedVersions) Fields() []Field {
	fields := []Field{{Name: "game", Resolution: r.Game}}
	spec := specFor(r.Kind)
	if spec.loader != nil {
		fields = append(fields, Field{Name: "loader", Resolution: r.Loader})
	}
	if spec.installer != nil {
		fields = append(fields, Field{Name: "installer", Resolution: r.Installer})
	}
	return fields
}

// Resolve fills every version kind needs, taking explicit values verbatim,
// then asking the loader's metadata service, then falling back to a
// last-known-good constant. It never fails. The game version is resolved
// first because loader lookups are per game version.
func Resolve(ctx context.Context, c *api.Client, kind util.LoaderKind, explicit util.Versions) ResolvedVersions {
	spec := specFor(kind)
	r := ResolvedVersions{Kind: kind}

	r.Game = resolveField(explicit.Game, spec.fallback.Game, func() (string, error) {
		return spec.game(c, ctx)
	})
	if spec.loader != nil {
		r.Loader = resolveField(explicit.Loader, spec.fallback.Loader, func() (string, error) {
			return spec.loader(c, ctx, r.Game.Value)
		})
	}
	if spec.installer != nil {
		r.Installer = resolveField(explicit.Installer, spec.fallback.Installer, func() (string, error) {
			return spec.installer(c, ctx)
		})
	}
	return r
}

func resolveField(explicit string, fallback string, query func() (string, error)) Resolution {
	if explicit != "" {
		return Resolution{Value: explicit, Source: SourceConfig}
	}
	value, err := query()
	if err == nil && value != "" {
		return Resolution{Value: value, Source: SourceRemote}
	}
	if err == nil {
		err = errors.New("empty version")
	}
	return Resolution{Value: fallback, Source: SourceFallback, Err: err}
}
