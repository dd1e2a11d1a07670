package services

import (
	"path/filepath"
	"testing"

	"github.com/mrnavastar/server-launcher/util"
	"github.com/spf13/afero"
)

func TestEnsureInstalledRunsOnce(t *testing.T) {
	fs := afero.NewMemMapFs()
	installer := "/srv/forge-1.20.1-47.2.0-installer.jar"
	byproducts := []string{"forge-1.20.1-47.2.0-installer.jar.log", "run.bat", "run.sh"}

	runner := &fakeRunner{status: func(call runCall) int {
		// what the forge installer leaves behind
		fs.MkdirAll("/srv/libraries/net/minecraftforge", 0755)
		for _, name := range byproducts {
			afero.WriteFile(fs, filepath.Join("/srv", name), []byte("x"), 0644)
		}
		afero.WriteFile(fs, "/srv/user_jvm_args.txt", []byte("# jvm args"), 0644)
		return 0
	}}
	i := &Installer{Fs: fs, Runner: runner, Log: util.Discard()}
	cfg := &util.LauncherConfig{Kind: util.Forge, Versions: util.Versions{Game: "1.20.1", Loader: "47.2.0"}, Dir: "/srv"}

	ran, err := i.EnsureInstalled(cfg, installer)
	if err != nil || !ran {
		t.Fatalf("first install = %v, %v; want true, nil", ran, err)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("runner called %d times, want 1", len(runner.calls))
	}
	call := runner.calls[0]
	if call.Jar != installer || !equalArgs(call.Args, []string{"--installServer"}) {
		t.Errorf("call = %+v", call)
	}
	for _, name := range byproducts {
		if ok, _ := afero.Exists(fs, filepath.Join("/srv", name)); ok {
			t.Errorf("%s was not removed", name)
		}
	}
	if ok, _ := afero.Exists(fs, "/srv/user_jvm_args.txt"); !ok {
		t.Error("user_jvm_args.txt must be kept")
	}

	// A byproduct appearing later must survive a second run: nothing happens
	// once libraries exists.
	afero.WriteFile(fs, "/srv/run.sh", []byte("x"), 0644)
	ran, err = i.EnsureInstalled(cfg, installer)
	if err != nil || ran {
		t.Fatalf("second install = %v, %v; want false, nil", ran, err)
	}
	if len(runner.calls) != 1 {
		t.Errorf("runner called %d times, want 1", len(runner.calls))
	}
	if ok, _ := afero.Exists(fs, "/srv/run.sh"); !ok {
		t.Error("second run deleted files")
	}
}

func TestEnsureInstalledQuiltArgs(t *testing.T) {
	runner := &fakeRunner{}
	i := &Installer{Fs: afero.NewMemMapFs(), Runner: runner, Log: util.Discard()}
	cfg := &util.LauncherConfig{Kind: util.Quilt, Versions: util.Versions{Game: "1.21.1", Loader: "0.26.4", Installer: "0.9.2"}, Dir: "/srv"}

	if _, err := i.EnsureInstalled(cfg, "/srv/quilt-installer-0.9.2.jar"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"install", "server", "1.21.1", "0.26.4", "--install-dir=.", "--download-server"}
	if len(runner.calls) != 1 || !equalArgs(runner.calls[0].Args, want) {
		t.Errorf("calls = %+v, want args %v", runner.calls, want)
	}
}

func TestEnsureInstalledIgnoresInstallerStatus(t *testing.T) {
	runner := &fakeRunner{status: func(runCall) int { return 3 }}
	i := &Installer{Fs: afero.NewMemMapFs(), Runner: runner, Log: util.Discard()}
	cfg := &util.LauncherConfig{Kind: util.NeoForge, Versions: util.Versions{Game: "1.21.1", Loader: "21.1.77"}, Dir: "/srv"}

	ran, err := i.EnsureInstalled(cfg, "/srv/neoforge-21.1.77-installer.jar")
	if err != nil || !ran {
		t.Errorf("got %v, %v; want true, nil", ran, err)
	}
}

func TestEnsureInstalledSkipsFabric(t *testing.T) {
	runner := &fakeRunner{}
	i := &Installer{Fs: afero.NewMemMapFs(), Runner: runner, Log: util.Discard()}
	cfg := &util.LauncherConfig{Kind: util.Fabric, Dir: "/srv"}

	ran, err := i.EnsureInstalled(cfg, "/srv/fabric-server.jar")
	if err != nil || ran {
		t.Errorf("got %v, %v; want false, nil", ran, err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("runner called %d times", len(runner.calls))
	}
	if NeedsInstall(util.Fabric) {
		t.Error("Fabric server jars run directly")
	}
}
