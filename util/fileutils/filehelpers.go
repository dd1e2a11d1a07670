package fileutils

import (
	"bytes"
	"os"

	"github.com/magiconair/properties"
	"github.com/spf13/afero"
)

const eulaComment = "By changing the setting below to TRUE you are indicating your agreement to our EULA (https://aka.ms/MinecraftEULA)."

func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

func IsDir(fs afero.Fs, path string) bool {
	ok, err := afero.DirExists(fs, path)
	return err == nil && ok
}

// RemoveIfExists deletes path and reports whether there was anything to delete.
func RemoveIfExists(fs afero.Fs, path string) (bool, error) {
	if !Exists(fs, path) {
		return false, nil
	}
	if err := fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return false, err
	}
	return true, nil
}

// WriteEula overwrites eula.txt with an accepted EULA.
func WriteEula(fs afero.Fs, path string) error {
	p := properties.NewProperties()
	p.DisableExpansion = true
	if _, _, err := p.Set("eula", "true"); err != nil {
		return err
	}
	p.SetComment("eula", eulaComment)

	var buf bytes.Buffer
	if _, err := p.WriteComment(&buf, "# ", properties.UTF8); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, buf.Bytes(), 0644)
}
