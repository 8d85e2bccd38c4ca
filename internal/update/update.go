// Package update checks GitHub releases for newer calc binaries and replaces
// the running executable.
package update

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creativeprojects/go-selfupdate"
)

// Repository is the GitHub slug releases are published under.
const Repository = "pengelbrecht/calc"

// InstallMethod describes how the running binary was installed.
type InstallMethod int

const (
	InstallDirect InstallMethod = iota
	InstallHomebrew
)

// ErrDevBuild is returned when the running binary has no release version.
var ErrDevBuild = errors.New("development build cannot be updated")

// Release describes an available release.
type Release struct {
	Version string
	URL     string
}

// DetectInstallMethod inspects the executable path.
func DetectInstallMethod() InstallMethod {
	exe, err := os.Executable()
	if err != nil {
		return InstallDirect
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return installMethodFor(exe)
}

func installMethodFor(path string) InstallMethod {
	p := filepath.ToSlash(path)
	if strings.Contains(p, "/Cellar/") || strings.Contains(p, "/homebrew/") || strings.Contains(p, "/linuxbrew/") {
		return InstallHomebrew
	}
	return InstallDirect
}

func isDevVersion(version string) bool {
	return version == "" || version == "dev" || strings.HasSuffix(version, "-dev")
}

// CheckForUpdate returns the latest release and whether it is newer than current.
func CheckForUpdate(ctx context.Context, current string) (*Release, bool, error) {
	if isDevVersion(current) {
		return nil, false, ErrDevBuild
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(Repository))
	if err != nil {
		return nil, false, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	release := &Release{Version: latest.Version(), URL: latest.URL}
	if latest.LessOrEqual(strings.TrimPrefix(current, "v")) {
		return release, false, nil
	}
	return release, true, nil
}

// Update replaces the running executable with the latest release.
func Update(ctx context.Context, current string) error {
	if isDevVersion(current) {
		return ErrDevBuild
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(Repository))
	if err != nil {
		return fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", Repository)
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("install %s: %w", latest.Version(), err)
	}
	return nil
}
