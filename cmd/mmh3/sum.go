package main

import "fmt"
import "io"
import "os"
import "path/filepath"

import "github.com/bmatcuk/doublestar/v4"
import "github.com/urfave/cli/v2"

import "github.com/sirgallo/mmh3"
import "github.com/sirgallo/mmh3/common/config"


const stdinPath = "-"


// sumAction
//	Hash every file argument, expanding directories through the include patterns. With no arguments stdin is hashed.
func sumAction(c *cli.Context) error {
	settings, settingsErr := loadSettings(c)
	if settingsErr != nil { return settingsErr }

	args := c.Args().Slice()
	if len(args) == 0 { args = []string{ stdinPath } }

	var paths []string
	for _, arg := range args {
		if arg == stdinPath {
			digest, readErr := mmh3.HashReader(c.Context, c.App.Reader, settings.Variant, settings.Seed)
			if readErr != nil { return readErr }

			printErr := printDigest(c.App.Writer, digest, settings, stdinPath)
			if printErr != nil { return printErr }

			continue
		}

		expanded, expandErr := expandPath(arg, settings.Include)
		if expandErr != nil { return expandErr }

		paths = append(paths, expanded...)
	}

	if len(paths) == 0 { return nil }

	opts := mmh3.HashFilesOpts{ Variant: settings.Variant, Seed: settings.Seed, Workers: settings.Workers }
	results, hashErr := mmh3.HashFiles(c.Context, paths, opts)
	if hashErr != nil { return hashErr }

	for _, result := range results {
		printErr := printDigest(c.App.Writer, result.Digest, settings, result.Path)
		if printErr != nil { return printErr }
	}

	return nil
}

// stringAction
//	Hash each argument on its own.
func stringAction(c *cli.Context) error {
	settings, settingsErr := loadSettings(c)
	if settingsErr != nil { return settingsErr }

	if c.Args().Len() == 0 { return cli.Exit("string requires at least one argument", 2) }

	for _, text := range c.Args().Slice() {
		digest := mmh3.SumBytes(settings.Variant, []byte(text), settings.Seed)

		printErr := printDigest(c.App.Writer, digest, settings, fmt.Sprintf("%q", text))
		if printErr != nil { return printErr }
	}

	return nil
}

// expandPath
//	A regular file is returned as is. A directory is searched with every include pattern, matches are deduplicated and kept in pattern order.
func expandPath(path string, include []string) ([]string, error) {
	info, statErr := os.Stat(path)
	if statErr != nil { return nil, statErr }

	if ! info.IsDir() { return []string{ path }, nil }

	seen := make(map[string]bool)
	var expanded []string

	for _, pattern := range include {
		matches, globErr := doublestar.Glob(os.DirFS(path), pattern, doublestar.WithFilesOnly())
		if globErr != nil { return nil, fmt.Errorf("bad include pattern %q: %w", pattern, globErr) }

		for _, match := range matches {
			full := filepath.Join(path, filepath.FromSlash(match))
			if seen[full] { continue }

			seen[full] = true
			expanded = append(expanded, full)
		}
	}

	cLog.Debug("expanded directory:", path, "files:", len(expanded))
	return expanded, nil
}

// printDigest
//	Write "<digest>  <name>", the layout of the coreutils *sum tools.
func printDigest(w io.Writer, digest mmh3.Digest, settings *config.Settings, name string) error {
	text, formatErr := digest.FormatString(settings.Format)
	if formatErr != nil { return formatErr }

	_, writeErr := fmt.Fprintf(w, "%s  %s\n", text, name)
	return writeErr
}
