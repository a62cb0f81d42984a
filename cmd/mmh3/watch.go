package main

import "context"
import "errors"
import "io"
import "path/filepath"

import "github.com/fsnotify/fsnotify"
import "github.com/urfave/cli/v2"

import "github.com/sirgallo/mmh3"
import "github.com/sirgallo/mmh3/common/config"


// watchAction
//	Print the digest of every argument, then again each time one is written or recreated, until interrupted.
func watchAction(c *cli.Context) error {
	settings, settingsErr := loadSettings(c)
	if settingsErr != nil { return settingsErr }

	if c.Args().Len() == 0 { return cli.Exit("watch requires at least one path", 2) }

	return watchFiles(c.Context, c.App.Writer, settings, c.Args().Slice())
}

// watchFiles
//	Watch the parent directory of each path so editors that replace files on save are still seen.
func watchFiles(ctx context.Context, w io.Writer, settings *config.Settings, paths []string) error {
	watcher, watcherErr := fsnotify.NewWatcher()
	if watcherErr != nil { return watcherErr }

	defer watcher.Close()

	watched := make(map[string]bool)
	for _, path := range paths {
		abs, absErr := filepath.Abs(path)
		if absErr != nil { return absErr }

		watched[abs] = true

		addErr := watcher.Add(filepath.Dir(abs))
		if addErr != nil { return addErr }

		hashErr := printFileDigest(ctx, w, settings, abs)
		if hashErr != nil { return hashErr }
	}

	for {
		select {
			case <- ctx.Done():
				return nil
			case event, ok := <- watcher.Events:
				if ! ok { return nil }
				if ! watched[event.Name] || event.Op & (fsnotify.Write | fsnotify.Create) == 0 { continue }

				hashErr := printFileDigest(ctx, w, settings, event.Name)
				if errors.Is(hashErr, context.Canceled) { return nil }
				if hashErr != nil { cLog.Warn("error hashing changed file:", event.Name, hashErr.Error()) }
			case watchErr, ok := <- watcher.Errors:
				if ! ok { return nil }
				cLog.Error("watcher error:", watchErr.Error())
		}
	}
}

func printFileDigest(ctx context.Context, w io.Writer, settings *config.Settings, path string) error {
	digest, hashErr := mmh3.HashFile(ctx, path, settings.Variant, settings.Seed)
	if hashErr != nil { return hashErr }

	return printDigest(w, digest, settings, path)
}
