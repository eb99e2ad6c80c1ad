package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <venue-script-file>",
		Short: "re-parse and re-emit a venue script's manifest whenever the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchFile(cmd, args[0])
		},
	}
	return cmd
}

func watchFile(cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the containing directory, not the file itself: editors commonly
	// replace a file via rename-on-save, which drops a watch on the old inode.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	reload(cmd, path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				reload(cmd, path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
		case <-cmd.Context().Done():
			return nil
		}
	}
}

func reload(cmd *cobra.Command, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "read failed: %v\n", err)
		return
	}
	out, err := emitManifestJSON(string(raw))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "parse failed: %v\n", err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
}
