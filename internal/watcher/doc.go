// Package watcher owns the background filesystem subscriptions that
// detect external edits to collection directories.
//
// A Manager holds at most one session per watched directory; watching a
// path again tears down the prior session first, so a directory never
// delivers duplicate events. Each session subscribes recursively (new
// subdirectories join as they appear), ignores dotfiles, and pushes raw
// fsnotify events through a debounce queue so a burst of writes to one
// file settles into a single notification.
//
// Classification consults the modification tracker: a write only becomes
// a "modified" notification when the on-disk modification time is
// strictly newer than the last one recorded, which is how an external
// edit is told apart from noise and from the application's own saves.
package watcher
