// Package theme turns a resolved terminal palette into GTK CSS, manages the
// installed stylesheet provider, and keeps the application's look in sync
// with the user's terminal theme through a debounced filesystem watcher and
// the libadwaita color-scheme signal.
package theme
