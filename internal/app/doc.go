// Package app implements the OmNote GTK application: a tabbed markdown
// note editor whose stylesheet follows the terminal color scheme.
package app
