package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oklog/ulid/v2"
)

// noteExt is the extension for note files.
const noteExt = ".md"

// Note is a single note file on disk.
type Note struct {
	Path  string
	Title string
}

// NoteStore reads and writes note files in a single directory.
type NoteStore struct {
	dir    string
	logger *slog.Logger
}

// NewNoteStore creates a store over dir, creating it if needed.
func NewNoteStore(dir string, logger *slog.Logger) (*NoteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &NoteStore{dir: dir, logger: logger}, nil
}

// List returns the notes in the store, sorted by filename.
func (s *NoteStore) List() []Note {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Warn("failed to read notes directory", "dir", s.dir, "error", err)
		return nil
	}

	var notes []Note
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), noteExt) {
			continue
		}
		notes = append(notes, Note{
			Path:  filepath.Join(s.dir, entry.Name()),
			Title: strings.TrimSuffix(entry.Name(), noteExt),
		})
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].Path < notes[j].Path })
	return notes
}

// Create adds a new empty note with a ULID filename.
func (s *NoteStore) Create() (Note, error) {
	id := ulid.Make().String()
	note := Note{
		Path:  filepath.Join(s.dir, id+noteExt),
		Title: id,
	}
	if err := os.WriteFile(note.Path, nil, 0644); err != nil {
		return Note{}, err
	}
	return note, nil
}

// Read returns the note's content, or "" if it cannot be read.
func (s *NoteStore) Read(n Note) string {
	data, err := os.ReadFile(n.Path)
	if err != nil {
		s.logger.Warn("failed to read note", "path", n.Path, "error", err)
		return ""
	}
	return string(data)
}

// Write saves the note's content.
func (s *NoteStore) Write(n Note, content string) error {
	return os.WriteFile(n.Path, []byte(content), 0644)
}
