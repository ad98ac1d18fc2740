package app

import (
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/omnote/omnote/internal/config"
)

const (
	defaultWidth  = 900
	defaultHeight = 640

	autosaveInterval = 30 * time.Second
)

// editor is one open note with its text view and tab page.
type editor struct {
	note  Note
	view  *gtk.TextView
	page  *adw.TabPage
	dirty bool
}

// window is the main application window: a header bar with new-note and
// search controls above a tabbed set of note editors.
type window struct {
	win     *adw.ApplicationWindow
	store   *NoteStore
	cfg     *config.Config
	logger  *slog.Logger
	tabView *adw.TabView
	editors map[string]*editor

	autosave *time.Ticker
	done     chan struct{}
}

// newWindow builds the main window and opens every note in the store.
func newWindow(app *adw.Application, store *NoteStore, cfg *config.Config, logger *slog.Logger) *window {
	w := &window{
		win:     adw.NewApplicationWindow(&app.Application),
		store:   store,
		cfg:     cfg,
		logger:  logger,
		editors: make(map[string]*editor),
	}

	w.win.SetTitle("OmNote")
	w.win.SetDefaultSize(defaultWidth, defaultHeight)

	w.tabView = adw.NewTabView()
	w.tabView.SetVExpand(true)
	w.tabView.ConnectClosePage(func(page *adw.TabPage) bool {
		w.closePage(page)
		return true
	})

	tabBar := adw.NewTabBar()
	tabBar.SetView(w.tabView)

	header := adw.NewHeaderBar()
	header.SetTitleWidget(adw.NewWindowTitle("OmNote", ""))

	newBtn := gtk.NewButtonFromIconName("tab-new-symbolic")
	newBtn.SetTooltipText("New note")
	newBtn.ConnectClicked(w.createNote)
	header.PackStart(newBtn)

	search := gtk.NewSearchEntry()
	search.SetTooltipText("Find in current note")
	search.ConnectSearchChanged(func() {
		w.findInCurrent(search.Text())
	})
	header.PackEnd(search)

	box := gtk.NewBox(gtk.OrientationVertical, 0)
	box.Append(header)
	box.Append(tabBar)
	box.Append(w.tabView)
	w.win.SetContent(box)

	w.win.ConnectCloseRequest(func() bool {
		w.stopAutosave()
		w.saveAll()
		return false
	})

	for _, note := range store.List() {
		w.openNote(note)
	}
	if len(w.editors) == 0 {
		w.createNote()
	}

	w.startAutosave()

	return w
}

// startAutosave periodically flushes dirty editors, marshaled onto the GTK
// main loop.
func (w *window) startAutosave() {
	w.autosave = time.NewTicker(autosaveInterval)
	w.done = make(chan struct{})
	go func() {
		for {
			select {
			case <-w.done:
				return
			case <-w.autosave.C:
				glib.IdleAdd(func() { w.saveAll() })
			}
		}
	}()
}

func (w *window) stopAutosave() {
	if w.autosave == nil {
		return
	}
	w.autosave.Stop()
	close(w.done)
	w.autosave = nil
}

func (w *window) present() { w.win.Present() }

// openNote adds a tab for the note, or selects it if already open.
func (w *window) openNote(note Note) {
	if ed, ok := w.editors[note.Title]; ok {
		w.tabView.SetSelectedPage(ed.page)
		return
	}

	view := gtk.NewTextView()
	view.SetMonospace(w.cfg.Editor.Monospace)
	if w.cfg.Editor.WrapText {
		view.SetWrapMode(gtk.WrapWordChar)
	} else {
		view.SetWrapMode(gtk.WrapNone)
	}
	view.SetLeftMargin(12)
	view.SetRightMargin(12)
	view.SetTopMargin(8)
	view.SetBottomMargin(8)

	ed := &editor{note: note, view: view}
	buf := view.Buffer()
	buf.SetText(w.store.Read(note))
	buf.ConnectChanged(func() { ed.dirty = true })

	scroller := gtk.NewScrolledWindow()
	scroller.SetVExpand(true)
	scroller.SetChild(view)
	scroller.SetName(note.Title)

	ed.page = w.tabView.Append(scroller)
	ed.page.SetTitle(note.Title)
	w.editors[note.Title] = ed
	w.tabView.SetSelectedPage(ed.page)
}

// createNote makes a new note file and opens it.
func (w *window) createNote() {
	note, err := w.store.Create()
	if err != nil {
		w.logger.Error("failed to create note", "error", err)
		return
	}
	w.openNote(note)
}

// closePage saves a tab's note before confirming the close.
func (w *window) closePage(page *adw.TabPage) {
	key := gtk.BaseWidget(page.Child()).Name()
	if ed, ok := w.editors[key]; ok {
		w.save(ed)
		delete(w.editors, key)
	}
	w.tabView.ClosePageFinish(page, true)
}

// saveAll flushes every dirty editor to disk.
func (w *window) saveAll() {
	for _, ed := range w.editors {
		w.save(ed)
	}
}

func (w *window) save(ed *editor) {
	if !ed.dirty {
		return
	}
	buf := ed.view.Buffer()
	start, end := buf.Bounds()
	if err := w.store.Write(ed.note, buf.Text(start, end, true)); err != nil {
		w.logger.Error("failed to save note", "path", ed.note.Path, "error", err)
		return
	}
	ed.dirty = false
}

// findInCurrent selects the next occurrence of query in the focused note,
// starting from the cursor.
func (w *window) findInCurrent(query string) {
	if query == "" {
		return
	}
	page := w.tabView.SelectedPage()
	if page == nil {
		return
	}
	ed, ok := w.editors[gtk.BaseWidget(page.Child()).Name()]
	if !ok {
		return
	}

	buf := ed.view.Buffer()
	start, end := buf.Bounds()
	text := buf.Text(start, end, true)

	cursor := 0
	if _, selEnd, ok := buf.SelectionBounds(); ok {
		cursor = selEnd.Offset()
	}

	off := matchOffset(text, query, cursor)
	if off < 0 {
		return
	}
	from := buf.IterAtOffset(off)
	to := buf.IterAtOffset(off + utf8.RuneCountInString(query))
	buf.SelectRange(from, to)
	ed.view.ScrollToIter(from, 0.1, false, 0, 0)
}

// matchOffset finds the rune offset of the first case-insensitive match at or
// after the cursor, wrapping to the start if needed. Returns -1 for no match.
func matchOffset(text, query string, cursor int) int {
	lower := strings.ToLower(text)
	query = strings.ToLower(query)

	runes := []rune(lower)
	if cursor > len(runes) {
		cursor = len(runes)
	}
	if i := strings.Index(string(runes[cursor:]), query); i >= 0 {
		return cursor + utf8.RuneCountInString(string(runes[cursor:])[:i])
	}
	if i := strings.Index(lower, query); i >= 0 {
		return utf8.RuneCountInString(lower[:i])
	}
	return -1
}
