package markdown

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/devoto-app/devoto/internal/entry"
	"github.com/devoto-app/devoto/internal/storage"
)

// Backend implements storage.Backend using Markdown files with YAML
// front-matter, one file per entry under entries/<tracker>/.
type Backend struct {
	baseDir string
}

// New creates a new Markdown file storage backend.
func New(dataDir string) (*Backend, error) {
	entriesDir := filepath.Join(dataDir, "entries")
	for _, tracker := range entry.Trackers {
		if err := os.MkdirAll(filepath.Join(entriesDir, string(tracker)), 0755); err != nil {
			return nil, fmt.Errorf("%w: creating entries directory: %v", storage.ErrStorage, err)
		}
	}
	return &Backend{baseDir: entriesDir}, nil
}

// Close is a no-op for the Markdown backend.
func (b *Backend) Close() error {
	return nil
}

func (b *Backend) entryPath(e entry.Entry) string {
	name := entry.DayKey(e.Date) + "-" + e.ID + ".md"
	return filepath.Join(b.baseDir, string(e.Tracker), name)
}

func marshal(e entry.Entry) []byte {
	var sb strings.Builder
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "id: %s\n", e.ID)
	fmt.Fprintf(&sb, "tracker: %s\n", e.Tracker)
	fmt.Fprintf(&sb, "date: %s\n", entry.DayKey(e.Date))
	if e.Category != "" {
		fmt.Fprintf(&sb, "category: %s\n", e.Category)
	}
	if len(e.Items) > 0 {
		sb.WriteString("items:\n")
		for _, item := range e.Items {
			fmt.Fprintf(&sb, "  - text: %q\n", item.Text)
			if item.Category != "" {
				fmt.Fprintf(&sb, "    category: %s\n", item.Category)
			}
		}
	}
	if e.Verse != "" {
		fmt.Fprintf(&sb, "verse: %q\n", e.Verse)
	}
	if e.Favorite {
		sb.WriteString("favorite: true\n")
	}
	fmt.Fprintf(&sb, "created_at: %s\n", e.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&sb, "modified_at: %s\n", e.ModifiedAt.UTC().Format(time.RFC3339))
	sb.WriteString("---\n\n")
	sb.WriteString(e.Note)
	return []byte(sb.String())
}

type fmItem struct {
	Text     string `yaml:"text"`
	Category string `yaml:"category"`
}

type frontMatter struct {
	ID         string   `yaml:"id"`
	Tracker    string   `yaml:"tracker"`
	Date       string   `yaml:"date"`
	Category   string   `yaml:"category"`
	Items      []fmItem `yaml:"items"`
	Verse      string   `yaml:"verse"`
	Favorite   bool     `yaml:"favorite"`
	CreatedAt  string   `yaml:"created_at"`
	ModifiedAt string   `yaml:"modified_at"`
}

func unmarshal(data []byte) (entry.Entry, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(strings.NewReader(string(data)), &fm)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("%w: parsing front-matter: %v", storage.ErrStorage, err)
	}

	date, err := time.ParseInLocation("2006-01-02", fm.Date, time.Local)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("%w: parsing date: %v", storage.ErrStorage, err)
	}
	createdAt, err := time.Parse(time.RFC3339, fm.CreatedAt)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("%w: parsing created_at: %v", storage.ErrStorage, err)
	}
	modifiedAt, err := time.Parse(time.RFC3339, fm.ModifiedAt)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("%w: parsing modified_at: %v", storage.ErrStorage, err)
	}

	var items []entry.Item
	for _, item := range fm.Items {
		items = append(items, entry.Item{
			Text:     item.Text,
			Category: entry.Category(item.Category),
		})
	}

	return entry.Entry{
		ID:         fm.ID,
		Tracker:    entry.Tracker(fm.Tracker),
		Date:       date,
		Category:   entry.Category(fm.Category),
		Items:      items,
		Note:       strings.TrimSpace(string(body)),
		Verse:      fm.Verse,
		Favorite:   fm.Favorite,
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
	}, nil
}

// atomicWrite writes data to a temp file then renames it to the target path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory: %v", storage.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", storage.ErrStorage, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", storage.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", storage.ErrStorage, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming temp file: %v", storage.ErrStorage, err)
	}
	return nil
}

// findByID locates the entry file with the given ID across all trackers.
func (b *Backend) findByID(id string) (string, error) {
	for _, tracker := range entry.Trackers {
		pattern := filepath.Join(b.baseDir, string(tracker), "*-"+id+".md")
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return "", fmt.Errorf("%w: globbing entries: %v", storage.ErrStorage, err)
		}
		if len(matches) > 0 {
			return matches[0], nil
		}
	}
	return "", storage.ErrNotFound
}

// Persist writes an entry, inserting or replacing by ID.
func (b *Backend) Persist(e entry.Entry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}

	// An entry whose date was edited must not leave its old file behind.
	if old, err := b.findByID(e.ID); err == nil && old != b.entryPath(e) {
		if err := os.Remove(old); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("%w: removing stale file: %v", storage.ErrStorage, err)
		}
	}

	return atomicWrite(b.entryPath(e), marshal(e))
}

// LoadAll returns every persisted entry for the tracker, date ascending.
func (b *Backend) LoadAll(tracker entry.Tracker) ([]entry.Entry, error) {
	root := filepath.Join(b.baseDir, string(tracker))
	entries := []entry.Entry{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: reading %s: %v", storage.ErrStorage, path, err)
		}
		e, err := unmarshal(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

// Remove deletes an entry permanently.
func (b *Backend) Remove(id string) error {
	path, err := b.findByID(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: removing entry file: %v", storage.ErrStorage, err)
	}
	return nil
}
