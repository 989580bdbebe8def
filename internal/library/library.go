package library

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"photopick/internal/picker"

	"lukechampine.com/blake3"
)

// ErrNotDirectory is returned when the library root is not a directory.
var ErrNotDirectory = errors.New("library root is not a directory")

// imageExts are the file extensions the library lists.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Item is one photo in the library.
type Item struct {
	ID      string
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Selection converts the item into the handle the picker compares on completion.
func (it Item) Selection() picker.Selection {
	return picker.Selection{ID: it.ID, Path: it.Path, Name: it.Name}
}

// Library lists photos under a root directory.
type Library struct {
	root      string
	recursive bool
}

// New returns a library rooted at dir. The path is made absolute so item IDs
// do not depend on the working directory.
func New(dir string, recursive bool) (*Library, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("library root %q: %w", dir, err)
	}
	return &Library{root: abs, recursive: recursive}, nil
}

// Root returns the absolute library root.
func (l *Library) Root() string {
	return l.root
}

// Scan lists image files sorted by name. Unreadable subdirectories are skipped.
func (l *Library) Scan() ([]Item, error) {
	info, err := os.Stat(l.root)
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", l.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan %q: %w", l.root, ErrNotDirectory)
	}

	var items []Item
	err = filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == l.root {
				return err
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != l.root && (!l.recursive || strings.HasPrefix(d.Name(), ".")) {
				return fs.SkipDir
			}
			return nil
		}
		if !IsImageName(d.Name()) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		items = append(items, Item{
			ID:      ItemID(path),
			Path:    path,
			Name:    l.displayName(path),
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", l.root, err)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

// displayName is the path relative to the root, slash-separated.
func (l *Library) displayName(path string) string {
	rel, err := filepath.Rel(l.root, path)
	if err != nil {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}

// IsImageName reports whether name has an image extension the library lists.
func IsImageName(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

// ItemID derives a stable identity from the cleaned absolute path.
func ItemID(path string) string {
	sum := blake3.Sum256([]byte(filepath.Clean(path)))
	return hex.EncodeToString(sum[:])
}
