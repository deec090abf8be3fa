package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind tells tuning files from scripts.
type ChangeKind int

const (
	ChangeSpec ChangeKind = iota
	ChangeScript
)

// Change is one debounced edit of a prefab file. Name is prefabs-relative,
// e.g. "camera.yaml" or "scripts/jewels_complete.tengo".
type Change struct {
	Name string
	Kind ChangeKind
}

// Watcher reports edits to the on-disk prefab directory. The game loop polls
// Poll each tick; nothing blocks on the channel.
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan Change
	errs    chan error
	closeCh chan struct{}
	once    sync.Once
}

const debounce = 100 * time.Millisecond

// NewWatcher watches the given prefab root and its scripts directory, when
// present.
func NewWatcher(root string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs := []string{root}
	if info, err := os.Stat(filepath.Join(root, "scripts")); err == nil && info.IsDir() {
		dirs = append(dirs, filepath.Join(root, "scripts"))
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		changes: make(chan Change, 16),
		errs:    make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Poll returns every change queued since the last call.
func (w *Watcher) Poll() []Change {
	if w == nil {
		return nil
	}
	var out []Change
	for {
		select {
		case c, ok := <-w.changes:
			if !ok {
				return out
			}
			out = append(out, c)
		default:
			return out
		}
	}
}

// Err returns a pending watcher error, if any.
func (w *Watcher) Err() error {
	if w == nil {
		return nil
	}
	select {
	case err, ok := <-w.errs:
		if !ok {
			return nil
		}
		return err
	default:
		return nil
	}
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.changes)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			change, ok := classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[change.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[change.Name] = now
			select {
			case w.changes <- change:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
				// keep the first unread error
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(path string) (Change, bool) {
	name := filepath.ToSlash(path)
	switch {
	case isSpecFile(name):
		return Change{Name: filepath.Base(name), Kind: ChangeSpec}, true
	case isScriptFile(name):
		return Change{Name: "scripts/" + filepath.Base(name), Kind: ChangeScript}, true
	}
	return Change{}, false
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
