package leapseconds

import (
	"path/filepath"
	"time"

	"github.com/chrisconley/chronon/duration"
	"github.com/chrisconley/chronon/internal/infra"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// unixToNTP is the number of seconds from 1900-01-01 to 1970-01-01.
const unixToNTP = 2_208_988_800

// Installed is published after a table from Path replaced the store's.
type Installed struct {
	Path    string
	Records int
}

func (Installed) EventType() infra.EventType { return infra.LeapSecondsInstalled }

// Rejected is published when a changed file could not be loaded. The
// previous table stays installed.
type Rejected struct {
	Path string
	Err  error
}

func (Rejected) EventType() infra.EventType { return infra.LeapSecondsRejected }

// Expired is published when an installed table declares an expiry that has
// already passed.
type Expired struct {
	Path   string
	Expiry duration.Duration
}

func (Expired) EventType() infra.EventType { return infra.LeapSecondsExpired }

// Install loads path into store and announces the outcome on bus, which may
// be nil.
func Install(store *Store, path string, bus *infra.Bus) error {
	t, err := LoadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("leap second list rejected")
		publish(bus, Rejected{Path: path, Err: err})
		return err
	}
	store.Install(t)
	log.Info().Str("path", path).Int("records", t.Len()).Msg("leap second list installed")
	publish(bus, Installed{Path: path, Records: t.Len()})

	if expiry, ok := t.Expiry(); ok {
		now := duration.Second.Mul(time.Now().Unix() + unixToNTP)
		if expiry.Less(now) {
			log.Warn().Str("path", path).Msg("leap second list has expired")
			publish(bus, Expired{Path: path, Expiry: expiry})
		}
	}
	return nil
}

func publish(bus *infra.Bus, e infra.Event) {
	if bus != nil {
		bus.Publish(e)
	}
}

// Watcher reinstalls a leap second list whenever the file changes on disk.
type Watcher struct {
	Path string

	store   *Store
	bus     *infra.Bus
	done    chan struct{}
	started bool
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher that installs Path into store.
func NewWatcher(path string, store *Store, bus *infra.Bus) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		Path:    path,
		store:   store,
		bus:     bus,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start watches the file's directory, so editors that replace the file are
// seen too.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		w.watcher.Close()
		return err
	}
	w.started = true
	go w.loop()
	return nil
}

// Stop closes the watcher and waits for the loop to exit. It may be called
// whether or not Start succeeded.
func (w *Watcher) Stop() {
	w.watcher.Close()
	if w.started {
		<-w.done
	}
}

func (w *Watcher) loop() {
	defer close(w.done)

	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	target := filepath.Clean(w.Path)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}
				_ = Install(w.store, w.Path, w.bus)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Str("path", w.Path).Msg("leap second watch error")
		}
	}
}
