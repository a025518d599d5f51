// Package watch provides a single-directory change notifier built on
// fsnotify. The CLI watch loop uses it to reload the rename engine's file
// list when the target directory changes on disk.
package watch

import (
	"fmt"
	"os"
	"sync"
	"time"

	"bulkrename/internal/log"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces bursts of events (editors and copies touch a
// file several times) into one notification.
const debounceWindow = 250 * time.Millisecond

// Notifier watches one directory and delivers a signal per burst of
// filesystem changes.
type Notifier struct {
	fsWatcher *fsnotify.Watcher
	changes   chan struct{}
	stopChan  chan struct{}

	mu      sync.Mutex
	running bool
}

// New creates a notifier for the given directory.
func New(directory string) (*Notifier, error) {
	info, err := os.Stat(directory)
	if err != nil {
		return nil, fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", directory)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(directory); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", directory, err)
	}

	return &Notifier{
		fsWatcher: fsWatcher,
		changes:   make(chan struct{}, 1),
		stopChan:  make(chan struct{}),
	}, nil
}

// Changes returns the channel that receives one signal per change burst.
func (n *Notifier) Changes() <-chan struct{} {
	return n.changes
}

// Start begins delivering change signals. It is idempotent.
func (n *Notifier) Start() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.running {
		return
	}
	n.running = true
	go n.loop()
}

func (n *Notifier) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-n.fsWatcher.Events:
			if !ok {
				return
			}
			// Only mutations matter; chmod noise is ignored.
			if event.Op&(fsnotify.Create|fsnotify.Rename|fsnotify.Remove|fsnotify.Write) == 0 {
				continue
			}
			log.Debugf("fs event: %s", event)
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				timer.Reset(debounceWindow)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case n.changes <- struct{}{}:
			default:
			}

		case err, ok := <-n.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Errorf("watcher error: %v", err)

		case <-n.stopChan:
			return
		}
	}
}

// Stop shuts the notifier down and releases the underlying watcher.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.running {
		n.fsWatcher.Close()
		return
	}
	n.running = false
	close(n.stopChan)
	n.fsWatcher.Close()
}
