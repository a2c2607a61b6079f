package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/jotkit/jot/pkg/core"
)

// debounceDelay collapses the write+rename burst of an atomic save (or
// an external editor's save dance) into a single event.
const debounceDelay = 50 * time.Millisecond

// watchWorker observes the slot's parent directory. Watching the
// directory rather than the file is deliberate: atomic saves replace
// the slot by rename, which would detach a file-level watch.
type watchWorker struct {
	*worker.BaseWorker
	slot      *Slot
	events    chan<- core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newWatchWorker(slot *Slot, events chan<- core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("slot-watcher"),
		slot:       slot,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(w.slot.Path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch slot directory: %w", err)
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(debounceDelay)
	w.slot.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// processEvent filters, maps, and debounces a filesystem event.
// Returns true if the event concerned the slot and was enqueued.
func (w *watchWorker) processEvent(ctx context.Context, event fsnotify.Event) (processed bool) {
	if w.slot.config.Logger != nil {
		w.slot.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())
	}

	if w.shouldIgnore(event) {
		return false
	}

	eType := w.mapEventType(event)
	if eType == "" {
		return false
	}

	w.debouncer.add(core.Event{
		Type:      eType,
		Path:      w.slot.Path,
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		defer func() {
			// Recover from panic if channel was closed (worker stopping)
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})

	return true
}

// shouldIgnore filters out everything that is not an external change of
// the slot itself: unrelated files in the directory, our own atomic
// temp files, and events within the self-write window of a Save.
func (w *watchWorker) shouldIgnore(event fsnotify.Event) bool {
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, TempFilePrefix) {
		return true
	}
	if filepath.Clean(event.Name) != filepath.Clean(w.slot.Path) {
		return true
	}
	if w.slot.recentSelfWrite() {
		if w.slot.config.Logger != nil {
			w.slot.config.Logger.Debug("ignoring self-write event", "name", event.Name)
		}
		return true
	}
	return false
}

func (w *watchWorker) mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Remove):
		return core.EventSlotRemoved
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write), event.Has(fsnotify.Rename):
		return core.EventSlotChanged
	default:
		return ""
	}
}

// handleWatcherError processes errors from the fsnotify watcher.
func (w *watchWorker) handleWatcherError(err error) (shouldContinue bool) {
	if w.slot.config.Logger != nil {
		w.slot.config.Logger.Error("fsnotify error", "error", err)
	}
	if w.slot.config.ErrorHandler != nil {
		w.slot.config.ErrorHandler(err)
	}
	return true
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) error {
	defer w.slot.setWatcherActive(false)
	defer w.watcher.Close()
	defer close(w.events)

	err := w.mainEventLoop(ctx)

	// Shutdown debouncer before the deferred close of the events
	// channel: stop accepting events and wait for in-flight timers.
	w.debouncer.stopAndWait(5 * time.Second)

	return err
}

func (w *watchWorker) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleWatcherError(wErr)
		}
	}
}
