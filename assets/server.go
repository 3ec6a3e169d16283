// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets provides a streaming asset server: loads are requested
// by path, run in the background, and polled without blocking through
// typed [Handle] values.
package assets

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"reflect"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/composer/base/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// LoadState is the state of an asset in a [Server].
type LoadState int32

const (
	// NotLoaded is an asset that was never requested, or was taken.
	NotLoaded LoadState = iota

	// Loading is an asset whose load is in flight.
	Loading

	// Loaded is an asset whose content is available.
	Loaded

	// Failed is an asset that could not be read or decoded.
	Failed
)

func (ls LoadState) String() string {
	switch ls {
	case NotLoaded:
		return "NotLoaded"
	case Loading:
		return "Loading"
	case Loaded:
		return "Loaded"
	case Failed:
		return "Failed"
	}
	return fmt.Sprintf("LoadState(%d)", int32(ls))
}

// DefaultConcurrency is the default maximum number of loads running at once.
const DefaultConcurrency = 4

var (
	// ErrNoDecoder is the error for a path whose file ending has no registered decoder.
	ErrNoDecoder = errors.New("no decoder registered for file ending")

	// ErrTypeMismatch is the error for a load requested as a different type
	// than the one its decoder produces.
	ErrTypeMismatch = errors.New("requested type does not match decoder type")

	// ErrNotLoaded is returned by [Server.Err] for paths that are not in the failed state.
	ErrNotLoaded = errors.New("asset not loaded")
)

// LoadError is a streaming failure for one asset.
type LoadError struct {
	Path string
	Err  error
}

func (le *LoadError) Error() string {
	return fmt.Sprintf("assets: loading %q: %v", le.Path, le.Err)
}

func (le *LoadError) Unwrap() error {
	return le.Err
}

// decoder turns file bytes into an asset value of type typ.
type decoder struct {
	typ    reflect.Type
	decode func(data []byte) (any, error)
}

// entry is the loading record for one file path.
type entry struct {
	path  string
	state LoadState
	value any
	err   *LoadError
}

// Server loads assets from a file system in the background.
// Loads of the same file are shared. All methods are safe for
// concurrent use; the loads themselves run on their own goroutines.
type Server struct {
	fsys   fs.FS
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
	sem    *semaphore.Weighted

	mu       sync.Mutex
	decoders map[string]decoder
	entries  map[string]*entry
	failed   []*LoadError
	pending  []*LoadError
	onError  []func(*LoadError)
}

// NewServer returns a new [Server] reading from fsys, running at most
// concurrency loads at once (or [DefaultConcurrency] if <= 0).
func NewServer(fsys fs.FS, concurrency int) *Server {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		fsys:     fsys,
		ctx:      ctx,
		cancel:   cancel,
		group:    &errgroup.Group{},
		sem:      semaphore.NewWeighted(int64(concurrency)),
		decoders: make(map[string]decoder),
		entries:  make(map[string]*entry),
	}
}

// Register registers the given decode function for files
// whose name ends with the given ending (for example ".json"
// or ".parts.json"). The longest matching ending wins.
// Registering an ending again replaces the previous decoder.
func Register[T any](s *Server, ending string, decode func(data []byte) (T, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decoders[ending] = decoder{
		typ: reflect.TypeFor[T](),
		decode: func(data []byte) (any, error) {
			return decode(data)
		},
	}
}

// decoderFor returns the decoder for the longest matching ending.
// Must be called with the mutex held.
func (s *Server) decoderFor(file string) (decoder, bool) {
	best := ""
	for ending := range s.decoders {
		if strings.HasSuffix(file, ending) && len(ending) > len(best) {
			best = ending
		}
	}
	if best == "" {
		return decoder{}, false
	}
	return s.decoders[best], true
}

// SplitLabel splits an asset path of the form "file#label"
// into its file system path and label.
func SplitLabel(p string) (file, label string) {
	file, label, _ = strings.Cut(p, "#")
	return CleanPath(file), label
}

// CleanPath returns p in the slash-separated, unrooted form
// used by [fs.FS], so "./config.json" becomes "config.json".
func CleanPath(p string) string {
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

// Load requests the asset at the given path, which may carry a "#label"
// suffix selecting sub-content for the consumer. It never blocks: it
// returns a handle immediately and the content becomes available to
// [Get] and [Take] once the background load finishes. Failures are
// reported through [Server.Errors], [Server.OnError] and the log.
func Load[T any](s *Server, p string) Handle[T] {
	h := Handle[T]{path: p}
	file := h.File()
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[file]; ok && e.state != NotLoaded {
		return h
	}
	e := &entry{path: file, state: Loading}
	s.entries[file] = e
	dec, ok := s.decoderFor(file)
	switch {
	case !ok:
		s.fail(e, ErrNoDecoder)
		return h
	case dec.typ != reflect.TypeFor[T]():
		s.fail(e, fmt.Errorf("%w: %v vs %v", ErrTypeMismatch, reflect.TypeFor[T](), dec.typ))
		return h
	}
	slog.Debug("assets: load requested", "path", file)
	s.group.Go(func() error {
		s.load(e, dec)
		return nil
	})
	return h
}

// load reads and decodes one entry on a background goroutine.
func (s *Server) load(e *entry, dec decoder) {
	if err := s.sem.Acquire(s.ctx, 1); err != nil {
		s.mu.Lock()
		s.fail(e, err)
		s.mu.Unlock()
		return
	}
	defer s.sem.Release(1)
	data, err := fs.ReadFile(s.fsys, e.path)
	var val any
	if err == nil {
		val, err = dec.decode(data)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries[e.path] != e {
		return // taken or replaced meanwhile
	}
	if err != nil {
		s.fail(e, err)
		return
	}
	e.value = val
	e.state = Loaded
	slog.Debug("assets: loaded", "path", e.path)
}

// fail marks the entry failed. Must be called with the mutex held.
func (s *Server) fail(e *entry, err error) {
	le := &LoadError{Path: e.path, Err: err}
	e.state = Failed
	e.err = le
	s.failed = append(s.failed, le)
	s.pending = append(s.pending, le)
	slog.Error(le.Error())
}

// Get returns the content for the given handle and true if it is
// loaded, without blocking. The content stays in the server.
func Get[T any](s *Server, h Handle[T]) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	e, ok := s.entries[h.File()]
	if !ok || e.state != Loaded {
		return zero, false
	}
	v, ok := e.value.(T)
	return v, ok
}

// Take is like [Get] but removes the content from the server on
// success, transferring ownership to the caller. A later [Load]
// of the same path reads it again.
func Take[T any](s *Server, h Handle[T]) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	file := h.File()
	e, ok := s.entries[file]
	if !ok || e.state != Loaded {
		return zero, false
	}
	v, ok := e.value.(T)
	if !ok {
		return zero, false
	}
	delete(s.entries, file)
	return v, true
}

// State returns the load state of the given path.
func (s *Server) State(p string) LoadState {
	file, _ := SplitLabel(p)
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[file]; ok {
		return e.state
	}
	return NotLoaded
}

// Err returns the [LoadError] for the given path if it failed,
// and [ErrNotLoaded] otherwise.
func (s *Server) Err(p string) error {
	file, _ := SplitLabel(p)
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[file]; ok && e.err != nil {
		return e.err
	}
	return ErrNotLoaded
}

// Errors returns all streaming failures so far, in order.
func (s *Server) Errors() []*LoadError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*LoadError(nil), s.failed...)
}

// OnError adds a function called from [Server.Update] for every
// streaming failure.
func (s *Server) OnError(fn func(*LoadError)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = append(s.onError, fn)
}

// Update delivers failures that happened since the last call to the
// [Server.OnError] functions, in the calling goroutine. It is meant to
// be called once per tick.
func (s *Server) Update() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	fns := slices.Clone(s.onError)
	s.mu.Unlock()
	for _, le := range pending {
		for _, fn := range fns {
			fn(le)
		}
	}
}

// Wait blocks until all loads requested so far have finished.
// It is for tools and tests; the tick loop never calls it.
func (s *Server) Wait() error {
	return s.group.Wait()
}

// Close cancels in-flight loads and waits for them to return.
func (s *Server) Close() error {
	s.cancel()
	return s.group.Wait()
}
