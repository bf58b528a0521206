// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/syncedlist"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type todoSubscription struct {
	id  uint64
	obs syncedlist.Observer[*models.Todo]
}

type clientTodoService struct {
	store     adapter.TodoStore
	validator validators.Validator
	options   []syncedlist.Option[*models.Todo]
	logger    *logger.Logger

	mu   sync.RWMutex
	list *syncedlist.List[*models.Todo]

	// opMu is held for reading by every list operation and for writing by
	// Load, so a reload never overlaps an operation on the old list.
	opMu sync.RWMutex

	subsMu sync.RWMutex
	subs   []todoSubscription
	nextID uint64
}

// NewClientTodoService builds a service over todoStore. The list options are
// applied on every Load, after the service's own logger and observer.
func NewClientTodoService(todoStore adapter.TodoStore, logger *logger.Logger, opts ...syncedlist.Option[*models.Todo]) ClientTodoService {
	return &clientTodoService{
		store:     todoStore,
		validator: validators.NewTodoValidator(),
		options:   opts,
		logger:    logger,
	}
}

func (s *clientTodoService) Load(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.saveBeforeReload(ctx); err != nil {
		return err
	}

	todos, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientTodoService.Load").Msg("failed to load todos from store")
		return fmt.Errorf("error loading todos: %w", err)
	}
	if todos == nil {
		todos = []*models.Todo{}
	}

	s.dispatch(syncedlist.Change[*models.Todo]{Kind: syncedlist.Reset, Index: -1})

	opts := append([]syncedlist.Option[*models.Todo]{
		syncedlist.WithLogger[*models.Todo](s.logger),
		syncedlist.WithObserver[*models.Todo](s.dispatch),
	}, s.options...)

	list, err := syncedlist.NewFromSnapshot[*models.Todo](s.store, todos, opts...)
	if err != nil {
		return fmt.Errorf("error building todo list: %w", err)
	}

	s.mu.Lock()
	s.list = list
	s.mu.Unlock()

	s.logger.Info().Str("func", "clientTodoService.Load").Int("todos", len(todos)).Msg("todo list loaded")
	return nil
}

// saveBeforeReload resyncs the current list so a reload does not throw away
// changes the store never received. Must be called with opMu held.
func (s *clientTodoService) saveBeforeReload(ctx context.Context) error {
	list, err := s.loaded()
	if err != nil || len(list.Dirty()) == 0 {
		return nil
	}

	if err = list.Resync(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientTodoService.Load").
			Ints("out_of_sync", list.Dirty()).Msg("reload refused, local changes are not saved")
		return fmt.Errorf("%w: %w", ErrUnsavedChanges, err)
	}
	return nil
}

func (s *clientTodoService) Add(ctx context.Context, title string) (*models.Todo, error) {
	list, release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	todo := &models.Todo{Title: strings.TrimSpace(title)}
	if err = s.validator.Validate(ctx, todo, validators.FieldTitle); err != nil {
		return nil, fmt.Errorf("invalid todo: %w", err)
	}

	created, err := list.Append(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("error adding todo: %w", err)
	}
	return created.Clone(), nil
}

func (s *clientTodoService) Toggle(ctx context.Context, id string) error {
	return s.modify(ctx, id, func(t *models.Todo) {
		t.Completed = !t.Completed
	})
}

func (s *clientTodoService) Rename(ctx context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if err := s.validator.Validate(ctx, models.Todo{Title: title}, validators.FieldTitle); err != nil {
		return fmt.Errorf("invalid todo: %w", err)
	}

	return s.modify(ctx, id, func(t *models.Todo) {
		t.Title = title
	})
}

// modify replaces the todo with a changed copy so readers holding the
// previous pointer never observe a half-applied change.
func (s *clientTodoService) modify(ctx context.Context, id string, change func(*models.Todo)) error {
	list, release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	_, err = list.ModifyFunc(ctx, hasID(id), func(t *models.Todo) *models.Todo {
		c := t.Clone()
		change(c)
		return c
	})
	if err != nil {
		return fmt.Errorf("error changing todo %s: %w", id, err)
	}
	return nil
}

func (s *clientTodoService) Remove(ctx context.Context, id string) error {
	list, release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	if _, err = list.RemoveFunc(ctx, hasID(id)); err != nil {
		return fmt.Errorf("error removing todo %s: %w", id, err)
	}
	return nil
}

func (s *clientTodoService) Clear(ctx context.Context) error {
	list, release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	if err = list.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing todos: %w", err)
	}
	return nil
}

func (s *clientTodoService) List() []*models.Todo {
	list, err := s.loaded()
	if err != nil {
		return []*models.Todo{}
	}

	items := list.Items()
	out := make([]*models.Todo, 0, len(items))
	for _, t := range items {
		out = append(out, t.Clone())
	}
	return out
}

func (s *clientTodoService) Subscribe(obs syncedlist.Observer[*models.Todo]) func() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, todoSubscription{id: id, obs: obs})

	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		s.subs = slices.DeleteFunc(s.subs, func(sub todoSubscription) bool { return sub.id == id })
	}
}

func (s *clientTodoService) Resync(ctx context.Context) error {
	list, release, err := s.acquire()
	if err != nil {
		return err
	}
	defer release()

	return list.Resync(ctx)
}

func (s *clientTodoService) OutOfSync() []int {
	list, err := s.loaded()
	if err != nil {
		return nil
	}
	return list.Dirty()
}

func (s *clientTodoService) loaded() (*syncedlist.List[*models.Todo], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.list == nil {
		return nil, ErrListNotLoaded
	}
	return s.list, nil
}

// acquire returns the current list with opMu held for reading. The caller
// must call release once its operation has finished.
func (s *clientTodoService) acquire() (list *syncedlist.List[*models.Todo], release func(), err error) {
	s.opMu.RLock()
	list, err = s.loaded()
	if err != nil {
		s.opMu.RUnlock()
		return nil, nil, err
	}
	return list, s.opMu.RUnlock, nil
}

func hasID(id string) func(*models.Todo) bool {
	return func(t *models.Todo) bool {
		return t != nil && t.ID == id
	}
}

func (s *clientTodoService) dispatch(c syncedlist.Change[*models.Todo]) {
	s.subsMu.RLock()
	subs := slices.Clone(s.subs)
	s.subsMu.RUnlock()

	if c.Item != nil {
		c.Item = c.Item.Clone()
	}
	for _, sub := range subs {
		sub.obs(c)
	}
}
