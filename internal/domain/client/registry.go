package client

import (
	"context"
	"errors"
	"strings"
	"time"

	"eco-urh/go_backend/internal/domain/confirm"
	"eco-urh/go_backend/internal/infra/kv"
)

const storageKey = "app_clients"

var (
	// ErrMissingFields rejects a create with an empty name or phone.
	ErrMissingFields = errors.New("nombre y teléfono son obligatorios")
	// ErrNotConfirmed means the user declined the deletion prompt.
	ErrNotConfirmed = errors.New("operación no confirmada")
)

// Registry is the client roster: a full list kept under one store slot,
// rewritten on every mutation.
type Registry struct {
	store kv.Store
	now   func() time.Time
}

func NewRegistry(store kv.Store) *Registry {
	return &Registry{store: store, now: time.Now}
}

// List returns the roster in insertion order.
func (r *Registry) List(ctx context.Context) ([]Client, error) {
	return kv.LoadRecords[Client](ctx, r.store, storageKey)
}

// Create appends a new client and persists the roster. The id comes from the
// creation instant, the createdAt field is the localized creation day.
func (r *Registry) Create(ctx context.Context, name, email, phone string) (Client, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
		return Client{}, ErrMissingFields
	}
	clients, err := r.List(ctx)
	if err != nil {
		return Client{}, err
	}
	now := r.now()
	c := Client{
		ID:        now.UnixMilli(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: now.Format("2/1/2006"),
	}
	clients = append(clients, c)
	if err := kv.SaveRecords(ctx, r.store, storageKey, clients); err != nil {
		return Client{}, err
	}
	return c, nil
}

// Delete removes the client with the given id after the confirmer approves.
// An unknown id is a no-op.
func (r *Registry) Delete(ctx context.Context, id int64, conf confirm.Confirmer) error {
	if !conf.Confirm("¿Estás seguro de eliminar este cliente?") {
		return ErrNotConfirmed
	}
	clients, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := make([]Client, 0, len(clients))
	for _, c := range clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return kv.SaveRecords(ctx, r.store, storageKey, kept)
}

// Search filters the roster: case-insensitive substring match on the name,
// or a plain substring match on the creation date.
func (r *Registry) Search(ctx context.Context, query string) ([]Client, error) {
	clients, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	matched := make([]Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.CreatedAt, query) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}
