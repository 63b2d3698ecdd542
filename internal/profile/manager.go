package profile

import (
	"context"
	"fmt"

	"github.com/nerrad567/gray-logic-input/internal/processor"
)

// Logger defines the logging interface used by the Manager.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Manager validates profiles against a processor registry and stores them
// in a Repository.
type Manager struct {
	repo     Repository
	registry *processor.Registry
	logger   Logger
}

// NewManager creates a Manager storing profiles in repo.
func NewManager(repo Repository, registry *processor.Registry) *Manager {
	return &Manager{
		repo:     repo,
		registry: registry,
		logger:   noopLogger{},
	}
}

// SetLogger sets the logger for the manager.
func (m *Manager) SetLogger(logger Logger) {
	m.logger = logger
}

// Registry returns the processor registry profiles are validated against.
func (m *Manager) Registry() *processor.Registry {
	return m.registry
}

// Get returns the profile for control (ignoring case).
func (m *Manager) Get(ctx context.Context, control string) (*Profile, error) {
	return m.repo.Get(ctx, control)
}

// List returns all stored profiles.
func (m *Manager) List(ctx context.Context) ([]Profile, error) {
	return m.repo.List(ctx)
}

// Set validates p and stores it, replacing any profile for the same control.
func (m *Manager) Set(ctx context.Context, p *Profile) error {
	if err := Validate(m.registry, p); err != nil {
		return err
	}
	if err := m.repo.Upsert(ctx, p); err != nil {
		return err
	}
	m.logger.Info("profile saved",
		"control", p.Control,
		"value_type", p.ValueType,
		"processors", p.Processors,
	)
	return nil
}

// Delete removes the profile for control.
func (m *Manager) Delete(ctx context.Context, control string) error {
	if err := m.repo.Delete(ctx, control); err != nil {
		return err
	}
	m.logger.Info("profile deleted", "control", control)
	return nil
}

// Seed stores profiles, typically those listed in the configuration file.
// Every profile is validated before any is written, so an invalid entry
// leaves the store untouched. It returns the number of profiles written.
func (m *Manager) Seed(ctx context.Context, profiles []Profile) (int, error) {
	for i := range profiles {
		if err := Validate(m.registry, &profiles[i]); err != nil {
			return 0, fmt.Errorf("seeding profile %d: %w", i, err)
		}
	}

	for i := range profiles {
		if err := m.repo.Upsert(ctx, &profiles[i]); err != nil {
			return i, fmt.Errorf("seeding profile %q: %w", profiles[i].Control, err)
		}
	}

	if len(profiles) > 0 {
		m.logger.Info("profiles seeded", "count", len(profiles))
	}
	return len(profiles), nil
}
