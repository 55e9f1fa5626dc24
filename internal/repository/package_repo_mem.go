package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/travelpackages/internal/domain"
)

type PackageRepository interface {
	List(ctx context.Context) ([]domain.Package, error)
	GetByDestination(ctx context.Context, destination string) (*domain.Package, error)
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
	AdjustSlots(ctx context.Context, id int64, delta int) (*domain.Package, error)
	CatalogueVersion(ctx context.Context) (string, error)
}

type MemPackageRepository struct {
	store *Store
}

func NewPackageRepository(store *Store) PackageRepository {
	return &MemPackageRepository{store: store}
}

func (r *MemPackageRepository) List(ctx context.Context) ([]domain.Package, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	packages := make([]domain.Package, len(r.store.packages))
	copy(packages, r.store.packages)
	return packages, nil
}

// GetByDestination matches case-insensitively; the first package in storage order wins.
func (r *MemPackageRepository) GetByDestination(ctx context.Context, destination string) (*domain.Package, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	needle := strings.ToLower(destination)
	for _, p := range r.store.packages {
		if strings.ToLower(p.Destination) == needle {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("package for destination %q: %w", destination, domain.ErrNotFound)
}

func (r *MemPackageRepository) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := r.store.packageIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("package %d: %w", id, domain.ErrInvalidReference)
	}
	found := r.store.packages[i]
	return &found, nil
}

// AdjustSlots adds delta to AvailableSlots. There is no floor or ceiling.
func (r *MemPackageRepository) AdjustSlots(ctx context.Context, id int64, delta int) (*domain.Package, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.store.packageIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("package %d: %w", id, domain.ErrInvalidReference)
	}
	r.store.packages[i].AvailableSlots += delta
	r.store.touchPackages()
	updated := r.store.packages[i]
	return &updated, nil
}

// CatalogueVersion changes whenever any package does. Read it before List:
// the listed packages are then never older than the version.
func (r *MemPackageRepository) CatalogueVersion(ctx context.Context) (string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.catalogueVersion(), nil
}

var _ PackageRepository = (*MemPackageRepository)(nil)
