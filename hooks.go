package autoatlas

import (
	"sync"

	"github.com/autoatlas/autoatlas/pkg/specs"
)

// Hook function types for index events
type (
	// BrandAddedHook is called when a rebuilt index has a brand the previous one lacked
	BrandAddedHook func(brand *specs.Brand)

	// BrandUpdatedHook is called when a brand's model or generation count changed
	BrandUpdatedHook func(old, new *specs.Brand)

	// BrandRemovedHook is called when a brand is gone from the rebuilt index
	BrandRemovedHook func(brand *specs.Brand)

	// IndexBuiltHook is called after every index build
	IndexBuiltHook func(stats specs.Stats)
)

// hooks manages event callbacks for index rebuilds
type hooks struct {
	mu             sync.RWMutex
	onBrandAdded   []BrandAddedHook
	onBrandUpdated []BrandUpdatedHook
	onBrandRemoved []BrandRemovedHook
	onIndexBuilt   []IndexBuiltHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnBrandAdded registers a callback for brands that appear after a rebuild
func (h *hooks) OnBrandAdded(fn BrandAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onBrandAdded = append(h.onBrandAdded, fn)
}

// OnBrandUpdated registers a callback for brands whose contents changed
func (h *hooks) OnBrandUpdated(fn BrandUpdatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onBrandUpdated = append(h.onBrandUpdated, fn)
}

// OnBrandRemoved registers a callback for brands that disappear after a rebuild
func (h *hooks) OnBrandRemoved(fn BrandRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onBrandRemoved = append(h.onBrandRemoved, fn)
}

// OnIndexBuilt registers a callback run after each build
func (h *hooks) OnIndexBuilt(fn IndexBuiltHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onIndexBuilt = append(h.onIndexBuilt, fn)
}

// triggerIndexBuilt compares the previous and new index and fires hooks.
// Brand diffs are skipped on the first build.
func (h *hooks) triggerIndexBuilt(oldIndex, newIndex *specs.Index) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, hook := range h.onIndexBuilt {
		hook(newIndex.Stats())
	}
	if oldIndex == nil {
		return
	}

	oldBrands := make(map[string]*specs.Brand)
	for _, b := range oldIndex.Brands() {
		oldBrands[b.Key] = b
	}

	for _, b := range newIndex.Brands() {
		prev, exists := oldBrands[b.Key]
		if !exists {
			for _, hook := range h.onBrandAdded {
				hook(b)
			}
			continue
		}
		if brandChanged(prev, b) {
			for _, hook := range h.onBrandUpdated {
				hook(prev, b)
			}
		}
	}

	for _, b := range oldIndex.Brands() {
		if _, exists := newIndex.Brand(b.Key); !exists {
			for _, hook := range h.onBrandRemoved {
				hook(b)
			}
		}
	}
}

func brandChanged(a, b *specs.Brand) bool {
	if len(a.Models) != len(b.Models) {
		return true
	}
	for i := range a.Models {
		if a.Models[i].Key != b.Models[i].Key || len(a.Models[i].Generations) != len(b.Models[i].Generations) {
			return true
		}
	}
	return false
}
