package beatmap

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Set groups the difficulties of one song.
type Set struct {
	ID           int     `yaml:"id"`
	Title        string  `yaml:"title"`
	Artist       string  `yaml:"artist"`
	Difficulties []*Info `yaml:"difficulties"`
}

// Manager is an in-memory beatmap store.
type Manager struct {
	mu      sync.RWMutex
	sets    map[int]*Set
	infos   map[int]*Info
	now     func() time.Time
	Default *Working
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{
		sets:    make(map[int]*Set),
		infos:   make(map[int]*Info),
		now:     time.Now,
		Default: &Working{},
	}
}

// Add stores sets and their difficulties. Difficulties inherit the set ID.
func (m *Manager) Add(sets ...*Set) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, set := range sets {
		for _, info := range set.Difficulties {
			info.SetID = set.ID
			if err := info.Validate(); err != nil {
				return fmt.Errorf("set %d: %w", set.ID, err)
			}
		}
		m.sets[set.ID] = set
		for _, info := range set.Difficulties {
			m.infos[info.ID] = info
		}
	}
	return nil
}

// Lookup returns the difficulty with the given ID.
func (m *Manager) Lookup(id int) (*Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.infos[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return info, nil
}

// Difficulties returns the difficulties of a set ordered by ID.
func (m *Manager) Difficulties(setID int) ([]*Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	set, ok := m.sets[setID]
	if !ok {
		return nil, fmt.Errorf("%w: set %d", ErrNotFound, setID)
	}

	infos := make([]*Info, len(set.Difficulties))
	copy(infos, set.Difficulties)
	sort.Slice(infos, func(a, b int) bool {
		return infos[a].ID < infos[b].ID
	})
	return infos, nil
}

// GetWorkingBeatmap loads info. Unknown beatmaps resolve to Default.
func (m *Manager) GetWorkingBeatmap(info *Info) *Working {
	if info == nil {
		return m.Default
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.infos[info.ID]
	if !ok {
		return m.Default
	}
	set := m.sets[stored.SetID]

	return &Working{
		Info:     stored,
		Title:    set.Title,
		Artist:   set.Artist,
		LoadedAt: m.now(),
	}
}
