package theme

import (
	"slices"
	"sync"
)

type registry struct {
	mu      sync.RWMutex
	themes  map[string]Theme
	current string
}

var global = &registry{themes: make(map[string]Theme)}

// RegisterTheme adds a theme. The first registered theme becomes current.
func RegisterTheme(name string, t Theme) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.themes[name] = t
	if global.current == "" {
		global.current = name
	}
}

// SetTheme makes name current. It reports false for unknown names.
func SetTheme(name string) bool {
	global.mu.Lock()
	defer global.mu.Unlock()
	if _, ok := global.themes[name]; !ok {
		return false
	}
	global.current = name
	return true
}

// Current returns the active theme.
func Current() Theme {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.themes[global.current]
}

// CurrentName returns the name of the active theme.
func CurrentName() string {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.current
}

// Available returns the registered theme names, sorted.
func Available() []string {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.sortedNames()
}

// CycleTheme activates the next theme in sorted order and returns its name.
func CycleTheme() string {
	global.mu.Lock()
	defer global.mu.Unlock()
	names := global.sortedNames()
	if len(names) == 0 {
		return ""
	}
	next := (slices.Index(names, global.current) + 1) % len(names)
	global.current = names[next]
	return global.current
}

func (r *registry) sortedNames() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
