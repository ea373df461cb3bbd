// Package menu loads a Menu: a JSON array of launchable items (actions,
// submenus, separators, and generators that expand into further items).
// This is a GUI/OSD concern — nothing here is consumed by the action
// dispatch path.
package menu

import (
	"sync"
	"time"

	"github.com/buger/jsonparser"
	"github.com/dop251/goja"
	"github.com/google/uuid"

	"github.com/galago-remap/scte/internal/action"
	"github.com/galago-remap/scte/internal/parser"
	"github.com/galago-remap/scte/internal/scerr"
)

// ItemType distinguishes the five shapes a menu item can take.
type ItemType int

const (
	ItemSeparator ItemType = iota
	ItemGenerator
	ItemSubmenu
	ItemAction
	ItemDummy
)

// Item is one entry in a menu. Only the fields relevant to Type are
// meaningful; the rest are zero.
type Item struct {
	ID        string
	Type      ItemType
	Name      string
	Icon      string
	Action    action.Action
	Generator string // ItemGenerator only; "js:<name>" routes through scripting
	Submenu   string // ItemSubmenu only
}

// Parse decodes a menu JSON array into Items. An item missing "id" gets an
// auto-generated one (mirroring the original's "if no id is provided... one
// is assigned"). An item that is not a separator, generator, submenu or
// action is ItemDummy, whether or not it had an id.
func Parse(data []byte) ([]Item, error) {
	var items []Item
	var firstErr error

	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if err != nil || firstErr != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		item, perr := parseItem(value)
		if perr != nil {
			firstErr = perr
			return
		}
		items = append(items, item)
	})
	if err != nil {
		return nil, scerr.New(scerr.ParseError, "menu: %s", err.Error())
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return items, nil
}

func parseItem(value []byte) (Item, error) {
	id, _ := jsonparser.GetString(value, "id")
	name, _ := jsonparser.GetString(value, "name")
	icon, _ := jsonparser.GetString(value, "icon")
	if id == "" {
		id = uuid.NewString()
	}
	item := Item{ID: id, Name: name, Icon: icon, Type: ItemDummy}

	if sep, err := jsonparser.GetBoolean(value, "separator"); err == nil && sep {
		item.Type = ItemSeparator
		return item, nil
	}
	if gen, err := jsonparser.GetString(value, "generator"); err == nil && gen != "" {
		item.Type = ItemGenerator
		item.Generator = gen
		return item, nil
	}
	if sub, err := jsonparser.GetString(value, "submenu"); err == nil && sub != "" {
		item.Type = ItemSubmenu
		item.Submenu = sub
		return item, nil
	}
	if actionText, err := jsonparser.GetString(value, "action"); err == nil && actionText != "" {
		a, perr := parser.ParseAction(actionText)
		if perr != nil {
			return Item{}, scerr.New(scerr.ParseError, "menu item %q: %s", id, perr.Error())
		}
		item.Type = ItemAction
		item.Action = a.Compress()
		return item, nil
	}
	return item, nil
}

// maxGeneratorDepth bounds how many rounds of generator expansion
// ExpandGenerators will run, per the "applied iteratively up to a small
// depth bound" contract — a generator whose own output is still full of
// generators after this many rounds is treated as a resource-bound
// violation rather than looped on forever.
const maxGeneratorDepth = 4

// GeneratorFunc produces the items a named, non-scripted generator expands
// into, given its raw JSON parameters (may be nil).
type GeneratorFunc func(params []byte) ([]Item, error)

// Registry holds named generator implementations, analogous to the action
// package's keyword registry.
type Registry struct {
	mu   sync.RWMutex
	gens map[string]GeneratorFunc
}

// NewRegistry returns an empty generator registry.
func NewRegistry() *Registry {
	return &Registry{gens: make(map[string]GeneratorFunc)}
}

// Register adds name to the registry. Like action.Register, it panics on a
// duplicate name — generator name collisions are a programming error, not
// a runtime condition.
func (r *Registry) Register(name string, fn GeneratorFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.gens[name]; exists {
		panic("menu: generator already registered: " + name)
	}
	r.gens[name] = fn
}

func (r *Registry) lookup(name string) (GeneratorFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.gens[name]
	return fn, ok
}

// ScriptSource resolves a "js:<name>" generator's source text.
type ScriptSource interface {
	Script(name string) (string, error)
}

// ExpandGenerators replaces every ItemGenerator item with the items it
// generates, recursively, since a generator's own output may itself
// contain further generator items. scripts may be nil if no "js:" items
// are expected; a nil ScriptSource used against a "js:" generator fails
// with an UnknownKeyword error rather than a nil-pointer panic.
func ExpandGenerators(items []Item, reg *Registry, scripts ScriptSource) ([]Item, error) {
	current := items
	for depth := 0; depth < maxGeneratorDepth; depth++ {
		expanded, changed, err := expandOnce(current, reg, scripts)
		if err != nil {
			return nil, err
		}
		if !changed {
			return expanded, nil
		}
		current = expanded
	}
	for _, it := range current {
		if it.Type == ItemGenerator {
			return nil, scerr.OOMErr
		}
	}
	return current, nil
}

func expandOnce(items []Item, reg *Registry, scripts ScriptSource) ([]Item, bool, error) {
	var out []Item
	changed := false
	for _, it := range items {
		if it.Type != ItemGenerator {
			out = append(out, it)
			continue
		}
		changed = true
		generated, err := runGenerator(it.Generator, reg, scripts)
		if err != nil {
			return nil, false, err
		}
		out = append(out, generated...)
	}
	return out, changed, nil
}

func runGenerator(name string, reg *Registry, scripts ScriptSource) ([]Item, error) {
	const jsPrefix = "js:"
	if len(name) > len(jsPrefix) && name[:len(jsPrefix)] == jsPrefix {
		return runScriptGenerator(name[len(jsPrefix):], scripts)
	}
	if reg == nil {
		return nil, scerr.New(scerr.UnknownKeyword, "menu: unknown generator %q", name)
	}
	fn, ok := reg.lookup(name)
	if !ok {
		return nil, scerr.New(scerr.UnknownKeyword, "menu: unknown generator %q", name)
	}
	return fn(nil)
}

// scriptCallBudget bounds how long a single generator script may run before
// its goja runtime is interrupted, so a misbehaving script can't hang menu
// loading.
const scriptCallBudget = 200 * time.Millisecond

// runScriptGenerator evaluates a named script in a fresh, sandboxed goja
// runtime: no require, no filesystem, a fixed call budget. The script calls
// the host-provided emit(name, actionText) function once per item it wants
// to contribute.
func runScriptGenerator(name string, scripts ScriptSource) ([]Item, error) {
	if scripts == nil {
		return nil, scerr.New(scerr.UnknownKeyword, "menu: no script source configured for js:%s", name)
	}
	src, err := scripts.Script(name)
	if err != nil {
		return nil, scerr.New(scerr.UnknownKeyword, "menu: script %q: %s", name, err.Error())
	}

	vm := goja.New()
	var items []Item
	var emitErr error
	vm.Set("emit", func(itemName, actionText string) {
		a, perr := parser.ParseAction(actionText)
		if perr != nil {
			emitErr = perr
			return
		}
		items = append(items, Item{
			ID:     uuid.NewString(),
			Type:   ItemAction,
			Name:   itemName,
			Action: a.Compress(),
		})
	})

	timer := time.AfterFunc(scriptCallBudget, func() {
		vm.Interrupt("generator call budget exceeded")
	})
	_, runErr := vm.RunString(src)
	timer.Stop()

	if runErr != nil {
		return nil, scerr.New(scerr.ParseError, "menu: script %q: %s", name, runErr.Error())
	}
	if emitErr != nil {
		return nil, emitErr
	}
	return items, nil
}
