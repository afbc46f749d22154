// Package catalog holds the fixed set of household tasks that can be rated
// and filters it by household context.
package catalog

// Task describes one household task. Tasks are defined once in the catalog
// and never mutated; IDs are stable keys for sessions and exports.
type Task struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Pillar   Pillar `json:"pillar" yaml:"pillar"`

	RequiresChildren   bool `json:"requires_children,omitempty" yaml:"requires_children,omitempty"`
	RequiresEmployment bool `json:"requires_employment,omitempty" yaml:"requires_employment,omitempty"`
	RequiresPets       bool `json:"requires_pets,omitempty" yaml:"requires_pets,omitempty"`
	RequiresVehicle    bool `json:"requires_vehicle,omitempty" yaml:"requires_vehicle,omitempty"`

	// Help copy shown next to the rating controls.
	Definition string   `json:"definition,omitempty" yaml:"definition,omitempty"`
	WhatCounts []string `json:"what_counts,omitempty" yaml:"what_counts,omitempty"`
	Note       string   `json:"note,omitempty" yaml:"note,omitempty"`
	Example    string   `json:"example,omitempty" yaml:"example,omitempty"`
}

// Household is the context used to decide which tasks apply.
type Household struct {
	Children   int  `json:"children" yaml:"children"`
	EmployedA  bool `json:"employed_a" yaml:"employed_a"`
	EmployedB  bool `json:"employed_b" yaml:"employed_b"`
	HasPets    bool `json:"has_pets" yaml:"has_pets"`
	HasVehicle bool `json:"has_vehicle" yaml:"has_vehicle"`
}

// DefaultHousehold matches a fresh session: no children, both partners
// employed, no pets or vehicle.
func DefaultHousehold() Household {
	return Household{EmployedA: true, EmployedB: true}
}

// BothEmployed reports whether both partners work.
func (h Household) BothEmployed() bool {
	return h.EmployedA && h.EmployedB
}

// Applies reports whether the task is relevant for the household.
func (t Task) Applies(h Household) bool {
	if t.RequiresChildren && h.Children <= 0 {
		return false
	}
	if t.RequiresEmployment && !h.BothEmployed() {
		return false
	}
	if t.RequiresPets && !h.HasPets {
		return false
	}
	if t.RequiresVehicle && !h.HasVehicle {
		return false
	}
	return true
}

// Lookup resolves a task by ID.
type Lookup interface {
	Lookup(id string) (Task, bool)
}

// Catalog is an immutable, ordered task list with an ID index.
type Catalog struct {
	tasks []Task
	byID  map[string]int
}

// New builds a catalog from tasks. Later duplicates of an ID are ignored.
func New(tasks []Task) *Catalog {
	c := &Catalog{
		tasks: make([]Task, 0, len(tasks)),
		byID:  make(map[string]int, len(tasks)),
	}
	for _, t := range tasks {
		if _, dup := c.byID[t.ID]; dup {
			continue
		}
		if t.Category == "" {
			t.Category = "household"
		}
		c.byID[t.ID] = len(c.tasks)
		c.tasks = append(c.tasks, t)
	}
	return c
}

// Default returns the built-in household catalog.
func Default() *Catalog {
	return defaultCatalog
}

var defaultCatalog = New(builtinTasks)

// Lookup returns the task with the given ID.
func (c *Catalog) Lookup(id string) (Task, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Task{}, false
	}
	return c.tasks[i], true
}

// All returns every task in catalog order.
func (c *Catalog) All() []Task {
	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Len returns the number of tasks.
func (c *Catalog) Len() int {
	return len(c.tasks)
}

// Filter returns the tasks that apply to the household, in catalog order.
func (c *Catalog) Filter(h Household) []Task {
	var out []Task
	for _, t := range c.tasks {
		if t.Applies(h) {
			out = append(out, t)
		}
	}
	return out
}

// Section is a group of tasks sharing a pillar.
type Section struct {
	Pillar Pillar `json:"pillar"`
	Label  string `json:"label"`
	Tasks  []Task `json:"tasks"`
}

// GroupByPillar splits tasks into sections in pillar display order.
// Pillars without tasks are left out.
func GroupByPillar(tasks []Task) []Section {
	byPillar := make(map[Pillar][]Task)
	for _, t := range tasks {
		byPillar[t.Pillar] = append(byPillar[t.Pillar], t)
	}

	var sections []Section
	for _, p := range Pillars {
		if len(byPillar[p]) == 0 {
			continue
		}
		sections = append(sections, Section{
			Pillar: p,
			Label:  p.Label(),
			Tasks:  byPillar[p],
		})
	}
	return sections
}
