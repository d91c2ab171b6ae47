package gates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when a name is not in the catalog.
	ErrNotFound = errors.New("gate not found")

	// ErrPrecondition marks a gate applied to targets or arguments it cannot
	// take, or catalog data that breaks a structural rule.
	ErrPrecondition = errors.New("precondition violated")
)

// Default is the process-wide catalog. It is read-only after init.
var Default = New()

// Catalog maps gate ids and names onto gate records.
type Catalog struct {
	items []Gate
	names map[string]Type
}

// Category groups gates for display, in catalog order.
type Category struct {
	Name  string
	Gates []Type
}

type builder struct {
	c *Catalog
}

// New builds a fresh catalog. It panics if two records share an id or a name,
// since either would be a defect in the catalog data itself.
func New() *Catalog {
	b := &builder{c: &Catalog{
		items: make([]Gate, NumTypes),
		names: make(map[string]Type),
	}}
	addAnnotations(b)
	addPauliGates(b)
	addHadamardGates(b)
	addPeriod4Gates(b)
	addPeriod3Gates(b)
	addControlledGates(b)
	addSwapGates(b)
	addPairRotationGates(b)
	addCollapsingGates(b)
	addPairMeasurementGates(b)
	addPauliProductGates(b)

	for id := Type(1); id < NumTypes; id++ {
		if b.c.items[id].ID != id {
			panic(fmt.Sprintf("gates: no record for id %d", id))
		}
	}
	return b.c
}

func (b *builder) add(g Gate, derive func() ExtraData) {
	if g.ID == NotAGate || g.ID >= NumTypes {
		panic(fmt.Sprintf("gates: %s has out of range id %d", g.Name, g.ID))
	}
	if b.c.items[g.ID].ID != NotAGate {
		panic(fmt.Sprintf("gates: id %d used by both %s and %s", g.ID, b.c.items[g.ID].Name, g.Name))
	}
	if g.Flags == NoGateFlag {
		panic(fmt.Sprintf("gates: %s has no flags", g.Name))
	}
	g.Canonical = g.ID
	b.c.items[g.ID] = g
	memoize(&b.c.items[g.ID], derive)

	b.register(g.Name, g.ID)
	for _, alias := range g.Aliases {
		b.register(alias, g.ID)
	}
}

func (b *builder) register(name string, id Type) {
	key := Hash(name)
	if prev, ok := b.c.names[key]; ok {
		panic(fmt.Sprintf("gates: name %q of %s collides with %s", name, b.c.items[id].Name, b.c.items[prev].Name))
	}
	b.c.names[key] = id
}

// Hash normalizes a gate name for lookup. Names are case-insensitive.
func Hash(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Has reports whether name (or an alias) is a gate.
func (c *Catalog) Has(name string) bool {
	id, ok := c.names[Hash(name)]
	return ok && id != NotAGate
}

// At returns the canonical record for a name or alias.
func (c *Catalog) At(name string) (*Gate, error) {
	id, ok := c.names[Hash(name)]
	if !ok || id == NotAGate {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	return &c.items[id], nil
}

// MustAt is At for names known to exist.
func (c *Catalog) MustAt(name string) *Gate {
	g, err := c.At(name)
	if err != nil {
		panic(err)
	}
	return g
}

// ByID returns the record stored at id. NotAGate returns the sentinel record.
func (c *Catalog) ByID(id Type) *Gate {
	if id >= NumTypes {
		panic(fmt.Sprintf("gates: id %d out of range", id))
	}
	return &c.items[id]
}

// Items returns every record indexed by id, including the NotAGate sentinel
// at index 0. The slice must not be modified.
func (c *Catalog) Items() []Gate {
	return c.items
}

// Lookup returns the id registered under the normalized key, for tests and
// diagnostics that inspect the name table directly.
func (c *Catalog) Lookup(key string) (Type, bool) {
	id, ok := c.names[key]
	return id, ok
}

// Names returns every registered name and alias, sorted.
func (c *Catalog) Names() []string {
	var out []string
	for _, g := range c.items[1:] {
		out = append(out, g.Name)
		out = append(out, g.Aliases...)
	}
	sort.Strings(out)
	return out
}

// Categories groups the real gates by their display category.
func (c *Catalog) Categories() []Category {
	var out []Category
	index := map[string]int{}
	for i := range c.items[1:] {
		g := &c.items[i+1]
		name := g.Extra().Category
		k, ok := index[name]
		if !ok {
			k = len(out)
			index[name] = k
			out = append(out, Category{Name: name})
		}
		out[k].Gates = append(out[k].Gates, g.ID)
	}
	return out
}

func (t Type) String() string {
	if t < NumTypes {
		if g := Default.ByID(t); g.ID == t && t != NotAGate {
			return g.Name
		}
	}
	if t == NotAGate {
		return "NOT_A_GATE"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}
