package main

import (
	"fmt"
	"strings"

	"qtermstab/gates"
)

// menuItem represents a single gate choice in the menu.
type menuItem struct {
	name    string
	gate    gates.Type
	targets string // default targets inserted with the gate
}

// menuCategory groups related menu items under a tab.
type menuCategory struct {
	name  string
	items []menuItem
}

// buildMenu lays out the gate picker from the catalog's categories.
func buildMenu(c *gates.Catalog) []menuCategory {
	var out []menuCategory
	for _, cat := range c.Categories() {
		mc := menuCategory{name: strings.TrimSuffix(cat.Name, " Gates")}
		for _, id := range cat.Gates {
			g := c.ByID(id)
			mc.items = append(mc.items, menuItem{name: g.Name, gate: id, targets: defaultTargets(g)})
		}
		out = append(out, mc)
	}
	return out
}

// defaultTargets is a small valid target list for g.
func defaultTargets(g *gates.Gate) string {
	switch {
	case g.Flags.Has(gates.TakesNoTargets):
		return ""
	case g.Flags.Has(gates.TargetsPauliString):
		return "Z0*Z1"
	case g.Flags.Has(gates.TargetsPairs):
		return "0 1"
	default:
		return "0"
	}
}

// line is the circuit line inserted for the item.
func (it menuItem) line() string {
	if it.targets == "" {
		return it.name
	}
	return it.name + " " + it.targets
}

// renderMenu renders the floating gate-picker popup.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Add Gate"))
	sb.WriteString("\n")

	// Category tabs, scrolled so the active one is visible
	first := max(m.menuCat-3, 0)
	for i := first; i < len(m.menu) && i < first+5; i++ {
		name := " " + m.menu[i].name + " "
		if i == m.menuCat {
			sb.WriteString(activeGateStyle.Render(name))
		} else {
			sb.WriteString(dimStyle.Render(name))
		}
		sb.WriteString(dimStyle.Render("│"))
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(strings.Repeat("─", 48)))
	sb.WriteString("\n")

	cat := m.menu[m.menuCat]
	for i, item := range cat.items {
		if i == m.menuItem {
			sb.WriteString(menuSelectedStyle.Render(" ▸ "))
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf("%-12s", item.name)))
			sb.WriteString(gateStyle.Render(item.targets))
		} else {
			sb.WriteString("   ")
			sb.WriteString(menuNormalStyle.Render(fmt.Sprintf("%-12s", item.name)))
			sb.WriteString(dimStyle.Render(item.targets))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render(" ↑↓ Select  ←→ Cat  ⏎ Add  ? Details  Esc ✕"))

	return menuBorderStyle.Render(sb.String())
}

// renderDetail renders the catalog entry of the selected gate.
func (m Model) renderDetail() string {
	var sb strings.Builder
	g := gates.Default.ByID(m.menu[m.menuCat].items[m.menuItem].gate)
	if err := writeGateDetail(&sb, g); err != nil {
		sb.WriteString(errorStyle.Render(err.Error()))
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("⏎ Add  Esc Back"))
	return menuBorderStyle.Render(sb.String())
}
