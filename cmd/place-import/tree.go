package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/genealogy-backend/internal/domain"
)

// writeTree prints places as an indented tree under their first parent.
// places must be sorted by title; children keep that order.
func writeTree(w io.Writer, places []*domain.Place) {
	children := make(map[uuid.UUID][]*domain.Place)
	known := make(map[uuid.UUID]bool, len(places))
	for _, p := range places {
		known[p.ID] = true
	}

	var roots []*domain.Place
	for _, p := range places {
		parent, ok := p.ParentID()
		if !ok || !known[parent] {
			roots = append(roots, p)
			continue
		}
		children[parent] = append(children[parent], p)
	}

	var walk func(p *domain.Place, depth int)
	walk = func(p *domain.Place, depth int) {
		fmt.Fprintf(w, "%s%s [%s]\n", strings.Repeat("  ", depth), p.Name, p.Type)
		for _, c := range children[p.ID] {
			walk(c, depth+1)
		}
	}
	for _, r := range roots {
		walk(r, 0)
	}
}
