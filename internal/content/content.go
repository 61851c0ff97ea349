// Package content holds the static content data for the shipped
// document types, plus a YAML loader for externally authored content
// trees. The assembly engine consumes these plans; nothing in here
// performs I/O or rendering.
package content

import (
	"sort"
	"time"

	"github.com/kwhitfield/docforge/internal/compose"
)

const (
	// SystemName is the product the shipped documents describe.
	SystemName = "Inventory Management System"
	// Version of the documented system.
	Version = "1.0"
	// PreparedBy appears in document metadata.
	PreparedBy = "Engineering / Inventory Management Portal Team"
	// ConfidentialNote is the internal-use footer notice.
	ConfidentialNote = "CONFIDENTIAL — Internal Use Only"

	// PrimaryDir is the preferred absolute output location.
	PrimaryDir = "/mnt/data"
)

// PlanFunc builds a document plan for a generation date.
type PlanFunc func(date time.Time) compose.Plan

// Catalog maps document type names to their plan builders.
func Catalog() map[string]PlanFunc {
	return map[string]PlanFunc{
		"client-proposal":      Proposal,
		"master-documentation": MasterDocumentation,
	}
}

// Names returns the catalog keys in stable order.
func Names() []string {
	c := Catalog()
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
