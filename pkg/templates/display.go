package templates

import "github.com/stakemap/stakemap/pkg/stakemap"

// CategoryInfo carries the display metadata for a stakeholder category.
type CategoryInfo struct {
	Label       string
	Description string
	Color       string
}

var categoryInfo = map[stakemap.Category]CategoryInfo{
	stakemap.CategoryAlly: {
		Label: "Ally", Description: "People who support your work", Color: "#2d9d5d",
	},
	stakemap.CategoryAdvocate: {
		Label: "Advocate", Description: "People who actively vouch for you", Color: "#4a7fc7",
	},
	stakemap.CategoryDecisionmaker: {
		Label: "Decision maker", Description: "People whose choices directly impact your work", Color: "#8b5fc7",
	},
	stakemap.CategoryObstacle: {
		Label: "Obstacle", Description: "People who make work harder", Color: "#cf5858",
	},
	stakemap.CategoryDependency: {
		Label: "Dependency", Description: "People/teams you rely on", Color: "#d4874c",
	},
	stakemap.CategoryOpportunity: {
		Label: "Opportunity", Description: "Relationships worth developing", Color: "#c4a82e",
	},
}

// Category returns display metadata for a category. Unrecognized values
// get a generic gray entry labeled with the raw value, so imported maps
// with foreign categories still render.
func Category(id stakemap.Category) CategoryInfo {
	if info, ok := categoryInfo[id]; ok {
		return info
	}
	return CategoryInfo{Label: string(id), Color: "#6b7280"}
}

// ConnectionTypeInfo carries the display metadata for a connection type.
type ConnectionTypeInfo struct {
	Label       string
	Description string
	Style       string
	Color       string
}

var connectionTypeInfo = map[stakemap.ConnectionType]ConnectionTypeInfo{
	stakemap.ConnWorksWith: {
		Label: "Works with", Description: "General working relationship", Style: "solid", Color: "#9ca3af",
	},
	stakemap.ConnReportsTo: {
		Label: "Reports to", Description: "Hierarchical reporting relationship", Style: "solid", Color: "#8b5fc7",
	},
	stakemap.ConnInfluences: {
		Label: "Influences", Description: "Has influence over decisions", Style: "dashed", Color: "#4a7fc7",
	},
	stakemap.ConnBlocks: {
		Label: "Blocks", Description: "Can block or impede progress", Style: "dashed", Color: "#ef4444",
	},
	stakemap.ConnSupports: {
		Label: "Supports", Description: "Actively supports work", Style: "solid", Color: "#22c55e",
	},
	stakemap.ConnDependsOn: {
		Label: "Depends on", Description: "Work depends on this person", Style: "dashed", Color: "#f97316",
	},
}

// ConnectionType returns display metadata for a connection type, falling
// back to the works-with entry for unknown values.
func ConnectionType(id stakemap.ConnectionType) ConnectionTypeInfo {
	if info, ok := connectionTypeInfo[id]; ok {
		return info
	}
	return connectionTypeInfo[stakemap.ConnWorksWith]
}
