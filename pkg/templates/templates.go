package templates

import (
	"github.com/stakemap/stakemap/pkg/ident"
	"github.com/stakemap/stakemap/pkg/layout"
	"github.com/stakemap/stakemap/pkg/stakemap"
)

// Sector is a pre-built starting point for a map. Example stakeholders are
// drafts: ids and positions are assigned when the template is instantiated.
type Sector struct {
	ID                  string
	Name                string
	Description         string
	Icon                string
	SuggestedCategories []stakemap.Category
	ExampleStakeholders []stakemap.Stakeholder
}

// sectorOrder fixes listing order for display.
var sectorOrder = []string{"custom", "collaborative-reporting", "training", "research", "membership"}

var sectors = map[string]Sector{
	"custom": {
		ID:          "custom",
		Name:        "Custom",
		Description: "Start with a blank canvas",
		Icon:        "📋",
		SuggestedCategories: []stakemap.Category{
			stakemap.CategoryAlly, stakemap.CategoryAdvocate, stakemap.CategoryDecisionmaker,
			stakemap.CategoryObstacle, stakemap.CategoryDependency, stakemap.CategoryOpportunity,
		},
	},
	"collaborative-reporting": {
		ID:          "collaborative-reporting",
		Name:        "Collaborative reporting",
		Description: "Partners, funders, newsroom contacts",
		Icon:        "📰",
		SuggestedCategories: []stakemap.Category{
			stakemap.CategoryAlly, stakemap.CategoryAdvocate,
			stakemap.CategoryDecisionmaker, stakemap.CategoryDependency,
		},
		ExampleStakeholders: []stakemap.Stakeholder{
			{
				Name: "Partner newsroom editor", Role: "Managing Editor",
				Category: stakemap.CategoryAlly, Influence: stakemap.InfluenceHigh,
				Notes: "Key contact for story pitches and coordination",
			},
			{
				Name: "Foundation program officer", Role: "Program Officer",
				Category: stakemap.CategoryDecisionmaker, Influence: stakemap.InfluenceHigh,
				Notes: "Manages grant funding decisions",
			},
			{
				Name: "Data journalist", Role: "Data Reporter",
				Category: stakemap.CategoryDependency, Influence: stakemap.InfluenceMedium,
				Notes: "Provides data analysis for collaborative projects",
			},
		},
	},
	"training": {
		ID:          "training",
		Name:        "Training & workshops",
		Description: "Venue contacts, speakers, participant orgs",
		Icon:        "🎓",
		SuggestedCategories: []stakemap.Category{
			stakemap.CategoryAlly, stakemap.CategoryAdvocate,
			stakemap.CategoryDependency, stakemap.CategoryOpportunity,
		},
		ExampleStakeholders: []stakemap.Stakeholder{
			{
				Name: "Venue coordinator", Role: "Events Manager",
				Category: stakemap.CategoryDependency, Influence: stakemap.InfluenceMedium,
				Notes: "Books training spaces, manages AV setup",
			},
			{
				Name: "Expert trainer", Role: "Workshop Facilitator",
				Category: stakemap.CategoryAlly, Influence: stakemap.InfluenceMedium,
				Notes: "Subject matter expert for specialized workshops",
			},
			{
				Name: "Partner organization lead", Role: "Executive Director",
				Category: stakemap.CategoryAdvocate, Influence: stakemap.InfluenceHigh,
				Notes: "Sends staff to training, promotes programs",
			},
		},
	},
	"research": {
		ID:          "research",
		Name:        "Research",
		Description: "Academic partners, data sources, peer reviewers",
		Icon:        "🔬",
		SuggestedCategories: []stakemap.Category{
			stakemap.CategoryAlly, stakemap.CategoryDecisionmaker,
			stakemap.CategoryDependency, stakemap.CategoryOpportunity,
		},
		ExampleStakeholders: []stakemap.Stakeholder{
			{
				Name: "Academic co-investigator", Role: "Professor",
				Category: stakemap.CategoryAlly, Influence: stakemap.InfluenceHigh,
				Notes: "Co-leads research projects, provides methodology expertise",
			},
			{
				Name: "IRB administrator", Role: "Research Compliance",
				Category: stakemap.CategoryDecisionmaker, Influence: stakemap.InfluenceMedium,
				Notes: "Approves research protocols involving human subjects",
			},
			{
				Name: "Data provider contact", Role: "Research Analyst",
				Category: stakemap.CategoryDependency, Influence: stakemap.InfluenceMedium,
				Notes: "Provides access to proprietary datasets",
			},
		},
	},
	"membership": {
		ID:          "membership",
		Name:        "Membership & community",
		Description: "Member orgs, sponsors, community leaders",
		Icon:        "🤝",
		SuggestedCategories: []stakemap.Category{
			stakemap.CategoryAlly, stakemap.CategoryAdvocate,
			stakemap.CategoryDecisionmaker, stakemap.CategoryOpportunity,
		},
		ExampleStakeholders: []stakemap.Stakeholder{
			{
				Name: "Member organization director", Role: "Executive Director",
				Category: stakemap.CategoryAlly, Influence: stakemap.InfluenceHigh,
				Notes: "Active member, attends events, provides feedback",
			},
			{
				Name: "Corporate sponsor contact", Role: "Community Relations Manager",
				Category: stakemap.CategoryAdvocate, Influence: stakemap.InfluenceHigh,
				Notes: "Champions partnership internally at sponsor org",
			},
			{
				Name: "Community leader", Role: "Community Organizer",
				Category: stakemap.CategoryOpportunity, Influence: stakemap.InfluenceMedium,
				Notes: "Potential future member, active in local journalism circles",
			},
		},
	},
}

// All returns every sector template in display order.
func All() []Sector {
	out := make([]Sector, 0, len(sectorOrder))
	for _, id := range sectorOrder {
		out = append(out, sectors[id])
	}
	return out
}

// Get returns the sector template for id, falling back to the custom
// (blank) template for unknown ids.
func Get(id string) Sector {
	if s, ok := sectors[id]; ok {
		return s
	}
	return sectors["custom"]
}

// FromTemplate builds a map draft from a sector template. Example
// stakeholders receive fresh ids and default spiral positions; the draft
// still has to go through the store to gain its own id and timestamps.
// If mapName is empty the sector name is used, suffixed with " map".
func FromTemplate(sectorID, mapName string) stakemap.Map {
	sector := Get(sectorID)
	if mapName == "" {
		mapName = sector.Name + " map"
	}

	stakeholders := make([]stakemap.Stakeholder, len(sector.ExampleStakeholders))
	for i, sh := range sector.ExampleStakeholders {
		sh.ID = ident.New()
		sh.Position = layout.DefaultPosition(i)
		stakeholders[i] = sh
	}

	return stakemap.Map{
		Name:         mapName,
		Sector:       sectorID,
		Stakeholders: stakeholders,
		Connections:  []stakemap.Connection{},
	}
}
