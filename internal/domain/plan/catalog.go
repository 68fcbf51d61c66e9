// internal/domain/plan/catalog.go
package plan

// Catalog is the demo plan lineup: three tiers, each tied to one game and
// sold in day/week/month durations. Seeded into the plans table on migration.
func Catalog() []Plan {
	return []Plan{
		{
			PlanID: "basic", Name: "Basic Gaming Access", Game: "Apex Legends",
			Duration: "month", Price: 9.99,
			Features: []string{
				"Standard game access",
				"Basic character skins",
				"5 loot boxes per month",
				"Standard matchmaking",
				"Basic customer support",
			},
		},
		{
			PlanID: "basic", Name: "Basic Gaming Access", Game: "Apex Legends",
			Duration: "week", Price: 2.99,
			Features: []string{
				"Standard game access",
				"Basic character skins",
				"1 loot box per week",
				"Standard matchmaking",
				"Basic customer support",
			},
		},
		{
			PlanID: "basic", Name: "Basic Gaming Access", Game: "Apex Legends",
			Duration: "day", Price: 0.99,
			Features: []string{
				"Standard game access",
				"Basic character skins",
				"Standard matchmaking",
				"Basic customer support",
			},
		},
		{
			PlanID: "pro", Name: "Pro Gamer", Game: "Escape from Tarkov",
			Duration: "month", Price: 19.99, Popular: true,
			Features: []string{
				"Everything in Basic",
				"Premium character skins",
				"Priority matchmaking",
				"Exclusive weapon skins",
				"24/7 priority support",
			},
		},
		{
			PlanID: "pro", Name: "Pro Gamer", Game: "Escape from Tarkov",
			Duration: "week", Price: 5.99,
			Features: []string{
				"Everything in Basic",
				"Premium character skins",
				"Priority matchmaking",
				"Exclusive weapon skins",
				"24/7 priority support",
			},
		},
		{
			PlanID: "pro", Name: "Pro Gamer", Game: "Escape from Tarkov",
			Duration: "day", Price: 1.99,
			Features: []string{
				"Everything in Basic",
				"Premium character skins",
				"Priority matchmaking",
				"24/7 priority support",
			},
		},
		{
			PlanID: "enterprise", Name: "Ultimate Gaming", Game: "Rust",
			Duration: "month", Price: 49.99,
			Features: []string{
				"Everything in Pro",
				"Exclusive server access",
				"Private game servers",
				"Monthly bonus content",
				"Developer chat access",
			},
		},
		{
			PlanID: "enterprise", Name: "Ultimate Gaming", Game: "Rust",
			Duration: "week", Price: 14.99,
			Features: []string{
				"Everything in Pro",
				"Exclusive server access",
				"Private game servers",
				"Weekly bonus content",
				"Developer chat access",
			},
		},
		{
			PlanID: "enterprise", Name: "Ultimate Gaming", Game: "Rust",
			Duration: "day", Price: 4.99,
			Features: []string{
				"Everything in Pro",
				"Exclusive server access",
				"Private game servers",
				"Developer chat access",
			},
		},
	}
}
