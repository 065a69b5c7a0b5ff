package dataset

// Sample returns a small set of meeting records for demos.
func Sample() []Record {
	meeting := func(title, owner, team string, attendees any, room any) Record {
		return Record{
			"title":     title,
			"owner":     map[string]any{"name": owner, "team": team},
			"attendees": attendees,
			"room":      room,
		}
	}

	return []Record{
		meeting("Weekly sync", "Ada", "platform", 8, "4B"),
		meeting("Design review", "grace", "design", 5, "Aquarium"),
		meeting("Incident retro", "Linus", "platform", 12, nil),
		meeting("1:1", "ada", "platform", 2, "Phone booth"),
		meeting("Roadmap planning", "Barbara", "product", 9, "4B"),
		meeting("Hiring debrief", "Ken", "people", nil, "Library"),
		meeting("Budget check-in", "Margaret", "finance", 3, "3A"),
		meeting("All hands", "Grace", "people", 140, "Atrium"),
		meeting("On-call handoff", "Dennis", "platform", 4, nil),
		meeting("Vendor demo", "barbara", "product", 6, "Aquarium"),
		meeting("Security training", "Radia", "security", 30, "Atrium"),
		meeting("Offsite logistics", "Frances", "people", nil, nil),
	}
}
