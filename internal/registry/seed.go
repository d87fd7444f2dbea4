package registry

import "example.com/extracurricular/internal/domain"

// Seed returns a fresh copy of the Mergington High School activity catalog.
func Seed() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team for practices and matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"alex@mergington.edu", "maria@mergington.edu"},
		},
		{
			Name:            "Basketball Club",
			Description:     "Casual and competitive basketball sessions",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"kevin@mergington.edu", "laura@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Drawing, painting, and mixed-media projects",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Drama Society",
			Description:     "Acting, stagecraft, and school productions",
			Schedule:        "Fridays, 4:00 PM - 6:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"oliver@mergington.edu", "chloe@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Practice public speaking, argumentation, and competition",
			Schedule:        "Thursdays, 5:00 PM - 7:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"grace@mergington.edu", "liam@mergington.edu"},
		},
		{
			Name:            "Robotics Club",
			Description:     "Design, build, and program robots for challenges",
			Schedule:        "Saturdays, 10:00 AM - 1:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"ava@mergington.edu", "noah.p@mergington.edu"},
		},
	}
}
