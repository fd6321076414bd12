package content

var defaultCrewTasks = []string{
	"Refill the water jug in the kitchen",
	"Stack every cushion on the sofa",
	"Find and straighten a crooked picture frame",
	"Count the spoons in the cutlery drawer",
	"Water a plant or wipe a window sill",
	"Open and close the front door three times",
	"Line up five books by height",
	"Turn a light off and back on in another room",
	"Fold a tea towel into a perfect square",
	"Check the time on two different clocks",
	"Collect three coasters onto one table",
	"Tie and untie a shoelace at the entrance",
}

var defaultImpostorObjectives = []string{
	"Be seen near the kitchen at least twice",
	"Claim you finished a task you never started",
	"Walk another player to a remote room",
	"Stay out of sight for one full minute",
	"Cast suspicion on someone during a meeting",
	"Fake counting the spoons in front of a witness",
	"Call the first meeting of the round",
	"Follow the same player for thirty seconds",
}

var defaultSupportRoutines = []string{
	"Note who was last seen near each elimination",
	"Confirm one crewmate's finished task in person",
	"Keep a rough timeline of meetings",
	"Check on every alive player once",
	"Stand guard at the busiest room for a minute",
	"Ask two players where they were and compare stories",
	"Point out one inconsistency during a meeting",
}

var defaultPrompts = []string{
	"Where were you when the lights went out?",
	"Name one task you saw someone else finish.",
	"Who has been the quietest this round, and why?",
	"Describe your route through the house since the last meeting.",
	"Which room have you avoided, and what is in there?",
	"Who would you trust to hold the spoons?",
	"What is the most suspicious thing you have seen so far?",
	"If you had to vote right now, who and why?",
}
