package assets

import "mengya/internal/dialogue"

// LevelNames maps level number to the name shown in the status line.
var LevelNames = [9]string{
	"Dormitory Corridor",
	"Classroom 1-1",
	"Library",
	"Music Room",
	"Restroom",
	"Art Room",
	"Infirmary",
	"Staff Office",
	"Rooftop Stairwell",
}

func line(speaker, text string, seconds float64) dialogue.Clip {
	return dialogue.Clip{Speaker: speaker, Line: text, Duration: seconds, Size: dialogue.NormalSize}
}

func pause(speaker, text string, seconds float64) dialogue.Clip {
	c := line(speaker, text, seconds)
	c.RequirePause = true
	return c
}

// Intros are played when a level is entered, unless it was entered through a
// back door. Index is the level number.
var Intros = [9]dialogue.Script{
	{Name: "intro-0", Clips: []dialogue.Clip{
		line("", "Lights out was an hour ago.", 2.5),
		pause("Me", "I can't sleep. Something in the school is calling me.", 3),
		line("", "← → to walk. E to look closer. Tab for the backpack.", 3),
	}},
	{Name: "intro-1", Clips: []dialogue.Clip{
		pause("Me", "My old classroom. The chairs are still up on the desks.", 3),
	}},
	{Name: "intro-2", Clips: []dialogue.Clip{
		line("", "Dust hangs in the air like it is waiting.", 2.5),
	}},
	{Name: "intro-3", Clips: []dialogue.Clip{
		pause("Me", "Someone was practising here. I can still hear the last note.", 3),
	}},
	{Name: "intro-4", Clips: []dialogue.Clip{
		line("", "A tap is running somewhere.", 2),
	}},
	{Name: "intro-5", Clips: []dialogue.Clip{
		pause("Me", "We made masks in here once. Mine never dried.", 3),
	}},
	{Name: "intro-6", Clips: []dialogue.Clip{
		line("Nurse", "Lie down. You have a fever.", 2),
		pause("Me", "There's nobody here.", 2),
	}},
	{Name: "intro-7", Clips: []dialogue.Clip{
		line("", "The phones are ringing. All of them. Then none of them.", 3),
	}},
	{Name: "intro-8", Clips: []dialogue.Clip{
		pause("Me", "The roof. This is where it happened.", 3),
		{Speaker: "???", Line: "You came back.", Duration: 2.5, Size: 48, RequirePause: true},
	}},
}

// Outro plays after the player confirms leaving the dormitory.
var Outro = dialogue.Script{Name: "outro", Clips: []dialogue.Clip{
	line("Me", "The gate is open.", 2),
	pause("Me", "I think I can go home now.", 3),
}}

// ClosingCG is the picture shown once the outro ends.
var ClosingCG = []string{
	"        ☁️        ☁️",
	"",
	"    🏫  ─ ─ ─ ─ ─ ─ 🚪",
	"",
	"          🧒",
	"",
	"   The gate stands open. The morning is cold.",
	"",
	"               [Q] Quit",
}
