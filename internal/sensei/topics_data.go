package sensei

// builtinTopics are the scripted dialogues, in menu order.
var builtinTopics = []Topic{
	{
		ID:      "quadratic",
		Title:   "Quadratic Equations",
		Icon:    "📐",
		Opening: "I've heard about quadratic equations but I don't really get them. What exactly is a quadratic equation?",
		FollowUps: []FollowUp{
			{
				Triggers: []string{"ax^2", "x squared", "second degree", "power of 2", "squared"},
				Response: "Okay, so it has an x² term. But why does that matter? What makes it different from a regular equation like 2x + 3 = 7?",
			},
			{
				Triggers: []string{"parabola", "curve", "u-shape", "two solutions", "two roots"},
				Response: "Interesting! So it can have two solutions because of the curve? How do I actually solve one though?",
			},
			{
				Triggers: []string{"factoring", "factor", "quadratic formula", "completing the square"},
				Response: "Can you give me a simple example? Like, how would you solve x² - 5x + 6 = 0?",
			},
			{
				Triggers: []string{"(x-2)", "(x-3)", "x = 2", "x = 3", "2 and 3"},
				Response: "Oh! So we find two numbers that multiply to 6 and add to -5. That's -2 and -3. So (x-2)(x-3) = 0, meaning x = 2 or x = 3. I think I get it now!",
			},
		},
		Resistance: []string{
			"Hmm, that doesn't quite click for me. Can you be more specific?",
			"I'm not sure I follow. What do you mean exactly?",
			"That seems a bit vague. Can you explain it differently?",
			"I've heard those words before but I still don't understand the concept.",
		},
		Criteria: Criteria{
			Clarity:    []string{"clear", "simple", "example", "because", "means", "so"},
			Depth:      []string{"formula", "solution", "solve", "roots", "zero", "equals"},
			Engagement: []string{"you", "your", "think", "imagine", "notice", "see"},
		},
	},
	{
		ID:      "inference",
		Title:   "Making Inferences",
		Icon:    "📖",
		Opening: "My teacher says I need to make 'inferences' when reading. But what does that even mean?",
		FollowUps: []FollowUp{
			{
				Triggers: []string{"conclude", "conclusion", "figure out", "not stated", "between the lines", "implied"},
				Response: "So it's like reading between the lines? But how do I know if my inference is correct?",
			},
			{
				Triggers: []string{"evidence", "clues", "text says", "support", "details"},
				Response: "Okay, so I need evidence from the text. Can you give me an example?",
			},
			{
				Triggers: []string{"example", "for instance", "like when", "imagine", "suppose"},
				Response: "That makes sense! So I combine what the text says with what I already know. But how is this different from just guessing?",
			},
			{
				Triggers: []string{"logical", "makes sense", "reasonable", "supported", "based on"},
				Response: "Oh, so it's educated reasoning, not random guessing. The text has to support it. I think I understand now!",
			},
		},
		Resistance: []string{
			"I'm still confused. That sounds like just guessing to me.",
			"But how is that different from making stuff up?",
			"I don't see how I'm supposed to know something that isn't written.",
			"That's too abstract. Can you make it more concrete?",
		},
		Criteria: Criteria{
			Clarity:    []string{"clues", "evidence", "text", "author", "implies"},
			Depth:      []string{"logical", "reasoning", "support", "conclude", "deduce"},
			Engagement: []string{"example", "imagine", "like", "think about", "consider"},
		},
	},
	{
		ID:      "semicolons",
		Title:   "Semicolon Usage",
		Icon:    "✏️",
		Opening: "I never know when to use a semicolon. It looks like a period but also like a comma? I'm confused.",
		FollowUps: []FollowUp{
			{
				Triggers: []string{"independent clause", "two sentences", "complete thought", "could be separate"},
				Response: "So it connects sentences that could stand alone? Why not just use a period then?",
			},
			{
				Triggers: []string{"related", "connected", "close", "relationship", "together"},
				Response: "Ah, so when ideas are closely related! Can you give me an example?",
			},
			{
				Triggers: []string{"example", "like", "for instance", ";"},
				Response: "Okay, I see. Is there any other time I'd use a semicolon?",
			},
			{
				Triggers: []string{"however", "therefore", "conjunctive", "list", "commas"},
				Response: "Got it! So before words like 'however' or in complex lists. This is clearer now, thanks!",
			},
		},
		Resistance: []string{
			"That's still not clear to me. When would I actually use one?",
			"But why not just use a comma?",
			"I need a concrete example to understand.",
			"That rule sounds complicated. Is there an easier way to think about it?",
		},
		Criteria: Criteria{
			Clarity:    []string{"sentence", "period", "comma", "connect", "join"},
			Depth:      []string{"independent", "clause", "however", "therefore", "list"},
			Engagement: []string{"example", "like", "such as", "for instance", "imagine"},
		},
	},
	{
		ID:      "pythagorean",
		Title:   "Pythagorean Theorem",
		Icon:    "📐",
		Opening: "What's the Pythagorean theorem? I've seen a² + b² = c² but I don't get what it means.",
		FollowUps: []FollowUp{
			{
				Triggers: []string{"right triangle", "right angle", "90 degree", "legs", "hypotenuse"},
				Response: "Okay, so it only works for right triangles. But what are the legs and hypotenuse?",
			},
			{
				Triggers: []string{"longest side", "across from", "opposite", "shorter sides"},
				Response: "So a and b are the two shorter sides, and c is the longest one across from the right angle? Can you show me how to use it?",
			},
			{
				Triggers: []string{"3", "4", "5", "example", "solve", "find"},
				Response: "Oh! So if I know two sides, I can find the third. Like 3² + 4² = 9 + 16 = 25 = 5². That's cool!",
			},
			{
				Triggers: []string{"distance", "real world", "diagonal", "construction", "practical"},
				Response: "So it's actually useful in real life too, not just math class. I get it now!",
			},
		},
		Resistance: []string{
			"I don't see why this works. It seems like magic.",
			"But what are a, b, and c supposed to be?",
			"Can you explain it without just stating the formula?",
			"Why does squaring the sides matter?",
		},
		Criteria: Criteria{
			Clarity:    []string{"right", "triangle", "sides", "equals", "square"},
			Depth:      []string{"hypotenuse", "legs", "opposite", "formula", "solve"},
			Engagement: []string{"imagine", "example", "like", "think", "real"},
		},
	},
}
