package feedback

func defaultPools() map[string][]string {
	return map[string][]string{
		PoolArenaCorrect: {
			"Precisely. Your reasoning was methodical and sound. {insight}",
			"Excellent work. You clearly understand the underlying concept here. {insight}",
			"Well done. That's the kind of clarity that translates to real scores. {insight}",
			"Perfect execution. {insight} Keep this momentum going.",
			"Correct. And more importantly, your approach was efficient. {insight}",
		},
		PoolArenaIncorrect: {
			"Not quite, but I see where your thinking went. {diagnosis} Let's unpack this: {explanation}",
			"Close, but there's a subtle trap here that many students fall into. {diagnosis} {explanation}",
			"This is a common misconception, and understanding why matters more than the answer. {diagnosis} {explanation}",
			"Let's pause here. {diagnosis} The key insight is: {explanation}",
			"Interesting approach, but it missed a crucial element. {diagnosis} Here's the path: {explanation}",
		},
		PoolArenaTimeout: {
			"Time's up, but this is valuable data. Let's review what made this one tricky. {explanation}",
			"Don't worry about the clock. What matters is understanding why: {explanation}",
			"Speed comes with mastery. For now, focus on the concept: {explanation}",
		},
		PoolSenseiProbe: {
			"Interesting. But what if I asked: why does that work?",
			"I think I follow, but can you give me a concrete example?",
			"That sounds like a textbook answer. Can you explain it in your own words?",
			"Hmm, I'm not quite seeing it. What's the intuition behind that?",
			"Wait, but what happens if we change one variable? Would it still work?",
			"I've heard that before, but I still don't get WHY it's true.",
			"Can you walk me through a specific case? Step by step?",
		},
		PoolSenseiResist: {
			"I'm not convinced. That explanation has gaps I can poke through.",
			"That's vague. A real student wouldn't understand that.",
			"You're using jargon without explaining it. What do those terms actually mean?",
			"I could memorize that, but I still wouldn't understand it. Dig deeper.",
			"That's the 'what', but not the 'why'. Why does this work?",
			"Hmm, that sounds like you're reciting rather than explaining.",
		},
		PoolSenseiAccept: {
			"Oh! Now THAT makes sense. The way you broke it down with {highlight} really clicked.",
			"Yes! That example with {highlight} made it crystal clear.",
			"Now I get it. {highlight} - that's the key insight I was missing.",
			"Perfect explanation. I could teach this to someone else now because of {highlight}.",
			"That's the kind of clarity that proves mastery. {highlight} is exactly right.",
		},
		PoolEncouragement: {
			"You're making real progress. This struggle is building neural pathways.",
			"Every error is data. Your brain is literally rewiring right now.",
			"This is exactly where growth happens. Stay with it.",
			"Remember: confusion is temporary, but mastery is permanent.",
			"You're closer than you think. Let's keep building.",
		},
		PoolStudyRec: {
			"Based on your pattern, I'd focus on {topic} next. You're almost there.",
			"Your {weakArea} needs attention, but your {strongArea} is solid. Strategic play: shore up the weak spot.",
			"You're leaving points on the table in {weakArea}. 30 minutes of focused practice could unlock +50 points.",
			"I notice you rush through {topic} questions. Slow down - speed will come naturally with confidence.",
		},
	}
}

// topicInsights are appended to correct-answer feedback, keyed by question topic.
var topicInsights = map[string][]string{
	"Algebra": {
		"This algebraic manipulation will appear in many forms on test day.",
		"Isolating variables is a core skill you've clearly internalized.",
		"This kind of equation solving becomes automatic with practice.",
	},
	"Geometry": {
		"Spatial reasoning like this builds strong foundations.",
		"These geometric relationships connect to many other concepts.",
		"Visualizing shapes mathematically is a powerful skill.",
	},
	"Data Analysis": {
		"Reading data critically is valuable beyond just tests.",
		"Statistical thinking separates good scores from great ones.",
		"This analytical approach applies to real-world problems too.",
	},
	"Main Idea": {
		"Finding the main idea quickly is a speed multiplier.",
		"This skill transfers to every passage you'll encounter.",
		"Central argument identification is your reading superpower.",
	},
	"Inference": {
		"Reading between the lines is where high scores live.",
		"This kind of logical deduction is what separates scores.",
		"Inference questions reward careful, analytical reading.",
	},
	"Grammar": {
		"Clean grammar instincts serve you in every writing context.",
		"This rule will appear repeatedly - glad you've mastered it.",
		"Grammar patterns become automatic with recognition.",
	},
}

var defaultInsights = []string{
	"This demonstrates solid understanding.",
	"You're building strong fundamentals here.",
	"This concept will compound into bigger gains.",
}
