package questionbank

// builtin is the seed SAT question set.
var builtin = []Question{
	{
		ID:          "m001",
		Category:    CategoryMath,
		Topic:       "Algebra",
		Difficulty:  2,
		Text:        "If 3x + 7 = 22, what is the value of x?",
		Options:     []string{"3", "5", "7", "15"},
		Correct:     1,
		Explanation: "Subtract 7 from both sides: 3x = 15. Then divide by 3: x = 5.",
	},
	{
		ID:          "m002",
		Category:    CategoryMath,
		Topic:       "Algebra",
		Difficulty:  3,
		Text:        "If 2(x - 3) = 4x + 10, what is the value of x?",
		Options:     []string{"-8", "-4", "4", "8"},
		Correct:     0,
		Explanation: "First distribute: 2x - 6 = 4x + 10. Subtract 2x from both sides: -6 = 2x + 10. Subtract 10: -16 = 2x. Divide by 2: x = -8.",
	},
	{
		ID:          "m003",
		Category:    CategoryMath,
		Topic:       "Geometry",
		Difficulty:  2,
		Text:        "A circle has a radius of 5. What is its area in terms of π?",
		Options:     []string{"10π", "25π", "50π", "100π"},
		Correct:     1,
		Explanation: "Area of a circle = πr². With r = 5: A = π(5)² = 25π.",
	},
	{
		ID:          "m004",
		Category:    CategoryMath,
		Topic:       "Data Analysis",
		Difficulty:  3,
		Text:        "The mean of 5 numbers is 12. If four of the numbers are 10, 11, 13, and 14, what is the fifth number?",
		Options:     []string{"10", "11", "12", "13"},
		Correct:     2,
		Explanation: "Mean × count = sum. So 12 × 5 = 60. The sum of the four known numbers is 10 + 11 + 13 + 14 = 48. The fifth number is 60 - 48 = 12.",
	},
	{
		ID:          "m005",
		Category:    CategoryMath,
		Topic:       "Advanced Math",
		Difficulty:  4,
		Text:        "What is the sum of the solutions to the equation x² - 5x + 6 = 0?",
		Options:     []string{"2", "3", "5", "6"},
		Correct:     2,
		Explanation: "Factor: (x - 2)(x - 3) = 0. Solutions are x = 2 and x = 3. Sum = 2 + 3 = 5. Alternatively, for ax² + bx + c = 0, sum of roots = -b/a = 5/1 = 5.",
	},
	{
		ID:          "m006",
		Category:    CategoryMath,
		Topic:       "Algebra",
		Difficulty:  2,
		Text:        "If f(x) = 2x + 3, what is f(4)?",
		Options:     []string{"8", "11", "14", "20"},
		Correct:     1,
		Explanation: "Substitute x = 4: f(4) = 2(4) + 3 = 8 + 3 = 11.",
	},
	{
		ID:          "m007",
		Category:    CategoryMath,
		Topic:       "Geometry",
		Difficulty:  3,
		Text:        "In a right triangle, if one leg is 3 and the hypotenuse is 5, what is the length of the other leg?",
		Options:     []string{"2", "4", "6", "8"},
		Correct:     1,
		Explanation: "Using the Pythagorean theorem: a² + b² = c². So 3² + b² = 5². 9 + b² = 25. b² = 16. b = 4.",
	},
	{
		ID:          "m008",
		Category:    CategoryMath,
		Topic:       "Algebra",
		Difficulty:  4,
		Text:        "If 2^(x+1) = 32, what is the value of x?",
		Options:     []string{"3", "4", "5", "6"},
		Correct:     1,
		Explanation: "32 = 2^5. So 2^(x+1) = 2^5. Therefore x + 1 = 5, and x = 4.",
	},
	{
		ID:          "m009",
		Category:    CategoryMath,
		Topic:       "Data Analysis",
		Difficulty:  2,
		Text:        "If a store offers 20% off a $50 item, what is the sale price?",
		Options:     []string{"$30", "$35", "$40", "$45"},
		Correct:     2,
		Explanation: "20% of $50 = 0.20 × 50 = $10. Sale price = $50 - $10 = $40.",
	},
	{
		ID:          "m010",
		Category:    CategoryMath,
		Topic:       "Advanced Math",
		Difficulty:  5,
		Text:        "For what value of k does the equation x² + kx + 9 = 0 have exactly one solution?",
		Options:     []string{"±3", "±6", "±9", "±12"},
		Correct:     1,
		Explanation: "For exactly one solution, the discriminant must equal zero: b² - 4ac = 0. So k² - 4(1)(9) = 0. k² = 36. k = ±6.",
	},
	{
		ID:          "r001",
		Category:    CategoryReading,
		Topic:       "Main Idea",
		Difficulty:  2,
		Passage:     "Recent studies have shown that regular exercise not only improves physical health but also has significant benefits for mental well-being. Researchers found that people who exercised at least three times a week reported lower levels of stress and anxiety compared to those who were sedentary.",
		Text:        "What is the main idea of this passage?",
		Options:     []string{"Exercise is only good for physical health", "Exercise benefits both physical and mental health", "Sedentary people are always stressed", "You must exercise daily to see benefits"},
		Correct:     1,
		Explanation: "The passage explicitly states that exercise improves both \"physical health\" and \"mental well-being,\" with evidence about reduced stress and anxiety.",
	},
	{
		ID:          "r002",
		Category:    CategoryReading,
		Topic:       "Inference",
		Difficulty:  3,
		Passage:     "The old library stood on the corner of Main Street, its windows dark and dusty. For decades, it had been the intellectual heart of the community, but now weeds grew through the cracks in the steps, and the once-proud sign hung at an angle.",
		Text:        "What can be inferred about the library?",
		Options:     []string{"It was recently built", "It is currently thriving", "It has fallen into disuse", "It is being renovated"},
		Correct:     2,
		Explanation: "The description of dark windows, dust, weeds, and a tilted sign all suggest neglect and abandonment, indicating the library has fallen into disuse.",
	},
	{
		ID:          "r003",
		Category:    CategoryReading,
		Topic:       "Vocabulary in Context",
		Difficulty:  2,
		Passage:     "The scientist's hypothesis was initially met with skepticism, but as more data accumulated, even her harshest critics had to acknowledge the validity of her findings.",
		Text:        "In this context, \"skepticism\" most nearly means:",
		Options:     []string{"Enthusiasm", "Doubt", "Anger", "Support"},
		Correct:     1,
		Explanation: "Skepticism means doubt or disbelief. The contrast with later \"acknowledgment\" of validity confirms this meaning.",
	},
	{
		ID:          "r004",
		Category:    CategoryReading,
		Topic:       "Author's Purpose",
		Difficulty:  3,
		Passage:     "While many argue that social media has connected the world, we must consider its shadow side. Studies link heavy social media use to increased rates of depression, particularly among teenagers. We cannot ignore this data in our rush to celebrate connectivity.",
		Text:        "What is the author's primary purpose?",
		Options:     []string{"To celebrate social media's benefits", "To argue that social media should be banned", "To present a balanced critique of social media", "To explain how social media works"},
		Correct:     2,
		Explanation: "The author acknowledges social media's benefits (\"connected the world\") while presenting concerns about its negative effects, indicating a balanced critique.",
	},
	{
		ID:          "r005",
		Category:    CategoryReading,
		Topic:       "Evidence",
		Difficulty:  4,
		Passage:     "The coral reefs, often called the \"rainforests of the sea,\" support approximately 25% of all marine species despite covering less than 1% of the ocean floor. However, rising ocean temperatures have triggered mass bleaching events, threatening this delicate ecosystem.",
		Text:        "Which claim is directly supported by evidence in the passage?",
		Options:     []string{"Coral reefs are more important than rainforests", "Coral reefs support a disproportionately large number of species", "All marine species depend on coral reefs", "Ocean temperatures are rising faster than predicted"},
		Correct:     1,
		Explanation: "The passage provides specific data: 25% of species on less than 1% of ocean floor. This directly supports the claim about disproportionate species support.",
	},
	{
		ID:          "w001",
		Category:    CategoryWriting,
		Topic:       "Grammar",
		Difficulty:  2,
		Text:        "Select the correct version: \"Neither the students nor the teacher ____ ready for the surprise inspection.\"",
		Options:     []string{"was", "were", "are", "been"},
		Correct:     0,
		Explanation: "With \"neither...nor\" constructions, the verb agrees with the subject closest to it. \"Teacher\" is singular, so use \"was.\"",
	},
	{
		ID:          "w002",
		Category:    CategoryWriting,
		Topic:       "Punctuation",
		Difficulty:  2,
		Text:        "Which sentence uses the semicolon correctly?",
		Options:     []string{"I love pizza; and pasta.", "I love pizza; however, I am allergic to cheese.", "I love; pizza, pasta, and salad.", "I love pizza; pasta; and salad."},
		Correct:     1,
		Explanation: "A semicolon correctly joins two independent clauses, especially when followed by a conjunctive adverb like \"however.\"",
	},
	{
		ID:          "w003",
		Category:    CategoryWriting,
		Topic:       "Sentence Structure",
		Difficulty:  3,
		Text:        "Which revision eliminates the dangling modifier? Original: \"Walking through the park, the flowers were beautiful.\"",
		Options:     []string{"Walking through the park, the beautiful flowers.", "The flowers were beautiful, walking through the park.", "Walking through the park, I found the flowers beautiful.", "The flowers walking through the park were beautiful."},
		Correct:     2,
		Explanation: "The original sentence implies the flowers were walking. By adding \"I\" as the subject, it's clear who was walking through the park.",
	},
	{
		ID:          "w004",
		Category:    CategoryWriting,
		Topic:       "Word Choice",
		Difficulty:  2,
		Text:        "Select the most precise word: \"The experiment had a ____ impact on our understanding of the phenomenon.\"",
		Options:     []string{"big", "significant", "really large", "super important"},
		Correct:     1,
		Explanation: "\"Significant\" is the most precise and formal word choice for academic writing, conveying importance without being vague or informal.",
	},
	{
		ID:          "w005",
		Category:    CategoryWriting,
		Topic:       "Transitions",
		Difficulty:  3,
		Text:        "Which transition best connects these sentences? \"The company reported record profits. ____, they announced layoffs.\"",
		Options:     []string{"Consequently", "Nevertheless", "Furthermore", "Similarly"},
		Correct:     1,
		Explanation: "\"Nevertheless\" indicates contrast between two seemingly contradictory ideas (high profits vs. layoffs), making it the best choice.",
	},
}
