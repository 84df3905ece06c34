package dict

// Built-in word lists. These are fixed dictionaries; generators treat them
// as opaque data and never mutate them.
var builtinLists = map[string][]string{
	"first_names": {
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
		"Linda", "William", "Elizabeth", "David", "Barbara", "Richard",
		"Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen",
		"Christopher", "Lisa", "Daniel", "Nancy", "Matthew", "Betty",
		"Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
		"Steven", "Kimberly", "Paul", "Emily", "Andrew", "Donna", "Joshua",
		"Michelle",
	},
	"last_names": {
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
		"Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez",
		"Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore",
		"Jackson", "Martin", "Lee", "Perez", "Thompson", "White", "Harris",
		"Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
		"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen",
		"Hill", "Flores",
	},
	"cities": {
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
		"Philadelphia", "San Antonio", "San Diego", "Dallas", "Austin",
		"London", "Paris", "Berlin", "Madrid", "Rome", "Amsterdam", "Oslo",
		"Stockholm", "Copenhagen", "Helsinki", "Tokyo", "Seoul", "Sydney",
		"Toronto", "Vancouver", "Mexico City", "Lima", "Nairobi", "Cairo",
		"Mumbai",
	},
	"countries": {
		"United States", "Canada", "Mexico", "Brazil", "Argentina",
		"United Kingdom", "France", "Germany", "Spain", "Italy", "Norway",
		"Sweden", "Denmark", "Finland", "Netherlands", "Portugal", "Japan",
		"South Korea", "China", "India", "Australia", "New Zealand",
		"South Africa", "Kenya", "Egypt", "Nigeria", "Chile", "Peru",
		"Colombia", "Iceland",
	},
	"streets": {
		"Main St", "Oak Ave", "Elm St", "Park Blvd", "Cedar Ln",
		"Maple Dr", "Pine Rd", "Lake Way", "Hillcrest Ave", "Sunset Blvd",
		"River Rd", "Church St", "Highland Ave", "Forest Dr", "Meadow Ln",
		"Willow Way", "Broadway", "Chestnut St", "Spring St", "Mill Rd",
	},
	"nouns": {
		"time", "year", "people", "way", "day", "man", "thing", "woman",
		"life", "child", "world", "school", "state", "family", "student",
		"group", "country", "problem", "hand", "part", "place", "case",
		"week", "company", "system", "program", "question", "work",
		"government", "number", "night", "point", "home", "water", "room",
		"mother", "area", "money", "story", "fact",
	},
	"adjectives": {
		"good", "new", "first", "last", "long", "great", "little", "own",
		"other", "old", "right", "big", "high", "different", "small",
		"large", "next", "early", "young", "important", "few", "public",
		"bad", "same", "able", "quick", "bright", "calm", "eager", "fancy",
	},
	"verbs": {
		"be", "have", "do", "say", "get", "make", "go", "know", "take",
		"see", "come", "think", "look", "want", "give", "use", "find",
		"tell", "ask", "work", "seem", "feel", "try", "leave", "call",
		"run", "jump", "build", "write", "read",
	},
	"words": {
		"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta",
		"theta", "iota", "kappa", "lambda", "mu", "nu", "xi", "omicron",
		"pi", "rho", "sigma", "tau", "upsilon", "phi", "chi", "psi",
		"omega",
	},
	"colors": {
		"red", "orange", "yellow", "green", "blue", "indigo", "violet",
		"black", "white", "gray", "brown", "pink", "cyan", "magenta",
		"teal", "maroon", "navy", "olive", "silver", "gold",
	},
	"domains": {
		"example.com", "example.org", "example.net", "test.com", "mock.io",
		"demo.org", "sample.dev", "acme.test",
	},
}
