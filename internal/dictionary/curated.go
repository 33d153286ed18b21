package dictionary

// curatedEntries are pre-defined definitions for common words, so lookups
// for them never reach the network.
var curatedEntries = map[string]Entry{
	"apple": {
		Word:       "apple",
		Definition: "The round fruit of an apple tree, which typically has thin green or red skin and crisp flesh.",
		Example:    "She took a bite of the juicy apple.",
	},
	"banana": {
		Word:       "banana",
		Definition: "A long curved fruit with a yellow skin and soft sweet flesh.",
		Example:    "He peeled a banana for breakfast.",
	},
	"computer": {
		Word:       "computer",
		Definition: "An electronic device for storing and processing data according to instructions.",
		Example:    "She uses her computer for work and gaming.",
	},
	"digital": {
		Word:       "digital",
		Definition: "Relating to or using signals or information represented by discrete values.",
		Example:    "Digital technology has transformed our society.",
	},
	"learning": {
		Word:       "learning",
		Definition: "The acquisition of knowledge or skills through study, experience, or teaching.",
		Example:    "Learning a new language takes time and practice.",
	},
	"quality": {
		Word:       "quality",
		Definition: "The standard of something as measured against other things of a similar kind.",
		Example:    "They sell high-quality products at reasonable prices.",
	},
	"website": {
		Word:       "website",
		Definition: "A collection of web pages and related content identified by a common domain name.",
		Example:    "The company launched its new website yesterday.",
	},
}
