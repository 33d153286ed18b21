package dictionary

// sampleWords groups browsable vocabulary by first letter.
var sampleWords = map[string][]string{
	"A": {"apple", "amazing", "adventure", "algorithm", "astronomy"},
	"B": {"banana", "beautiful", "brilliant", "browser", "balance"},
	"C": {"computer", "creative", "confident", "challenge", "chocolate"},
	"D": {"digital", "dynamic", "democracy", "debate", "development"},
	"E": {"excellent", "elegant", "education", "effective", "environment"},
	"F": {"fantastic", "freedom", "flexible", "foundation", "flavor"},
	"G": {"great", "global", "graphics", "governance", "guidance"},
	"H": {"human", "harmony", "horizon", "history", "happiness"},
	"I": {"imagination", "innovative", "internet", "inspire", "important"},
	"J": {"journey", "justice", "joyful", "judgment", "journalism"},
	"K": {"knowledge", "kindness", "keyboard", "kinetic", "kitchen"},
	"L": {"learning", "language", "leadership", "legacy", "logical"},
	"M": {"modern", "motivation", "memory", "music", "management"},
	"N": {"network", "natural", "navigate", "nutrition", "necessary"},
	"O": {"opportunity", "organization", "objective", "optimize", "organic"},
	"P": {"professional", "progress", "practical", "potential", "positive"},
	"Q": {"quality", "question", "quantum", "quick", "quotation"},
	"R": {"research", "reliable", "resource", "revolution", "reality"},
	"S": {"software", "solution", "strategy", "sustainable", "science"},
	"T": {"technology", "teamwork", "tradition", "transform", "thinking"},
	"U": {"understanding", "unique", "update", "ultimate", "utility"},
	"V": {"valuable", "vision", "virtual", "vocabulary", "versatile"},
	"W": {"website", "wireless", "workflow", "wellbeing", "wisdom"},
	"X": {"xenial", "xerox", "xylophone", "x-ray", "xenophobia"},
	"Y": {"yield", "youth", "yearly", "yoga", "yesterday"},
	"Z": {"zenith", "zeal", "zone", "zoom", "zodiac"},
}

// Letters returns the browsable topic letters A-Z in order.
func Letters() []string {
	letters := make([]string, 0, 26)
	for ch := 'A'; ch <= 'Z'; ch++ {
		letters = append(letters, string(ch))
	}
	return letters
}

// SampleWordsForLetter returns the curated browsing list for a letter.
func SampleWordsForLetter(letter string) []string {
	return sampleWords[letter]
}
