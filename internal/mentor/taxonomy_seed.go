package mentor

// seedCauses defines the error cause taxonomy for language practice.
var seedCauses = []Cause{
	{
		Tag:         CauseTenseConfusion,
		Label:       "Tense confusion",
		Description: "Uses the wrong verb tense; e.g., answers with present where past is required",
		Examples:    []string{"\"go\" instead of \"went\"", "\"she eat\" instead of \"she ate\""},
	},
	{
		Tag:         CausePluralAgreement,
		Label:       "Plural agreement",
		Description: "Number mismatch between subject and verb or noun and article",
		Examples:    []string{"\"two cat\" instead of \"two cats\"", "\"they was\" instead of \"they were\""},
	},
	{
		Tag:         CauseFalseFriend,
		Label:       "False friend",
		Description: "Picks a word that looks like a native-language word but means something else",
		Examples:    []string{"\"library\" for \"librería\" (bookshop)", "\"actual\" for \"aktuell\" (current)"},
	},
	{
		Tag:         CauseSpellingSlip,
		Label:       "Spelling slip",
		Description: "Knows the word but misspells it by one character; a typo rather than a gap",
		Examples:    []string{"\"recieve\" instead of \"receive\"", "\"freind\" instead of \"friend\""},
	},
	{
		Tag:         CauseListeningGap,
		Label:       "Listening gap",
		Description: "Mishears a sound pair in audio questions; confuses similar phonemes",
		Examples:    []string{"\"ship\" heard as \"sheep\"", "\"thirteen\" heard as \"thirty\""},
	},
	{
		Tag:         CauseRushedGuess,
		Label:       "Rushed guess",
		Description: "Answered too quickly to have read the question; a guess, not a knowledge gap",
		Examples:    []string{"sub-second answer on a reading question"},
	},
}
