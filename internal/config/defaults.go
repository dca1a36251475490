package config

// DefaultFAQ returns the questions shown when the config file defines none.
func DefaultFAQ() []FAQEntry {
	return []FAQEntry{
		{
			Question: "Where is my theme choice stored?",
			Answer:   "In the preferences file. It is read once when the page opens and written every time you toggle the theme.",
		},
		{
			Question: "Does the counter survive a restart?",
			Answer:   "No. The counter lives only as long as the page session and always starts at zero.",
		},
		{
			Question: "Why did the other answer close?",
			Answer:   "Only one answer is open at a time. Opening a question closes the rest, and selecting the open one collapses it.",
		},
		{
			Question: "When is the form checked?",
			Answer:   "Each field is checked as you type in it, and all four are checked again when you submit.",
		},
	}
}
