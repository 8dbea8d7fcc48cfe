package timer

// Tips rotate below the cat as the cycle progresses.
var Tips = []string{
	"Focus on one topic at a time",
	"Take brief notes during work sessions",
	"Review your notes during breaks",
	"Stay hydrated during study sessions",
	"Use active recall techniques",
	"Try explaining concepts out loud",
}

func tipText(i int) string {
	return "Tip: " + Tips[i]
}
