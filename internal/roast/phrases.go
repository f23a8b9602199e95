package roast

var ThinkingPhrases = []string{
	"reading your code",
	"trying not to laugh",
	"composing thoughts",
	"finding where to begin",
	"oh no",
	"this is going to hurt",
	"preparing the roast",
	"calibrating savagery",
	"locating the fire extinguisher",
	"taking a deep breath",
	"questioning life choices",
	"warming up the grill",
}

var DonePhrases = []string{
	"your code has been served.",
	"well done. medium rare.",
	"that was therapeutic.",
	"extra crispy.",
	"flame-grilled to perfection.",
	"the code will never be the same.",
	"consider this a growth opportunity.",
}
