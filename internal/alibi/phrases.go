package alibi

// WorkingPhrases rotate next to the spinner while commits are written.
var WorkingPhrases = []string{
	"rewriting history",
	"covering tracks",
	"manufacturing evidence",
	"establishing plausible deniability",
	"adjusting the timeline",
	"nothing to see here",
	"altering records",
	"fabricating commits",
	"generating paper trail",
	"backdating timestamps",
	"erasing footprints",
	"forging the past",
	"manipulating git log",
	"planting evidence",
	"cooking the books",
	"doctoring the timeline",
	"falsifying records",
	"leaving no trace",
}

var DonePhrases = []string{
	"your alibi is airtight.",
	"history rewritten.",
	"plausible deniability achieved.",
	"what sick day?",
	"the timeline has been corrected.",
	"nothing suspicious here.",
	"the perfect cover.",
	"your tracks are covered.",
	"git blame will never know.",
	"the past is whatever you say it is.",
	"your secret is safe.",
	"no one will ever know.",
	"case closed.",
	"the perfect crime.",
}
