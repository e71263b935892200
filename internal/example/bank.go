package example

import "github.com/dshills/valuelens/internal/schema"

// bank is the curated seed bank. Immutable after init; GetRelevant copies
// entries out rather than aliasing.
var bank = []Example{
	{
		ID:       "ex-politics-01",
		Content:  "Another election cycle, another round of broken promises. I don't trust a single party anymore, the whole parliament should be audited by independent citizens.",
		Category: "politics",
		ValueOrientations: []schema.ValueOrientation{
			{Label: "institutional_trust", Score: -0.8},
			{Label: "authority", Score: -0.6},
		},
		Summary:   "The author voices deep disillusionment with political institutions and pushes back against established power.",
		Reasoning: "Repeated distrust language toward parties and parliament, plus a call for citizen oversight, indicates low institutional trust and an anti-authority stance.",
	},
	{
		ID:       "ex-politics-02",
		Content:  "Borders exist for a reason, and immigration needs limits. We should take care of our own citizens first before spending money abroad. Proud of my country and not ashamed to say it.",
		Category: "politics",
		ValueOrientations: []schema.ValueOrientation{
			{Label: "nationalism", Score: 0.8},
			{Label: "tradition", Score: 0.4},
		},
		Summary:   "The author expresses a nation-first outlook with pride in national identity.",
		Reasoning: "Citizens-first framing and explicit national pride map directly onto the nation-first side of the nationalism axis.",
	},
	{
		ID:       "ex-economy-01",
		Content:  "Raised my prices 3% and customers scream, meanwhile rent went up 20%. Small businesses are drowning while the big chains get tax breaks. Tax the landlords.",
		Category: "economy",
		ValueOrientations: []schema.ValueOrientation{
			{Label: "wealth_redistribution", Score: 0.7},
			{Label: "market_regulation", Score: 0.5},
			{Label: "economic_optimism", Score: -0.6},
		},
		Summary:   "The author is frustrated with economic conditions, leans toward redistribution, and wants stronger rules on large players.",
		Reasoning: "Complaints about rent and unequal tax treatment, ending with a redistribution demand, support redistribution and regulation leanings with a pessimistic outlook.",
	},
	{
		ID:       "ex-economy-02",
		Content:  "Skipped the new phone again this year. Bought nothing on the sales weekend, put it all into the stock index fund. Compound interest is the only influencer I follow.",
		Category: "economy",
		ValueOrientations: []schema.ValueOrientation{
			{Label: "consumerism", Score: -0.8},
			{Label: "risk_appetite", Score: -0.3},
		},
		Summary:   "The author favors saving over spending and treats consumption trends with detached humor.",
		Reasoning: "Skipping upgrades and sales in favor of investing signals a strongly frugal orientation.",
	},
	{
		ID:       "ex-society-01",
		Content:  "My grandmother raised six kids in one room and never complained. This generation wants therapy for a bad haircut. Family and hard work used to mean something.",
		Category: "society",
		ValueOrientations: []schema.ValueOrientation{
			{Label: "tradition", Score: 0.8},
			{Label: "family_centrality", Score: 0.6},
		},
		Summary:   "The author upholds traditional values and places family endurance above modern sensibilities.",
		Reasoning: "Favorable contrast of an older generation's family-centered hardship with present-day norms marks strong traditionalism.",
	},
	{
		ID:       "ex-society-02",
		Content:  "Moved to a neighborhood where I hear four languages on my street and honestly it's the best thing about living here. Different food, different stories, same block party.",
		Category: "society",
		ValueOrientations: []schema.ValueOrientation{
			{Label: "diversity", Score: 0.9},
			{Label: "social_trust", Score: 0.5},
		},
		Summary:   "The author delights in a multicultural environment and trusts the community around them.",
		Reasoning: "Explicit enthusiasm for a multilingual, multicultural street indicates a strong embrace of diversity.",
	},
	{
		ID:       "ex-technology-01",
		Content:  "Set up a local model on my own hardware this weekend. Not letting some cloud company read my prompts. The tech is amazing, the data grab is not.",
		Category: "technology",
		ValueOrientations: []schema.ValueOrientation{
			{Label: "privacy", Score: 0.9},
			{Label: "tech_optimism", Score: 0.6},
			{Label: "ai_attitude", Score: 0.4},
		},
		Summary:   "The author is enthusiastic about technology itself yet guards personal data fiercely.",
		Reasoning: "Self-hosting to avoid cloud data collection shows privacy protection; the tone toward the capability stays positive.",
	},
	{
		ID:       "ex-technology-02",
		Content:  "Deleted three apps from my smartphone this month and bought an alarm clock. The feed was eating my evenings. Being unreachable after 8pm is a feature, not a bug.",
		Category: "technology",
		ValueOrientations: []schema.ValueOrientation{
			{Label: "screen_time", Score: -0.8},
			{Label: "minimalism", Score: 0.4},
		},
		Summary:   "The author is deliberately reducing digital presence in favor of offline life.",
		Reasoning: "Removing apps and celebrating unreachability place the author firmly on the offline-leaning side.",
	},
	{
		ID:       "ex-culture-01",
		Content:  "Spent the whole afternoon in the new wing of the museum. The brushwork on those early portraits does something a print never will. Go see the real thing.",
		Category: "culture",
		ValueOrientations: []schema.ValueOrientation{
			{Label: "art_engagement", Score: 0.8},
			{Label: "cultural_openness", Score: 0.4},
		},
		Summary:   "The author engages deeply with art and urges first-hand cultural experience.",
		Reasoning: "An afternoon at an exhibition and attention to brushwork detail indicate deep aesthetic engagement.",
	},
	{
		ID:       "ex-environment-01",
		Content:  "Third heatwave this summer and people still argue about whether it's real. We switched to rail for every trip under six hours to cut carbon. Small, boring, necessary.",
		Category: "environment",
		ValueOrientations: []schema.ValueOrientation{
			{Label: "climate_concern", Score: 0.9},
			{Label: "green_lifestyle", Score: 0.7},
		},
		Summary:   "The author is alarmed by climate change and has adjusted daily habits accordingly.",
		Reasoning: "Linking heatwaves to denialism and adopting rail travel shows both strong concern and concrete eco-conscious behavior.",
	},
	{
		ID:       "ex-entertainment-01",
		Content:  "Watched the finale live at 3am with the fan discord, then rewatched it twice with the director commentary. Already booked tickets for the con. No regrets.",
		Category: "entertainment",
		ValueOrientations: []schema.ValueOrientation{
			{Label: "fandom_intensity", Score: 0.9},
			{Label: "live_experience", Score: 0.6},
		},
		Summary:   "The author is a devoted fan who organizes real life around the things they love watching.",
		Reasoning: "Live 3am viewing, rewatches, and convention tickets are textbook devoted-fan behavior.",
	},
	{
		ID:       "ex-lifestyle-01",
		Content:  "Turned down the promotion. More money, more meetings, fewer mornings with my kids. I'll take the smaller title and the bigger life. Career ladders are overrated.",
		Category: "lifestyle_career",
		ValueOrientations: []schema.ValueOrientation{
			{Label: "work_life_balance", Score: 0.9},
			{Label: "family_centrality", Score: 0.7},
		},
		Summary:   "The author deliberately chooses personal and family life over career advancement.",
		Reasoning: "Declining a promotion to protect family time is a strong life-centric signal.",
	},
	{
		ID:       "ex-lifestyle-02",
		Content:  "辞掉了大厂的工作，搬到了小城市。房租便宜一半，每天可以跑步看书。生活不是只有加班。",
		Category: "lifestyle_career",
		ValueOrientations: []schema.ValueOrientation{
			{Label: "work_life_balance", Score: 0.8},
			{Label: "urban_preference", Score: -0.5},
		},
		Summary:   "The author left a high-pressure job for a smaller city and a calmer daily rhythm.",
		Reasoning: "Quitting a big-company job and praising a cheaper, slower life signals life-centric balance and a preference away from the metropolis.",
	},
}

// FallbackPair returns the two static examples used when retrieval was
// skipped (fast mode) or returned nothing. The pair spans a positive and a
// negative score so the model sees both sign conventions.
func FallbackPair() [2]Example {
	return [2]Example{bank[5], bank[0]} // ex-society-02, ex-politics-01
}
