package directory

import "github.com/meridianvc/dealscope/internal/model"

// seedCompanies is the demo dataset shipped with the dashboard.
var seedCompanies = []model.Company{
	{
		ID:          "c1",
		Name:        "Stripe",
		URL:         "https://stripe.com",
		Industry:    "Fintech",
		Stage:       "Public",
		Location:    "San Francisco, CA",
		Description: "Financial infrastructure platform for the internet.",
		Founded:     2010,
	},
	{
		ID:          "c2",
		Name:        "Vercel",
		URL:         "https://vercel.com",
		Industry:    "DevTools",
		Stage:       "Series D",
		Location:    "San Francisco, CA",
		Description: "Frontend cloud platform for modern web frameworks.",
		Founded:     2015,
	},
	{
		ID:          "c3",
		Name:        "Anthropic",
		URL:         "https://anthropic.com",
		Industry:    "AI",
		Stage:       "Series C",
		Location:    "San Francisco, CA",
		Description: "AI safety and research company.",
		Founded:     2021,
	},
	{
		ID:          "c4",
		Name:        "Linear",
		URL:         "https://linear.app",
		Industry:    "Productivity",
		Stage:       "Series B",
		Location:    "San Francisco, CA",
		Description: "Purpose-built tool for planning and building products.",
		Founded:     2019,
	},
	{
		ID:          "c5",
		Name:        "Supabase",
		URL:         "https://supabase.com",
		Industry:    "DevTools",
		Stage:       "Series B",
		Location:    "Singapore",
		Description: "Open source Firebase alternative.",
		Founded:     2020,
	},
	{
		ID:          "c6",
		Name:        "Rippling",
		URL:         "https://rippling.com",
		Industry:    "HR Tech",
		Stage:       "Series E",
		Location:    "San Francisco, CA",
		Description: "Workforce management platform.",
		Founded:     2016,
	},
	{
		ID:          "c7",
		Name:        "Hugging Face",
		URL:         "https://huggingface.co",
		Industry:    "AI",
		Stage:       "Series D",
		Location:    "New York, NY",
		Description: "The AI community building the future.",
		Founded:     2016,
	},
	{
		ID:          "c8",
		Name:        "Plaid",
		URL:         "https://plaid.com",
		Industry:    "Fintech",
		Stage:       "Series D",
		Location:    "San Francisco, CA",
		Description: "Data network powering the fintech tools that millions rely on.",
		Founded:     2013,
	},
	{
		ID:          "c9",
		Name:        "Figma",
		URL:         "https://figma.com",
		Industry:    "Design",
		Stage:       "Series E",
		Location:    "San Francisco, CA",
		Description: "Collaborative interface design tool.",
		Founded:     2012,
	},
	{
		ID:          "c10",
		Name:        "Notion",
		URL:         "https://notion.so",
		Industry:    "Productivity",
		Stage:       "Series C",
		Location:    "San Francisco, CA",
		Description: "All-in-one workspace for your notes, tasks, wikis, and databases.",
		Founded:     2013,
	},
}
