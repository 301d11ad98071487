package seometa

// pageTemplate is one phrasing variant. Placeholders: {city}, {count},
// {rate}, {territory}, {filter}, {filters}, {year}.
type pageTemplate struct {
	title       string
	description string
	h1          string
	body        string
	footer      string
}

// templateBank holds the five phrasing variants for one page shape.
type templateBank [VariantCount]pageTemplate

// hubBank renders city hub pages (no filters).
var hubBank = templateBank{
	{
		title:       "Electricity Plans in {city}, TX | Compare {count} Rates",
		description: "Compare {count} electricity plans in {city}. Rates from {rate}¢/kWh on the {territory} grid. Switch online in minutes.",
		h1:          "Electricity Plans in {city}, Texas",
		body:        "<p>{city} sits in {territory} territory, where {count} retail electricity plans compete for your business. The lowest rate available today starts at {rate}¢ per kWh.</p><p>Use the filters below to narrow plans by contract length, rate type, or renewable content.</p>",
		footer:      "<p>Rates shown for {city} are updated daily. &copy; {year}</p>",
	},
	{
		title:       "{city} Electricity Rates - {count} Plans from {rate}¢/kWh",
		description: "Shop {count} electricity plans available in {city}, TX. {territory} delivers your power no matter which plan you pick.",
		h1:          "Compare Electricity Rates in {city}",
		body:        "<p>Shopping for power in {city}? There are {count} plans on the board right now, starting at {rate}¢ per kWh. Delivery is handled by {territory}, so reliability is identical across every plan - only the price and terms differ.</p>",
		footer:      "<p>{city} rate data refreshed daily &middot; {year}</p>",
	},
	{
		title:       "Compare {count} {city} Electricity Plans | Rates from {rate}¢",
		description: "Find the right electricity plan in {city}, Texas. {count} options on the {territory} grid, starting at {rate}¢/kWh.",
		h1:          "Find Your {city} Electricity Plan",
		body:        "<p>Every home in {city} gets its wires and meters from {territory}, but you choose who supplies the power. Today that means {count} competing plans with rates as low as {rate}¢ per kWh.</p><p>Filter by what matters to you and switch in about ten minutes.</p>",
		footer:      "<p>Serving {city} electricity shoppers since {year}.</p>",
	},
	{
		title:       "Cheap Electricity in {city}, TX - {count} Plans Compared",
		description: "{count} electricity plans compete in {city}. Compare rates from {rate}¢/kWh and switch without an interruption.",
		h1:          "Cheap Electricity Plans in {city}",
		body:        "<p>Deregulation gives {city} residents real choice: {count} plans are available on the {territory} grid today, with introductory rates from {rate}¢ per kWh. Your lights stay on through any switch - only the bill changes.</p>",
		footer:      "<p>Plan counts for {city} verified {year}.</p>",
	},
	{
		title:       "{city} Power Plans: Compare {count} Electricity Offers",
		description: "Side-by-side comparison of {count} electricity offers in {city}, TX on the {territory} network. From {rate}¢/kWh.",
		h1:          "Electricity Choice in {city}, Texas",
		body:        "<p>With {count} plans live in {city} and rates starting at {rate}¢ per kWh, the hardest part is narrowing the list. {territory} keeps the grid running regardless of the retailer you choose.</p>",
		footer:      "<p>Independent comparisons for {city} &mdash; {year}</p>",
	},
}

// tokenBanks hold filter-specific phrasing for the four strongest single
// filters. Other single filters use the generic bank.
var tokenBanks = map[string]templateBank{
	"12-month": {
		{
			title:       "12-Month Electricity Plans in {city}, TX | {count} Offers",
			description: "Lock a 12-month electricity rate in {city} from {rate}¢/kWh. {count} fixed-term plans compared.",
			h1:          "12-Month Electricity Plans in {city}",
			body:        "<p>A one-year term is the sweet spot for most {city} households: long enough to ride out seasonal spikes, short enough to renegotiate annually. {count} twelve-month plans are available from {rate}¢ per kWh on the {territory} grid.</p>",
			footer:      "<p>12-month rates for {city} updated daily. {year}</p>",
		},
		{
			title:       "{city} 12-Month Electricity Rates from {rate}¢/kWh",
			description: "Compare {count} one-year electricity contracts in {city}, Texas. Price certainty without a long commitment.",
			h1:          "One-Year Electricity Contracts in {city}",
			body:        "<p>{count} suppliers offer 12-month terms in {city} right now. Starting at {rate}¢ per kWh, each locks your price for a full year of {territory} delivery.</p>",
			footer:      "<p>Annual-term pricing for {city}, {year}.</p>",
		},
		{
			title:       "Best 12-Month Power Plans in {city} | {count} Compared",
			description: "One-year electricity plans in {city} from {rate}¢/kWh. Compare all {count} annual contracts.",
			h1:          "Compare 12-Month Plans in {city}",
			body:        "<p>An annual contract shields {city} homes from summer price swings. We track {count} twelve-month offers on the {territory} grid, with today's floor at {rate}¢ per kWh.</p>",
			footer:      "<p>{city} annual plan tracker &middot; {year}</p>",
		},
		{
			title:       "12-Month Fixed Terms in {city}, TX - from {rate}¢",
			description: "{count} electricity plans with one-year terms in {city}. Lock today's rate for twelve months.",
			h1:          "Twelve Months of Price Certainty in {city}",
			body:        "<p>Lock in before the next heat wave: {count} one-year plans are live in {city}, starting at {rate}¢ per kWh with delivery by {territory}.</p>",
			footer:      "<p>Rates current for {city} as of {year}.</p>",
		},
		{
			title:       "{city} Annual Electricity Plans | {count} 12-Month Offers",
			description: "Shop 12-month electricity in {city}, Texas: {count} plans from {rate}¢/kWh with no mid-year surprises.",
			h1:          "Annual Electricity Plans for {city}",
			body:        "<p>Twelve-month contracts dominate the {city} market for a reason: predictable bills across a full {territory} billing cycle. {count} options start at {rate}¢ per kWh.</p>",
			footer:      "<p>Twelve-month market snapshot, {city} {year}.</p>",
		},
	},
	"fixed-rate": {
		{
			title:       "Fixed-Rate Electricity in {city}, TX | {count} Plans",
			description: "Compare {count} fixed-rate electricity plans in {city} from {rate}¢/kWh. Your price never moves mid-contract.",
			h1:          "Fixed-Rate Electricity Plans in {city}",
			body:        "<p>A fixed rate means the price you sign in {city} is the price you pay until the term ends, whatever the wholesale market does. {count} fixed plans are live on the {territory} grid from {rate}¢ per kWh.</p>",
			footer:      "<p>Fixed-rate listings for {city}, updated {year}.</p>",
		},
		{
			title:       "{city} Fixed-Rate Power Plans from {rate}¢/kWh",
			description: "{count} fixed-price electricity contracts in {city}, Texas. No wholesale surprises on your bill.",
			h1:          "Lock a Fixed Electricity Rate in {city}",
			body:        "<p>Wholesale power prices swing hard in Texas summers; a fixed contract insulates your {city} bill from all of it. Compare {count} offers starting at {rate}¢ per kWh, delivered by {territory}.</p>",
			footer:      "<p>{city} fixed-rate data &middot; {year}</p>",
		},
		{
			title:       "Best Fixed-Rate Plans in {city} | {count} Compared",
			description: "Fixed-rate electricity in {city} from {rate}¢/kWh. All {count} contracts compared side by side.",
			h1:          "Compare Fixed-Rate Plans in {city}",
			body:        "<p>{count} suppliers will lock your {city} rate today, starting at {rate}¢ per kWh on {territory} wires. Fixed plans suit anyone who budgets to the dollar.</p>",
			footer:      "<p>Fixed pricing verified for {city}, {year}.</p>",
		},
		{
			title:       "Fixed-Price Electricity Offers in {city}, TX",
			description: "Shop {count} fixed-rate plans in {city}. Price certainty from {rate}¢ per kWh.",
			h1:          "Fixed-Price Power for {city} Homes",
			body:        "<p>If a variable bill makes you nervous, {city} has {count} fixed-price alternatives from {rate}¢ per kWh. Delivery stays with {territory} either way.</p>",
			footer:      "<p>Price-lock options for {city} &mdash; {year}</p>",
		},
		{
			title:       "{city} Fixed Electricity Rates | {count} Plans from {rate}¢",
			description: "Every fixed-rate electricity plan in {city}, Texas in one comparison. {count} offers live now.",
			h1:          "Fixed Electricity Rates in {city}",
			body:        "<p>We track every fixed-rate contract in {city}: {count} today, with the cheapest at {rate}¢ per kWh. Your {territory} delivery charge is identical across all of them.</p>",
			footer:      "<p>Full fixed-rate census for {city}, {year}.</p>",
		},
	},
	"green-energy": {
		{
			title:       "100% Green Energy Plans in {city}, TX | {count} Offers",
			description: "Compare {count} renewable electricity plans in {city} from {rate}¢/kWh. Fully backed by Texas wind and solar.",
			h1:          "100% Renewable Electricity in {city}",
			body:        "<p>Every kilowatt-hour on these {city} plans is matched with renewable energy credits from Texas wind and solar farms. {count} green plans start at {rate}¢ per kWh on the {territory} grid.</p>",
			footer:      "<p>Green plan availability for {city}, {year}.</p>",
		},
		{
			title:       "{city} Renewable Energy Plans from {rate}¢/kWh",
			description: "{count} 100% green electricity plans in {city}, Texas. Clean power at competitive rates.",
			h1:          "Go Green in {city}",
			body:        "<p>Renewable plans in {city} now price within reach of conventional ones: {count} fully green offers start at {rate}¢ per kWh, delivered over {territory} lines.</p>",
			footer:      "<p>Renewable market watch, {city} {year}.</p>",
		},
		{
			title:       "Green Electricity in {city} | {count} 100% Renewable Plans",
			description: "Switch {city} to wind and solar power. {count} renewable plans from {rate}¢ per kWh.",
			h1:          "Green Electricity Plans for {city}",
			body:        "<p>Texas leads the nation in wind generation, and {city} residents can claim it directly: {count} plans are 100% renewable, starting at {rate}¢ per kWh with {territory} delivery.</p>",
			footer:      "<p>{city} clean-energy listings &middot; {year}</p>",
		},
		{
			title:       "100% Wind & Solar Plans in {city}, TX from {rate}¢",
			description: "Compare every fully renewable electricity plan in {city}: {count} options, rates from {rate}¢/kWh.",
			h1:          "Wind and Solar Power for {city}",
			body:        "<p>Going renewable in {city} takes one switch. {count} plans are backed entirely by Texas wind and solar, from {rate}¢ per kWh on the {territory} network.</p>",
			footer:      "<p>Renewable coverage for {city}, updated {year}.</p>",
		},
		{
			title:       "{city} Green Energy Rates | {count} Renewable Offers",
			description: "All {count} renewable electricity plans in {city}, Texas compared. Green power from {rate}¢/kWh.",
			h1:          "Renewable Electricity Rates in {city}",
			body:        "<p>We list every 100% renewable plan sold in {city} - {count} at the moment, with a floor of {rate}¢ per kWh. {territory} handles delivery on all of them.</p>",
			footer:      "<p>Green rate index, {city} {year}.</p>",
		},
	},
	"prepaid": {
		{
			title:       "Prepaid Electricity in {city}, TX | {count} No-Deposit Plans",
			description: "Pay-as-you-go electricity in {city} from {rate}¢/kWh. {count} prepaid plans with no credit check.",
			h1:          "Prepaid Electricity Plans in {city}",
			body:        "<p>Prepaid plans let {city} households skip deposits and credit checks entirely: load a balance, use power, top up as needed. {count} prepaid offers start at {rate}¢ per kWh on the {territory} grid.</p>",
			footer:      "<p>Prepaid options for {city}, {year}.</p>",
		},
		{
			title:       "{city} Pay-As-You-Go Power from {rate}¢/kWh",
			description: "{count} prepaid electricity plans in {city}, Texas. Same-day connection, no deposit.",
			h1:          "Pay-As-You-Go Electricity in {city}",
			body:        "<p>Need power in {city} today? Prepaid plans connect same-day with no deposit. {count} options are live from {rate}¢ per kWh, delivered by {territory}.</p>",
			footer:      "<p>Same-day prepaid listings, {city} {year}.</p>",
		},
		{
			title:       "Prepaid Power Plans in {city} | {count} Compared",
			description: "No-deposit prepaid electricity in {city} from {rate}¢/kWh. Compare all {count} pay-as-you-go plans.",
			h1:          "Compare Prepaid Plans in {city}",
			body:        "<p>{count} suppliers sell prepaid power in {city}, from {rate}¢ per kWh. Daily balance texts keep usage visible - a feature many {territory} customers keep even after their credit recovers.</p>",
			footer:      "<p>Prepaid market summary for {city}, {year}.</p>",
		},
		{
			title:       "No-Deposit Electricity in {city}, TX from {rate}¢",
			description: "Skip the deposit: {count} prepaid electricity plans in {city} with instant approval.",
			h1:          "No-Deposit Power for {city}",
			body:        "<p>Deposits on standard {city} plans can top $400. Prepaid service waives them entirely: {count} plans from {rate}¢ per kWh, with {territory} handling the wires.</p>",
			footer:      "<p>No-deposit plan tracker, {city} {year}.</p>",
		},
		{
			title:       "{city} Prepaid Electricity Rates | {count} Plans",
			description: "Every prepaid electricity plan in {city}, Texas: {count} offers from {rate}¢ per kWh.",
			h1:          "Prepaid Electricity Rates in {city}",
			body:        "<p>We track all {count} prepaid plans sold in {city}, starting at {rate}¢ per kWh. Connection is typically same-day anywhere on the {territory} network.</p>",
			footer:      "<p>Prepaid rate census, {city} {year}.</p>",
		},
	},
}

// singleBank renders any other single-filter page generically.
var singleBank = templateBank{
	{
		title:       "{filter} Electricity Plans in {city}, TX | {count} Offers",
		description: "Compare {count} {filter} electricity plans in {city} from {rate}¢/kWh on the {territory} grid.",
		h1:          "{filter} Electricity Plans in {city}",
		body:        "<p>{count} plans in {city} match the {filter} option, with rates from {rate}¢ per kWh. Delivery is provided by {territory} on every plan.</p>",
		footer:      "<p>{filter} listings for {city}, {year}.</p>",
	},
	{
		title:       "{city} {filter} Plans from {rate}¢/kWh",
		description: "{count} electricity plans with {filter} in {city}, Texas. Compare and switch online.",
		h1:          "{filter} Plans in {city}",
		body:        "<p>Looking for {filter} service in {city}? {count} plans qualify today, starting at {rate}¢ per kWh with {territory} delivery.</p>",
		footer:      "<p>{city} {filter} snapshot &middot; {year}</p>",
	},
	{
		title:       "Best {filter} Plans in {city} | {count} Compared",
		description: "Side-by-side comparison of {count} {filter} electricity plans in {city} from {rate}¢/kWh.",
		h1:          "Compare {filter} Plans in {city}",
		body:        "<p>We compare all {count} {filter} offers available in {city}, with today's lowest at {rate}¢ per kWh on the {territory} network.</p>",
		footer:      "<p>{filter} comparisons for {city}, {year}.</p>",
	},
	{
		title:       "{filter} Power Offers in {city}, TX from {rate}¢",
		description: "Shop {count} {filter} electricity offers in {city}. Rates start at {rate}¢ per kWh.",
		h1:          "{filter} Power for {city} Homes",
		body:        "<p>{city} shoppers who want {filter} have {count} plans to choose from, priced from {rate}¢ per kWh. {territory} keeps the grid running regardless.</p>",
		footer:      "<p>{filter} availability in {city}, {year}.</p>",
	},
	{
		title:       "{city} {filter} Electricity Rates | {count} Plans",
		description: "Every {filter} electricity plan in {city}, Texas: {count} offers from {rate}¢/kWh.",
		h1:          "{filter} Electricity Rates in {city}",
		body:        "<p>All {count} {filter} plans sold in {city} in one list, starting at {rate}¢ per kWh with delivery by {territory}.</p>",
		footer:      "<p>{filter} rate index, {city} {year}.</p>",
	},
}

// multiBank renders pages carrying two or more filters.
var multiBank = templateBank{
	{
		title:       "{filters} Electricity Plans in {city}, TX",
		description: "Compare {count} electricity plans in {city} matching {filters}. Rates from {rate}¢/kWh.",
		h1:          "{filters} Plans in {city}",
		body:        "<p>{count} plans in {city} combine {filters}, with rates starting at {rate}¢ per kWh on the {territory} grid.</p>",
		footer:      "<p>Combined-filter listings for {city}, {year}.</p>",
	},
	{
		title:       "{city} Plans with {filters} | {count} Offers",
		description: "{count} electricity offers in {city}, Texas featuring {filters}, from {rate}¢ per kWh.",
		h1:          "Electricity Plans with {filters} in {city}",
		body:        "<p>Narrowing {city} plans to {filters} leaves {count} matches. The cheapest starts at {rate}¢ per kWh, delivered by {territory}.</p>",
		footer:      "<p>{city} combination snapshot &middot; {year}</p>",
	},
	{
		title:       "Best {filters} Plans in {city} | {count} Compared",
		description: "Side-by-side look at {count} {city} electricity plans matching {filters}. From {rate}¢/kWh.",
		h1:          "Compare {filters} Plans in {city}",
		body:        "<p>We compare every {city} plan offering {filters} - {count} today - with rates from {rate}¢ per kWh on {territory} wires.</p>",
		footer:      "<p>Combination comparisons for {city}, {year}.</p>",
	},
	{
		title:       "{filters} Power Offers in {city}, TX",
		description: "Shop {count} electricity plans in {city} that pair {filters}. Rates start at {rate}¢ per kWh.",
		h1:          "{filters} Power for {city}",
		body:        "<p>{city} households wanting {filters} together have {count} plans to pick from, starting at {rate}¢ per kWh. {territory} handles delivery on all of them.</p>",
		footer:      "<p>Paired-filter availability in {city}, {year}.</p>",
	},
	{
		title:       "{city} Electricity: {filters} | {count} Plans",
		description: "Every {city} electricity plan matching {filters}: {count} offers from {rate}¢/kWh.",
		h1:          "{filters} Electricity in {city}",
		body:        "<p>All {count} plans pairing {filters} in {city}, listed from {rate}¢ per kWh with {territory} delivery.</p>",
		footer:      "<p>Combined rate index, {city} {year}.</p>",
	},
}
