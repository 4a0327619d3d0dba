package rules

// Top-dog match categories.
const (
	TopDogMarketLeader     = "market_leader"
	TopDogFirstMover       = "first_mover"
	TopDogEmergingIndustry = "emerging_industry"
	TopDogDisruptor        = "disruptor"
)

// TopDogRules drives the top-dog / first-mover analysis of the business
// and risk-factors sections.
type TopDogRules struct {
	// EmergingIndustries maps industry identifiers to the terms that
	// place a company in that industry.
	EmergingIndustries map[string][]string

	// Keywords maps match categories to their phrase lists.
	Keywords map[string][]string

	// NegativeWords in a sentence suppress a keyword match: the company
	// is describing a threat, not a position.
	NegativeWords map[string]bool

	// ChunkSize bounds how much text is scanned per pass on very large
	// filings.
	ChunkSize int
}

func defaultTopDogRules() TopDogRules {
	return TopDogRules{
		EmergingIndustries: map[string][]string{
			"artificial_intelligence": {
				"machine learning", "deep learning", "neural networks", "ai/ml", "artificial intelligence",
				"predictive analytics", "computer vision", "natural language processing", "nlp",
				"generative ai", "large language models", "llms", "ai-powered", "intelligent automation",
				"foundation models", "transformer models", "reinforcement learning", "federated learning",
			},
			"electric_vehicles": {
				"electric vehicles", "evs", "battery electric", "plug-in hybrid", "charging infrastructure",
				"lithium-ion batteries", "autonomous driving", "self-driving", "electric mobility",
				"sustainable transportation", "zero-emission vehicles", "battery technology",
			},
			"renewable_energy": {
				"solar energy", "photovoltaic", "wind power", "renewable energy", "clean energy",
				"energy storage", "battery storage", "grid modernization", "smart grid",
				"carbon capture", "hydrogen fuel", "green hydrogen", "microgrids",
			},
			"fintech": {
				"digital payments", "mobile payments", "blockchain", "cryptocurrency", "digital banking",
				"neobanks", "insurtech", "regtech", "wealthtech", "buy now pay later", "bnpl",
				"open banking", "api banking", "digital wallets", "defi", "decentralized finance",
			},
			"ecommerce_emerging": {
				"social commerce", "live streaming commerce", "cross-border ecommerce", "b2b ecommerce",
				"marketplace platforms", "direct-to-consumer", "dtc", "omnichannel retail",
				"last-mile delivery", "logistics technology", "quick commerce", "q-commerce",
			},
			"digital_health": {
				"telemedicine", "digital health", "healthtech", "precision medicine", "genomics",
				"crispr", "gene editing", "remote patient monitoring", "digital therapeutics",
				"healthcare analytics", "wearable health devices", "personalized medicine",
			},
			"cloud_computing": {
				"cloud infrastructure", "saas", "paas", "iaas", "edge computing", "serverless",
				"containerization", "microservices", "cloud-native", "multi-cloud", "hybrid cloud",
				"api-first", "low-code", "no-code", "devops", "mlops",
			},
			"cybersecurity": {
				"zero trust", "threat detection", "endpoint security", "cloud security", "identity management",
				"data protection", "privacy technology", "quantum cryptography", "ai security",
				"security orchestration", "soar", "siem", "devsecops",
			},
			"space_tech": {
				"satellite technology", "space exploration", "commercial space", "space tourism",
				"satellite internet", "space mining", "orbital debris removal", "space manufacturing",
				"small satellites", "cubesats", "reusable rockets", "space logistics",
			},
			"quantum_computing": {
				"quantum computing", "quantum algorithms", "quantum cryptography", "quantum sensors",
				"quantum networking", "quantum advantage", "qubits", "quantum supremacy",
				"quantum error correction", "quantum machine learning",
			},
			"advanced_manufacturing": {
				"3d printing", "additive manufacturing", "industrial iot", "digital twins",
				"smart manufacturing", "robotics automation", "cobots", "collaborative robots",
			},
			"ar_vr": {
				"augmented reality", "virtual reality", "mixed reality", "extended reality", "xr",
				"spatial computing", "metaverse", "digital twins", "ar glasses", "vr headsets",
			},
		},

		Keywords: map[string][]string{
			TopDogMarketLeader: {
				"market leader", "leading provider", "dominant position", "largest company",
				"top provider", "#1 in", "number one", "market leadership", "industry leader",
			},
			TopDogFirstMover: {
				"first to", "pioneer", "pioneered", "first company", "originated",
				"breakthrough", "innovative", "groundbreaking", "invented", "created",
			},
			TopDogEmergingIndustry: {
				"emerging market", "growing market", "high-growth", "fast-growing",
				"new market", "nascent industry", "next-generation", "cutting-edge",
			},
			TopDogDisruptor: {
				"disrupt", "disrupting", "disruption", "transforming", "revolutionizing",
				"paradigm shift", "game-changing", "replacing traditional",
			},
		},

		NegativeWords: toSet([]string{
			"risk", "threat", "competition", "competitive", "face", "disrupt",
			"adversely", "negatively", "challenge", "could", "may", "might",
		}),

		ChunkSize: 50_000,
	}
}
