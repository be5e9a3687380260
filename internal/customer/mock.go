package customer

import (
	"math/rand"
	"time"

	"github.com/FairForge/adoptly/internal/catalog"
)

// UsageProfile controls how much synthetic usage a generated customer gets
type UsageProfile string

const (
	ProfileHealthy  UsageProfile = "healthy"
	ProfileNormal   UsageProfile = "normal"
	ProfileAtRisk   UsageProfile = "at_risk"
	ProfileChampion UsageProfile = "champion"
)

type profileConfig struct {
	coreAdoption    float64
	premiumAdoption float64
	sessionMult     float64
	freqMult        float64
}

var profileConfigs = map[UsageProfile]profileConfig{
	ProfileHealthy:  {coreAdoption: 0.9, premiumAdoption: 0.4, sessionMult: 1.0, freqMult: 0.5},
	ProfileNormal:   {coreAdoption: 0.7, premiumAdoption: 0.2, sessionMult: 1.0, freqMult: 0.5},
	ProfileAtRisk:   {coreAdoption: 0.4, premiumAdoption: 0.05, sessionMult: 0.3, freqMult: 0.2},
	ProfileChampion: {coreAdoption: 0.95, premiumAdoption: 0.7, sessionMult: 2.5, freqMult: 0.8},
}

// Generator produces synthetic customers with realistic usage patterns.
// A fixed seed makes generation reproducible.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator creates a generator with the given seed
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now(),
	}
}

// GenerateUsage synthesizes usage counters for one customer-feature pair
func (g *Generator) GenerateUsage(customerID, featureID string, daysSinceStart int, adoptionProbability float64, cfg profileConfig) *FeatureUsage {
	usage := &FeatureUsage{
		FeatureID:  featureID,
		CustomerID: customerID,
	}

	if g.rng.Float64() > adoptionProbability {
		// Never used
		return usage
	}

	maxFirst := daysSinceStart
	if maxFirst > 90 {
		maxFirst = 90
	}
	if maxFirst < 0 {
		maxFirst = 0
	}
	firstUsedDaysAgo := g.rng.Intn(maxFirst + 1)
	firstUsed := g.now.AddDate(0, 0, -firstUsedDaysAgo)

	daysActive := int(float64(daysSinceStart-firstUsedDaysAgo) * cfg.freqMult)
	if daysActive < 1 {
		daysActive = 1
	}
	totalSessions := int(float64(daysActive) * cfg.sessionMult * (0.5 + g.rng.Float64()))
	if totalSessions < 1 {
		totalSessions = 1
	}
	totalActions := totalSessions * (3 + g.rng.Intn(13))

	daysSinceFirst := firstUsedDaysAgo
	if daysSinceFirst < 1 {
		daysSinceFirst = 1
	}
	frequency := float64(daysActive) / float64(daysSinceFirst)
	if frequency > 1.0 {
		frequency = 1.0
	}

	lastUsed := firstUsed.AddDate(0, 0, g.rng.Intn(daysSinceFirst+1))

	usage.FirstUsed = &firstUsed
	usage.LastUsed = &lastUsed
	usage.TotalSessions = totalSessions
	usage.TotalActions = totalActions
	usage.DaysActive = daysActive
	usage.UsageFrequency = frequency
	return usage
}

// GenerateCustomer builds a customer with one usage entry per catalog feature
func (g *Generator) GenerateCustomer(c *Customer, features []*catalog.Feature, profile UsageProfile) *Customer {
	cfg, ok := profileConfigs[profile]
	if !ok {
		cfg = profileConfigs[ProfileNormal]
	}

	daysSinceStart := c.TenureDays(g.now)

	c.Features = make(map[string]*FeatureUsage, len(features))
	for _, f := range features {
		prob := cfg.coreAdoption
		if f.IsPremium {
			prob = cfg.premiumAdoption
		}
		c.Features[f.ID] = g.GenerateUsage(c.ID, f.ID, daysSinceStart, prob, cfg)
	}
	return c
}

// SeedDemoCustomers loads a set of demo customers with varied profiles
func SeedDemoCustomers(store *MemoryStore, features []*catalog.Feature, seed int64) {
	g := NewGenerator(seed)
	now := g.now

	demos := []struct {
		c       *Customer
		profile UsageProfile
	}{
		{
			c: &Customer{
				ID: "cust_001", Name: "Acme Corporation",
				PlanTier:          TierEnterprise,
				SubscriptionStart: now.AddDate(0, 0, -180),
				MRR:               5000, Industry: "Technology",
				CompanySize: "500-1000", AccountManager: "Sarah Johnson",
			},
			profile: ProfileHealthy,
		},
		{
			c: &Customer{
				ID: "cust_002", Name: "TechStart Inc",
				PlanTier:          TierProfessional,
				SubscriptionStart: now.AddDate(0, 0, -120),
				MRR:               1500, Industry: "SaaS",
				CompanySize: "50-200", AccountManager: "Mike Chen",
			},
			profile: ProfileNormal,
		},
		{
			c: &Customer{
				ID: "cust_003", Name: "Legacy Systems Co",
				PlanTier:          TierProfessional,
				SubscriptionStart: now.AddDate(0, 0, -200),
				MRR:               2000, Industry: "Manufacturing",
				CompanySize: "200-500", AccountManager: "Sarah Johnson",
			},
			profile: ProfileAtRisk,
		},
		{
			c: &Customer{
				ID: "cust_004", Name: "Innovation Labs",
				PlanTier:          TierEnterprise,
				SubscriptionStart: now.AddDate(0, 0, -365),
				MRR:               8000, Industry: "Technology",
				CompanySize: "1000+", AccountManager: "Mike Chen",
			},
			profile: ProfileChampion,
		},
		{
			c: &Customer{
				ID: "cust_005", Name: "Fresh Startup",
				PlanTier:          TierBasic,
				SubscriptionStart: now.AddDate(0, 0, -30),
				MRR:               500, Industry: "E-commerce",
				CompanySize: "10-50", AccountManager: "Sarah Johnson",
			},
			profile: ProfileNormal,
		},
	}

	for _, d := range demos {
		store.Add(g.GenerateCustomer(d.c, features, d.profile))
	}
}
