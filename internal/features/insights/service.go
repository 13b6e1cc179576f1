package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"livpulse/internal/common/models"
	"livpulse/internal/config"
	"livpulse/internal/features/metrics"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// MetricsSnapshot carries the current state of every monitored domain
// into the analysis.
type MetricsSnapshot struct {
	Platforms []metrics.PlatformMetrics `json:"platforms"`
	Backend   []metrics.BackendMetrics  `json:"backend"`
	Ops       []metrics.OpsMetrics      `json:"ops"`
	Store     []metrics.StoreMetrics    `json:"store"`
	CMS       []metrics.CMSMetrics      `json:"cms"`
}

// InsightsService analyses a metrics snapshot into a program summary,
// risk predictions and action recommendations. With an OpenAI key
// configured it asks the model first; otherwise, or on any model
// failure, it falls back to rule-based analysis.
type InsightsService interface {
	ProgramSummary(ctx context.Context, snap MetricsSnapshot) ProgramSummary
	PredictRisks(ctx context.Context, snap MetricsSnapshot) []RiskPrediction
	Recommendations(ctx context.Context, risks []RiskPrediction, snap MetricsSnapshot) []ActionRecommendation
}

type InsightsServiceImpl struct {
	client *openai.Client
	log    *zap.Logger
	now    func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewInsightsService(cfg *config.Config, log *zap.Logger, rng *rand.Rand) InsightsService {
	var client *openai.Client
	if cfg.OpenAIKey != "" {
		client = openai.NewClient(cfg.OpenAIKey)
	}
	return &InsightsServiceImpl{
		client: client,
		log:    log,
		now:    time.Now,
		rng:    rng,
	}
}

func (s *InsightsServiceImpl) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *InsightsServiceImpl) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     openai.GPT3Dot5Turbo,
		Messages:  []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *InsightsServiceImpl) ProgramSummary(ctx context.Context, snap MetricsSnapshot) ProgramSummary {
	if s.client != nil {
		payload, _ := json.Marshal(snap)
		prompt := fmt.Sprintf(
			"Analyze the following OTT platform metrics and generate a program health summary as JSON "+
				"matching {overallHealth, healthScore, keyMetrics, topConcerns, achievements, nextSteps}:\n%s",
			payload,
		)
		content, err := s.complete(ctx, prompt, 500)
		if err != nil {
			s.log.Warn("summary generation failed, using rule-based fallback", zap.Error(err))
		} else {
			var summary ProgramSummary
			if json.Unmarshal([]byte(content), &summary) == nil && summary.HealthScore > 0 {
				return summary
			}
			s.log.Warn("unparseable summary response, using rule-based fallback")
		}
	}
	return s.ruleBasedSummary(snap)
}

func (s *InsightsServiceImpl) ruleBasedSummary(snap MetricsSnapshot) ProgramSummary {
	platformsHealthy := 0
	for _, p := range snap.Platforms {
		if p.Health == models.HealthHealthy {
			platformsHealthy++
		}
	}
	totalPlatforms := len(snap.Platforms)
	if totalPlatforms == 0 {
		totalPlatforms = 5
	}

	servicesOperational := 0
	for _, b := range snap.Backend {
		if b.Status == models.StatusOperational {
			servicesOperational++
		}
	}
	totalServices := len(snap.Backend)
	if totalServices == 0 {
		totalServices = 6
	}

	healthScore := int(math.Round((float64(platformsHealthy)/float64(totalPlatforms) +
		float64(servicesOperational)/float64(totalServices)) * 50))

	overall := HealthCritical
	switch {
	case healthScore >= 90:
		overall = HealthExcellent
	case healthScore >= 70:
		overall = HealthGood
	case healthScore >= 50:
		overall = HealthWarning
	}

	return ProgramSummary{
		OverallHealth: overall,
		HealthScore:   healthScore,
		KeyMetrics: KeyMetrics{
			PlatformsHealthy:    platformsHealthy,
			ServicesOperational: servicesOperational,
			CriticalIssues:      s.intn(3),
			UpcomingRisks:       s.intn(5),
		},
		TopConcerns: []string{
			"iOS app crash rate increased by 15%",
			"UMSPS service latency above threshold",
			"CDN cache hit ratio declining",
		},
		Achievements: []string{
			"Android app performance improved by 20%",
			"Zero security incidents this week",
			"Successful deployment of new features",
		},
		NextSteps: []string{
			"Investigate iOS stability issues",
			"Optimize UMSPS database queries",
			"Review CDN configuration",
		},
	}
}

func (s *InsightsServiceImpl) PredictRisks(ctx context.Context, snap MetricsSnapshot) []RiskPrediction {
	if s.client != nil {
		payload, _ := json.Marshal(snap)
		prompt := fmt.Sprintf(
			"Based on current metrics, predict potential risks in performance, security, availability, "+
				"compliance and delivery. Respond as a JSON array of "+
				"{id, category, severity, probability, impact, description, recommendation, timeline, affectedServices}:\n%s",
			payload,
		)
		content, err := s.complete(ctx, prompt, 800)
		if err != nil {
			s.log.Warn("risk prediction failed, using rule-based fallback", zap.Error(err))
		} else {
			var risks []RiskPrediction
			if json.Unmarshal([]byte(content), &risks) == nil && len(risks) > 0 {
				return risks
			}
			s.log.Warn("unparseable risk response, using rule-based fallback")
		}
	}
	return s.ruleBasedRisks(snap)
}

func (s *InsightsServiceImpl) ruleBasedRisks(snap MetricsSnapshot) []RiskPrediction {
	var risks []RiskPrediction

	for _, p := range snap.Platforms {
		if p.Performance.ResponseTime > 2000 {
			risks = append(risks, RiskPrediction{
				ID:               "perf-001",
				Category:         "performance",
				Severity:         models.SeverityHigh,
				Probability:      0.8,
				Impact:           "User experience degradation",
				Description:      "Platform response times exceeding acceptable thresholds",
				Recommendation:   "Implement performance optimization and caching strategies",
				Timeline:         "1-2 weeks",
				AffectedServices: []string{"Web", "Mobile Apps"},
			})
			break
		}
	}

	for _, b := range snap.Backend {
		if b.Performance.Uptime < 99.5 {
			risks = append(risks, RiskPrediction{
				ID:               "avail-001",
				Category:         "availability",
				Severity:         models.SeverityMedium,
				Probability:      0.6,
				Impact:           "Service interruptions",
				Description:      "Backend services showing reduced uptime",
				Recommendation:   "Review infrastructure and implement redundancy",
				Timeline:         "2-3 weeks",
				AffectedServices: []string{"UMSPS", "Listing Service"},
			})
			break
		}
	}

	return risks
}

func (s *InsightsServiceImpl) Recommendations(ctx context.Context, risks []RiskPrediction, snap MetricsSnapshot) []ActionRecommendation {
	if len(risks) == 0 {
		risks = s.ruleBasedRisks(snap)
	}

	var recs []ActionRecommendation
	for i, risk := range risks {
		priority := PriorityMedium
		switch risk.Severity {
		case models.SeverityCritical:
			priority = PriorityUrgent
		case models.SeverityHigh:
			priority = PriorityHigh
		}
		recs = append(recs, ActionRecommendation{
			ID:              fmt.Sprintf("rec-%d", i+1),
			Priority:        priority,
			Category:        risk.Category,
			Title:           fmt.Sprintf("Address %s risk", risk.Category),
			Description:     risk.Recommendation,
			EstimatedEffort: "1-2 sprints",
			ExpectedImpact:  "Reduce risk probability by 70%",
			Owner:           "Platform Team",
			DueDate:         s.now().Add(14 * 24 * time.Hour),
			Dependencies:    []string{},
		})
	}
	return recs
}
