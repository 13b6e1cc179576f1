package metrics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"livpulse/internal/common/models"
)

// StoreKPIs is the storefront-wide rollup.
type StoreKPIs struct {
	Summary        StoreKPISummary        `json:"summary"`
	Subscriptions  SubscriptionKPIs       `json:"subscriptions"`
	TopPerformers  []StoreConversionEntry `json:"topPerformers"`
	NeedsAttention []AttentionItem        `json:"needsAttention"`
	PaymentHealth  PaymentHealth          `json:"paymentHealth"`
}

type StoreKPISummary struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalTransactions int     `json:"totalTransactions"`
	AvgConversionRate float64 `json:"avgConversionRate"`
	TotalUsers        int     `json:"totalUsers"`
	AvgUptime         float64 `json:"avgUptime"`
	HealthyStores     int     `json:"healthyStores"`
	WarningStores     int     `json:"warningStores"`
	CriticalStores    int     `json:"criticalStores"`
}

type SubscriptionKPIs struct {
	NewSubscriptions int     `json:"newSubscriptions"`
	Renewals         int     `json:"renewals"`
	Cancellations    int     `json:"cancellations"`
	AvgChurnRate     float64 `json:"avgChurnRate"`
	NetGrowth        int     `json:"netGrowth"`
}

type StoreConversionEntry struct {
	Platform       string  `json:"platform"`
	ConversionRate float64 `json:"conversionRate"`
	Revenue        float64 `json:"revenue"`
}

type PaymentHealth struct {
	AvgSuccessRate     float64 `json:"avgSuccessRate"`
	AvgProcessingTime  float64 `json:"avgProcessingTime"`
	TotalFraudDetected float64 `json:"totalFraudDetected"`
}

// StoreComparison lines the storefronts up along each KPI axis.
type StoreComparison struct {
	Revenue     []StoreRevenueEntry         `json:"revenue"`
	Conversion  []StoreConversionDetail     `json:"conversion"`
	Performance []StorePerformanceEntry     `json:"performance"`
	Users       []StoreUserComparisonEntry  `json:"users"`
}

type StoreRevenueEntry struct {
	Platform string  `json:"platform"`
	Revenue  float64 `json:"revenue"`
	Growth   float64 `json:"growth"`
}

type StoreConversionDetail struct {
	Platform    string  `json:"platform"`
	Rate        float64 `json:"rate"`
	Abandonment float64 `json:"abandonment"`
}

type StorePerformanceEntry struct {
	Platform     string  `json:"platform"`
	Uptime       float64 `json:"uptime"`
	ResponseTime float64 `json:"responseTime"`
}

type StoreUserComparisonEntry struct {
	Platform       string  `json:"platform"`
	Sessions       int     `json:"sessions"`
	UniqueVisitors int     `json:"uniqueVisitors"`
	BounceRate     float64 `json:"bounceRate"`
}

func (s *MetricsServiceImpl) AllStoreMetrics() []StoreMetrics {
	return storeFleet(s.now())
}

func (s *MetricsServiceImpl) StoreMetric(platform string) (StoreMetrics, bool) {
	for _, m := range s.AllStoreMetrics() {
		if strings.Contains(strings.ToLower(m.Platform), strings.ToLower(platform)) {
			return m, true
		}
	}
	return StoreMetrics{}, false
}

func (s *MetricsServiceImpl) StoreTrends(platform string, days int) []StoreTrend {
	var base StoreMetrics
	if platform == "" {
		base = s.AllStoreMetrics()[0]
	} else {
		m, ok := s.StoreMetric(platform)
		if !ok {
			return []StoreTrend{}
		}
		base = m
	}

	dates := s.trendDates(days)
	trends := make([]StoreTrend, 0, len(dates))
	for _, date := range dates {
		trends = append(trends, StoreTrend{
			Date:           date,
			Revenue:        int(math.Round(base.Business.Revenue * s.variance(0.15))),
			Transactions:   int(math.Round(float64(base.Business.Transactions) * s.variance(0.15))),
			ConversionRate: round2(base.Performance.ConversionRate * s.variance(0.15)),
			Users:          int(math.Round(float64(base.User.UniqueVisitors) * s.variance(0.15))),
		})
	}
	return trends
}

func (s *MetricsServiceImpl) StoreAlerts() []models.Alert {
	now := s.now()
	var alerts []models.Alert

	for _, st := range s.AllStoreMetrics() {
		if st.Performance.Uptime < 99.5 {
			severity := models.SeverityHigh
			if st.Performance.Uptime < 99 {
				severity = models.SeverityCritical
			}
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("uptime-%s", st.Platform),
				Source:      "store",
				Entity:      st.Platform,
				Type:        "performance",
				Severity:    severity,
				Title:       "Low Uptime",
				Description: fmt.Sprintf("%s uptime is %v%%", st.Platform, st.Performance.Uptime),
				Threshold:   "99.5%",
				Current:     fmt.Sprintf("%v%%", st.Performance.Uptime),
				Timestamp:   now,
			})
		}
		if st.Performance.ResponseTime > 1500 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("response-%s", st.Platform),
				Source:      "store",
				Entity:      st.Platform,
				Type:        "performance",
				Severity:    models.SeverityMedium,
				Title:       "Slow Response Time",
				Description: fmt.Sprintf("%s response time is %vms", st.Platform, st.Performance.ResponseTime),
				Threshold:   "1500ms",
				Current:     fmt.Sprintf("%vms", st.Performance.ResponseTime),
				Timestamp:   now,
			})
		}
		if st.Performance.ConversionRate < 3.0 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("conversion-%s", st.Platform),
				Source:      "store",
				Entity:      st.Platform,
				Type:        "business",
				Severity:    models.SeverityMedium,
				Title:       "Low Conversion Rate",
				Description: fmt.Sprintf("%s conversion rate is %v%%", st.Platform, st.Performance.ConversionRate),
				Threshold:   "3.0%",
				Current:     fmt.Sprintf("%v%%", st.Performance.ConversionRate),
				Timestamp:   now,
			})
		}
		if st.Business.Subscriptions.Churn > 6.0 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("churn-%s", st.Platform),
				Source:      "store",
				Entity:      st.Platform,
				Type:        "business",
				Severity:    models.SeverityHigh,
				Title:       "High Churn Rate",
				Description: fmt.Sprintf("%s churn rate is %v%%", st.Platform, st.Business.Subscriptions.Churn),
				Threshold:   "6.0%",
				Current:     fmt.Sprintf("%v%%", st.Business.Subscriptions.Churn),
				Timestamp:   now,
			})
		}
		if st.Payments.FailureRate > 5.0 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("payment-%s", st.Platform),
				Source:      "store",
				Entity:      st.Platform,
				Type:        "payment",
				Severity:    models.SeverityHigh,
				Title:       "High Payment Failure Rate",
				Description: fmt.Sprintf("%s payment failure rate is %v%%", st.Platform, st.Payments.FailureRate),
				Threshold:   "5.0%",
				Current:     fmt.Sprintf("%v%%", st.Payments.FailureRate),
				Timestamp:   now,
			})
		}
		outOfStockPct := float64(st.Catalog.OutOfStock) / float64(st.Catalog.TotalItems) * 100
		if outOfStockPct > 5.0 {
			alerts = append(alerts, models.Alert{
				ID:          fmt.Sprintf("inventory-%s", st.Platform),
				Source:      "store",
				Entity:      st.Platform,
				Type:        "inventory",
				Severity:    models.SeverityMedium,
				Title:       "High Out of Stock Rate",
				Description: fmt.Sprintf("%s has %.1f%% items out of stock", st.Platform, outOfStockPct),
				Threshold:   "5.0%",
				Current:     fmt.Sprintf("%.1f%%", outOfStockPct),
				Timestamp:   now,
			})
		}
	}
	return sortAlerts(alerts)
}

func (s *MetricsServiceImpl) StoreKPIs() StoreKPIs {
	fleet := s.AllStoreMetrics()

	var summary StoreKPISummary
	var subs SubscriptionKPIs
	var payments PaymentHealth
	var conversionSum, uptimeSum, churnSum float64
	for _, st := range fleet {
		summary.TotalRevenue += st.Business.Revenue
		summary.TotalTransactions += st.Business.Transactions
		conversionSum += st.Performance.ConversionRate
		summary.TotalUsers += st.User.UniqueVisitors
		uptimeSum += st.Performance.Uptime
		switch st.Health {
		case models.HealthHealthy:
			summary.HealthyStores++
		case models.HealthWarning:
			summary.WarningStores++
		case models.HealthCritical:
			summary.CriticalStores++
		}

		subs.NewSubscriptions += st.Business.Subscriptions.New
		subs.Renewals += st.Business.Subscriptions.Renewals
		subs.Cancellations += st.Business.Subscriptions.Cancellations
		churnSum += st.Business.Subscriptions.Churn

		payments.AvgSuccessRate += st.Payments.SuccessRate
		payments.AvgProcessingTime += st.Payments.AverageProcessingTime
		payments.TotalFraudDetected += st.Payments.FraudDetection
	}
	n := float64(len(fleet))
	summary.AvgConversionRate = round2(conversionSum / n)
	summary.AvgUptime = round2(uptimeSum / n)
	subs.AvgChurnRate = round2(churnSum / n)
	subs.NetGrowth = subs.NewSubscriptions + subs.Renewals - subs.Cancellations
	payments.AvgSuccessRate /= n
	payments.AvgProcessingTime /= n

	byConversion := append([]StoreMetrics(nil), fleet...)
	sort.SliceStable(byConversion, func(i, j int) bool {
		return byConversion[i].Performance.ConversionRate > byConversion[j].Performance.ConversionRate
	})
	var top []StoreConversionEntry
	for _, st := range byConversion[:3] {
		top = append(top, StoreConversionEntry{
			Platform:       st.Platform,
			ConversionRate: st.Performance.ConversionRate,
			Revenue:        st.Business.Revenue,
		})
	}

	var attention []AttentionItem
	for _, st := range fleet {
		if st.Health == models.HealthHealthy {
			continue
		}
		issues := "Performance issues"
		switch {
		case st.Performance.ConversionRate < 3:
			issues = "Low conversion rate"
		case st.Payments.FailureRate > 5:
			issues = "High payment failures"
		}
		attention = append(attention, AttentionItem{Name: st.Platform, Health: st.Health, Issues: issues})
	}

	return StoreKPIs{
		Summary:        summary,
		Subscriptions:  subs,
		TopPerformers:  top,
		NeedsAttention: attention,
		PaymentHealth:  payments,
	}
}

func (s *MetricsServiceImpl) StoreComparison() StoreComparison {
	fleet := s.AllStoreMetrics()
	cmp := StoreComparison{}

	for _, st := range fleet {
		cmp.Revenue = append(cmp.Revenue, StoreRevenueEntry{
			Platform: st.Platform,
			Revenue:  st.Business.Revenue,
			Growth:   round2(s.float()*20 - 5),
		})
		cmp.Conversion = append(cmp.Conversion, StoreConversionDetail{
			Platform:    st.Platform,
			Rate:        st.Performance.ConversionRate,
			Abandonment: st.Performance.AbandonmentRate,
		})
		cmp.Performance = append(cmp.Performance, StorePerformanceEntry{
			Platform:     st.Platform,
			Uptime:       st.Performance.Uptime,
			ResponseTime: st.Performance.ResponseTime,
		})
		cmp.Users = append(cmp.Users, StoreUserComparisonEntry{
			Platform:       st.Platform,
			Sessions:       st.User.Sessions,
			UniqueVisitors: st.User.UniqueVisitors,
			BounceRate:     st.User.BounceRate,
		})
	}
	return cmp
}
